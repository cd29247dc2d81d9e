package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Tasks struct {
		DraftRetention       time.Duration
		DraftCleanupInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	// Rates holds every pricing constant. Passed into the pricing
	// calculator explicitly so tests can override rates per case.
	Rates struct {
		BaseRateInternational float64
		BaseRateLocal         float64
		VATRate               float64
		InsuranceBasicRate    float64
		InsurancePremiumRate  float64
	}

	Rabbit struct {
		URL        string
		EmailQueue string
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		TrackingEvent TrackingEvent
	}

	TrackingEvent struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Rates    Rates
		Rabbit   Rabbit
		Kafka    Kafka
	}
)

const (
	defaultBaseRateInternational = 20.0
	defaultBaseRateLocal         = 10.0
	defaultVATRate               = 0.075
	defaultInsuranceBasicRate    = 0.01
	defaultInsurancePremiumRate  = 0.025
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	draftRetention, err := osGetEnvDuration("BACKGROUND_DRAFT_RETENTION")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	draftCleanupInterval, err := osGetEnvDuration("BACKGROUND_DRAFT_CLEANUP_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	trackingEventTimeout, err := osGetEnvDuration("KAFKA_HANDLER_TRACKING_EVENT_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rates, err := loadRates()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			DraftRetention:       draftRetention,
			DraftCleanupInterval: draftCleanupInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Rates: rates,
		Rabbit: Rabbit{
			URL:        os.Getenv("RABBITMQ_URL"),
			EmailQueue: os.Getenv("RABBITMQ_EMAIL_QUEUE"),
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				TrackingEvent: TrackingEvent{
					ProcessTimeout: trackingEventTimeout,
				},
			},
		},
	}, nil
}

func loadRates() (Rates, error) {
	baseInternational, err := osGetFloat("RATE_BASE_INTERNATIONAL", defaultBaseRateInternational)
	if err != nil {
		return Rates{}, err
	}
	baseLocal, err := osGetFloat("RATE_BASE_LOCAL", defaultBaseRateLocal)
	if err != nil {
		return Rates{}, err
	}
	vat, err := osGetFloat("RATE_VAT", defaultVATRate)
	if err != nil {
		return Rates{}, err
	}
	insuranceBasic, err := osGetFloat("RATE_INSURANCE_BASIC", defaultInsuranceBasicRate)
	if err != nil {
		return Rates{}, err
	}
	insurancePremium, err := osGetFloat("RATE_INSURANCE_PREMIUM", defaultInsurancePremiumRate)
	if err != nil {
		return Rates{}, err
	}

	return Rates{
		BaseRateInternational: baseInternational,
		BaseRateLocal:         baseLocal,
		VATRate:               vat,
		InsuranceBasicRate:    insuranceBasic,
		InsurancePremiumRate:  insurancePremium,
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Tasks.DraftRetention == time.Duration(0) {
		return errors.New("BACKGROUND_DRAFT_RETENTION is required")
	}
	if cfg.Tasks.DraftCleanupInterval == time.Duration(0) {
		return errors.New("BACKGROUND_DRAFT_CLEANUP_INTERVAL is required")
	}

	if err := validateRates(&cfg.Rates); err != nil {
		return err
	}

	if cfg.Rabbit.URL == "" {
		return errors.New("RABBITMQ_URL is required")
	}
	if cfg.Rabbit.EmailQueue == "" {
		return errors.New("RABBITMQ_EMAIL_QUEUE is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.TrackingEvent.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_TRACKING_EVENT_PROCESS_TIMEOUT is required")
	}

	return nil
}

func validateRates(rates *Rates) error {
	if rates.BaseRateInternational <= 0 {
		return errors.New("RATE_BASE_INTERNATIONAL must be positive")
	}
	if rates.BaseRateLocal <= 0 {
		return errors.New("RATE_BASE_LOCAL must be positive")
	}
	if rates.VATRate < 0 {
		return errors.New("RATE_VAT must not be negative")
	}
	if rates.InsuranceBasicRate < 0 {
		return errors.New("RATE_INSURANCE_BASIC must not be negative")
	}
	if rates.InsurancePremiumRate < 0 {
		return errors.New("RATE_INSURANCE_PREMIUM must not be negative")
	}
	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetFloat(s string, def float64) (float64, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
	}

	res, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
