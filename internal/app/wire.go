//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	notification_read_post "shipping/internal/handlers/rest/notification_read_post"
	notifications_get "shipping/internal/handlers/rest/notifications_get"
	payment_init_post "shipping/internal/handlers/rest/payment_init_post"
	payment_refund_post "shipping/internal/handlers/rest/payment_refund_post"
	payment_status_get "shipping/internal/handlers/rest/payment_status_get"
	payment_verify_post "shipping/internal/handlers/rest/payment_verify_post"
	quote_post "shipping/internal/handlers/rest/quote_post"
	shipment_delete "shipping/internal/handlers/rest/shipment_delete"
	shipment_get "shipping/internal/handlers/rest/shipment_get"
	shipment_post "shipping/internal/handlers/rest/shipment_post"
	shipment_put "shipping/internal/handlers/rest/shipment_put"
	shipments_get "shipping/internal/handlers/rest/shipments_get"
	tracking_get "shipping/internal/handlers/rest/tracking_get"
	user_get "shipping/internal/handlers/rest/user_get"
	user_post "shipping/internal/handlers/rest/user_post"
	"shipping/internal/handlers/tasks/draft_cleanup"
	"shipping/internal/pkg/broadcast"
	"shipping/internal/pkg/config"
	"shipping/internal/pkg/factory/delivery_estimate"
	"shipping/internal/pkg/factory/pricing"
	"shipping/internal/pkg/mailer"
	"shipping/internal/pkg/rabbit"

	notificationRepo "shipping/internal/repository/notification"
	shipmentRepo "shipping/internal/repository/shipment"
	userRepo "shipping/internal/repository/user"
	notificationService "shipping/internal/service/notification"
	paymentService "shipping/internal/service/payment"
	shipmentService "shipping/internal/service/shipment"
	trackingService "shipping/internal/service/tracking"
	userService "shipping/internal/service/user"

	"shipping/pkg/background"
	"shipping/pkg/logger"
	"shipping/pkg/querier"
	"shipping/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	CleanupInterval time.Duration
	DraftRetention  time.Duration
)

type Application struct {
	ServiceShipment     ServiceShipment
	ServicePayment      ServicePayment
	ServiceUser         ServiceUser
	ServiceNotification ServiceNotification
	Hub                 *broadcast.Hub
	BackgroundWorkers   *background.Worker
}

type ServiceShipment interface {
	shipment_post.Service
	shipment_get.Service
	shipments_get.Service
	shipment_put.Service
	shipment_delete.Service
	quote_post.Service
	tracking_get.Service
}

type ServicePayment interface {
	payment_init_post.Service
	payment_verify_post.Service
	payment_refund_post.Service
	payment_status_get.Service
}

type ServiceUser interface {
	user_post.Service
	user_get.Service
}

type ServiceNotification interface {
	notifications_get.Service
	notification_read_post.Service
}

// InitializeApplication builds the object graph of the HTTP service
// (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	rabbitClient *rabbit.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideCleanupInterval,
		provideDraftRetention,
		provideRates,

		provideShipmentRepository,
		provideUserRepository,
		provideNotificationRepository,

		pricing.New,
		delivery_estimate.New,

		provideServiceShipment,
		provideServiceUser,
		provideServiceNotification,
		provideServicePayment,

		provideBroadcastHub,
		provideMailer,

		provideDraftCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceShipment), new(*shipmentService.Service)),
		wire.Bind(new(ServicePayment), new(*paymentService.Service)),
		wire.Bind(new(ServiceUser), new(*userService.Service)),
		wire.Bind(new(ServiceNotification), new(*notificationService.Service)),

		wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(shipmentService.PricingFactory), new(*pricing.Calculator)),
		wire.Bind(new(shipmentService.DeliveryEstimator), new(*delivery_estimate.Estimator)),
		wire.Bind(new(shipmentService.TxManager), new(*tx.Manager)),

		wire.Bind(new(userService.Repository), new(*userRepo.Repository)),
		wire.Bind(new(notificationService.Repository), new(*notificationRepo.Repository)),

		wire.Bind(new(paymentService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(paymentService.UserService), new(*userService.Service)),
		wire.Bind(new(paymentService.NotificationService), new(*notificationService.Service)),
		wire.Bind(new(paymentService.Mailer), new(*mailer.Mailer)),
		wire.Bind(new(paymentService.Broadcaster), new(*broadcast.Hub)),
		wire.Bind(new(paymentService.TxManager), new(*tx.Manager)),

		wire.Bind(new(mailer.Publisher), new(*rabbit.Client)),

		wire.Bind(new(draft_cleanup.Service), new(*shipmentService.Service)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	TrackingService *trackingService.Service
}

// InitializeKafkaWorkerApp builds the object graph of the tracking
// events worker (cmd/worker-tracking-events).
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideShipmentRepository,
		provideTrackingService,

		wire.Bind(new(trackingService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(trackingService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideRates(cfg *config.Config) config.Rates {
	return cfg.Rates
}

func provideShipmentRepository(querier *querier.Querier) *shipmentRepo.Repository {
	return shipmentRepo.New(querier)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideNotificationRepository(querier *querier.Querier) *notificationRepo.Repository {
	return notificationRepo.New(querier)
}

func provideServiceShipment(
	repository shipmentService.Repository,
	pricingFactory shipmentService.PricingFactory,
	estimator shipmentService.DeliveryEstimator,
	txManager shipmentService.TxManager,
) *shipmentService.Service {
	return shipmentService.New(repository, pricingFactory, estimator, txManager)
}

func provideServiceUser(repository userService.Repository) *userService.Service {
	return userService.New(repository)
}

func provideServiceNotification(repository notificationService.Repository) *notificationService.Service {
	return notificationService.New(repository)
}

func provideServicePayment(
	log logger.Logger,
	repository paymentService.Repository,
	users paymentService.UserService,
	notifications paymentService.NotificationService,
	paymentMailer paymentService.Mailer,
	broadcaster paymentService.Broadcaster,
	txManager paymentService.TxManager,
) *paymentService.Service {
	return paymentService.New(log, repository, users, notifications, paymentMailer, broadcaster, txManager)
}

func provideTrackingService(
	repository trackingService.Repository,
	txManager trackingService.TxManager,
) *trackingService.Service {
	return trackingService.New(repository, txManager)
}

func provideBroadcastHub(log logger.Logger) *broadcast.Hub {
	return broadcast.NewHub(log)
}

func provideMailer(publisher mailer.Publisher) *mailer.Mailer {
	return mailer.New(publisher)
}

func provideCleanupInterval(cfg *config.Config) CleanupInterval {
	return CleanupInterval(cfg.Tasks.DraftCleanupInterval)
}

func provideDraftRetention(cfg *config.Config) DraftRetention {
	return DraftRetention(cfg.Tasks.DraftRetention)
}

func provideDraftCleanupTask(
	log logger.Logger,
	shipmentSvc draft_cleanup.Service,
	interval CleanupInterval,
	retention DraftRetention,
) *draft_cleanup.DraftCleanup {
	return draft_cleanup.NewDraftCleanup(log, shipmentSvc, time.Duration(interval), time.Duration(retention))
}

func provideTaskList(
	draftCleanupTask *draft_cleanup.DraftCleanup,
) []background.Task {
	return []background.Task{
		draftCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
