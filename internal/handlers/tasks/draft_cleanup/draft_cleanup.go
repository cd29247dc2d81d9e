package draft_cleanup

import (
	"context"
	"time"

	"shipping/pkg/logger"
)

type Service interface {
	CleanupExpiredDrafts(ctx context.Context, retention time.Duration) (int64, error)
}

type DraftCleanup struct {
	log       logger.Logger
	service   Service
	interval  time.Duration
	retention time.Duration
}

func NewDraftCleanup(log logger.Logger, service Service, interval, retention time.Duration) *DraftCleanup {
	return &DraftCleanup{
		log:       log,
		service:   service,
		interval:  interval,
		retention: retention,
	}
}

func (d *DraftCleanup) TTL() time.Duration {
	return d.interval
}

func (d *DraftCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, d.interval)
	defer cancel()

	rowsAffected, err := d.service.CleanupExpiredDrafts(ctxWithTimeout, d.retention)

	if rowsAffected > 0 {
		d.log.With(
			logger.NewField("expired_drafts", rowsAffected),
		).Info("draft cleanup")
	}

	return err
}

func (d *DraftCleanup) Info() string {
	return "draft cleanup"
}
