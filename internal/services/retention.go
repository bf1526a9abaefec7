package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// JournalCleaner is the part of the access journal the retention job needs.
type JournalCleaner interface {
	Cleanup(olderThan time.Time) (int, error)
}

// RetentionConfig controls how often the journal is pruned and how much history is kept.
type RetentionConfig struct {
	Interval  time.Duration
	Retention time.Duration
}

// Retention periodically drops access journal entries older than the retention window.
type Retention struct {
	journal JournalCleaner
	logger  *zap.Logger
	cron    *cron.Cron
	cfg     RetentionConfig
	now     func() time.Time
}

func NewRetention(journal JournalCleaner, logger *zap.Logger, cfg RetentionConfig) *Retention {
	if cfg.Interval < time.Second {
		cfg.Interval = time.Hour
	}
	if cfg.Retention <= 0 {
		cfg.Retention = 24 * time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Retention{
		journal: journal,
		logger:  logger,
		cfg:     cfg,
		cron:    cron.New(cron.WithSeconds()),
		now:     time.Now,
	}

	schedule := fmt.Sprintf("@every %ds", int(cfg.Interval.Seconds()))
	_, _ = r.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Interval)
		defer cancel()
		if _, err := r.Prune(ctx); err != nil {
			r.logger.Error("access journal cleanup failed", zap.Error(err))
		}
	})

	return r
}

// Start launches the cron scheduler.
func (r *Retention) Start() {
	if r == nil || r.cron == nil {
		return
	}
	r.cron.Start()
	r.logger.Info("access journal retention started",
		zap.Duration("interval", r.cfg.Interval),
		zap.Duration("retention", r.cfg.Retention))
}

// Stop waits for a running cleanup or for ctx to expire.
func (r *Retention) Stop(ctx context.Context) {
	if r == nil || r.cron == nil {
		return
	}
	stopCtx := r.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	r.logger.Info("access journal retention stopped")
}

// Prune removes expired entries synchronously.
func (r *Retention) Prune(ctx context.Context) (int, error) {
	if r == nil || r.journal == nil {
		return 0, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	cutoff := r.now().Add(-r.cfg.Retention)
	removed, err := r.journal.Cleanup(cutoff)
	if err != nil {
		return removed, err
	}
	if removed > 0 {
		r.logger.Info("access journal pruned", zap.Int("removed", removed), zap.Time("cutoff", cutoff))
	}
	return removed, nil
}
