package scheduler

import (
	"context"
	"log/slog"
	"time"

	"news_harvester/internal/domain"
)

// Harvester runs one full harvest.
type Harvester interface {
	Run(ctx context.Context) (*domain.HarvestStats, error)
}

// Scheduler repeats harvests on a fixed interval until its context ends.
// A failed run is logged and the next one still happens.
type Scheduler struct {
	harvester Harvester
	interval  time.Duration
	logger    *slog.Logger

	runs     int
	failures int // consecutive, reset by a successful run
}

func NewScheduler(harvester Harvester, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		harvester: harvester,
		interval:  interval,
		logger:    logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runHarvest(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runHarvest(ctx)
		}
	}
}

func (s *Scheduler) runHarvest(ctx context.Context) {
	s.runs++
	logger := s.logger.With("run", s.runs)

	stats, err := s.harvester.Run(ctx)
	if err != nil {
		s.failures++
		logger.Error("harvest failed",
			"error", err,
			"consecutive_failures", s.failures,
			"retry_in", s.interval,
		)
		return
	}

	if s.failures > 0 {
		logger.Info("harvest recovered", "after_failures", s.failures)
	}
	s.failures = 0

	logger.Info("next harvest scheduled",
		"in", s.interval,
		"months", len(stats.Months),
		"extracted", stats.Extracted,
		"failed", stats.Failed,
	)
}
