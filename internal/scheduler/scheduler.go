// Package scheduler repeats batch collections on a cron schedule.
package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler runs a collection job on a cron schedule. Per-tick failures
// are logged and the schedule keeps running.
type Scheduler struct {
	cron   *cron.Cron
	logger *zap.Logger
}

// New creates a Scheduler with seconds-resolution cron specs.
func New(logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithSeconds()),
		logger: logger,
	}
}

// Register adds a collection job under the given cron spec.
func (s *Scheduler) Register(spec string, job func() error) error {
	_, err := s.cron.AddFunc(spec, func() {
		s.logger.Info("running scheduled collection")
		if err := job(); err != nil {
			s.logger.Error("scheduled collection failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("register collection job: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.logger.Info("scheduler stopped")
}
