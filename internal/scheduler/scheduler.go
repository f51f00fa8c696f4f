// Package scheduler runs the periodic dataset refreshes.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/guttosm/marketpulse/internal/logger"
	"github.com/guttosm/marketpulse/internal/service"
	"github.com/guttosm/marketpulse/internal/treasury"
)

// refreshTimeout bounds a single scheduled run so a hung upstream cannot
// block the next tick forever.
const refreshTimeout = 30 * time.Minute

// Scheduler drives the breadth and treasury refreshes on a cron schedule.
type Scheduler struct {
	cron    *cron.Cron
	breadth service.BreadthService
	updater *treasury.Updater
	ctx     context.Context
}

// New creates a Scheduler bound to the given context. The context is consulted
// per run, so cancelling it makes in-flight refreshes stop.
func New(ctx context.Context, breadthSvc service.BreadthService, updater *treasury.Updater) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		breadth: breadthSvc,
		updater: updater,
		ctx:     ctx,
	}
}

// Register adds the refresh job under the given cron expression
// (standard 5-field format).
func (s *Scheduler) Register(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.refresh); err != nil {
		return fmt.Errorf("register refresh job: %w", err)
	}
	return nil
}

// Start begins executing registered jobs on their schedule.
func (s *Scheduler) Start() {
	s.cron.Start()
	logger.L().Info().Msg("scheduler started")
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	logger.L().Info().Msg("scheduler stopped")
}

// RunNow executes the refresh immediately, outside the schedule. Used by the
// update run mode and on startup when the operator wants fresh data right away.
func (s *Scheduler) RunNow() {
	s.refresh()
}

func (s *Scheduler) refresh() {
	ctx, cancel := context.WithTimeout(s.ctx, refreshTimeout)
	defer cancel()

	logger.L().Info().Msg("scheduled refresh starting")

	updated, err := s.updater.Refresh(ctx)
	if err != nil {
		logger.L().Error().Err(err).Msg("treasury refresh failed")
	} else {
		logger.L().Info().Bool("updated", updated).Msg("treasury refresh finished")
	}

	if err := s.breadth.Refresh(ctx); err != nil {
		logger.L().Error().Err(err).Msg("breadth refresh failed")
	} else {
		logger.L().Info().Msg("breadth refresh finished")
	}
}
