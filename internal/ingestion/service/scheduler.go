package service

import (
	"context"
	"fmt"
	"time"

	"golang-stock-dashboard/pkg/logger"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the ingestion jobs on their cron schedules.
type Scheduler struct {
	cron   *cron.Cron
	logger *logger.Logger
}

// NewScheduler creates a scheduler evaluating cron specs in loc.
func NewScheduler(loc *time.Location, log *logger.Logger) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(loc), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger: log,
	}
}

// Register adds a named job. An empty spec leaves the job disabled.
func (s *Scheduler) Register(ctx context.Context, name, spec string, job func(ctx context.Context) error) error {
	if spec == "" {
		s.logger.Info("Job disabled", logger.StringField("job", name))
		return nil
	}
	_, err := s.cron.AddFunc(spec, func() {
		start := time.Now()
		s.logger.Info("Job started", logger.StringField("job", name))
		if err := job(ctx); err != nil {
			s.logger.Error("Job failed", logger.StringField("job", name), logger.ErrorField(err))
			return
		}
		s.logger.Info("Job finished", logger.StringField("job", name), logger.Field("duration", time.Since(start)))
	})
	if err != nil {
		return fmt.Errorf("invalid cron spec %q for %s: %w", spec, name, err)
	}
	s.logger.Info("Job registered", logger.StringField("job", name), logger.StringField("spec", spec))
	return nil
}

// Entries reports the number of registered jobs.
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

// Start runs the scheduler until ctx is done, then waits for running jobs.
func (s *Scheduler) Start(ctx context.Context) {
	s.cron.Start()
	<-ctx.Done()
	s.logger.Info("Stopping scheduler")
	<-s.cron.Stop().Done()
}
