package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/pratik-mahalle/usuarios-api/internal/pkg/logger"
)

// JobFunc is a unit of background work
type JobFunc func(ctx context.Context) error

// Scheduler runs named jobs on cron schedules until its context ends
type Scheduler struct {
	cron    *cron.Cron
	logger  *logger.Logger
	timeout time.Duration
	jobs    map[string]JobFunc
	base    context.Context
}

// NewScheduler creates a scheduler. Each run is bounded by timeout.
func NewScheduler(log *logger.Logger, timeout time.Duration) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:  log,
		timeout: timeout,
		jobs:    make(map[string]JobFunc),
		base:    context.Background(),
	}
}

// Add registers fn under name. spec uses the standard five field syntax
// or a descriptor such as @every 1m.
func (s *Scheduler) Add(name, spec string, fn JobFunc) error {
	if _, exists := s.jobs[name]; exists {
		return fmt.Errorf("job %q already registered", name)
	}

	_, err := s.cron.AddFunc(spec, func() {
		_ = s.run(s.base, name, fn)
	})
	if err != nil {
		return fmt.Errorf("invalid cron schedule for %s: %w", name, err)
	}

	s.jobs[name] = fn
	return nil
}

// RunNow runs a registered job once, outside its schedule
func (s *Scheduler) RunNow(ctx context.Context, name string) error {
	fn, ok := s.jobs[name]
	if !ok {
		return fmt.Errorf("job %q not registered", name)
	}
	return s.run(ctx, name, fn)
}

// Start runs the scheduler and blocks until ctx is done. Jobs see ctx and
// are waited for before Start returns. Add must not be called after Start.
func (s *Scheduler) Start(ctx context.Context) error {
	s.base = ctx

	s.logger.WithFields(map[string]interface{}{
		"jobs": len(s.jobs),
	}).Info("Starting background scheduler")

	s.cron.Start()
	<-ctx.Done()

	<-s.cron.Stop().Done()
	s.logger.Info("Background scheduler stopped")
	return nil
}

func (s *Scheduler) run(ctx context.Context, name string, fn JobFunc) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	err := fn(ctx)

	entry := s.logger.WithFields(map[string]interface{}{
		"job":      name,
		"duration": time.Since(start).Milliseconds(),
	})
	if err != nil {
		entry.ErrorWithErr(err, "Background job failed")
		return err
	}
	entry.Debug("Background job finished")
	return nil
}
