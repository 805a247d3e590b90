package scheduler

import (
	"context"
	"log/slog"
	"time"

	"restaurant-booking/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// Job is one unit of scheduled work.
type Job interface {
	Run(ctx context.Context) error
}

type Scheduler struct {
	cron    *cron.Cron
	timeout time.Duration
}

// New creates a scheduler whose cron schedules are read in the given location.
func New(location *time.Location) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithLocation(location), cron.WithChain(cron.Recover(cron.DefaultLogger))),
		timeout: 2 * time.Minute,
	}
}

func (s *Scheduler) Register(name, schedule string, job Job) error {
	_, err := s.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		start := time.Now()
		if err := job.Run(ctx); err != nil {
			slog.ErrorContext(ctx, "scheduled job failed", "job", name, "error", err)
			return
		}
		slog.InfoContext(ctx, "scheduled job finished", "job", name, "duration", time.Since(start))
	})
	if err != nil {
		return errs.Wrapf(err, "register job %s with schedule %q", name, schedule)
	}
	slog.Info("scheduled job registered", "job", name, "schedule", schedule)
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for running jobs or for ctx, whichever ends first.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}
