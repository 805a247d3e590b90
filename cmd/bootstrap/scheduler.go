package bootstrap

import (
	"context"
	"time"

	"restaurant-booking/internal/infra/scheduler"
	"restaurant-booking/internal/pkg/clock"
	"restaurant-booking/internal/pkg/config"
	"restaurant-booking/internal/usecase/queries"
	"restaurant-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

const DigestJobName = "daily-digest"

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewScheduler,
	),
	fx.Invoke(RegisterJobs),
)

func NewScheduler(lc fx.Lifecycle, location *time.Location) *scheduler.Scheduler {
	s := scheduler.New(location)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: s.Stop,
	})
	return s
}

func RegisterJobs(
	cfg config.Config,
	s *scheduler.Scheduler,
	dashboard queries.DashboardQueries,
	notifier shared.Notifier,
	clk clock.Clock,
	location *time.Location,
) error {
	if !cfg.Digest.Enabled {
		return nil
	}
	return s.Register(DigestJobName, cfg.Digest.Cron, scheduler.NewDigestJob(dashboard, notifier, clk, location))
}
