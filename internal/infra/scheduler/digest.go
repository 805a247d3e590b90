package scheduler

import (
	"context"
	"log/slog"
	"time"

	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/pkg/clock"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/usecase/queries"
	"restaurant-booking/internal/usecase/shared"
)

// DigestJob mails the restaurant a summary of today's lunch and dinner services.
type DigestJob struct {
	dashboard queries.DashboardQueries
	notifier  shared.Notifier
	clock     clock.Clock
	location  *time.Location
}

func NewDigestJob(
	dashboard queries.DashboardQueries,
	notifier shared.Notifier,
	clock clock.Clock,
	location *time.Location,
) *DigestJob {
	return &DigestJob{
		dashboard: dashboard,
		notifier:  notifier,
		clock:     clock,
		location:  location,
	}
}

func (j *DigestJob) Run(ctx context.Context) error {
	today := reservation.DateOf(clock.Today(j.clock, j.location))

	board, err := j.dashboard.Dashboard(ctx, today)
	if err != nil {
		return errs.Wrap(err, "digest: load dashboard")
	}

	digest := &shared.Digest{
		Date:         today,
		LunchCount:   len(board.Lunch.Reservations),
		LunchGuests:  board.Lunch.TotalGuests,
		LunchUsage:   board.Lunch.CapacityUsage,
		DinnerCount:  len(board.Dinner.Reservations),
		DinnerGuests: board.Dinner.TotalGuests,
		DinnerUsage:  board.Dinner.CapacityUsage,
		Reservations: append(append([]reservation.Reservation{}, board.Lunch.Reservations...), board.Dinner.Reservations...),
		GeneratedAt:  j.clock.Now(),
	}

	if err := j.notifier.Notify(ctx, shared.Notification{Kind: shared.KindDailyDigest, Digest: digest}); err != nil {
		return errs.Wrap(err, "digest: notify")
	}

	slog.InfoContext(ctx, "daily digest sent",
		"date", today.String(),
		"lunch", digest.LunchCount,
		"dinner", digest.DinnerCount)
	return nil
}
