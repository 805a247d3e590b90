package queries

import (
	"context"
	"time"

	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/domain/stats"
	"restaurant-booking/internal/pkg/clock"
	"restaurant-booking/internal/usecase/shared"
)

//go:generate mockgen -source=dashboard.go -destination=../../testutil/mock/queries/mock_dashboard.go -package=queriesmock

type DashboardQueries interface {
	Stats(ctx context.Context) (stats.Stats, error)
	Dashboard(ctx context.Context, date reservation.Date) (stats.Dashboard, error)
}

type dashboardQueriesImpl struct {
	store    shared.Store
	clock    clock.Clock
	location *time.Location
}

func NewDashboardQueries(uow shared.UnitOfWork, clock clock.Clock, location *time.Location) DashboardQueries {
	return &dashboardQueriesImpl{
		store:    uow.Reads(),
		clock:    clock,
		location: location,
	}
}

// Stats uses the restaurant's local calendar day as "today".
func (q *dashboardQueriesImpl) Stats(ctx context.Context) (stats.Stats, error) {
	rs, err := q.store.Reservations(ctx)
	if err != nil {
		return stats.Stats{}, err
	}
	today := reservation.DateOf(clock.Today(q.clock, q.location))
	return stats.Compute(rs, today), nil
}

func (q *dashboardQueriesImpl) Dashboard(ctx context.Context, date reservation.Date) (stats.Dashboard, error) {
	snap, err := loadSnapshot(ctx, q.store)
	if err != nil {
		return stats.Dashboard{}, err
	}
	return stats.BuildDashboard(snap, date), nil
}
