package queries

import (
	"context"

	"restaurant-booking/internal/domain/availability"
	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/domain/restaurant"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/usecase/shared"
)

//go:generate mockgen -source=availability.go -destination=../../testutil/mock/queries/mock_availability.go -package=queriesmock

type AvailabilityQueries interface {
	Check(ctx context.Context, date reservation.Date, slot string, guests int) (availability.Result, error)
	Day(ctx context.Context, date reservation.Date) (availability.Day, error)
}

type availabilityQueriesImpl struct {
	store shared.Store
}

func NewAvailabilityQueries(uow shared.UnitOfWork) AvailabilityQueries {
	return &availabilityQueriesImpl{store: uow.Reads()}
}

func (q *availabilityQueriesImpl) Check(ctx context.Context, date reservation.Date, slot string, guests int) (availability.Result, error) {
	if _, err := reservation.NewGuests(guests); err != nil {
		return availability.Result{}, errs.Mark(err, shared.ErrValidation)
	}

	snap, err := loadSnapshot(ctx, q.store)
	if err != nil {
		return availability.Result{}, err
	}
	if !snap.Config.TimeSlots.Has(slot) {
		return availability.Result{}, errs.Mark(restaurant.ErrUnknownSlot, shared.ErrValidation)
	}

	return snap.Check(date, slot, guests), nil
}

func (q *availabilityQueriesImpl) Day(ctx context.Context, date reservation.Date) (availability.Day, error) {
	snap, err := loadSnapshot(ctx, q.store)
	if err != nil {
		return availability.Day{}, err
	}
	return snap.DayView(date), nil
}

func loadSnapshot(ctx context.Context, store shared.Store) (availability.Snapshot, error) {
	cfg, err := store.LoadConfig(ctx)
	if err != nil {
		return availability.Snapshot{}, err
	}
	rs, err := store.Reservations(ctx)
	if err != nil {
		return availability.Snapshot{}, err
	}
	return availability.Snapshot{Reservations: rs, Config: cfg}, nil
}
