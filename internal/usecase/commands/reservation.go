package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"restaurant-booking/internal/domain/availability"
	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/pkg/clock"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/usecase/shared"
)

//go:generate mockgen -source=reservation.go -destination=../../testutil/mock/commands/mock_reservation.go -package=commandsmock

var ErrSlotUnavailable = errs.New("slot unavailable")

// SlotUnavailableError carries the availability verdict so callers can offer other times.
type SlotUnavailableError struct {
	Result availability.Result
}

func (e *SlotUnavailableError) Error() string {
	return fmt.Sprintf("%s: %s", ErrSlotUnavailable, e.Result.Message)
}

func (e *SlotUnavailableError) Unwrap() error {
	return ErrSlotUnavailable
}

type ReservationCommands interface {
	Create(ctx context.Context, draft reservation.Draft) (*reservation.Reservation, error)
	Confirm(ctx context.Context, id string) (*reservation.Reservation, error)
	Cancel(ctx context.Context, id, reason string) (*reservation.Reservation, error)
	Delete(ctx context.Context, id string) error
}

type reservationCommandsImpl struct {
	uow      shared.UnitOfWork
	factory  *reservation.Factory
	notifier shared.Notifier
	clock    clock.Clock
	location *time.Location
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	factory *reservation.Factory,
	notifier shared.Notifier,
	clock clock.Clock,
	location *time.Location,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:      uow,
		factory:  factory,
		notifier: notifier,
		clock:    clock,
		location: location,
	}
}

func (c *reservationCommandsImpl) Create(ctx context.Context, draft reservation.Draft) (*reservation.Reservation, error) {
	entity, err := c.factory.NewReservation(draft)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrValidation)
	}

	today := reservation.DateOf(clock.Today(c.clock, c.location))

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Store) error {
		cfg, err := tx.LoadConfig(ctx)
		if err != nil {
			return err
		}
		if err := cfg.CheckBooking(entity.Date, entity.Time, today); err != nil {
			return errs.Mark(err, shared.ErrValidation)
		}

		existing, err := tx.Reservations(ctx)
		if err != nil {
			return err
		}

		snap := availability.Snapshot{Reservations: existing, Config: cfg}
		result := snap.Check(entity.Date, entity.Time, entity.Guests)
		if !result.Available {
			return &SlotUnavailableError{Result: result}
		}
		if result.SuggestedTable != nil {
			entity.AssignTable(result.SuggestedTable.ID, result.SuggestedTable.Name)
		}

		return tx.Insert(ctx, *entity)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "reservation created",
		"reservation_id", entity.ID,
		"date", entity.Date.String(),
		"time", entity.Time,
		"guests", entity.Guests,
		"table_id", entity.TableID)

	c.notify(ctx, shared.KindCustomerConfirmation, *entity)
	c.notify(ctx, shared.KindRestaurantNotification, *entity)

	return entity, nil
}

func (c *reservationCommandsImpl) Confirm(ctx context.Context, id string) (*reservation.Reservation, error) {
	updated, err := c.mutate(ctx, id, func(r *reservation.Reservation) error {
		r.Confirm(c.clock.Now().UTC())
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.notify(ctx, shared.KindReservationConfirmed, *updated)
	return updated, nil
}

func (c *reservationCommandsImpl) Cancel(ctx context.Context, id, reason string) (*reservation.Reservation, error) {
	updated, err := c.mutate(ctx, id, func(r *reservation.Reservation) error {
		if err := r.Cancel(c.clock.Now().UTC(), reason); err != nil {
			return errs.Mark(err, shared.ErrValidation)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.notify(ctx, shared.KindReservationCancelled, *updated)
	return updated, nil
}

func (c *reservationCommandsImpl) Delete(ctx context.Context, id string) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Store) error {
		return tx.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "reservation deleted", "reservation_id", id)
	return nil
}

func (c *reservationCommandsImpl) mutate(
	ctx context.Context,
	id string,
	apply func(*reservation.Reservation) error,
) (*reservation.Reservation, error) {
	var updated *reservation.Reservation
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Store) error {
		current, err := tx.Reservation(ctx, id)
		if err != nil {
			return err
		}
		if err := apply(current); err != nil {
			return err
		}
		if err := tx.Update(ctx, *current); err != nil {
			return err
		}
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "reservation status changed",
		"reservation_id", updated.ID,
		"status", updated.Status.String())
	return updated, nil
}

// Delivery failures never undo a committed change.
func (c *reservationCommandsImpl) notify(ctx context.Context, kind shared.NotificationKind, r reservation.Reservation) {
	if err := c.notifier.Notify(ctx, shared.Notification{Kind: kind, Reservation: r}); err != nil {
		slog.WarnContext(ctx, "notification failed",
			"kind", string(kind),
			"reservation_id", r.ID,
			"error", err)
	}
}
