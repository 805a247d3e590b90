package shared

import (
	"context"

	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/domain/restaurant"
	"restaurant-booking/internal/pkg/errs"
)

//go:generate mockgen -source=uow.go -destination=../../testutil/mock/shared/mock_uow.go -package=sharedmock

var (
	ErrNotFound   = errs.New("record not found")
	ErrStorage    = errs.New("storage operation failed")
	ErrValidation = errs.New("validation failed")
)

// Store exposes the two persisted documents: the reservation list and the restaurant configuration.
type Store interface {
	Reservations(ctx context.Context) ([]reservation.Reservation, error)
	Reservation(ctx context.Context, id string) (*reservation.Reservation, error)
	Insert(ctx context.Context, r reservation.Reservation) error
	Update(ctx context.Context, r reservation.Reservation) error
	Delete(ctx context.Context, id string) error
	// LoadConfig persists and returns the default configuration when none is stored yet.
	LoadConfig(ctx context.Context) (restaurant.Config, error)
	SaveConfig(ctx context.Context, cfg restaurant.Config) error
}

type UnitOfWork interface {
	// Within runs fn as the only writer; reads made through tx see every earlier commit.
	Within(ctx context.Context, fn func(ctx context.Context, tx Store) error) error
	// Reads is the lock-free view used by queries.
	Reads() Store
}
