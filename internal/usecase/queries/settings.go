package queries

import (
	"context"

	"restaurant-booking/internal/domain/restaurant"
	"restaurant-booking/internal/usecase/shared"
)

//go:generate mockgen -source=settings.go -destination=../../testutil/mock/queries/mock_settings.go -package=queriesmock

type SettingsQueries interface {
	Get(ctx context.Context) (restaurant.Config, error)
	Public(ctx context.Context) (restaurant.PublicConfig, error)
}

type settingsQueriesImpl struct {
	store shared.Store
}

func NewSettingsQueries(uow shared.UnitOfWork) SettingsQueries {
	return &settingsQueriesImpl{store: uow.Reads()}
}

func (q *settingsQueriesImpl) Get(ctx context.Context) (restaurant.Config, error) {
	return q.store.LoadConfig(ctx)
}

func (q *settingsQueriesImpl) Public(ctx context.Context) (restaurant.PublicConfig, error) {
	cfg, err := q.store.LoadConfig(ctx)
	if err != nil {
		return restaurant.PublicConfig{}, err
	}
	return cfg.Public(), nil
}
