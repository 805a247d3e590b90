package commands

import (
	"context"
	"log/slog"

	"restaurant-booking/internal/domain/restaurant"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/usecase/shared"
)

//go:generate mockgen -source=settings.go -destination=../../testutil/mock/commands/mock_settings.go -package=commandsmock

type SettingsCommands interface {
	Update(ctx context.Context, patch restaurant.Patch) (restaurant.Config, error)
}

type settingsCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewSettingsCommands(uow shared.UnitOfWork) SettingsCommands {
	return &settingsCommandsImpl{uow: uow}
}

// Update merges the patch one level deep and stores the result.
func (c *settingsCommandsImpl) Update(ctx context.Context, patch restaurant.Patch) (restaurant.Config, error) {
	var merged restaurant.Config
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Store) error {
		current, err := tx.LoadConfig(ctx)
		if err != nil {
			return err
		}

		merged = current.Apply(patch)
		if err := merged.Validate(); err != nil {
			return errs.Mark(err, shared.ErrValidation)
		}
		return tx.SaveConfig(ctx, merged)
	})
	if err != nil {
		return restaurant.Config{}, err
	}

	slog.InfoContext(ctx, "restaurant settings updated",
		"tables", len(merged.Tables),
		"total_capacity", merged.TotalCapacity())
	return merged, nil
}
