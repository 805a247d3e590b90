//go:build unit

package commands_test

import (
	"context"
	"testing"

	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/domain/restaurant"
	"restaurant-booking/internal/infra/docstore"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/pkg/ptr"
	"restaurant-booking/internal/usecase/commands"
	"restaurant-booking/internal/usecase/queries"
	"restaurant-booking/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("merges one level deep and persists", func(t *testing.T) {
		uow := docstore.NewUnitOfWork(docstore.NewMemoryBackend(), discard)
		cmd := commands.NewSettingsCommands(uow)

		got, err := cmd.Update(ctx, restaurant.Patch{
			ClosedDays:         &[]int{1},
			SundayDinnerClosed: ptr.To(false),
		})
		require.NoError(t, err)

		assert.Equal(t, []int{1}, got.ClosedDays)
		assert.False(t, got.EffectiveSundayDinnerClosed())
		assert.Len(t, got.Tables, 20, "untouched fields keep their value")

		stored, err := uow.Reads().LoadConfig(ctx)
		require.NoError(t, err)
		assert.Equal(t, got, stored)
	})

	t.Run("empty closed days keep every day open after reload", func(t *testing.T) {
		uow := docstore.NewUnitOfWork(docstore.NewMemoryBackend(), discard)

		got, err := commands.NewSettingsCommands(uow).Update(ctx, restaurant.Patch{ClosedDays: &[]int{}})
		require.NoError(t, err)
		assert.Equal(t, []int{}, got.ClosedDays)

		public, err := queries.NewSettingsQueries(uow).Public(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int{}, public.ClosedDays)

		stored, err := uow.Reads().LoadConfig(ctx)
		require.NoError(t, err)
		assert.False(t, stored.IsClosedOn(reservation.MustParseDate("2025-06-11")), "wednesday")
		assert.False(t, stored.IsClosedOn(reservation.MustParseDate("2025-06-12")), "thursday")
	})

	t.Run("invalid result leaves the stored config alone", func(t *testing.T) {
		uow := docstore.NewUnitOfWork(docstore.NewMemoryBackend(), discard)
		cmd := commands.NewSettingsCommands(uow)

		_, err := cmd.Update(ctx, restaurant.Patch{Tables: &[]restaurant.Table{
			{ID: 1, Capacity: 2, Name: "Table 1"},
			{ID: 1, Capacity: 4, Name: "Table 1 bis"},
		}})

		assert.True(t, errs.Is(err, shared.ErrValidation))
		assert.ErrorIs(t, err, restaurant.ErrInvalidConfig)
		stored, err := uow.Reads().LoadConfig(ctx)
		require.NoError(t, err)
		assert.Len(t, stored.Tables, 20)
	})
}
