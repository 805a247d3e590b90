//go:build unit

package scheduler_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/domain/stats"
	"restaurant-booking/internal/infra/scheduler"
	"restaurant-booking/internal/testutil/builder"
	queriesmock "restaurant-booking/internal/testutil/mock/queries"
	sharedmock "restaurant-booking/internal/testutil/mock/shared"
	"restaurant-booking/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func TestDigestJob(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)
	// 23:30 UTC on the 13th is already the 14th in Paris.
	now := time.Date(2025, 6, 13, 23, 30, 0, 0, time.UTC)
	today := reservation.MustParseDate("2025-06-14")

	lunch := builder.NewReservationBuilder().WithSlot("2025-06-14", "12:00").WithGuests(4).Build()
	dinner := builder.NewReservationBuilder().WithSlot("2025-06-14", "20:00").Build()
	board := stats.Dashboard{
		Date:   today,
		Lunch:  stats.ServiceSummary{Reservations: []reservation.Reservation{lunch}, TotalGuests: 4, CapacityUsage: 25},
		Dinner: stats.ServiceSummary{Reservations: []reservation.Reservation{dinner}, TotalGuests: 2, CapacityUsage: 13},
	}

	t.Run("sends the day's summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dashboard := queriesmock.NewMockDashboardQueries(ctrl)
		notifier := sharedmock.NewMockNotifier(ctrl)

		dashboard.EXPECT().Dashboard(gomock.Any(), today).Return(board, nil).Times(1)

		var got shared.Notification
		notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n shared.Notification) error {
				got = n
				return nil
			}).Times(1)

		job := scheduler.NewDigestJob(dashboard, notifier, fixedClock{now}, paris)
		require.NoError(t, job.Run(context.Background()))

		assert.Equal(t, shared.KindDailyDigest, got.Kind)
		require.NotNil(t, got.Digest)
		assert.True(t, got.Digest.Date.Equal(today))
		assert.Equal(t, 1, got.Digest.LunchCount)
		assert.Equal(t, 4, got.Digest.LunchGuests)
		assert.Equal(t, 25, got.Digest.LunchUsage)
		assert.Equal(t, 1, got.Digest.DinnerCount)
		assert.Equal(t, 13, got.Digest.DinnerUsage)
		assert.Equal(t, []string{"12:00", "20:00"}, []string{got.Digest.Reservations[0].Time, got.Digest.Reservations[1].Time})
	})

	t.Run("dashboard failure skips delivery", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dashboard := queriesmock.NewMockDashboardQueries(ctrl)
		notifier := sharedmock.NewMockNotifier(ctrl)
		boom := errors.New("storage down")

		dashboard.EXPECT().Dashboard(gomock.Any(), today).Return(stats.Dashboard{}, boom).Times(1)
		notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(0)

		err := scheduler.NewDigestJob(dashboard, notifier, fixedClock{now}, paris).Run(context.Background())

		assert.ErrorIs(t, err, boom)
	})
}

type jobFunc func(ctx context.Context) error

func (f jobFunc) Run(ctx context.Context) error { return f(ctx) }

func TestScheduler(t *testing.T) {
	t.Run("invalid schedule is rejected", func(t *testing.T) {
		s := scheduler.New(time.UTC)

		err := s.Register("digest", "not a cron", jobFunc(func(context.Context) error { return nil }))

		assert.Error(t, err)
		assert.Zero(t, s.Entries())
	})

	t.Run("registered job runs on schedule", func(t *testing.T) {
		s := scheduler.New(time.UTC)
		ran := make(chan struct{}, 1)

		require.NoError(t, s.Register("tick", "@every 1s", jobFunc(func(context.Context) error {
			select {
			case ran <- struct{}{}:
			default:
			}
			return nil
		})))
		assert.Equal(t, 1, s.Entries())

		s.Start()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			require.NoError(t, s.Stop(ctx))
		}()

		select {
		case <-ran:
		case <-time.After(3 * time.Second):
			t.Fatal("job did not run")
		}
	})
}
