//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/domain/restaurant"
	"restaurant-booking/internal/infra/docstore"
	"restaurant-booking/internal/pkg/clock"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/testutil/builder"
	sharedmock "restaurant-booking/internal/testutil/mock/shared"
	"restaurant-booking/internal/usecase/commands"
	"restaurant-booking/internal/usecase/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type ReservationCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	notifier *sharedmock.MockNotifier
	clock    *clock.MockClock
	uow      *docstore.UnitOfWork
	commands commands.ReservationCommands
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.notifier = sharedmock.NewMockNotifier(s.mockCtrl)
	// Sunday 1 June 2025, noon in Paris.
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	s.uow = docstore.NewUnitOfWork(docstore.NewMemoryBackend(), discard)

	paris, err := time.LoadLocation("Europe/Paris")
	s.Require().NoError(err)
	s.commands = commands.NewReservationCommands(s.uow, reservation.NewFactory(s.clock), s.notifier, s.clock, paris)

	s.seedConfig(builder.NewConfigBuilder().WithCapacities(2, 4).Build())
}

func (s *ReservationCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func (s *ReservationCommandsTestSuite) seedConfig(cfg restaurant.Config) {
	err := s.uow.Within(s.ctx, func(ctx context.Context, tx shared.Store) error {
		return tx.SaveConfig(ctx, cfg)
	})
	s.Require().NoError(err)
}

func (s *ReservationCommandsTestSuite) expectNotifications(kinds ...shared.NotificationKind) {
	for _, kind := range kinds {
		s.notifier.EXPECT().
			Notify(gomock.Any(), gomock.Cond(func(n shared.Notification) bool { return n.Kind == kind })).
			Return(nil).Times(1)
	}
}

func (s *ReservationCommandsTestSuite) draft() *builder.ReservationBuilder {
	return builder.NewReservationBuilder().WithSlot("2025-06-14", "19:30")
}

func (s *ReservationCommandsTestSuite) TestCreate() {
	s.Run("assigns the smallest fitting table and notifies both sides", func() {
		s.expectNotifications(shared.KindCustomerConfirmation, shared.KindRestaurantNotification)

		created, err := s.commands.Create(s.ctx, s.draft().WithGuests(2).WithPhone("06 12 34 56 78").BuildDraft())

		s.Require().NoError(err)
		s.Equal(reservation.StatusPending, created.Status)
		s.Require().NotNil(created.TableID)
		s.Equal(1, *created.TableID)
		s.Equal("0612345678", created.Phone)
		s.Equal(s.clock.Now().UTC(), created.CreatedAt)

		stored, err := s.uow.Reads().Reservation(s.ctx, created.ID)
		s.Require().NoError(err)
		s.Equal(created.TableID, stored.TableID)
	})

	s.Run("second party takes the remaining table", func() {
		s.expectNotifications(shared.KindCustomerConfirmation, shared.KindRestaurantNotification)

		created, err := s.commands.Create(s.ctx, s.draft().WithGuests(2).BuildDraft())

		s.Require().NoError(err)
		s.Equal(2, *created.TableID)
	})

	s.Run("full slot returns alternatives and stores nothing", func() {
		before, err := s.uow.Reads().Reservations(s.ctx)
		s.Require().NoError(err)

		_, err = s.commands.Create(s.ctx, s.draft().WithGuests(2).BuildDraft())

		var slotErr *commands.SlotUnavailableError
		s.Require().ErrorAs(err, &slotErr)
		s.True(errs.Is(err, commands.ErrSlotUnavailable))
		s.NotContains(slotErr.Result.SuggestedTimes, "19:30")
		s.Len(slotErr.Result.SuggestedTimes, 3)

		after, err := s.uow.Reads().Reservations(s.ctx)
		s.Require().NoError(err)
		s.Len(after, len(before))
	})
}

func (s *ReservationCommandsTestSuite) TestCreateRejectsCalendarRules() {
	cases := []struct {
		name string
		date string
		time string
		want error
	}{
		{name: "past date", date: "2025-05-31", time: "19:30", want: restaurant.ErrDateInPast},
		{name: "beyond three months", date: "2025-09-02", time: "19:30", want: restaurant.ErrDateTooFarAhead},
		{name: "closed wednesday", date: "2025-06-11", time: "19:30", want: restaurant.ErrClosedDay},
		{name: "slot not in catalog", date: "2025-06-14", time: "18:00", want: restaurant.ErrUnknownSlot},
		{name: "sunday dinner", date: "2025-06-15", time: "19:30", want: restaurant.ErrSundayDinnerClosed},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.commands.Create(s.ctx, s.draft().WithSlot(tc.date, tc.time).BuildDraft())

			s.True(errs.Is(err, shared.ErrValidation))
			s.ErrorIs(err, tc.want)
		})
	}

	s.Run("today is bookable", func() {
		s.expectNotifications(shared.KindCustomerConfirmation, shared.KindRestaurantNotification)
		_, err := s.commands.Create(s.ctx, s.draft().WithSlot("2025-06-01", "12:00").BuildDraft())
		s.NoError(err)
	})
}

func (s *ReservationCommandsTestSuite) TestCreateReportsEveryInvalidField() {
	_, err := s.commands.Create(s.ctx, s.draft().WithEmail("nope").WithGuests(12).BuildDraft())

	s.True(errs.Is(err, shared.ErrValidation))
	s.ErrorIs(err, reservation.ErrInvalidEmail)
	s.ErrorIs(err, reservation.ErrInvalidGuests)
}

func (s *ReservationCommandsTestSuite) TestCreateSurvivesNotifierFailure() {
	s.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("smtp down")).Times(2)

	created, err := s.commands.Create(s.ctx, s.draft().BuildDraft())

	s.Require().NoError(err)
	_, err = s.uow.Reads().Reservation(s.ctx, created.ID)
	s.NoError(err)
}

func (s *ReservationCommandsTestSuite) TestConcurrentBookingsNeverOverbook() {
	s.seedConfig(builder.NewConfigBuilder().WithCapacities(4).Build())
	s.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	const clients = 10
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
	)
	for i := 0; i < clients; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.commands.Create(s.ctx, s.draft().WithGuests(2).BuildDraft())
			if err == nil {
				mu.Lock()
				success++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	s.Equal(1, success)
}

func (s *ReservationCommandsTestSuite) TestConfirm() {
	s.expectNotifications(shared.KindCustomerConfirmation, shared.KindRestaurantNotification)
	created, err := s.commands.Create(s.ctx, s.draft().BuildDraft())
	s.Require().NoError(err)

	s.Run("sets status and timestamp", func() {
		s.clock.Add(time.Hour)
		s.expectNotifications(shared.KindReservationConfirmed)

		confirmed, err := s.commands.Confirm(s.ctx, created.ID)

		s.Require().NoError(err)
		s.Equal(reservation.StatusConfirmed, confirmed.Status)
		s.Require().NotNil(confirmed.ConfirmedAt)
		s.Equal(s.clock.Now().UTC(), *confirmed.ConfirmedAt)
		s.Equal(created.TableID, confirmed.TableID)
	})

	s.Run("unknown id", func() {
		_, err := s.commands.Confirm(s.ctx, "missing")
		s.True(errs.Is(err, shared.ErrNotFound))
	})
}

func (s *ReservationCommandsTestSuite) TestCancel() {
	s.seedConfig(builder.NewConfigBuilder().WithCapacities(2).Build())
	s.expectNotifications(shared.KindCustomerConfirmation, shared.KindRestaurantNotification)
	created, err := s.commands.Create(s.ctx, s.draft().BuildDraft())
	s.Require().NoError(err)

	s.Run("rejects an overlong reason and keeps the booking", func() {
		_, err := s.commands.Cancel(s.ctx, created.ID, strings.Repeat("x", 501))
		s.True(errs.Is(err, shared.ErrValidation))

		stored, err := s.uow.Reads().Reservation(s.ctx, created.ID)
		s.Require().NoError(err)
		s.Equal(reservation.StatusPending, stored.Status)
	})

	s.Run("frees the table", func() {
		s.expectNotifications(shared.KindReservationCancelled)

		cancelled, err := s.commands.Cancel(s.ctx, created.ID, "Client malade")

		s.Require().NoError(err)
		s.Equal(reservation.StatusCancelled, cancelled.Status)
		s.Equal("Client malade", cancelled.CancellationReason)
		s.NotNil(cancelled.CancelledAt)

		s.expectNotifications(shared.KindCustomerConfirmation, shared.KindRestaurantNotification)
		again, err := s.commands.Create(s.ctx, s.draft().BuildDraft())
		s.Require().NoError(err)
		s.Equal(1, *again.TableID)
	})
}

func (s *ReservationCommandsTestSuite) TestDelete() {
	s.expectNotifications(shared.KindCustomerConfirmation, shared.KindRestaurantNotification)
	created, err := s.commands.Create(s.ctx, s.draft().BuildDraft())
	s.Require().NoError(err)

	s.Require().NoError(s.commands.Delete(s.ctx, created.ID))

	_, err = s.uow.Reads().Reservation(s.ctx, created.ID)
	s.True(errs.Is(err, shared.ErrNotFound))
	s.True(errs.Is(s.commands.Delete(s.ctx, created.ID), shared.ErrNotFound))
}
