//go:build unit

package reservation_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/pkg/clock"
	"restaurant-booking/internal/testutil/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

type testCase struct {
	name   string
	mutate func(*builder.ReservationBuilder)
	errIs  error
}

func TestFactory(t *testing.T) {
	factory := reservation.NewFactory(clock.NewMockClock(now))

	t.Run("valid draft becomes a pending reservation", func(t *testing.T) {
		draft := builder.NewReservationBuilder().
			WithName("  Marie Curie ").
			WithEmail("Marie@Example.COM").
			WithPhone("+33 6 12 34 56 78").
			WithIP("203.0.113.7").
			BuildDraft()

		actual, err := factory.NewReservation(draft)
		require.NoError(t, err)

		expected := &reservation.Reservation{
			Name:      "Marie Curie",
			Email:     "marie@example.com",
			Phone:     "33612345678",
			Date:      reservation.MustParseDate("2025-06-14"),
			Time:      "19:30",
			Guests:    2,
			Status:    reservation.StatusPending,
			CreatedAt: now,
			IP:        "203.0.113.7",
		}
		if diff := cmp.Diff(expected, actual, cmpopts.IgnoreFields(reservation.Reservation{}, "ID")); diff != "" {
			t.Errorf("Reservation mismatch (-want +got):\n%s", diff)
		}
		assert.Len(t, actual.ID, 36)
		assert.Nil(t, actual.TableID)
	})

	t.Run("field validation", func(t *testing.T) {
		runCases(t, factory, []testCase{
			{name: "defaults OK", mutate: func(b *builder.ReservationBuilder) {}},
			{name: "short name", mutate: func(b *builder.ReservationBuilder) { b.WithName("J") }, errIs: reservation.ErrInvalidName},
			{name: "long name", mutate: func(b *builder.ReservationBuilder) { b.WithName(strings.Repeat("a", 101)) }, errIs: reservation.ErrInvalidName},
			{name: "accented name counts runes", mutate: func(b *builder.ReservationBuilder) { b.WithName("Zoé") }},
			{name: "bad email", mutate: func(b *builder.ReservationBuilder) { b.WithEmail("jean@") }, errIs: reservation.ErrInvalidEmail},
			{name: "foreign phone", mutate: func(b *builder.ReservationBuilder) { b.WithPhone("+1 555 123 4567") }, errIs: reservation.ErrInvalidPhone},
			{name: "dotted phone", mutate: func(b *builder.ReservationBuilder) { b.WithPhone("06.12.34.56.78") }},
			{name: "bad date", mutate: func(b *builder.ReservationBuilder) { b.WithSlot("14/06/2025", "19:30") }, errIs: reservation.ErrInvalidDate},
			{name: "bad time", mutate: func(b *builder.ReservationBuilder) { b.WithSlot("2025-06-14", "7pm") }, errIs: reservation.ErrInvalidTime},
			{name: "zero guests", mutate: func(b *builder.ReservationBuilder) { b.WithGuests(0) }, errIs: reservation.ErrInvalidGuests},
			{name: "nine guests", mutate: func(b *builder.ReservationBuilder) { b.WithGuests(9) }, errIs: reservation.ErrInvalidGuests},
			{name: "eight guests", mutate: func(b *builder.ReservationBuilder) { b.WithGuests(8) }},
			{name: "long message", mutate: func(b *builder.ReservationBuilder) { b.WithMessage(strings.Repeat("x", 501)) }, errIs: reservation.ErrMessageTooLong},
		})
	})

	t.Run("every invalid field is reported", func(t *testing.T) {
		draft := builder.NewReservationBuilder().WithName("").WithGuests(12).BuildDraft()

		_, err := factory.NewReservation(draft)

		assert.ErrorIs(t, err, reservation.ErrInvalidName)
		assert.ErrorIs(t, err, reservation.ErrInvalidGuests)
	})
}

func runCases(t *testing.T, factory *reservation.Factory, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := factory.NewReservation(builder.NewReservationBuilder().With(c.mutate).BuildDraft())

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestTransitions(t *testing.T) {
	t.Run("confirm stamps the time", func(t *testing.T) {
		r := builder.NewReservationBuilder().BuildPtr()

		r.Confirm(now)

		assert.Equal(t, reservation.StatusConfirmed, r.Status)
		require.NotNil(t, r.ConfirmedAt)
		assert.Equal(t, now, *r.ConfirmedAt)
		assert.Equal(t, now, *r.UpdatedAt)
	})

	t.Run("cancel keeps the reason", func(t *testing.T) {
		r := builder.NewReservationBuilder().AsConfirmed().BuildPtr()

		require.NoError(t, r.Cancel(now, " client malade "))

		assert.Equal(t, reservation.StatusCancelled, r.Status)
		assert.Equal(t, "client malade", r.CancellationReason)
		assert.False(t, r.IsActive())
	})

	t.Run("cancelled can be confirmed again", func(t *testing.T) {
		r := builder.NewReservationBuilder().AsCancelled().BuildPtr()

		r.Confirm(now)

		assert.True(t, r.IsActive())
	})

	t.Run("reason too long leaves the record untouched", func(t *testing.T) {
		r := builder.NewReservationBuilder().BuildPtr()

		err := r.Cancel(now, strings.Repeat("r", 501))

		assert.ErrorIs(t, err, reservation.ErrReasonTooLong)
		assert.Equal(t, reservation.StatusPending, r.Status)
		assert.Nil(t, r.CancelledAt)
	})
}

func TestCompare(t *testing.T) {
	a := builder.NewReservationBuilder().WithSlot("2025-06-14", "20:00").Build()
	b := builder.NewReservationBuilder().WithSlot("2025-06-14", "12:00").Build()
	c := builder.NewReservationBuilder().WithSlot("2025-06-13", "20:30").Build()

	assert.Positive(t, reservation.Compare(a, b))
	assert.Negative(t, reservation.Compare(c, b))
	assert.Zero(t, reservation.Compare(a, a))
}

func TestDateJSON(t *testing.T) {
	r := builder.NewReservationBuilder().WithTable(3, "Table 3").Build()

	out, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"date":"2025-06-14"`)
	assert.Contains(t, string(out), `"tableId":3`)
	assert.NotContains(t, string(out), `confirmedAt`)

	var back reservation.Reservation
	require.NoError(t, json.Unmarshal(out, &back))
	if diff := cmp.Diff(r, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	t.Run("legacy timestamp dates", func(t *testing.T) {
		var d reservation.Date
		require.NoError(t, json.Unmarshal([]byte(`"2025-06-14T00:00:00.000Z"`), &d))
		assert.Equal(t, "2025-06-14", d.String())
	})

	t.Run("garbage", func(t *testing.T) {
		var d reservation.Date
		assert.ErrorIs(t, json.Unmarshal([]byte(`"tomorrow"`), &d), reservation.ErrInvalidDate)
	})
}

func TestStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "cancelled"} {
		got, err := reservation.NewStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, got.String())
	}
	_, err := reservation.NewStatus("canceled")
	assert.ErrorIs(t, err, reservation.ErrInvalidStatus)
}
