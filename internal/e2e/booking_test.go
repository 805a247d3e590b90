//go:build e2e

package e2e

import (
	"fmt"
	"net/http"
	"testing"

	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/domain/stats"
	"restaurant-booking/internal/handler/api"
	resdto "restaurant-booking/internal/handler/dto/response"
	"restaurant-booking/internal/pkg/cookie"
	"restaurant-booking/internal/testutil/builder"
	"restaurant-booking/internal/testutil/httptest"
	"restaurant-booking/internal/usecase/shared"

	"github.com/stretchr/testify/suite"
)

type BookingE2ESuite struct {
	SharedSuite
}

func TestBookingE2E(t *testing.T) {
	suite.Run(t, new(BookingE2ESuite))
}

func (s *BookingE2ESuite) book(guests int, slot string) *resdto.CreatedReservationResponse {
	req := builder.NewReservationBuilder().WithSlot("2025-06-14", slot).WithGuests(guests).BuildRequest()
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations", req)

	var body resdto.CreatedReservationResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
	return &body
}

func (s *BookingE2ESuite) TestBookingLifecycle() {
	created := s.book(2, "19:30")
	s.Equal(reservation.StatusPending, created.Status)
	s.Equal([]shared.NotificationKind{shared.KindCustomerConfirmation, shared.KindRestaurantNotification}, s.Notifier.Kinds())

	s.Run("public status view", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/reservations/"+created.ID, nil)
		var body resdto.ReservationStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(reservation.StatusPending, body.Status)
	})

	s.Run("admin routes require credentials", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/admin/reservations", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Non autorisé")
	})

	var session *http.Cookie
	s.Run("login sets the session cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/admin/login",
			map[string]string{"apiKey": AdminKey})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		session = httptest.ExtractCookie(rec, cookie.AdminSessionCookieName)
		s.Require().NotNil(session)
	})

	s.Run("session lists the day", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/admin/reservations?date=2025-06-14", nil,
			httptest.WithCookies(session))
		var body resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Reservations, 1)
		s.Equal(created.ID, body.Reservations[0].ID)
		s.NotNil(body.Reservations[0].TableID)
	})

	s.Run("api key confirms", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			fmt.Sprintf("/api/admin/reservations/%s/confirm", created.ID), nil, httptest.WithAPIKey(AdminKey))
		var body resdto.ReservationActionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(reservation.StatusConfirmed, body.Reservation.Status)
		s.Contains(s.Notifier.Kinds(), shared.KindReservationConfirmed)
	})

	s.Run("stats reflect the booking", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/admin/stats", nil, httptest.WithAPIKey(AdminKey))
		var body stats.Stats
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(1, body.Total)
		s.Equal(1, body.Confirmed)
		s.Equal(2, body.TotalGuests)
	})

	s.Run("cancel frees the seat", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			fmt.Sprintf("/api/admin/reservations/%s/cancel", created.ID),
			map[string]string{"reason": "Fermeture exceptionnelle"}, httptest.WithAPIKey(AdminKey))
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/availability?date=2025-06-14", nil)
		var day resdto.DayAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &day)
		for _, slot := range day.Slots {
			if slot.Time == "19:30" {
				s.Equal(0, slot.ReservationCount)
			}
		}
	})
}

func (s *BookingE2ESuite) TestFullSlotOffersAlternatives() {
	s.ResetStore(builder.NewConfigBuilder().WithCapacities(4).Build())
	s.book(4, "19:30")

	req := builder.NewReservationBuilder().WithSlot("2025-06-14", "19:30").WithGuests(2).BuildRequest()
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations", req)

	resp := httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	detail := resp.Detail.(map[string]any)
	s.Equal([]any{"12:00", "12:30", "13:00"}, detail["suggestedTimes"])
}

func (s *BookingE2ESuite) TestCalendarRules() {
	cases := []struct {
		name string
		date string
		time string
		msg  string
	}{
		{name: "past", date: "2025-05-30", time: "19:30", msg: "passé"},
		{name: "closed day", date: "2025-06-11", time: "19:30", msg: "fermé"},
		{name: "sunday dinner", date: "2025-06-15", time: "19:30", msg: "dimanche soir"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			req := builder.NewReservationBuilder().WithSlot(tc.date, tc.time).BuildRequest()
			rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations", req)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.msg)
		})
	}
}

func (s *BookingE2ESuite) TestSettingsDriveAvailability() {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, "/api/admin/settings",
		map[string]any{"closedDays": []int{6}}, httptest.WithAPIKey(AdminKey))
	var updated api.SettingsResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &updated)
	s.Equal([]int{6}, updated.Settings.ClosedDays)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/availability?date=2025-06-14", nil)
	var day resdto.DayAvailabilityResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &day)
	s.True(day.Closed)
	s.Equal(resdto.MessageClosedDay, day.Message)

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/availability/config", nil)
	var public map[string]any
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &public)
	s.Equal([]any{float64(6)}, public["closedDays"])
}

func (s *BookingE2ESuite) TestUnknownRoute() {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/nothing", nil)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Endpoint non trouvé")
}
