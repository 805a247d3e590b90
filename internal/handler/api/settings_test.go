//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"restaurant-booking/internal/domain/restaurant"
	"restaurant-booking/internal/handler/api"
	"restaurant-booking/internal/handler/binding"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/pkg/ptr"
	"restaurant-booking/internal/testutil/httptest"
	commandsmock "restaurant-booking/internal/testutil/mock/commands"
	queriesmock "restaurant-booking/internal/testutil/mock/queries"
	"restaurant-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SettingsHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSettingsCommands
	mockQueries  *queriesmock.MockSettingsQueries
}

func (s *SettingsHandlerTestSuite) SetupTest() {
	s.Require().NoError(binding.Register())
	s.router = httptest.NewTestEngine()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSettingsCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSettingsQueries(s.mockCtrl)
	handler := api.NewSettingsHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/settings", handler.Get)
	s.router.PUT("/settings", handler.Update)
}

func (s *SettingsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSettingsHandlerSuite(t *testing.T) {
	suite.Run(t, new(SettingsHandlerTestSuite))
}

func (s *SettingsHandlerTestSuite) TestGet() {
	s.mockQueries.EXPECT().Get(gomock.Any()).Return(restaurant.DefaultConfig(), nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/settings", nil)

	var body restaurant.Config
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Len(body.Tables, 20)
	s.Equal(restaurant.DefaultServiceDuration, body.ServiceDuration)
}

func (s *SettingsHandlerTestSuite) TestUpdate() {
	s.Run("success: only present fields reach the patch", func() {
		updated := restaurant.DefaultConfig()
		updated.ClosedDays = []int{1}
		s.mockCommands.EXPECT().
			Update(gomock.Any(), restaurant.Patch{ClosedDays: &[]int{1}, SundayDinnerClosed: ptr.To(false)}).
			Return(updated, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/settings",
			map[string]any{"closedDays": []int{1}, "sundayDinnerClosed": false})

		var body api.SettingsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Paramètres mis à jour", body.Message)
		s.Equal([]int{1}, body.Settings.ClosedDays)
	})

	s.Run("success: tables are converted", func() {
		tables := []restaurant.Table{{ID: 1, Capacity: 4, Name: "Terrasse"}}
		s.mockCommands.EXPECT().
			Update(gomock.Any(), restaurant.Patch{Tables: &tables}).
			Return(restaurant.DefaultConfig(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/settings",
			map[string]any{"tables": []map[string]any{{"id": 1, "capacity": 4, "name": "Terrasse"}}})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	invalid := []struct {
		name string
		body map[string]any
		msg  string
	}{
		{name: "closed day out of range", body: map[string]any{"closedDays": []int{7}}, msg: "Jours de fermeture"},
		{name: "table without capacity", body: map[string]any{"tables": []map[string]any{{"id": 1, "name": "T1"}}}, msg: "Tables invalides"},
		{name: "empty table list", body: map[string]any{"tables": []any{}}, msg: "Tables invalides"},
		{name: "malformed slot", body: map[string]any{"timeSlots": map[string]any{"lunch": []string{"midi"}}}, msg: "Créneaux invalides"},
		{name: "negative service duration", body: map[string]any{"serviceDuration": -1}, msg: "Durée de service"},
	}
	for _, tc := range invalid {
		s.Run("error: 400 "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/settings", tc.body)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.msg)
		})
	}

	s.Run("error: 400 when the merged config is rejected", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any()).
			Return(restaurant.Config{}, errs.Mark(restaurant.ErrInvalidConfig, shared.ErrValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/settings",
			map[string]any{"bufferTime": 10})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Configuration invalide")
	})
}
