//go:build e2e

// Package e2e drives the assembled application over HTTP against a real document backend.
package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"restaurant-booking/cmd/bootstrap"
	"restaurant-booking/cmd/bootstrap/components"
	"restaurant-booking/internal/domain/restaurant"
	"restaurant-booking/internal/pkg/clock"
	"restaurant-booking/internal/pkg/config"
	"restaurant-booking/internal/testutil/containers"
	"restaurant-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// Now is Sunday 1 June 2025, noon in Paris.
var Now = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

const AdminKey = "e2e-admin-key"

// RecordingNotifier keeps every notification instead of delivering it.
type RecordingNotifier struct {
	mu   sync.Mutex
	sent []shared.Notification
}

func (r *RecordingNotifier) Notify(_ context.Context, n shared.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
	return nil
}

func (r *RecordingNotifier) Kinds() []shared.NotificationKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]shared.NotificationKind, len(r.sent))
	for i, n := range r.sent {
		out[i] = n.Kind
	}
	return out
}

func (r *RecordingNotifier) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = nil
}

func createTestConfig(dbConfig config.DBConfig) config.Config {
	cfg := config.NewTestConfig()
	cfg.Store.Driver = bootstrap.DriverPostgres
	cfg.DB = dbConfig
	cfg.Admin.APIKey = AdminKey
	cfg.RateLimit.Enabled = true
	cfg.RateLimit.GlobalRequests = 10_000
	cfg.RateLimit.GlobalWindow = time.Minute
	cfg.RateLimit.BookingRequests = 10_000
	cfg.RateLimit.BookingWindow = time.Minute
	return cfg
}

// buildE2EApp returns the router and the handles tests need, with fx lifecycle managed by t.
func buildE2EApp(t *testing.T, cfg config.Config, clk *clock.MockClock, notifier *RecordingNotifier) (*gin.Engine, shared.UnitOfWork) {
	t.Helper()

	var (
		router *gin.Engine
		uow    shared.UnitOfWork
	)

	app := fx.New(
		fx.Provide(
			func() config.Config { return cfg },
			bootstrap.NewLocation,
			func() *gin.Engine { return gin.New() },
		),
		bootstrap.LoggerModule,
		bootstrap.DBModule,
		bootstrap.JWTModule,
		bootstrap.NotifierModule,
		components.RepositoryModule,
		components.UseCaseModule,
		components.HandlerModule,
		bootstrap.SchedulerModule,

		fx.Decorate(func(clock.Clock) clock.Clock { return clk }),
		fx.Decorate(func(shared.Notifier) shared.Notifier { return notifier }),

		fx.Populate(&router, &uow),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start fx app")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	return router, uow
}

// ------------------------------------------------------------
// Shared setup for e2e suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router   *gin.Engine
	UoW      shared.UnitOfWork
	Clock    *clock.MockClock
	Notifier *RecordingNotifier
	Config   config.Config
}

func (s *SharedSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	s.Config = createTestConfig(containers.Postgres(s.T()))
	s.Clock = clock.NewMockClock(Now)
	s.Notifier = &RecordingNotifier{}
	s.Router, s.UoW = buildE2EApp(s.T(), s.Config, s.Clock, s.Notifier)
	require.NotNil(s.T(), s.Router, "router setup failed")
}

// SetupTest empties the reservation list and restores the default floor plan.
func (s *SharedSuite) SetupTest() {
	s.Clock.Set(Now)
	s.Notifier.Reset()
	s.ResetStore(restaurant.DefaultConfig())
}

func (s *SharedSuite) ResetStore(cfg restaurant.Config) {
	err := s.UoW.Within(context.Background(), func(ctx context.Context, tx shared.Store) error {
		all, err := tx.Reservations(ctx)
		if err != nil {
			return err
		}
		for _, r := range all {
			if err := tx.Delete(ctx, r.ID); err != nil {
				return fmt.Errorf("delete %s: %w", r.ID, err)
			}
		}
		return tx.SaveConfig(ctx, cfg)
	})
	require.NoError(s.T(), err, "failed to reset store")
}
