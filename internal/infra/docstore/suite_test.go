//go:build unit || e2e

package docstore_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/domain/restaurant"
	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/infra/docstore"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/pkg/ptr"
	"restaurant-booking/internal/testutil/builder"
	"restaurant-booking/internal/usecase/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// storeSuite runs the same contract against every backend.
type storeSuite struct {
	suite.Suite
	newBackend func(t *testing.T) docstore.Backend
	backend    docstore.Backend
	store      *docstore.Store
	ctx        context.Context
}

func (s *storeSuite) SetupTest() {
	s.ctx = context.Background()
	s.backend = s.newBackend(s.T())
	s.store = docstore.NewStore(s.backend, discard)
}

func (s *storeSuite) TestEmptyStore() {
	rs, err := s.store.Reservations(s.ctx)
	s.Require().NoError(err)
	s.NotNil(rs)
	s.Empty(rs)

	_, err = s.store.Reservation(s.ctx, "missing")
	s.True(errs.Is(err, shared.ErrNotFound))
	s.True(infra.IsKind(err, infra.KindNotFound))
}

func (s *storeSuite) TestInsertKeepsOrder() {
	a := builder.NewReservationBuilder().WithSlot("2025-06-20", "12:00").Build()
	b := builder.NewReservationBuilder().WithSlot("2025-06-14", "19:00").WithTable(4, "Table 4").Build()

	s.Require().NoError(s.store.Insert(s.ctx, a))
	s.Require().NoError(s.store.Insert(s.ctx, b))

	rs, err := s.store.Reservations(s.ctx)
	s.Require().NoError(err)
	if diff := cmp.Diff([]reservation.Reservation{a, b}, rs); diff != "" {
		s.T().Errorf("reservations mismatch (-want +got):\n%s", diff)
	}

	err = s.store.Insert(s.ctx, a)
	s.True(infra.IsKind(err, infra.KindDuplicateKey))
	s.True(errs.Is(err, shared.ErrStorage))
}

func (s *storeSuite) TestUpdateAndDelete() {
	r := builder.NewReservationBuilder().Build()
	s.Require().NoError(s.store.Insert(s.ctx, r))

	r.Confirm(r.CreatedAt)
	s.Require().NoError(s.store.Update(s.ctx, r))

	got, err := s.store.Reservation(s.ctx, r.ID)
	s.Require().NoError(err)
	s.Equal(reservation.StatusConfirmed, got.Status)
	s.NotNil(got.ConfirmedAt)

	s.Require().NoError(s.store.Delete(s.ctx, r.ID))
	_, err = s.store.Reservation(s.ctx, r.ID)
	s.True(errs.Is(err, shared.ErrNotFound))

	s.True(errs.Is(s.store.Delete(s.ctx, r.ID), shared.ErrNotFound))
	s.True(errs.Is(s.store.Update(s.ctx, r), shared.ErrNotFound))
}

func (s *storeSuite) TestConfigDefaultsArePersisted() {
	_, err := s.backend.Read(s.ctx, docstore.DocConfig)
	s.ErrorIs(err, docstore.ErrDocumentMissing)

	first, err := s.store.LoadConfig(s.ctx)
	s.Require().NoError(err)
	s.Equal(restaurant.DefaultConfig(), first)

	_, err = s.backend.Read(s.ctx, docstore.DocConfig)
	s.NoError(err)

	second, err := s.store.LoadConfig(s.ctx)
	s.Require().NoError(err)
	if diff := cmp.Diff(first, second); diff != "" {
		s.T().Errorf("config changed between reads (-want +got):\n%s", diff)
	}
}

func (s *storeSuite) TestSaveConfig() {
	cfg := restaurant.DefaultConfig().Apply(restaurant.Patch{SundayDinnerClosed: ptr.To(false)})

	s.Require().NoError(s.store.SaveConfig(s.ctx, cfg))

	got, err := s.store.LoadConfig(s.ctx)
	s.Require().NoError(err)
	s.False(got.EffectiveSundayDinnerClosed())
}

func (s *storeSuite) TestCorruptDocument() {
	s.Require().NoError(s.backend.Write(s.ctx, docstore.DocReservations, []byte("{not json")))

	_, err := s.store.Reservations(s.ctx)

	s.True(infra.IsKind(err, infra.KindCorruptData))
	s.True(errs.Is(err, shared.ErrStorage))
}
