package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"slices"

	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/domain/restaurant"
	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/usecase/shared"
)

type reservationsDocument struct {
	Reservations []reservation.Reservation `json:"reservations"`
}

// Store implements shared.Store by reading and rewriting whole documents.
type Store struct {
	backend  Backend
	logger   *slog.Logger
	readOnly bool
}

func NewStore(backend Backend, logger *slog.Logger) *Store {
	return &Store{
		backend: backend,
		logger:  logger.With("backend", backend.Name()),
	}
}

// NewReadStore never writes: a missing configuration reads as the defaults without storing them.
func NewReadStore(backend Backend, logger *slog.Logger) *Store {
	s := NewStore(backend, logger)
	s.readOnly = true
	return s
}

var _ shared.Store = (*Store)(nil)

func (s *Store) Reservations(ctx context.Context) ([]reservation.Reservation, error) {
	doc, err := s.readReservations(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Reservations, nil
}

func (s *Store) Reservation(ctx context.Context, id string) (*reservation.Reservation, error) {
	doc, err := s.readReservations(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(doc.Reservations, id)
	if i < 0 {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "reservation "+id, nil)
	}
	r := doc.Reservations[i]
	return &r, nil
}

func (s *Store) Insert(ctx context.Context, r reservation.Reservation) error {
	doc, err := s.readReservations(ctx)
	if err != nil {
		return err
	}
	if indexOf(doc.Reservations, r.ID) >= 0 {
		return infra.WrapRepoErr(s.logger, infra.KindDuplicateKey, "reservation "+r.ID, nil)
	}
	doc.Reservations = append(doc.Reservations, r)
	return s.write(ctx, DocReservations, doc)
}

func (s *Store) Update(ctx context.Context, r reservation.Reservation) error {
	doc, err := s.readReservations(ctx)
	if err != nil {
		return err
	}
	i := indexOf(doc.Reservations, r.ID)
	if i < 0 {
		return infra.WrapRepoErr(s.logger, infra.KindNotFound, "reservation "+r.ID, nil)
	}
	doc.Reservations[i] = r
	return s.write(ctx, DocReservations, doc)
}

func (s *Store) Delete(ctx context.Context, id string) error {
	doc, err := s.readReservations(ctx)
	if err != nil {
		return err
	}
	i := indexOf(doc.Reservations, id)
	if i < 0 {
		return infra.WrapRepoErr(s.logger, infra.KindNotFound, "reservation "+id, nil)
	}
	doc.Reservations = slices.Delete(doc.Reservations, i, i+1)
	return s.write(ctx, DocReservations, doc)
}

func (s *Store) LoadConfig(ctx context.Context) (restaurant.Config, error) {
	data, err := s.backend.Read(ctx, DocConfig)
	if errors.Is(err, ErrDocumentMissing) {
		cfg := restaurant.DefaultConfig()
		if s.readOnly {
			return cfg, nil
		}
		if err := s.write(ctx, DocConfig, cfg); err != nil {
			return restaurant.Config{}, err
		}
		s.logger.InfoContext(ctx, "default restaurant configuration stored")
		return cfg, nil
	}
	if err != nil {
		return restaurant.Config{}, infra.WrapRepoErr(s.logger, infra.KindBackendFailure, "read config", err)
	}

	var cfg restaurant.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return restaurant.Config{}, infra.WrapRepoErr(s.logger, infra.KindCorruptData, "decode config", err)
	}
	return cfg, nil
}

func (s *Store) SaveConfig(ctx context.Context, cfg restaurant.Config) error {
	return s.write(ctx, DocConfig, cfg)
}

// A missing reservations document reads as an empty list.
func (s *Store) readReservations(ctx context.Context) (reservationsDocument, error) {
	data, err := s.backend.Read(ctx, DocReservations)
	if errors.Is(err, ErrDocumentMissing) {
		return reservationsDocument{Reservations: []reservation.Reservation{}}, nil
	}
	if err != nil {
		return reservationsDocument{}, infra.WrapRepoErr(s.logger, infra.KindBackendFailure, "read reservations", err)
	}

	var doc reservationsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return reservationsDocument{}, infra.WrapRepoErr(s.logger, infra.KindCorruptData, "decode reservations", err)
	}
	if doc.Reservations == nil {
		doc.Reservations = []reservation.Reservation{}
	}
	return doc, nil
}

func (s *Store) write(ctx context.Context, name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindCorruptData, "encode "+name, err)
	}
	if err := s.backend.Write(ctx, name, data); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindBackendFailure, "write "+name, err)
	}
	return nil
}

func indexOf(rs []reservation.Reservation, id string) int {
	return slices.IndexFunc(rs, func(r reservation.Reservation) bool { return r.ID == id })
}
