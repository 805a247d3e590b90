package queries

import (
	"context"
	"slices"

	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/usecase/shared"
)

//go:generate mockgen -source=reservation.go -destination=../../testutil/mock/queries/mock_reservation.go -package=queriesmock

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 200
)

// StatusView is what an anonymous caller may learn about a booking.
type StatusView struct {
	ID     string             `json:"id"`
	Name   string             `json:"name"`
	Date   reservation.Date   `json:"date"`
	Time   string             `json:"time"`
	Guests int                `json:"guests"`
	Status reservation.Status `json:"status"`
}

type ListFilter struct {
	Date   *reservation.Date
	Status *reservation.Status
	Page   int
	Limit  int
}

type ReservationPage struct {
	Reservations []reservation.Reservation `json:"reservations"`
	Total        int                       `json:"total"`
	Page         int                       `json:"page"`
	TotalPages   int                       `json:"totalPages"`
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id string) (*reservation.Reservation, error)
	Status(ctx context.Context, id string) (*StatusView, error)
	List(ctx context.Context, filter ListFilter) (*ReservationPage, error)
}

type reservationQueriesImpl struct {
	store shared.Store
}

func NewReservationQueries(uow shared.UnitOfWork) ReservationQueries {
	return &reservationQueriesImpl{store: uow.Reads()}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id string) (*reservation.Reservation, error) {
	return q.store.Reservation(ctx, id)
}

func (q *reservationQueriesImpl) Status(ctx context.Context, id string) (*StatusView, error) {
	r, err := q.store.Reservation(ctx, id)
	if err != nil {
		return nil, err
	}
	return &StatusView{
		ID:     r.ID,
		Name:   r.Name,
		Date:   r.Date,
		Time:   r.Time,
		Guests: r.Guests,
		Status: r.Status,
	}, nil
}

// List filters, orders by date then time and paginates. Pages past the end are empty.
func (q *reservationQueriesImpl) List(ctx context.Context, filter ListFilter) (*ReservationPage, error) {
	all, err := q.store.Reservations(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]reservation.Reservation, 0, len(all))
	for _, r := range all {
		if filter.Date != nil && !r.Date.Equal(*filter.Date) {
			continue
		}
		if filter.Status != nil && r.Status != *filter.Status {
			continue
		}
		matched = append(matched, r)
	}
	slices.SortStableFunc(matched, reservation.Compare)

	page, limit := normalizePage(filter.Page, filter.Limit)
	total := len(matched)
	start := total
	if page-1 <= total/limit {
		start = min((page-1)*limit, total)
	}
	end := min(start+limit, total)

	return &ReservationPage{
		Reservations: matched[start:end],
		Total:        total,
		Page:         page,
		TotalPages:   (total + limit - 1) / limit,
	}, nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return page, limit
}
