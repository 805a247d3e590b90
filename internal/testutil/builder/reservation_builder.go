//go:build unit || e2e

package builder

import (
	"time"

	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/handler/dto/request"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID       string
	Name     string
	Email    string
	Phone    string
	Date     string
	Time     string
	Guests   int
	Message  string
	Status   reservation.Status
	TableID  *int
	Table    string
	Created  time.Time
	ClientIP string
	Reason   string
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:      uuid.NewString(),
		Name:    "Jean Dupont",
		Email:   "jean.dupont@example.com",
		Phone:   "0612345678",
		Date:    "2025-06-14",
		Time:    "19:30",
		Guests:  2,
		Status:  reservation.StatusPending,
		Created: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ReservationBuilder) Build() reservation.Reservation {
	return reservation.Reservation{
		ID:        b.ID,
		Name:      b.Name,
		Email:     b.Email,
		Phone:     b.Phone,
		Date:      reservation.MustParseDate(b.Date),
		Time:      b.Time,
		Guests:    b.Guests,
		Message:   b.Message,
		Status:    b.Status,
		TableID:   b.TableID,
		TableName: b.Table,
		CreatedAt: b.Created,
		IP:        b.ClientIP,

		CancellationReason: b.Reason,
	}
}

func (b *ReservationBuilder) BuildPtr() *reservation.Reservation {
	r := b.Build()
	return &r
}

func (b *ReservationBuilder) BuildDraft() reservation.Draft {
	return reservation.Draft{
		Name:    b.Name,
		Email:   b.Email,
		Phone:   b.Phone,
		Date:    b.Date,
		Time:    b.Time,
		Guests:  b.Guests,
		Message: b.Message,
		IP:      b.ClientIP,
	}
}

func (b *ReservationBuilder) BuildRequest() request.CreateReservationRequest {
	return request.CreateReservationRequest{
		Name:    b.Name,
		Email:   b.Email,
		Phone:   b.Phone,
		Date:    b.Date,
		Time:    b.Time,
		Guests:  b.Guests,
		Message: b.Message,
	}
}

// Fluent builder methods
func (b *ReservationBuilder) WithID(id string) *ReservationBuilder {
	b.ID = id
	return b
}

func (b *ReservationBuilder) WithName(name string) *ReservationBuilder {
	b.Name = name
	return b
}

func (b *ReservationBuilder) WithEmail(email string) *ReservationBuilder {
	b.Email = email
	return b
}

func (b *ReservationBuilder) WithPhone(phone string) *ReservationBuilder {
	b.Phone = phone
	return b
}

func (b *ReservationBuilder) WithSlot(date, slot string) *ReservationBuilder {
	b.Date = date
	b.Time = slot
	return b
}

func (b *ReservationBuilder) WithGuests(n int) *ReservationBuilder {
	b.Guests = n
	return b
}

func (b *ReservationBuilder) WithMessage(msg string) *ReservationBuilder {
	b.Message = msg
	return b
}

func (b *ReservationBuilder) WithStatus(s reservation.Status) *ReservationBuilder {
	b.Status = s
	return b
}

func (b *ReservationBuilder) WithTable(id int, name string) *ReservationBuilder {
	b.TableID = &id
	b.Table = name
	return b
}

func (b *ReservationBuilder) WithCreatedAt(t time.Time) *ReservationBuilder {
	b.Created = t
	return b
}

func (b *ReservationBuilder) WithIP(ip string) *ReservationBuilder {
	b.ClientIP = ip
	return b
}

func (b *ReservationBuilder) WithCancellationReason(reason string) *ReservationBuilder {
	b.Reason = reason
	return b
}

func (b *ReservationBuilder) AsConfirmed() *ReservationBuilder {
	b.Status = reservation.StatusConfirmed
	return b
}

func (b *ReservationBuilder) AsCancelled() *ReservationBuilder {
	b.Status = reservation.StatusCancelled
	return b
}
