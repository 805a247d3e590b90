package reservation

import (
	"errors"

	"restaurant-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

// Draft carries unvalidated booking input.
type Draft struct {
	Name    string
	Email   string
	Phone   string
	Date    string
	Time    string
	Guests  int
	Message string
	IP      string
}

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clock clock.Clock) *Factory {
	return &Factory{Clock: clock}
}

// NewReservation validates field formats and returns a pending reservation.
// Every failing field is reported in the joined error.
func (f *Factory) NewReservation(d Draft) (*Reservation, error) {
	var errs []error

	name, err := NewName(d.Name)
	errs = append(errs, err)
	email, err := NewEmail(d.Email)
	errs = append(errs, err)
	ph, err := NewPhone(d.Phone)
	errs = append(errs, err)
	date, err := ParseDate(d.Date)
	errs = append(errs, err)
	slot, err := NewSlot(d.Time)
	errs = append(errs, err)
	guests, err := NewGuests(d.Guests)
	errs = append(errs, err)
	msg, err := NewMessage(d.Message)
	errs = append(errs, err)

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return &Reservation{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Phone:     ph,
		Date:      date,
		Time:      slot,
		Guests:    guests,
		Message:   msg,
		Status:    StatusPending,
		CreatedAt: f.Clock.Now().UTC(),
		IP:        d.IP,
	}, nil
}
