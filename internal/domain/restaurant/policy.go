package restaurant

import (
	"encoding/json"
	"errors"
	"time"

	"restaurant-booking/internal/domain/reservation"
)

const MaxAdvanceMonths = 3

var (
	ErrDateInPast         = errors.New("date cannot be in the past")
	ErrDateTooFarAhead    = errors.New("reservations are only possible up to 3 months ahead")
	ErrClosedDay          = errors.New("the restaurant is closed on this day")
	ErrUnknownSlot        = errors.New("time is not a bookable slot")
	ErrSundayDinnerClosed = errors.New("the restaurant is closed on Sunday evening")
)

// CheckBooking applies the calendar rules of the public booking form.
func (c Config) CheckBooking(date reservation.Date, slot string, today reservation.Date) error {
	if date.Before(today) {
		return ErrDateInPast
	}
	if date.After(today.AddMonths(MaxAdvanceMonths)) {
		return ErrDateTooFarAhead
	}
	if c.IsClosedOn(date) {
		return ErrClosedDay
	}
	if !c.TimeSlots.Has(slot) {
		return ErrUnknownSlot
	}
	if date.Weekday() == time.Sunday && c.EffectiveSundayDinnerClosed() && c.TimeSlots.IsDinner(slot) {
		return ErrSundayDinnerClosed
	}
	return nil
}

// PublicConfig is the subset exposed to the booking widget.
type PublicConfig struct {
	ClosedDays         []int           `json:"closedDays"`
	SundayDinnerClosed bool            `json:"sundayDinnerClosed"`
	TimeSlots          TimeSlots       `json:"timeSlots"`
	Hours              json.RawMessage `json:"hours"`
}

func (c Config) Public() PublicConfig {
	return PublicConfig{
		ClosedDays:         c.EffectiveClosedDays(),
		SundayDinnerClosed: c.EffectiveSundayDinnerClosed(),
		TimeSlots:          c.TimeSlots,
		Hours:              c.Hours,
	}
}
