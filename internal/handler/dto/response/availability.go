package response

import (
	"restaurant-booking/internal/domain/availability"
	"restaurant-booking/internal/domain/reservation"
)

const MessageClosedDay = "Restaurant fermé ce jour"

type DayAvailabilityResponse struct {
	Date    reservation.Date           `json:"date"`
	Closed  bool                       `json:"closed"`
	Message string                     `json:"message,omitempty"`
	Slots   []availability.SlotSummary `json:"slots"`
}

func FromDay(d availability.Day) *DayAvailabilityResponse {
	out := &DayAvailabilityResponse{Date: d.Date, Closed: d.Closed, Slots: d.Slots}
	if d.Closed {
		out.Message = MessageClosedDay
	}
	return out
}
