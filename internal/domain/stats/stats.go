package stats

import (
	"math"

	"restaurant-booking/internal/domain/availability"
	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/domain/restaurant"
)

type Stats struct {
	Total       int `json:"total"`
	Pending     int `json:"pending"`
	Confirmed   int `json:"confirmed"`
	Cancelled   int `json:"cancelled"`
	Today       int `json:"today"`
	Upcoming    int `json:"upcoming"`
	TotalGuests int `json:"totalGuests"`
}

// Compute counts reservations by status. Today counts every status; Upcoming and
// TotalGuests only count reservations that still hold a seat.
func Compute(reservations []reservation.Reservation, today reservation.Date) Stats {
	var s Stats
	for i := range reservations {
		r := &reservations[i]
		s.Total++
		switch r.Status {
		case reservation.StatusPending:
			s.Pending++
		case reservation.StatusConfirmed:
			s.Confirmed++
		case reservation.StatusCancelled:
			s.Cancelled++
		}
		if r.Date.Equal(today) {
			s.Today++
		}
		if !r.IsActive() {
			continue
		}
		if !r.Date.Before(today) {
			s.Upcoming++
		}
		s.TotalGuests += r.Guests
	}
	return s
}

type ServiceSummary struct {
	Reservations  []reservation.Reservation `json:"reservations"`
	TotalGuests   int                       `json:"totalGuests"`
	CapacityUsage int                       `json:"capacityUsage"`
}

type Dashboard struct {
	Date          reservation.Date   `json:"date"`
	Lunch         ServiceSummary     `json:"lunch"`
	Dinner        ServiceSummary     `json:"dinner"`
	Tables        []restaurant.Table `json:"tables"`
	TotalCapacity int                `json:"totalCapacity"`
}

// BuildDashboard splits the day's active reservations between lunch and dinner.
// Reservations whose time is in neither list are left out.
func BuildDashboard(snap availability.Snapshot, date reservation.Date) Dashboard {
	total := snap.Config.TotalCapacity()
	lunch := ServiceSummary{Reservations: []reservation.Reservation{}}
	dinner := ServiceSummary{Reservations: []reservation.Reservation{}}

	for _, r := range snap.Reservations {
		if !r.IsActive() || !r.Date.Equal(date) {
			continue
		}
		switch {
		case snap.Config.TimeSlots.IsLunch(r.Time):
			lunch.Reservations = append(lunch.Reservations, r)
			lunch.TotalGuests += r.Guests
		case snap.Config.TimeSlots.IsDinner(r.Time):
			dinner.Reservations = append(dinner.Reservations, r)
			dinner.TotalGuests += r.Guests
		}
	}
	lunch.CapacityUsage = usage(lunch.TotalGuests, total)
	dinner.CapacityUsage = usage(dinner.TotalGuests, total)

	tables := snap.Config.Tables
	if tables == nil {
		tables = []restaurant.Table{}
	}
	return Dashboard{
		Date:          date,
		Lunch:         lunch,
		Dinner:        dinner,
		Tables:        tables,
		TotalCapacity: total,
	}
}

func usage(guests, capacity int) int {
	if capacity <= 0 {
		return 0
	}
	return int(math.Round(float64(guests) / float64(capacity) * 100))
}
