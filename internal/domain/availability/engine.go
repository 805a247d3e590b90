// Package availability decides whether a party fits into a service slot and which table it gets.
//
// Every function here is pure: it works on a Snapshot of the reservation list and configuration
// and never touches storage.
package availability

import (
	"cmp"
	"slices"

	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/domain/restaurant"
)

const (
	MaxSuggestions  = 3
	MessageSlotFull = "Ce créneau est complet. Veuillez choisir un autre horaire."
)

type Snapshot struct {
	Reservations []reservation.Reservation
	Config       restaurant.Config
}

type Result struct {
	Available         bool              `json:"available"`
	SuggestedTable    *restaurant.Table `json:"suggestedTable,omitempty"`
	RemainingCapacity *int              `json:"remainingCapacity,omitempty"`
	Message           string            `json:"message,omitempty"`
	SuggestedTimes    []string          `json:"suggestedTimes,omitempty"`
}

type SlotSummary struct {
	Time              string `json:"time"`
	Available         bool   `json:"available"`
	AvailableCapacity int    `json:"availableCapacity"`
	ReservationCount  int    `json:"reservationCount"`
}

type occupancy struct {
	active       int
	guests       int
	takenTables  map[int]struct{}
	availableCap int
}

func (s Snapshot) occupancy(date reservation.Date, slot string) occupancy {
	o := occupancy{takenTables: make(map[int]struct{})}
	for i := range s.Reservations {
		r := &s.Reservations[i]
		if !r.IsActive() || !r.At(date, slot) {
			continue
		}
		o.active++
		o.guests += r.Guests
		if r.TableID != nil {
			o.takenTables[*r.TableID] = struct{}{}
		}
	}
	o.availableCap = s.Config.TotalCapacity() - o.guests
	return o
}

// candidates returns free tables large enough for the party, smallest first.
func (s Snapshot) candidates(o occupancy, guests int) []restaurant.Table {
	var out []restaurant.Table
	for _, t := range s.Config.Tables {
		if _, taken := o.takenTables[t.ID]; taken {
			continue
		}
		if t.Capacity >= guests {
			out = append(out, t)
		}
	}
	slices.SortStableFunc(out, func(a, b restaurant.Table) int {
		return cmp.Compare(a.Capacity, b.Capacity)
	})
	return out
}

func (s Snapshot) evaluate(date reservation.Date, slot string, guests int) Result {
	o := s.occupancy(date, slot)
	tables := s.candidates(o, guests)
	if len(tables) == 0 || o.availableCap < guests {
		return Result{Available: false}
	}
	table := tables[0]
	remaining := o.availableCap - guests
	return Result{
		Available:         true,
		SuggestedTable:    &table,
		RemainingCapacity: &remaining,
	}
}

// Check reports whether guests fit at date/slot. A full slot carries up to
// MaxSuggestions alternative times the same day.
func (s Snapshot) Check(date reservation.Date, slot string, guests int) Result {
	res := s.evaluate(date, slot, guests)
	if res.Available {
		return res
	}
	res.Message = MessageSlotFull
	res.SuggestedTimes = s.SuggestTimes(date, guests)
	return res
}

// SuggestTimes scans lunch then dinner slots and returns the first available ones.
func (s Snapshot) SuggestTimes(date reservation.Date, guests int) []string {
	out := []string{}
	for _, slot := range s.Config.TimeSlots.All() {
		if s.evaluate(date, slot, guests).Available {
			out = append(out, slot)
			if len(out) == MaxSuggestions {
				break
			}
		}
	}
	return out
}

func (s Snapshot) Slots(date reservation.Date) []SlotSummary {
	all := s.Config.TimeSlots.All()
	out := make([]SlotSummary, 0, len(all))
	for _, slot := range all {
		o := s.occupancy(date, slot)
		out = append(out, SlotSummary{
			Time:              slot,
			Available:         o.availableCap > 0,
			AvailableCapacity: o.availableCap,
			ReservationCount:  o.active,
		})
	}
	return out
}

// Day is the availability of a calendar day once closures are applied.
type Day struct {
	Date   reservation.Date `json:"date"`
	Closed bool             `json:"closed"`
	Slots  []SlotSummary    `json:"slots"`
}

// DayView filters Slots through the restaurant's closed days and Sunday dinner rule.
func (s Snapshot) DayView(date reservation.Date) Day {
	if s.Config.IsClosedOn(date) {
		return Day{Date: date, Closed: true, Slots: []SlotSummary{}}
	}
	open := s.Config.SlotsOn(date)
	out := make([]SlotSummary, 0, len(open))
	for _, sum := range s.Slots(date) {
		if slices.Contains(open, sum.Time) {
			out = append(out, sum)
		}
	}
	return Day{Date: date, Slots: out}
}
