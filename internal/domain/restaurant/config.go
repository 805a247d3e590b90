package restaurant

import (
	"encoding/json"
	"errors"
	"slices"
	"strconv"
	"time"

	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/pkg/patch"
)

var ErrInvalidConfig = errors.New("invalid restaurant configuration")

type Table struct {
	ID       int    `json:"id"`
	Capacity int    `json:"capacity"`
	Name     string `json:"name"`
}

type TimeSlots struct {
	Lunch  []string `json:"lunch"`
	Dinner []string `json:"dinner"`
}

// All returns lunch then dinner slots in catalog order.
func (ts TimeSlots) All() []string {
	all := make([]string, 0, len(ts.Lunch)+len(ts.Dinner))
	all = append(all, ts.Lunch...)
	return append(all, ts.Dinner...)
}

func (ts TimeSlots) IsLunch(slot string) bool  { return slices.Contains(ts.Lunch, slot) }
func (ts TimeSlots) IsDinner(slot string) bool { return slices.Contains(ts.Dinner, slot) }
func (ts TimeSlots) Has(slot string) bool      { return ts.IsLunch(slot) || ts.IsDinner(slot) }

type Config struct {
	Tables             []Table         `json:"tables"`
	TimeSlots          TimeSlots       `json:"timeSlots"`
	ClosedDays         []int           `json:"closedDays"`
	SundayDinnerClosed *bool           `json:"sundayDinnerClosed,omitempty"`
	ServiceDuration    int             `json:"serviceDuration"`
	BufferTime         int             `json:"bufferTime"`
	Hours              json.RawMessage `json:"hours,omitempty"`
	Menu               json.RawMessage `json:"menu,omitempty"`
}

var (
	defaultCapacities = []int{2, 2, 2, 4, 4, 4, 4, 6, 6, 6, 8, 8, 2, 4, 4, 2, 4, 6, 4, 2}
	defaultClosedDays = []int{int(time.Wednesday), int(time.Thursday)}
)

const (
	DefaultServiceDuration = 120
	DefaultBufferTime      = 15
)

func DefaultConfig() Config {
	tables := make([]Table, len(defaultCapacities))
	for i, c := range defaultCapacities {
		tables[i] = Table{ID: i + 1, Capacity: c, Name: tableName(i + 1)}
	}
	return Config{
		Tables: tables,
		TimeSlots: TimeSlots{
			Lunch:  []string{"12:00", "12:30", "13:00"},
			Dinner: []string{"19:00", "19:30", "20:00", "20:30"},
		},
		ServiceDuration: DefaultServiceDuration,
		BufferTime:      DefaultBufferTime,
	}
}

func tableName(id int) string {
	return "Table " + strconv.Itoa(id)
}

func (c Config) TotalCapacity() int {
	total := 0
	for _, t := range c.Tables {
		total += t.Capacity
	}
	return total
}

// EffectiveClosedDays falls back to Wednesday and Thursday when unset. An empty list means open every day.
func (c Config) EffectiveClosedDays() []int {
	if c.ClosedDays == nil {
		return slices.Clone(defaultClosedDays)
	}
	return c.ClosedDays
}

// EffectiveSundayDinnerClosed treats an absent flag as closed.
func (c Config) EffectiveSundayDinnerClosed() bool {
	return patch.Coalesce(c.SundayDinnerClosed, true)
}

func (c Config) IsClosedOn(d reservation.Date) bool {
	return slices.Contains(c.EffectiveClosedDays(), int(d.Weekday()))
}

// SlotsOn lists the bookable slots for a day, dropping dinner on Sundays when that service is closed.
func (c Config) SlotsOn(d reservation.Date) []string {
	if c.IsClosedOn(d) {
		return nil
	}
	if d.Weekday() == time.Sunday && c.EffectiveSundayDinnerClosed() {
		return slices.Clone(c.TimeSlots.Lunch)
	}
	return c.TimeSlots.All()
}

func (c Config) Validate() error {
	seen := make(map[int]struct{}, len(c.Tables))
	for _, t := range c.Tables {
		if t.Capacity <= 0 {
			return ErrInvalidConfig
		}
		if _, dup := seen[t.ID]; dup {
			return ErrInvalidConfig
		}
		seen[t.ID] = struct{}{}
	}
	for _, s := range c.TimeSlots.All() {
		if !reservation.ValidSlot(s) {
			return ErrInvalidConfig
		}
	}
	for _, d := range c.ClosedDays {
		if d < 0 || d > 6 {
			return ErrInvalidConfig
		}
	}
	if c.ServiceDuration < 0 || c.BufferTime < 0 {
		return ErrInvalidConfig
	}
	return nil
}
