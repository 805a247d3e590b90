package restaurant

import (
	"encoding/json"

	"restaurant-booking/internal/pkg/patch"
)

// Patch is a partial configuration; each non-nil field replaces the stored one wholesale.
type Patch struct {
	Tables             *[]Table         `json:"tables,omitempty"`
	TimeSlots          *TimeSlots       `json:"timeSlots,omitempty"`
	ClosedDays         *[]int           `json:"closedDays,omitempty"`
	SundayDinnerClosed *bool            `json:"sundayDinnerClosed,omitempty"`
	ServiceDuration    *int             `json:"serviceDuration,omitempty"`
	BufferTime         *int             `json:"bufferTime,omitempty"`
	Hours              *json.RawMessage `json:"hours,omitempty"`
	Menu               *json.RawMessage `json:"menu,omitempty"`
}

func (p Patch) IsEmpty() bool {
	return p.Tables == nil && p.TimeSlots == nil && p.ClosedDays == nil &&
		p.SundayDinnerClosed == nil && p.ServiceDuration == nil && p.BufferTime == nil &&
		p.Hours == nil && p.Menu == nil
}

// Apply returns a copy of c with the patch merged in. Nested values are not merged.
func (c Config) Apply(p Patch) Config {
	merged := c
	patch.Replace(&merged.Tables, p.Tables)
	patch.Replace(&merged.TimeSlots, p.TimeSlots)
	patch.Replace(&merged.ClosedDays, p.ClosedDays)
	patch.Replace(&merged.ServiceDuration, p.ServiceDuration)
	patch.Replace(&merged.BufferTime, p.BufferTime)
	patch.Replace(&merged.Hours, p.Hours)
	patch.Replace(&merged.Menu, p.Menu)
	if p.SundayDinnerClosed != nil {
		v := *p.SundayDinnerClosed
		merged.SundayDinnerClosed = &v
	}
	return merged
}
