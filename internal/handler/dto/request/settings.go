package request

import (
	"encoding/json"

	"restaurant-booking/internal/domain/restaurant"
)

type TableRequest struct {
	ID       int    `json:"id" binding:"required,min=1"`
	Capacity int    `json:"capacity" binding:"required,min=1"`
	Name     string `json:"name" binding:"required,max=50"`
}

type TimeSlotsRequest struct {
	Lunch  []string `json:"lunch" binding:"dive,slot"`
	Dinner []string `json:"dinner" binding:"dive,slot"`
}

type UpdateSettingsRequest struct {
	Tables             *[]TableRequest   `json:"tables" binding:"omitempty,min=1,dive"`
	TimeSlots          *TimeSlotsRequest `json:"timeSlots"`
	ClosedDays         *[]int            `json:"closedDays" binding:"omitempty,dive,min=0,max=6"`
	SundayDinnerClosed *bool             `json:"sundayDinnerClosed"`
	ServiceDuration    *int              `json:"serviceDuration" binding:"omitempty,min=0"`
	BufferTime         *int              `json:"bufferTime" binding:"omitempty,min=0"`
	Hours              *json.RawMessage  `json:"hours"`
	Menu               *json.RawMessage  `json:"menu"`
}

func (r UpdateSettingsRequest) ToPatch() restaurant.Patch {
	p := restaurant.Patch{
		ClosedDays:         r.ClosedDays,
		SundayDinnerClosed: r.SundayDinnerClosed,
		ServiceDuration:    r.ServiceDuration,
		BufferTime:         r.BufferTime,
		Hours:              r.Hours,
		Menu:               r.Menu,
	}
	if r.Tables != nil {
		tables := make([]restaurant.Table, len(*r.Tables))
		for i, t := range *r.Tables {
			tables[i] = restaurant.Table{ID: t.ID, Capacity: t.Capacity, Name: t.Name}
		}
		p.Tables = &tables
	}
	if r.TimeSlots != nil {
		p.TimeSlots = &restaurant.TimeSlots{Lunch: r.TimeSlots.Lunch, Dinner: r.TimeSlots.Dinner}
	}
	return p
}
