//go:build unit || e2e

package builder

import (
	"fmt"

	"restaurant-booking/internal/domain/restaurant"
)

type ConfigBuilder struct {
	cfg restaurant.Config
}

// NewConfigBuilder starts from the default restaurant configuration.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{cfg: restaurant.DefaultConfig()}
}

// WithCapacities replaces the floor plan with one table per capacity, ids from 1.
func (b *ConfigBuilder) WithCapacities(capacities ...int) *ConfigBuilder {
	tables := make([]restaurant.Table, len(capacities))
	for i, c := range capacities {
		tables[i] = restaurant.Table{ID: i + 1, Capacity: c, Name: fmt.Sprintf("Table %d", i+1)}
	}
	b.cfg.Tables = tables
	return b
}

func (b *ConfigBuilder) WithSlots(lunch, dinner []string) *ConfigBuilder {
	b.cfg.TimeSlots = restaurant.TimeSlots{Lunch: lunch, Dinner: dinner}
	return b
}

func (b *ConfigBuilder) WithClosedDays(days ...int) *ConfigBuilder {
	b.cfg.ClosedDays = append([]int{}, days...)
	return b
}

func (b *ConfigBuilder) WithSundayDinner(closed bool) *ConfigBuilder {
	b.cfg.SundayDinnerClosed = &closed
	return b
}

func (b *ConfigBuilder) Build() restaurant.Config {
	return b.cfg
}
