package domain

import "strings"

// Delivery truck as supplied by the registry.
// A truck is reusable across trips on the same day; capacity is checked
// per trip, not across the day.
type Truck struct {
	FleetID  string
	Capacity int
	Area     string
	Status   string
}

// Report whether the registry lists the truck as active.
func (t Truck) Active() bool {
	return strings.EqualFold(strings.TrimSpace(t.Status), "active")
}

// Report whether the truck can seed a trip of the given size in the given area.
func (t Truck) CanServe(area string, baskets int) bool {
	return t.Active() && t.Capacity >= baskets && strings.EqualFold(t.Area, area)
}

// Day-level timing constants, in minutes.
type LogisticsConfig struct {
	LoadTimeMinutes            float64
	OffloadTimePerCatchMinutes float64
	MaxTimeOutOfWaterMinutes   float64
}

// Fleet is the registry payload: every known truck plus the timing constants.
type Fleet struct {
	Trucks []Truck
	Config LogisticsConfig
}

// Return the active trucks in registry order.
func (f *Fleet) Active() []Truck {
	out := make([]Truck, 0, len(f.Trucks))
	for _, t := range f.Trucks {
		if t.Active() {
			out = append(out, t)
		}
	}
	return out
}
