package domain

import "time"

// Represents one pickup within a trip.
// EarliestLoadFinish is the trip anchor and is identical for every stop.
// OutOfWaterMinutes is the value measured when the stop was committed.
type Stop struct {
	Boat               string
	ReadyTime          time.Time
	LoadFinish         time.Time
	EarliestLoadFinish time.Time
	Baskets            int
	OutOfWaterMinutes  float64
}

// Represents one truck run: consolidated pickups at a single location
// ending in a single drop-off. A Trip always has at least one stop and is
// not modified once the scheduler emits it.
type Trip struct {
	Date           time.Time
	TruckID        string
	Location       string
	Area           string
	DropOff        string
	TravelMinutes  int
	DepartAt       time.Time
	ArriveDropAt   time.Time
	FinalOffloadAt time.Time
	Stops          []Stop
}

// Earliest ready time among the stops (when the first boat reached port).
func (t *Trip) ArrivePort() time.Time {
	var earliest time.Time
	for i, s := range t.Stops {
		if i == 0 || s.ReadyTime.Before(earliest) {
			earliest = s.ReadyTime
		}
	}
	return earliest
}

// Total baskets carried.
func (t *Trip) Baskets() int {
	total := 0
	for _, s := range t.Stops {
		total += s.Baskets
	}
	return total
}

// Minutes from the first stop's load finish to the final offload.
func (t *Trip) OutOfWaterMinutes() float64 {
	if len(t.Stops) == 0 {
		return 0
	}
	return t.FinalOffloadAt.Sub(t.Stops[0].EarliestLoadFinish).Minutes()
}

// A catch with a valid ready time that no truck could take.
type Unassigned struct {
	Boat     string
	Location string
	Reason   string
}

// Output of one scheduling run, with the constants it was built with.
type Schedule struct {
	Trips      []Trip
	Unassigned []Unassigned
	Config     LogisticsConfig
}

// Freshness grades a trip or stop against the out-of-water limit.
type Freshness string

const (
	FreshnessOK       Freshness = "ok"
	FreshnessWarning  Freshness = "warning"
	FreshnessExceeded Freshness = "exceeded"
)
