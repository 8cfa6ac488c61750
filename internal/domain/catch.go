package domain

import "time"

// CatchRecord is a raw catch-offload row as read from CSV, SQLite or JSON.
// Values are kept as text; preparation decides what is usable.
type CatchRecord struct {
	Type        string
	Location    string
	OffloadDate string
	OffloadTime string
	Boat        string
	EstBaskets  string
}

// CatchEvent is a normalized catch ready for scheduling.
// ReadyTime is always set; records without one never become events.
type CatchEvent struct {
	Boat      string
	Location  string
	Baskets   int
	ReadyTime time.Time
}
