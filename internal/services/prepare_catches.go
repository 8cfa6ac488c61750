package services

import (
	"catch-logistics-service/internal/domain"
	"math"
	"strconv"
	"strings"
	"time"
)

// Only rows of this type are trip candidates.
const catchTypeTrip = "Trip"

const unknownBoat = "Unknown"

// Offload dates arrive from spreadsheets in a few shapes.
var offloadDateLayouts = []string{
	dateLayout,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"02/01/2006",
}

type PrepareOptions struct {
	// Keep only the most recent offload day.
	MostRecentDayOnly bool
}

// PrepareCatches filters raw rows down to scheduling candidates.
//
// Rows must be of type "Trip", have a non-blank location and a parseable
// offload date. Locations are trimmed and dates rewritten as YYYY-MM-DD.
// The returned rows keep their input order.
func PrepareCatches(records []domain.CatchRecord, opts PrepareOptions) []domain.CatchRecord {
	kept := make([]domain.CatchRecord, 0, len(records))
	var latest string

	for _, r := range records {
		if strings.TrimSpace(r.Type) != catchTypeTrip {
			continue
		}

		loc := strings.TrimSpace(r.Location)
		if loc == "" {
			continue
		}

		day, ok := parseOffloadDate(r.OffloadDate)
		if !ok {
			continue
		}

		r.Location = loc
		r.OffloadDate = day
		kept = append(kept, r)

		if day > latest {
			latest = day
		}
	}

	if !opts.MostRecentDayOnly || len(kept) == 0 {
		return kept
	}

	out := make([]domain.CatchRecord, 0, len(kept))
	for _, r := range kept {
		if r.OffloadDate == latest {
			out = append(out, r)
		}
	}

	return out
}

func parseOffloadDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	for _, layout := range offloadDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(dateLayout), true
		}
	}

	return "", false
}

// NormalizeCatches turns prepared rows into catch events.
// Rows whose date and time do not combine are dropped and counted.
func NormalizeCatches(records []domain.CatchRecord, loc *time.Location) ([]domain.CatchEvent, int) {
	events := make([]domain.CatchEvent, 0, len(records))
	dropped := 0

	for _, r := range records {
		ready, ok := CombineDateTime(r.OffloadDate, r.OffloadTime, loc)
		if !ok {
			dropped++
			continue
		}

		boat := strings.TrimSpace(r.Boat)
		if boat == "" {
			boat = unknownBoat
		}

		events = append(events, domain.CatchEvent{
			Boat:      boat,
			Location:  r.Location,
			Baskets:   ParseBaskets(r.EstBaskets),
			ReadyTime: ready,
		})
	}

	return events, dropped
}

// ParseBaskets reads an estimated basket count.
// Blank, negative or non-numeric values count as one basket;
// fractional values are truncated.
func ParseBaskets(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 1
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 1
		}
		return n
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 1
	}

	return int(f)
}
