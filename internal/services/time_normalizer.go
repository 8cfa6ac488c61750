package services

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Time layouts are tried in order; the first match wins.
var clockLayouts = []string{"15:04", "15:04:05"}

// CombineDateTime joins an offload date and an offload time into one timestamp.
//
// dateVal may be a time.Time (its calendar date is used) or a "YYYY-MM-DD" string.
// timeVal may be a time.Time (its clock is used), a time.Duration since midnight,
// or an "HH:MM" / "HH:MM:SS" string. String dates are placed in loc (UTC when nil).
//
// ok is false when either value is missing (nil, empty string, zero date) or
// cannot be parsed; the caller must drop the record from scheduling. A
// time.Time clock is never missing: its zero value is midnight.
func CombineDateTime(dateVal, timeVal any, loc *time.Location) (_ time.Time, ok bool) {
	if loc == nil {
		loc = time.UTC
	}

	year, month, day, dayLoc, ok := parseDatePart(dateVal, loc)
	if !ok {
		return time.Time{}, false
	}

	clock, ok := parseClockPart(timeVal)
	if !ok {
		return time.Time{}, false
	}

	// Build from wall-clock fields so DST transitions do not shift the hour.
	h := int(clock / time.Hour)
	m := int(clock % time.Hour / time.Minute)
	s := int(clock % time.Minute / time.Second)
	return time.Date(year, month, day, h, m, s, 0, dayLoc), true
}

func parseDatePart(v any, loc *time.Location) (int, time.Month, int, *time.Location, bool) {
	switch d := v.(type) {
	case time.Time:
		if d.IsZero() {
			return 0, 0, 0, nil, false
		}
		y, m, day := d.Date()
		return y, m, day, d.Location(), true
	case *time.Time:
		if d == nil {
			return 0, 0, 0, nil, false
		}
		return parseDatePart(*d, loc)
	case string:
		s := strings.TrimSpace(d)
		if s == "" {
			return 0, 0, 0, nil, false
		}
		parsed, err := time.ParseInLocation(dateLayout, s, loc)
		if err != nil {
			return 0, 0, 0, nil, false
		}
		y, m, day := parsed.Date()
		return y, m, day, loc, true
	default:
		return 0, 0, 0, nil, false
	}
}

func parseClockPart(v any) (time.Duration, bool) {
	switch c := v.(type) {
	case time.Time:
		// Only the clock matters; a zero value is midnight.
		h, m, s := c.Clock()
		return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second, true
	case *time.Time:
		if c == nil {
			return 0, false
		}
		return parseClockPart(*c)
	case time.Duration:
		if c < 0 || c >= 24*time.Hour {
			return 0, false
		}
		return c, true
	case string:
		s := strings.TrimSpace(c)
		if s == "" {
			return 0, false
		}
		for _, layout := range clockLayouts {
			parsed, err := time.Parse(layout, s)
			if err != nil {
				continue
			}
			h, m, sec := parsed.Clock()
			return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(sec)*time.Second, true
		}
		return 0, false
	default:
		return 0, false
	}
}
