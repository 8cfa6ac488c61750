package services

import (
	"catch-logistics-service/internal/domain"
	"testing"
	"time"
)

func TestPrepareCatches(t *testing.T) {
	records := []domain.CatchRecord{
		{Type: "Trip", Location: " Lancelin ", OffloadDate: "2025-03-03", OffloadTime: "07:00", Boat: "old"},
		{Type: "Trip", Location: "Lancelin", OffloadDate: "2025-03-04 00:00:00", OffloadTime: "08:00", Boat: "a"},
		{Type: "Service", Location: "Lancelin", OffloadDate: "2025-03-04", OffloadTime: "08:00", Boat: "service"},
		{Type: "Trip", Location: "  ", OffloadDate: "2025-03-04", OffloadTime: "08:00", Boat: "no-location"},
		{Type: "Trip", Location: "Leeman", OffloadDate: "not a date", OffloadTime: "08:00", Boat: "bad-date"},
		{Type: "Trip ", Location: "Leeman", OffloadDate: "04/03/2025", OffloadTime: "09:00", Boat: "b"},
	}

	all := PrepareCatches(records, PrepareOptions{})
	if len(all) != 3 {
		t.Fatalf("expected 3 candidates, got %d: %+v", len(all), all)
	}
	if all[0].Location != "Lancelin" || all[0].OffloadDate != "2025-03-03" {
		t.Errorf("first record not cleaned: %+v", all[0])
	}
	if all[1].OffloadDate != "2025-03-04" || all[2].OffloadDate != "2025-03-04" {
		t.Errorf("dates not normalized: %+v", all)
	}

	latest := PrepareCatches(records, PrepareOptions{MostRecentDayOnly: true})
	if len(latest) != 2 || latest[0].Boat != "a" || latest[1].Boat != "b" {
		t.Fatalf("most recent day = %+v, want boats a, b", latest)
	}

	// Input is left untouched.
	if records[0].Location != " Lancelin " {
		t.Fatalf("input was modified: %+v", records[0])
	}

	if got := PrepareCatches(nil, PrepareOptions{MostRecentDayOnly: true}); len(got) != 0 {
		t.Fatalf("expected no records, got %+v", got)
	}
}

func TestNormalizeCatches(t *testing.T) {
	records := []domain.CatchRecord{
		{Location: "Lancelin", OffloadDate: "2025-03-04", OffloadTime: "08:00", Boat: " Sea Wolf ", EstBaskets: "40"},
		{Location: "Lancelin", OffloadDate: "2025-03-04", OffloadTime: "", Boat: "no-time"},
		{Location: "Lancelin", OffloadDate: "2025-03-04", OffloadTime: "09:30:00", Boat: "", EstBaskets: ""},
	}

	events, dropped := NormalizeCatches(records, time.UTC)
	if dropped != 1 {
		t.Fatalf("dropped = %d, want 1", dropped)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	want := domain.CatchEvent{
		Boat:      "Sea Wolf",
		Location:  "Lancelin",
		Baskets:   40,
		ReadyTime: time.Date(2025, 3, 4, 8, 0, 0, 0, time.UTC),
	}
	if events[0] != want {
		t.Errorf("event 0 = %+v, want %+v", events[0], want)
	}
	if events[1].Boat != "Unknown" || events[1].Baskets != 1 {
		t.Errorf("defaults not applied: %+v", events[1])
	}
}

func TestParseBaskets(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 1},
		{"  ", 1},
		{"12", 12},
		{" 7 ", 7},
		{"0", 0},
		{"12.9", 12},
		{"-3", 1},
		{"-2.5", 1},
		{"a few", 1},
		{"NaN", 1},
	}

	for _, tc := range tests {
		if got := ParseBaskets(tc.in); got != tc.want {
			t.Errorf("ParseBaskets(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
