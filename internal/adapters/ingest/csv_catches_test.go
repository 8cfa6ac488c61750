package ingest

import (
	"strings"
	"testing"
)

func TestReadCatchesCSV(t *testing.T) {
	in := "\ufeffType,Boat,Location,Offload Date,Offload Time,Est. Baskets,Skipper\n" +
		"Trip,Sea Wolf,Lancelin,2025-03-04,08:00,40,Ann\n" +
		"Service,Dry Dock,Lancelin,2025-03-04,09:00,,Bo\n" +
		"Trip,\"Reel, Deal\", Two Rocks ,2025-03-04,08:10:30,\n"

	records, err := ReadCatchesCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	first := records[0]
	if first.Type != "Trip" || first.Boat != "Sea Wolf" || first.Location != "Lancelin" {
		t.Fatalf("unexpected first record: %+v", first)
	}
	if first.OffloadDate != "2025-03-04" || first.OffloadTime != "08:00" || first.EstBaskets != "40" {
		t.Fatalf("unexpected first record timing: %+v", first)
	}

	if records[1].Type != "Service" || records[1].EstBaskets != "" {
		t.Fatalf("unexpected second record: %+v", records[1])
	}

	// Short rows read missing trailing columns as blank.
	third := records[2]
	if third.Boat != "Reel, Deal" || third.OffloadTime != "08:10:30" || third.EstBaskets != "" {
		t.Fatalf("unexpected third record: %+v", third)
	}
}

func TestReadCatchesCSVMissingColumn(t *testing.T) {
	in := "Type,Boat,Location,Offload Date,Offload Time\nTrip,A,Leeman,2025-03-04,07:45\n"

	records, err := ReadCatchesCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].EstBaskets != "" {
		t.Fatalf("expected one record without baskets, got %+v", records)
	}
}

func TestReadCatchesCSVEmpty(t *testing.T) {
	records, err := ReadCatchesCSV(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}
