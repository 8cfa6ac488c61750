package locations

import (
	"catch-logistics-service/internal/adapters/repositories"
	"catch-logistics-service/internal/domain"
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func TestSqliteLocationStoreRoundTrip(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	defer db.Close()

	if err := repositories.InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	store := NewSqliteLocationStore(db)
	ctx := context.Background()

	rows := map[string]domain.LocationInfo{
		" Green Head ": {Area: "South", DropOff: "Fremantle/Welshpool", TravelMinutes: 150},
		"Lancelin":     {Area: "South", DropOff: "Fremantle/Welshpool", TravelMinutes: 95},
	}
	if err := store.PutMany(ctx, rows); err != nil {
		t.Fatalf("put many: %v", err)
	}

	got, err := store.ListLocations(ctx)
	if err != nil {
		t.Fatalf("list locations: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got["Green Head"].TravelMinutes != 150 {
		t.Fatalf("name was not trimmed on insert: %+v", got)
	}
	if got["Lancelin"].TravelMinutes != 95 {
		t.Fatalf("unexpected Lancelin row: %+v", got["Lancelin"])
	}
}

func TestReadLocationsJSON(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "locations.json")
	body := `[{"name": "Green Head", "area": "South", "drop_off_location": "Fremantle/Welshpool", "travel_minutes": 150}]`
	if err := os.WriteFile(good, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := ReadLocationsJSON(good)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := domain.LocationInfo{Area: "South", DropOff: "Fremantle/Welshpool", TravelMinutes: 150}
	if got["Green Head"] != want {
		t.Fatalf("got %+v, want %+v", got["Green Head"], want)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`[{"name": "", "area": "South"}]`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := ReadLocationsJSON(bad); err == nil {
		t.Fatal("expected error for empty name")
	}
}
