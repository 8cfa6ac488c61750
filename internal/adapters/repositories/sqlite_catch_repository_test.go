package repositories

import (
	"catch-logistics-service/internal/domain"
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func TestSqliteCatchRepositoryListCatches(t *testing.T) {
	db := openTestDB(t)

	records := []domain.CatchRecord{
		{Type: "Trip", Boat: "Sea Wolf", Location: "Lancelin", OffloadDate: "2025-03-04", OffloadTime: "08:00", EstBaskets: "40"},
		{Type: "Trip", Boat: "Marlin", Location: "Lancelin", OffloadDate: "2025-03-04", OffloadTime: "08:10", EstBaskets: ""},
		{Type: "Service", Boat: "Tug", Location: "Leeman", OffloadDate: "2025-03-04", OffloadTime: "09:00", EstBaskets: "3"},
	}
	if err := SeedCatches(db, "day.csv", records); err != nil {
		t.Fatalf("seed catches: %v", err)
	}

	// Re-seeding the same source replaces rows.
	if err := SeedCatches(db, "day.csv", records); err != nil {
		t.Fatalf("re-seed catches: %v", err)
	}

	repo := NewSqliteCatchRepository(db)
	got, err := repo.ListCatches(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != len(records) {
		t.Fatalf("expected %d records, got %d", len(records), len(got))
	}
	for i := range records {
		if got[i] != records[i] {
			t.Errorf("record %d = %+v, want %+v", i, got[i], records[i])
		}
	}
}

func TestSeedCatchesReplacesShorterSource(t *testing.T) {
	db := openTestDB(t)

	day := []domain.CatchRecord{
		{Type: "Trip", Boat: "A", Location: "Lancelin", OffloadDate: "2025-03-04", OffloadTime: "08:00"},
		{Type: "Trip", Boat: "B", Location: "Lancelin", OffloadDate: "2025-03-04", OffloadTime: "08:10"},
		{Type: "Trip", Boat: "C", Location: "Leeman", OffloadDate: "2025-03-04", OffloadTime: "09:00"},
	}
	other := []domain.CatchRecord{
		{Type: "Trip", Boat: "Z", Location: "Jurien", OffloadDate: "2025-03-04", OffloadTime: "07:00"},
	}

	if err := SeedCatches(db, "day.csv", day); err != nil {
		t.Fatalf("seed day: %v", err)
	}
	if err := SeedCatches(db, "other.csv", other); err != nil {
		t.Fatalf("seed other: %v", err)
	}
	if err := SeedCatches(db, "day.csv", day[:1]); err != nil {
		t.Fatalf("re-seed day: %v", err)
	}

	got, err := NewSqliteCatchRepository(db).ListCatches(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Rows of other sources are untouched; the old trailing rows are gone.
	if len(got) != 2 || got[0].Boat != "A" || got[1].Boat != "Z" {
		t.Fatalf("unexpected records after re-seed: %+v", got)
	}
}

func TestSeedCatchesFromCSV(t *testing.T) {
	db := openTestDB(t)

	path := filepath.Join(t.TempDir(), "catches.csv")
	body := "Type,Boat,Location,Offload Date,Offload Time,Est. Baskets\n" +
		"Trip,Sea Wolf,Lancelin,2025-03-04,08:00,40\n" +
		"Trip,Marlin,Two Rocks,2025-03-04,08:30,12\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	if err := SeedCatchesFromCSV(db, path); err != nil {
		t.Fatalf("seed from csv: %v", err)
	}

	got, err := NewSqliteCatchRepository(db).ListCatches(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[1].Boat != "Marlin" || got[1].EstBaskets != "12" {
		t.Fatalf("unexpected records: %+v", got)
	}
}

func TestSqliteCatchRepositoryNilDB(t *testing.T) {
	repo := NewSqliteCatchRepository(nil)
	if _, err := repo.ListCatches(context.Background()); err == nil {
		t.Fatal("expected error for nil DB")
	}
}

func TestMemoryCatchRepositoryCopies(t *testing.T) {
	records := []domain.CatchRecord{{Type: "Trip", Boat: "A"}}
	repo := NewMemoryCatchRepository(records)
	records[0].Boat = "changed"

	got, err := repo.ListCatches(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].Boat != "A" {
		t.Fatalf("repository shares caller slice: %+v", got)
	}

	got[0].Boat = "mutated"
	again, _ := repo.ListCatches(context.Background())
	if again[0].Boat != "A" {
		t.Fatalf("repository returned its own slice: %+v", again)
	}
}
