package locations

import (
	"catch-logistics-service/internal/adapters/repositories"
	"catch-logistics-service/internal/domain"
	"catch-logistics-service/internal/platform/db"
	"catch-logistics-service/internal/services"
	"context"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Runs against a disposable Postgres database named by TEST_DATABASE_URL.
func TestSQLLocationStoreFeedsResolver(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	conn, err := db.Open(ctx, url)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer conn.Close()

	if err := repositories.InitPostgresSchema(ctx, conn); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	store := NewSQLLocationStore(conn)
	rows := map[string]domain.LocationInfo{
		" Green Head ": {Area: "North", DropOff: "Geraldton", TravelMinutes: 85},
		"Lancelin":     {Area: "South", DropOff: "Welshpool", TravelMinutes: 95},
	}
	if err := store.PutMany(ctx, rows); err != nil {
		t.Fatalf("put many: %v", err)
	}

	got, err := store.ListLocations(ctx)
	if err != nil {
		t.Fatalf("list locations: %v", err)
	}
	if got["Green Head"].TravelMinutes != 85 {
		t.Fatalf("stored row missing or untrimmed: %+v", got)
	}

	resolver, err := services.LoadLocationResolver(ctx, store)
	if err != nil {
		t.Fatalf("load resolver: %v", err)
	}
	if info := resolver.Resolve("Green Head"); info.Area != "North" || info.DropOff != "Geraldton" {
		t.Fatalf("Resolve(Green Head) = %+v", info)
	}
	if info := resolver.Resolve("Lancelin"); info.TravelMinutes != 95 {
		t.Fatalf("override not applied: %+v", info)
	}
}

func TestSQLLocationStoreNilDB(t *testing.T) {
	store := NewSQLLocationStore(nil)
	if _, err := store.ListLocations(context.Background()); err == nil {
		t.Fatal("expected error for nil db")
	}
	if _, err := services.LoadLocationResolver(context.Background(), store); err == nil {
		t.Fatal("expected resolver load to fail on store error")
	}
}
