package main

import (
	"catch-logistics-service/internal/adapters/locations"
	"catch-logistics-service/internal/adapters/registry"
	"catch-logistics-service/internal/adapters/repositories"
	"catch-logistics-service/internal/config"
	"catch-logistics-service/internal/platform/db"
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// dbtool prepares the Postgres truck registry: schema, fleet and locations.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := db.Open(context.Background(), databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	registryPath := config.Get("REGISTRY_PATH", "data/combined_logistics.json")
	locationsPath := config.Get("LOCATIONS_PATH", "")
	if err := initAndSeed(context.Background(), db, registryPath, locationsPath); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(ctx context.Context, db *sql.DB, registryPath, locationsPath string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitPostgresSchema(ctx, db); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}
	log.Println("Schema ready.")

	log.Printf("Seeding truck registry from %s...", registryPath)
	raw, err := os.ReadFile(registryPath)
	if err != nil {
		return fmt.Errorf("read registry %q: %w", registryPath, err)
	}
	fleet, err := registry.ParseFleet(raw)
	if err != nil {
		return fmt.Errorf("parse registry %q: %w", registryPath, err)
	}
	if err := registry.NewSQLRegistry(db).SaveFleet(ctx, fleet); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	log.Printf("Registry seeded trucks=%d active=%d.", len(fleet.Trucks), len(fleet.Active()))

	if locationsPath == "" {
		return nil
	}

	rows, err := locations.ReadLocationsJSON(locationsPath)
	if err != nil {
		return err
	}
	if err := locations.NewSQLLocationStore(db).PutMany(ctx, rows); err != nil {
		return fmt.Errorf("seeding locations failed: %w", err)
	}
	log.Printf("Locations seeded count=%d.", len(rows))

	return nil
}
