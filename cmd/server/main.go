package main

import (
	"catch-logistics-service/internal/adapters/locations"
	"catch-logistics-service/internal/adapters/registry"
	"catch-logistics-service/internal/adapters/repositories"
	"catch-logistics-service/internal/api"
	"catch-logistics-service/internal/config"
	"catch-logistics-service/internal/platform/db"
	"catch-logistics-service/internal/ports"
	"catch-logistics-service/internal/services"
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQLite catch store, JSON or Postgres registry)
// behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	store, err := openDB(cfg.DBPath)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	// Initialize schema and load optional seed files on startup.
	if err := initAndSeed(store, cfg); err != nil {
		log.Fatal(err)
	}

	// Postgres, when configured, owns both the fleet and the location overrides.
	var (
		reg       ports.TruckRegistry
		locSource ports.LocationSource
	)
	if cfg.DatabaseURL != "" {
		pg, err := db.Open(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pg.Close()
		reg = registry.NewSQLRegistry(pg)
		locSource = locations.NewSQLLocationStore(pg)
		log.Printf("Truck registry source=postgres")
	} else {
		reg = registry.NewJSONRegistry(cfg.RegistryPath)
		locSource = locations.NewSqliteLocationStore(store)
		log.Printf("Truck registry source=file path=%s", cfg.RegistryPath)
	}

	resolver, err := services.LoadLocationResolver(context.Background(), locSource)
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(api.Deps{
		Catches:   repositories.NewSqliteCatchRepository(store),
		Registry:  reg,
		Locations: resolver,
		Location:  cfg.Timezone,
		AllDays:   cfg.AllDays,
	})

	log.Printf("Server listening addr=:%s locations=%d tz=%s", cfg.Port, resolver.Len(), cfg.Timezone)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("openDB: create directory for %q: %w", dbPath, err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(store *sql.DB, cfg config.Config) error {
	if err := repositories.InitSchema(store); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if cfg.CatchesSeedPath != "" {
		if err := repositories.SeedCatchesFromCSV(store, cfg.CatchesSeedPath); err != nil {
			return fmt.Errorf("init and seed: %w", err)
		}
		log.Printf("Seeded catches path=%s", cfg.CatchesSeedPath)
	}

	if cfg.LocationsPath != "" {
		rows, err := locations.ReadLocationsJSON(cfg.LocationsPath)
		if err != nil {
			return fmt.Errorf("init and seed: %w", err)
		}
		if err := locations.NewSqliteLocationStore(store).PutMany(context.Background(), rows); err != nil {
			return fmt.Errorf("init and seed: %w", err)
		}
		log.Printf("Seeded locations path=%s count=%d", cfg.LocationsPath, len(rows))
	}

	return nil
}
