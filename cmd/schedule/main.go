package main

import (
	"catch-logistics-service/internal/adapters/ingest"
	"catch-logistics-service/internal/adapters/locations"
	"catch-logistics-service/internal/adapters/registry"
	"catch-logistics-service/internal/adapters/repositories"
	"catch-logistics-service/internal/api/dto"
	"catch-logistics-service/internal/config"
	"catch-logistics-service/internal/domain"
	"catch-logistics-service/internal/services"
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// schedule plans truck trips for a catch CSV and prints them as JSON.
//
//	schedule -registry combined_logistics.json -catches day.csv [-all-days] [-tz Australia/Perth]
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	allDaysDefault, err := config.GetBool("SCHEDULE_ALL_DAYS", false)
	if err != nil {
		log.Fatal(err)
	}

	registryPath := flag.String("registry", config.Get("REGISTRY_PATH", "data/combined_logistics.json"), "combined logistics JSON file")
	catchesPath := flag.String("catches", config.Get("CATCHES_SEED_PATH", ""), "catch CSV export")
	locationsPath := flag.String("locations", config.Get("LOCATIONS_PATH", ""), "optional JSON file of extra locations")
	allDays := flag.Bool("all-days", allDaysDefault, "schedule every offload day, not only the most recent")
	tz := flag.String("tz", config.Get("TIMEZONE", "Australia/Perth"), "time zone of offload dates")
	flag.Parse()

	if *catchesPath == "" {
		log.Fatal("-catches is required")
	}

	loc, err := time.LoadLocation(*tz)
	if err != nil {
		log.Fatalf("time zone %q: %v", *tz, err)
	}

	records, err := ingest.ReadCatchesCSVFile(*catchesPath)
	if err != nil {
		log.Fatal(err)
	}

	var overrides map[string]domain.LocationInfo
	if *locationsPath != "" {
		overrides, err = locations.ReadLocationsJSON(*locationsPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	schedule, err := services.PlanSchedule(
		context.Background(),
		services.PlanScheduleRequest{AllDays: *allDays, Location: loc},
		repositories.NewMemoryCatchRepository(records),
		registry.NewJSONRegistry(*registryPath),
		services.NewLocationResolver(overrides),
	)
	if err != nil {
		log.Fatal(err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dto.NewScheduleResponse(schedule)); err != nil {
		log.Fatal(err)
	}
}
