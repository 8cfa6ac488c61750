package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetBool parses the environment value for key as a bool, or returns fallback
// when unset or empty.
func GetBool(key string, fallback bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: %s %q: %w", key, v, err)
	}
	return b, nil
}

// Config is the runtime configuration shared by the commands.
type Config struct {
	Port            string
	DBPath          string
	DatabaseURL     string
	RegistryPath    string
	CatchesSeedPath string
	LocationsPath   string
	Timezone        *time.Location
	AllDays         bool
}

// Load reads the environment. Call godotenv.Load first to pick up a .env file.
func Load() (Config, error) {
	cfg := Config{
		Port:            Get("PORT", "8080"),
		DBPath:          Get("DB_PATH", "data/app.db"),
		DatabaseURL:     strings.TrimSpace(os.Getenv("DATABASE_URL")),
		RegistryPath:    Get("REGISTRY_PATH", "data/combined_logistics.json"),
		CatchesSeedPath: strings.TrimSpace(os.Getenv("CATCHES_SEED_PATH")),
		LocationsPath:   strings.TrimSpace(os.Getenv("LOCATIONS_PATH")),
	}

	tz := Get("TIMEZONE", "Australia/Perth")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return Config{}, fmt.Errorf("config: TIMEZONE %q: %w", tz, err)
	}
	cfg.Timezone = loc

	allDays, err := GetBool("SCHEDULE_ALL_DAYS", false)
	if err != nil {
		return Config{}, err
	}
	cfg.AllDays = allDays

	return cfg, nil
}
