package api

import (
	"catch-logistics-service/internal/api/handlers"
	"catch-logistics-service/internal/ports"
	"net/http"
	"time"
)

// Deps are the ports the HTTP API is built on.
type Deps struct {
	Catches   ports.CatchRepository
	Registry  ports.TruckRegistry
	Locations ports.LocationResolver
	// Zone for string offload dates.
	Location *time.Location
	// Schedule every day unless a request says otherwise.
	AllDays bool
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// Handlers only see ports, never concrete adapters.
func NewRouter(d Deps) http.Handler {
	mux := http.NewServeMux()

	catchHandler := &handlers.CatchHandler{Repo: d.Catches}
	truckHandler := &handlers.TruckHandler{Registry: d.Registry}
	scheduleHandler := &handlers.ScheduleHandler{
		Repo:      d.Catches,
		Registry:  d.Registry,
		Locations: d.Locations,
		Location:  d.Location,
		AllDays:   d.AllDays,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/catches", catchHandler.List)
	mux.HandleFunc("/trucks", truckHandler.List)
	mux.HandleFunc("/schedules", scheduleHandler.Create)

	return loggingMiddleware(mux)
}
