package handlers

import (
	"catch-logistics-service/internal/api/dto"
	"catch-logistics-service/internal/domain"
	"catch-logistics-service/internal/ports"
	"catch-logistics-service/internal/services"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"
)

type ScheduleHandler struct {
	Repo      ports.CatchRepository
	Registry  ports.TruckRegistry
	Locations ports.LocationResolver
	// Zone for offload dates sent as plain strings.
	Location *time.Location
	// Default when the request does not set all_days.
	AllDays bool
}

// Create plans truck trips for the posted catches, or for the stored catches
// when the body has none.
func (h *ScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ScheduleRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil && err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	allDays := h.AllDays
	if req.AllDays != nil {
		allDays = *req.AllDays
	}

	svcReq := services.PlanScheduleRequest{
		AllDays:  allDays,
		Location: h.Location,
	}
	if req.Catches != nil {
		svcReq.Catches = make([]domain.CatchRecord, 0, len(req.Catches))
		for _, c := range req.Catches {
			svcReq.Catches = append(svcReq.Catches, c.ToDomain())
		}
	}

	schedule, err := services.PlanSchedule(r.Context(), svcReq, h.Repo, h.Registry, h.Locations)
	if err != nil {
		log.Printf("plan schedule failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewScheduleResponse(schedule))
}
