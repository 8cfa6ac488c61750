package handlers

import (
	"catch-logistics-service/internal/api/dto"
	"catch-logistics-service/internal/ports"
	"log"
	"net/http"
)

type TruckHandler struct {
	Registry ports.TruckRegistry
}

// List returns the active fleet and the logistics constants.
func (h *TruckHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	fleet, err := h.Registry.LoadFleet(r.Context())
	if err != nil {
		log.Printf("load fleet failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewFleetResponse(fleet))
}
