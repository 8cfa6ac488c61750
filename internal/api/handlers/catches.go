package handlers

import (
	"catch-logistics-service/internal/api/dto"
	"catch-logistics-service/internal/ports"
	"log"
	"net/http"
)

// CatchHandler exposes the stored catch records.
type CatchHandler struct {
	Repo ports.CatchRepository
}

func (h *CatchHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	records, err := h.Repo.ListCatches(r.Context())
	if err != nil {
		log.Printf("list catches failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListCatchesResponse{
		Catches: make([]dto.CatchRecord, 0, len(records)),
	}
	for _, c := range records {
		res.Catches = append(res.Catches, dto.NewCatchRecord(c))
	}

	writeJSON(w, r, http.StatusOK, res)
}
