package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-tax-jurisdictions/internal/utils"
	"github.com/MKhiriev/go-tax-jurisdictions/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.VersionResponse{Version: h.services.AppInfoService.GetAppVersion(r.Context())}, http.StatusOK)
}

// health is unauthenticated. It answers 503 when the database ping fails.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	resp := models.HealthResponse{
		Status:    "OK",
		Database:  "connected",
		Type:      "PostgreSQL",
		Timestamp: time.Now().UTC(),
	}
	status := http.StatusOK

	if err := h.services.HealthService.Check(r.Context()); err != nil {
		resp.Status = "ERROR"
		resp.Database = "disconnected"
		status = http.StatusServiceUnavailable
	}

	utils.WriteJSON(w, resp, status)
}
