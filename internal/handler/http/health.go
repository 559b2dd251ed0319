package http

import (
	"net/http"

	"github.com/MKhiriev/go-bug-triage/internal/logger"
	"github.com/MKhiriev/go-bug-triage/internal/utils"
	"github.com/MKhiriev/go-bug-triage/models"
)

const (
	healthStatusOK       = "OK"
	databaseConnected    = "Connected"
	databaseDisconnected = "Disconnected"

	serviceInfoStatus = "API is running"
	serviceInfoName   = "Triage Backend"
)

// health reports database reachability: 200 when the ping succeeds, 500
// with the ping error otherwise.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AppInfoService.PingDatabase(r.Context()); err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("database ping failed")
		_, _ = utils.WriteJSON(w, models.HealthResponse{
			Database: databaseDisconnected,
			Error:    err.Error(),
		}, http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, models.HealthResponse{Status: healthStatusOK, Database: databaseConnected}, http.StatusOK)
}

func (h *Handler) serviceInfo(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteJSON(w, models.ServiceInfoResponse{Status: serviceInfoStatus, Service: serviceInfoName}, http.StatusOK)
}
