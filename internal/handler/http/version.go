package http

import (
	"net/http"

	"github.com/MKhiriev/go-bug-triage/internal/logger"
)

// getServerVersion answers with the configured build version as plain text.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(serverVersion)); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("error writing version")
	}
}
