package http

import (
	"net/http"

	"github.com/MKhiriev/go-bug-triage/internal/logger"
	"github.com/MKhiriev/go-bug-triage/internal/utils"
	"github.com/MKhiriev/go-bug-triage/models"
	"github.com/go-chi/chi/v5"
)

// submitBug runs the full submission pipeline. The response is written only
// after the bug is persisted, so it may take as long as the classifier
// retries allow.
func (h *Handler) submitBug(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req models.SubmitBugRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	bug, err := h.services.BugService.SubmitBug(r.Context(), userID, req.DashboardID, req.Title, req.Description)
	if err != nil {
		writeServiceError(w, r, err, "error submitting bug")
		return
	}

	logger.FromRequest(r).Info().
		Str("bug_id", bug.BugID).
		Str("severity", bug.Severity.String()).
		Msg("bug submitted")

	_, _ = utils.WriteJSON(w, models.BugResponse{Bug: bug}, http.StatusCreated)
}

func (h *Handler) resolveBug(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	bugID := chi.URLParam(r, "bugID")
	bug, err := h.services.BugService.ResolveBug(r.Context(), userID, bugID)
	if err != nil {
		writeServiceError(w, r, err, "error resolving bug")
		return
	}

	_, _ = utils.WriteJSON(w, models.BugResponse{Bug: bug}, http.StatusOK)
}
