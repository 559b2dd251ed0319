package http

import (
	"net/http"

	"github.com/MKhiriev/go-bug-triage/internal/utils"
	"github.com/MKhiriev/go-bug-triage/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	user, err := h.services.UserService.GetProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "error getting user profile")
		return
	}

	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.UserID = userID

	user, err := h.services.UserService.UpdateProfile(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "error updating user profile")
		return
	}

	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}
