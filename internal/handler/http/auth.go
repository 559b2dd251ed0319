package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-bug-triage/internal/logger"
	"github.com/MKhiriev/go-bug-triage/internal/utils"
	"github.com/MKhiriev/go-bug-triage/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.AuthRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		writeServiceError(w, r, err, "user registration failed")
		return
	}

	h.issueToken(w, r, user, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.AuthRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeServiceError(w, r, err, "user login failed")
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", user.UserID).Msg("user successfully logged in")

	h.issueToken(w, r, user, http.StatusOK)
}

// issueToken answers with the signed token both in the Authorization
// header and in the body.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeServiceError(w, r, err, "creation of token failed")
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	_, _ = utils.WriteJSON(w, models.AuthResponse{Token: token.SignedString, User: user}, status)
}
