package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-bug-triage/internal/logger"
	"github.com/MKhiriev/go-bug-triage/internal/service"
	"github.com/MKhiriev/go-bug-triage/internal/store"
	"github.com/MKhiriev/go-bug-triage/internal/utils"
)

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 1 << 20

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrForbidden:               http.StatusForbidden,
	service.ErrUserNotFound:            http.StatusNotFound,
	service.ErrDashboardNotFound:       http.StatusNotFound,
	service.ErrBugNotFound:             http.StatusNotFound,
	service.ErrEmailAlreadyRegistered:  http.StatusConflict,
	service.ErrBugAlreadyResolved:      http.StatusConflict,
	service.ErrAccessKeyExhausted:      http.StatusServiceUnavailable,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrNotFound:           http.StatusNotFound,
	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrBugAlreadyResolved: http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err and answers with its mapped status. Client
// errors carry the error text; server errors only the status text.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
		message = http.StatusText(status)
	} else {
		log.Debug().Err(err).Int("status", status).Msg(msg)
	}

	utils.WriteError(w, message, status)
}

// decodeJSON reads a JSON body of at most maxBodyBytes into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return false
	}
	return true
}

// currentUserID returns the identity stored by the auth middleware.
func currentUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
	}
	return userID, ok
}
