package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-bug-triage/internal/service"
	"github.com/MKhiriev/go-bug-triage/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", fmt.Errorf("%w: title is required", service.ErrInvalidDataProvided), http.StatusBadRequest},
		{"wrong password", service.ErrWrongPassword, http.StatusUnauthorized},
		{"bad token", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{"forbidden", service.ErrForbidden, http.StatusForbidden},
		{"dashboard not found", fmt.Errorf("%w: %w", service.ErrDashboardNotFound, store.ErrNotFound), http.StatusNotFound},
		{"bug not found", service.ErrBugNotFound, http.StatusNotFound},
		{"user not found", service.ErrUserNotFound, http.StatusNotFound},
		{"email taken", fmt.Errorf("%w: %w", service.ErrEmailAlreadyRegistered, store.ErrEmailAlreadyExists), http.StatusConflict},
		{"already resolved", service.ErrBugAlreadyResolved, http.StatusConflict},
		{"key space exhausted", service.ErrAccessKeyExhausted, http.StatusServiceUnavailable},
		{"query failure", fmt.Errorf("bug persistence failed: %w", store.ErrExecutingQuery), http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteServiceError_ClientErrorCarriesMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	writeServiceError(rec, req, fmt.Errorf("%w: title is required", service.ErrInvalidDataProvided), "failed")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "invalid data provided: title is required", decodeError(t, rec))
}

func TestDecodeJSON_RejectsOversizedBody(t *testing.T) {
	body := `{"title":"` + strings.Repeat("a", maxBodyBytes) + `"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))

	var v map[string]string
	ok := decodeJSON(rec, req, &v)

	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCurrentUserID_MissingIdentity(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := currentUserID(rec, req)

	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
