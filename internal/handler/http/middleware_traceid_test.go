package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-bug-triage/internal/logger"
	"github.com/MKhiriev/go-bug-triage/internal/service"
	"github.com/MKhiriev/go-bug-triage/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newNopHandler builds a Handler with a nop logger for middleware tests.
func newNopHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

func TestWithTraceID_TableTest(t *testing.T) {
	tests := []struct {
		name            string
		requestTraceID  string
		wantSameTraceID bool
	}{
		{name: "no header, id generated"},
		{name: "uuid from client reused", requestTraceID: "550e8400-e29b-41d4-a716-446655440000", wantSameTraceID: true},
		{name: "free text replaced", requestTraceID: "my-custom-trace-id"},
		{name: "forged log line replaced", requestTraceID: `x","user_id":"admin`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			nextCalled := false

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				logger.FromRequest(r).Info().Msg("submitting bug")
				w.WriteHeader(http.StatusCreated)
			})

			h := newLoggedHandler(t, &service.Services{}, &logBuf)
			req := httptest.NewRequest(http.MethodPost, "/bugs", nil)
			if tt.requestTraceID != "" {
				req.Header.Set(traceIDHeader, tt.requestTraceID)
			}

			rr := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rr, req)

			responseTraceID := rr.Header().Get(traceIDHeader)
			_, err := uuid.Parse(responseTraceID)
			require.NoError(t, err, "trace id must be a UUID, got %q", responseTraceID)

			if tt.wantSameTraceID {
				assert.Equal(t, tt.requestTraceID, responseTraceID)
			} else {
				assert.NotEqual(t, tt.requestTraceID, responseTraceID)
			}

			assert.True(t, nextCalled)
			assert.Equal(t, http.StatusCreated, rr.Code)
			assert.Contains(t, logBuf.String(), `"trace_id":"`+responseTraceID+`"`)
			assert.NotContains(t, logBuf.String(), `"user_id"`)
		})
	}
}

func TestWithTraceID_GeneratesUniqueIDs(t *testing.T) {
	h := newNopHandler()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		rr := httptest.NewRecorder()
		h.withTraceID(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/dashboards", nil))
		id := rr.Header().Get(traceIDHeader)

		_, duplicate := seen[id]
		assert.False(t, duplicate, "duplicate trace ID generated: %s", id)
		seen[id] = struct{}{}
	}
}

// The trace id reaches handler logs and the access log through Init.
func TestWithTraceID_ViaInit(t *testing.T) {
	var logBuf bytes.Buffer
	dashboards := &mockDashboardService{
		createFn: func(ctx context.Context, _ string, req models.CreateDashboardRequest) (models.Dashboard, error) {
			logger.FromContext(ctx).Info().Str("name", req.Name).Msg("creating dashboard")
			return models.Dashboard{DashboardID: "d-1", Name: req.Name}, nil
		},
	}
	h := newLoggedHandler(t, &service.Services{AuthService: authAs("user-1"), DashboardService: dashboards}, &logBuf)

	const traceID = "0190b7a4-7c1e-7d2a-9a3b-1f2e3d4c5b6a"
	req := httptest.NewRequest(http.MethodPost, "/dashboards", jsonBody(t, models.CreateDashboardRequest{Name: "Mobile"}))
	req.Header.Set("Authorization", "Bearer test-token")
	req.Header.Set(traceIDHeader, traceID)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, traceID, rec.Header().Get(traceIDHeader))
	assert.Contains(t, logBuf.String(), `"message":"creating dashboard"`)
	assert.Equal(t, traceID, accessLine(t, &logBuf)["trace_id"])
	assert.Equal(t, 2, bytes.Count(logBuf.Bytes(), []byte(`"trace_id":"`+traceID+`"`)))
}

func TestWithTraceID_OriginalRequestNotMutated(t *testing.T) {
	h := newNopHandler()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	originalCtx := req.Context()
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, originalCtx, req.Context(), "original request context should not be mutated")
}
