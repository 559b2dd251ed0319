package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/MKhiriev/go-bug-triage/internal/logger"
	"github.com/MKhiriev/go-bug-triage/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type accessLogKey struct{}

// accessLog collects facts that only inner middleware learns, such as the
// authenticated user.
type accessLog struct {
	userID string
}

// setAccessLogUser records the authenticated user for the access log line.
func setAccessLogUser(ctx context.Context, userID string) {
	if entry, ok := ctx.Value(accessLogKey{}).(*accessLog); ok {
		entry.userID = userID
	}
}

// withLogging writes one access log line per request. Besides method, uri,
// status, size and duration the line carries the matched route pattern, the
// dashboard and bug ids from the path, the user set by auth and, for failed
// requests, the error message sent to the client.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		entry := &accessLog{}
		r = r.WithContext(context.WithValue(r.Context(), accessLogKey{}, entry))

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}

		event := accessLogEvent(log, status).
			Str("uri", uri).
			Str("method", method).
			Int("status", status).
			Dur("duration", duration).
			Int("size", lw.size)

		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				event.Str("route", pattern)
			}
			if id := rctx.URLParam("dashboardID"); id != "" {
				event.Str("dashboard_id", id)
			}
			if id := rctx.URLParam("bugID"); id != "" {
				event.Str("bug_id", id)
			}
		}
		if entry.userID != "" {
			event.Str("user_id", entry.userID)
		}
		if status >= http.StatusBadRequest {
			var body utils.ErrorResponse
			if json.Unmarshal(lw.errBody.Bytes(), &body) == nil && body.Error != "" {
				event.Str("error", body.Error)
			}
		}

		event.Send()
	})
}

func accessLogEvent(log *logger.Logger, status int) *zerolog.Event {
	switch {
	case status >= http.StatusInternalServerError:
		return log.Error()
	case status >= http.StatusBadRequest:
		return log.Warn()
	default:
		return log.Info()
	}
}
