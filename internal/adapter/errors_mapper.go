package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"syscall"

	"github.com/MKhiriev/go-bug-triage/models"
	"github.com/go-resty/resty/v2"
)

type classifyResponse struct {
	Severity *string `json:"severity"`
}

// mapTransportError turns an error returned by the HTTP client into an
// attempt outcome. parent is the caller context; a done parent always
// yields OutcomeCancelled, whatever the transport reported.
func mapTransportError(parent context.Context, err error) AttemptOutcome {
	if parent.Err() != nil {
		return cancelled(fmt.Errorf("%w: %w", ErrClassifierCancelled, parent.Err()))
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return retryable(fmt.Errorf("%w: %w", ErrClassifierTimeout, err))
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return retryable(fmt.Errorf("%w: %w", ErrClassifierTimeout, err))
	}

	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNABORTED) ||
		errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) {
		return retryable(fmt.Errorf("%w: %w", ErrClassifierUnavailable, err))
	}

	return fatal(fmt.Errorf("%w: %w", ErrClassifierTransport, err))
}

// mapResponse turns a completed HTTP exchange into an attempt outcome.
func mapResponse(resp *resty.Response) AttemptOutcome {
	status := resp.StatusCode()

	switch status {
	case http.StatusTooManyRequests:
		return rateLimited(fmt.Errorf("%w: http %d", ErrClassifierRateLimited, status))
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return retryable(fmt.Errorf("%w: http %d", ErrClassifierUnavailable, status))
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		body := strings.TrimSpace(string(resp.Body()))
		if body == "" {
			body = http.StatusText(status)
		}
		return fatal(fmt.Errorf("%w: http %d: %s", ErrClassifierStatus, status, body))
	}

	var payload classifyResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return fatal(fmt.Errorf("%w: %w", ErrClassifierMalformed, err))
	}
	if payload.Severity == nil {
		return fatal(fmt.Errorf("%w: missing severity", ErrClassifierMalformed))
	}

	severity, ok := models.ParseSeverity(*payload.Severity)
	if !ok {
		return fatal(fmt.Errorf("%w: %q", ErrClassifierUnknownLabel, *payload.Severity))
	}

	return success(severity)
}
