// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
)

// maxCapturedErrorBody bounds how much of a failed response the access log keeps.
const maxCapturedErrorBody = 512

// responseWriter wraps [http.ResponseWriter] for the access log. It records
// the status and the number of body bytes, and keeps the head of the body of
// 4xx and 5xx responses so the log line can carry the error message. Bodies
// of successful responses (bug lists, dashboards) are never retained.
type responseWriter struct {
	http.ResponseWriter

	// status is zero until WriteHeader or the first Write.
	status      int
	wroteHeader bool

	// size counts every body byte passed to the underlying writer.
	size int

	// errBody holds at most maxCapturedErrorBody bytes, and only when status >= 400.
	errBody bytes.Buffer
}

// WriteHeader forwards the first status code and ignores later ones.
func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n

	if w.status >= http.StatusBadRequest {
		if room := maxCapturedErrorBody - w.errBody.Len(); room > 0 {
			w.errBody.Write(b[:min(n, room)])
		}
	}
	return n, err
}

// Unwrap lets [http.ResponseController] reach the underlying writer.
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
