// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-bug-triage/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 when a path such as /dashboards/{dashboardID}/bugs exists
// but the method does not. The triage API hides such routes instead: unless
// the method resolves through [chi.Mux.Match] (parameterised segments
// included) the caller gets the same JSON 404 as for an unknown path.
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			notFound(w, r)
			return
		}

		// re-dispatch with an empty routing context, the current one is spent
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, nil))
		router.ServeHTTP(w, r)
	}
}

// notFound is the JSON body for unknown routes and hidden methods.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, "route "+r.Method+" "+r.URL.Path+" not found", http.StatusNotFound)
}
