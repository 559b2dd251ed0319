package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-bug-triage/internal/utils"
	"github.com/MKhiriev/go-bug-triage/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createDashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req models.CreateDashboardRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	dashboard, err := h.services.DashboardService.CreateDashboard(r.Context(), userID, req)
	if err != nil {
		writeServiceError(w, r, err, "error creating dashboard")
		return
	}

	_, _ = utils.WriteJSON(w, models.DashboardResponse{Dashboard: dashboard}, http.StatusCreated)
}

func (h *Handler) listDashboards(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	dashboards, err := h.services.DashboardService.ListDashboards(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "error listing dashboards")
		return
	}
	if dashboards == nil {
		dashboards = []models.Dashboard{}
	}

	_, _ = utils.WriteJSON(w, dashboards, http.StatusOK)
}

func (h *Handler) joinDashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req models.JoinDashboardRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	dashboard, err := h.services.DashboardService.JoinDashboard(r.Context(), userID, req)
	if err != nil {
		writeServiceError(w, r, err, "error joining dashboard")
		return
	}

	_, _ = utils.WriteJSON(w, models.JoinDashboardResponse{
		Message:   fmt.Sprintf("Joined dashboard %q", dashboard.Name),
		Dashboard: dashboard,
	}, http.StatusOK)
}

func (h *Handler) purgeDashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	dashboardID := chi.URLParam(r, "dashboardID")
	if err := h.services.DashboardService.PurgeDashboard(r.Context(), userID, dashboardID); err != nil {
		writeServiceError(w, r, err, "error purging dashboard")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listBugs(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	dashboardID := chi.URLParam(r, "dashboardID")
	bugs, err := h.services.BugService.ListBugs(r.Context(), userID, dashboardID)
	if err != nil {
		writeServiceError(w, r, err, "error listing bugs")
		return
	}
	if bugs == nil {
		bugs = []models.Bug{}
	}

	_, _ = utils.WriteJSON(w, bugs, http.StatusOK)
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	dashboardID := chi.URLParam(r, "dashboardID")
	activities, err := h.services.DashboardService.ListActivities(r.Context(), userID, dashboardID)
	if err != nil {
		writeServiceError(w, r, err, "error listing activities")
		return
	}
	if activities == nil {
		activities = []models.Activity{}
	}

	_, _ = utils.WriteJSON(w, activities, http.StatusOK)
}
