// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-bug-triage/models"
)

// AuthService registers users and issues the bearer tokens of the API.
type AuthService interface {
	Register(ctx context.Context, req models.AuthRequest) (models.User, error)

	// Login authenticates by email. An unknown email creates the account
	// on the fly.
	Login(ctx context.Context, req models.AuthRequest) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService reads and edits the profile of the current user.
type UserService interface {
	GetProfile(ctx context.Context, userID string) (models.User, error)
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.User, error)
}

// MembershipGuard decides whether a user may act on a dashboard.
type MembershipGuard interface {
	// IsMember is false for a missing dashboard as well as for a
	// non-member. Store failures are returned as errors, never as false.
	IsMember(ctx context.Context, dashboardID, userID string) (bool, error)

	// Require returns ErrForbidden unless IsMember is true.
	Require(ctx context.Context, dashboardID, userID string) error
}

// DashboardService manages dashboards and memberships.
type DashboardService interface {
	CreateDashboard(ctx context.Context, userID string, req models.CreateDashboardRequest) (models.Dashboard, error)
	ListDashboards(ctx context.Context, userID string) ([]models.Dashboard, error)
	JoinDashboard(ctx context.Context, userID string, req models.JoinDashboardRequest) (models.Dashboard, error)
	PurgeDashboard(ctx context.Context, userID, dashboardID string) error
	ListActivities(ctx context.Context, userID, dashboardID string) ([]models.Activity, error)
}

// BugService runs the bug submission pipeline and the bug lifecycle.
type BugService interface {
	// SubmitBug validates the report, checks membership, classifies the
	// severity, persists the bug and records an audit entry.
	SubmitBug(ctx context.Context, userID, dashboardID, title, description string) (models.Bug, error)

	ListBugs(ctx context.Context, userID, dashboardID string) ([]models.Bug, error)
	ResolveBug(ctx context.Context, userID, bugID string) (models.Bug, error)
}

// AuditService records dashboard activity. Callers treat failures as
// non-fatal.
type AuditService interface {
	Record(ctx context.Context, dashboardID, message string, activityType models.ActivityType) error
}

// AppInfoService exposes build and health information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string

	// PingDatabase reports whether the database answers.
	PingDatabase(ctx context.Context) error
}
