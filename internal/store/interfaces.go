// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-bug-triage/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with ID and CreatedAt set.
	// Returns [ErrEmailAlreadyExists] if the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns [ErrNotFound] if no user has email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns [ErrNotFound] if no user has userID.
	FindUserByID(ctx context.Context, userID string) (models.User, error)

	// UpdateProfile applies the non-nil fields of req and returns the
	// updated user.
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.User, error)
}

// DashboardRepository persists dashboards and their memberships.
type DashboardRepository interface {
	// CreateDashboard inserts dashboard and registers ownerID as its first
	// member in one transaction. Returns [ErrAccessKeyAlreadyExists] on an
	// access key collision.
	CreateDashboard(ctx context.Context, dashboard models.Dashboard, ownerID string) (models.Dashboard, error)

	FindDashboardByID(ctx context.Context, dashboardID string) (models.Dashboard, error)
	FindDashboardByAccessKey(ctx context.Context, accessKey string) (models.Dashboard, error)
	ListDashboardsForUser(ctx context.Context, userID string) ([]models.Dashboard, error)

	// AddMember is idempotent; added is false when userID already was a
	// member.
	AddMember(ctx context.Context, dashboardID, userID string) (added bool, err error)

	// IsMember reports whether userID belongs to dashboardID. A missing
	// dashboard yields false, not an error.
	IsMember(ctx context.Context, dashboardID, userID string) (bool, error)

	// PurgeDashboard deletes the dashboard; members, bugs, comments and
	// activities go with it. Returns [ErrNotFound] if nothing was deleted.
	PurgeDashboard(ctx context.Context, dashboardID string) error
}

// BugRepository persists bug reports.
type BugRepository interface {
	// CreateBug inserts bug and returns it with ID, Status and CreatedAt set.
	CreateBug(ctx context.Context, bug models.Bug) (models.Bug, error)

	FindBugByID(ctx context.Context, bugID string) (models.Bug, error)

	// ListBugsByDashboard returns the dashboard's bugs, newest first.
	ListBugsByDashboard(ctx context.Context, dashboardID string) ([]models.Bug, error)

	// ResolveBug moves an OPEN bug to RESOLVED. Returns
	// [ErrBugAlreadyResolved] when no OPEN bug with bugID exists.
	ResolveBug(ctx context.Context, bugID string) error
}

// ActivityRepository is the append-only activity log.
type ActivityRepository interface {
	AppendActivity(ctx context.Context, activity models.Activity) error

	// ListActivities returns up to limit activities of the dashboard,
	// newest first. A zero limit means no limit.
	ListActivities(ctx context.Context, dashboardID string, limit uint64) ([]models.Activity, error)
}

// Pinger reports database reachability.
type Pinger interface {
	PingContext(ctx context.Context) error
}
