package models

import "time"

// ActivityType tags an entry of the dashboard audit feed.
type ActivityType string

const (
	ActivityBugCreated       ActivityType = "bug-created"
	ActivityBugResolved      ActivityType = "bug-resolved"
	ActivityUserJoined       ActivityType = "user-joined"
	ActivityDashboardCreated ActivityType = "dashboard-created"
)

// Activity is an append-only audit entry of a dashboard.
type Activity struct {
	ActivityID  string       `json:"id"`
	DashboardID string       `json:"dashboardId"`
	Message     string       `json:"message"`
	Type        ActivityType `json:"type"`
	CreatedAt   time.Time    `json:"createdAt"`

	// Deliveries counts failed attempts to persist the entry. It is only
	// meaningful while the entry sits in the audit queue.
	Deliveries int `json:"deliveries,omitempty"`
}
