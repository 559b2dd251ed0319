package models

import "time"

// BugStatus is the lifecycle state of a bug. The only allowed transition
// is OPEN -> RESOLVED.
type BugStatus string

const (
	BugStatusOpen     BugStatus = "OPEN"
	BugStatusResolved BugStatus = "RESOLVED"
)

// Bug is a report filed against a dashboard.
type Bug struct {
	BugID       string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Severity    Severity  `json:"severity"`
	Status      BugStatus `json:"status"`
	DashboardID string    `json:"dashboardId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Bug model.
func (b Bug) TableName() string {
	return "bugs"
}

// Comment is a note left on a bug. Comments are removed together with
// their bug.
type Comment struct {
	CommentID string    `json:"id"`
	BugID     string    `json:"bugId"`
	UserID    string    `json:"userId"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}
