package models

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// DashboardResponse wraps a single dashboard.
type DashboardResponse struct {
	Dashboard Dashboard `json:"dashboard"`
}

// JoinDashboardResponse confirms a join by access key.
type JoinDashboardResponse struct {
	Message   string    `json:"message"`
	Dashboard Dashboard `json:"dashboard"`
}

// BugResponse wraps a single bug.
type BugResponse struct {
	Bug Bug `json:"bug"`
}

// ServiceInfoResponse is returned by GET /.
type ServiceInfoResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// HealthResponse is returned by GET /health. Error is set only when the
// database is unreachable.
type HealthResponse struct {
	Status   string `json:"status,omitempty"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}
