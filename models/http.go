package models

// AuthRequest carries credentials for registration and login.
// Password may be empty on login, in which case the account is looked up
// (or created) by Email alone.
type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Name     string `json:"name,omitempty"`
}

// UpdateProfileRequest is a partial profile update.
// Only non-nil fields are applied.
type UpdateProfileRequest struct {
	UserID    string  `json:"-"`
	Name      *string `json:"name,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

// CreateDashboardRequest is the body of POST /dashboards.
type CreateDashboardRequest struct {
	Name string `json:"name"`
}

// JoinDashboardRequest is the body of POST /dashboards/join.
type JoinDashboardRequest struct {
	AccessKey string `json:"accessKey"`
}

// SubmitBugRequest is the body of POST /bugs. UserID is taken from the
// authenticated session, never from the body.
type SubmitBugRequest struct {
	UserID      string `json:"-"`
	DashboardID string `json:"dashboardId"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
