package models

import "time"

// Dashboard is a shared workspace. Users join it with the access key and
// file bugs against it.
type Dashboard struct {
	DashboardID string    `json:"id"`
	Name        string    `json:"name"`
	AccessKey   string    `json:"accessKey"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Dashboard model.
func (d Dashboard) TableName() string {
	return "dashboards"
}
