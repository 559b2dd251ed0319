package store

import "github.com/MKhiriev/go-bug-triage/internal/logger"

// Storages groups every repository the service layer depends on.
type Storages struct {
	UserRepository      UserRepository
	DashboardRepository DashboardRepository
	BugRepository       BugRepository
	ActivityRepository  ActivityRepository
	Pinger              Pinger
}

// NewStorages wires all repositories on top of db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:      NewUserRepository(db, logger),
		DashboardRepository: NewDashboardRepository(db, logger),
		BugRepository:       NewBugRepository(db, logger),
		ActivityRepository:  NewActivityRepository(db, logger),
		Pinger:              db,
	}
}
