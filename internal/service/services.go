package service

import (
	"github.com/MKhiriev/go-bug-triage/internal/adapter"
	"github.com/MKhiriev/go-bug-triage/internal/clock"
	"github.com/MKhiriev/go-bug-triage/internal/config"
	"github.com/MKhiriev/go-bug-triage/internal/logger"
	"github.com/MKhiriev/go-bug-triage/internal/queue"
	"github.com/MKhiriev/go-bug-triage/internal/store"
)

type Services struct {
	AuthService      AuthService
	UserService      UserService
	MembershipGuard  MembershipGuard
	DashboardService DashboardService
	BugService       BugService
	AuditService     AuditService
	AppInfoService   AppInfoService
}

func NewServices(
	storages *store.Storages,
	activityQueue queue.ActivityQueue,
	classifier adapter.SeverityClassifier,
	cfg config.StructuredConfig,
	clk clock.Clock,
	logger *logger.Logger,
) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, storages.Pinger, logger)
	if err != nil {
		return nil, err
	}

	guard := NewMembershipGuard(storages.DashboardRepository, logger)
	audit := NewAuditService(activityQueue, storages.ActivityRepository, clk, logger)

	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, cfg.App, logger),
		UserService:      NewUserService(storages.UserRepository, logger),
		MembershipGuard:  guard,
		DashboardService: NewDashboardService(storages.DashboardRepository, storages.ActivityRepository, guard, audit, logger),
		BugService:       NewBugService(storages.BugRepository, guard, classifier, audit, logger),
		AuditService:     audit,
		AppInfoService:   appInfoService,
	}, nil
}
