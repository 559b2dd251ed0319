package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-bug-triage/internal/logger"
	"github.com/MKhiriev/go-bug-triage/internal/store"
	"github.com/MKhiriev/go-bug-triage/internal/utils"
	"github.com/MKhiriev/go-bug-triage/internal/validators"
	"github.com/MKhiriev/go-bug-triage/models"
)

const (
	// accessKeyAttempts bounds key regeneration after collisions.
	accessKeyAttempts = 5

	// activitiesLimit is the size of the activity feed page.
	activitiesLimit = 50
)

type dashboardService struct {
	dashboardRepository store.DashboardRepository
	activityRepository  store.ActivityRepository
	guard               MembershipGuard
	audit               AuditService
	validator           validators.Validator
	generateAccessKey   func() (string, error)

	logger *logger.Logger
}

func NewDashboardService(
	dashboardRepository store.DashboardRepository,
	activityRepository store.ActivityRepository,
	guard MembershipGuard,
	audit AuditService,
	logger *logger.Logger,
) DashboardService {
	return &dashboardService{
		dashboardRepository: dashboardRepository,
		activityRepository:  activityRepository,
		guard:               guard,
		audit:               audit,
		validator:           validators.NewTriageValidator(),
		generateAccessKey:   utils.GenerateAccessKey,
		logger:              logger,
	}
}

// CreateDashboard stores a new dashboard with a fresh access key and makes
// userID its first member.
func (s *dashboardService) CreateDashboard(ctx context.Context, userID string, req models.CreateDashboardRequest) (models.Dashboard, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Dashboard{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	name := strings.TrimSpace(req.Name)

	for attempt := 1; attempt <= accessKeyAttempts; attempt++ {
		accessKey, err := s.generateAccessKey()
		if err != nil {
			return models.Dashboard{}, err
		}

		dashboard, err := s.dashboardRepository.CreateDashboard(ctx, models.Dashboard{Name: name, AccessKey: accessKey}, userID)
		if errors.Is(err, store.ErrAccessKeyAlreadyExists) {
			log.Debug().Int("attempt", attempt).Msg("access key collision, regenerating")
			continue
		}
		if err != nil {
			log.Err(err).Str("user_id", userID).Msg("dashboard creation failed")
			return models.Dashboard{}, fmt.Errorf("dashboard creation failed: %w", err)
		}

		s.record(ctx, dashboard.DashboardID, fmt.Sprintf("Dashboard %q created", dashboard.Name), models.ActivityDashboardCreated)
		return dashboard, nil
	}

	log.Error().Int("attempts", accessKeyAttempts).Msg("access key space exhausted")
	return models.Dashboard{}, ErrAccessKeyExhausted
}

func (s *dashboardService) ListDashboards(ctx context.Context, userID string) ([]models.Dashboard, error) {
	dashboards, err := s.dashboardRepository.ListDashboardsForUser(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("listing dashboards failed")
		return nil, fmt.Errorf("listing dashboards failed: %w", err)
	}

	return dashboards, nil
}

// JoinDashboard adds userID to the dashboard owning the access key. Keys
// compare case-insensitively. Joining twice is not an error and records no
// second activity.
func (s *dashboardService) JoinDashboard(ctx context.Context, userID string, req models.JoinDashboardRequest) (models.Dashboard, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Dashboard{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	accessKey := utils.NormalizeAccessKey(req.AccessKey)
	if !utils.IsValidAccessKey(accessKey) {
		return models.Dashboard{}, ErrDashboardNotFound
	}

	dashboard, err := s.dashboardRepository.FindDashboardByAccessKey(ctx, accessKey)
	if errors.Is(err, store.ErrNotFound) {
		return models.Dashboard{}, fmt.Errorf("%w: %w", ErrDashboardNotFound, err)
	}
	if err != nil {
		log.Err(err).Msg("dashboard lookup by access key failed")
		return models.Dashboard{}, fmt.Errorf("dashboard lookup by access key failed: %w", err)
	}

	added, err := s.dashboardRepository.AddMember(ctx, dashboard.DashboardID, userID)
	if err != nil {
		log.Err(err).Str("dashboard_id", dashboard.DashboardID).Str("user_id", userID).Msg("adding member failed")
		return models.Dashboard{}, fmt.Errorf("adding member failed: %w", err)
	}

	if added {
		who := "A new member"
		if email, ok := utils.GetEmailFromContext(ctx); ok {
			who = email
		}
		s.record(ctx, dashboard.DashboardID, who+" joined the dashboard", models.ActivityUserJoined)
	}

	return dashboard, nil
}

// PurgeDashboard deletes the dashboard with everything filed against it.
func (s *dashboardService) PurgeDashboard(ctx context.Context, userID, dashboardID string) error {
	if err := s.guard.Require(ctx, dashboardID, userID); err != nil {
		return err
	}

	err := s.dashboardRepository.PurgeDashboard(ctx, dashboardID)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrDashboardNotFound, err)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("dashboard_id", dashboardID).Msg("dashboard purge failed")
		return fmt.Errorf("dashboard purge failed: %w", err)
	}

	logger.FromContext(ctx).Info().Str("dashboard_id", dashboardID).Str("user_id", userID).Msg("dashboard purged")
	return nil
}

func (s *dashboardService) ListActivities(ctx context.Context, userID, dashboardID string) ([]models.Activity, error) {
	if err := s.guard.Require(ctx, dashboardID, userID); err != nil {
		return nil, err
	}

	activities, err := s.activityRepository.ListActivities(ctx, dashboardID, activitiesLimit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("dashboard_id", dashboardID).Msg("listing activities failed")
		return nil, fmt.Errorf("listing activities failed: %w", err)
	}

	return activities, nil
}

func (s *dashboardService) record(ctx context.Context, dashboardID, message string, activityType models.ActivityType) {
	if err := s.audit.Record(context.WithoutCancel(ctx), dashboardID, message, activityType); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("dashboard_id", dashboardID).Msg("activity was not recorded")
	}
}
