package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bug-triage/internal/logger"
	"github.com/MKhiriev/go-bug-triage/internal/store"
)

type membershipGuard struct {
	dashboardRepository store.DashboardRepository

	logger *logger.Logger
}

func NewMembershipGuard(dashboardRepository store.DashboardRepository, logger *logger.Logger) MembershipGuard {
	return &membershipGuard{
		dashboardRepository: dashboardRepository,
		logger:              logger,
	}
}

func (g *membershipGuard) IsMember(ctx context.Context, dashboardID, userID string) (bool, error) {
	if dashboardID == "" || userID == "" {
		return false, nil
	}

	ok, err := g.dashboardRepository.IsMember(ctx, dashboardID, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("dashboard_id", dashboardID).
			Str("user_id", userID).
			Msg("membership check failed")
		return false, fmt.Errorf("membership check failed: %w", err)
	}

	return ok, nil
}

// Require answers ErrForbidden for missing dashboards too, so callers
// cannot discover which dashboard IDs exist.
func (g *membershipGuard) Require(ctx context.Context, dashboardID, userID string) error {
	ok, err := g.IsMember(ctx, dashboardID, userID)
	if err != nil {
		return err
	}
	if !ok {
		logger.FromContext(ctx).Info().
			Str("dashboard_id", dashboardID).
			Str("user_id", userID).
			Msg("access to dashboard denied")
		return ErrForbidden
	}

	return nil
}
