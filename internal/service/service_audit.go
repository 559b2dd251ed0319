package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bug-triage/internal/clock"
	"github.com/MKhiriev/go-bug-triage/internal/logger"
	"github.com/MKhiriev/go-bug-triage/internal/queue"
	"github.com/MKhiriev/go-bug-triage/internal/store"
	"github.com/MKhiriev/go-bug-triage/internal/utils"
	"github.com/MKhiriev/go-bug-triage/models"
)

// auditService hands activities to the audit worker through the queue and
// writes them directly when the queue does not accept them.
type auditService struct {
	queue              queue.ActivityQueue
	activityRepository store.ActivityRepository
	idGenerator        *utils.UUIDGenerator
	clock              clock.Clock

	logger *logger.Logger
}

func NewAuditService(activityQueue queue.ActivityQueue, activityRepository store.ActivityRepository, clk clock.Clock, logger *logger.Logger) AuditService {
	if clk == nil {
		clk = clock.Real()
	}
	return &auditService{
		queue:              activityQueue,
		activityRepository: activityRepository,
		idGenerator:        utils.NewUUIDGenerator(),
		clock:              clk,
		logger:             logger,
	}
}

// Record assigns the activity ID up front so that worker redeliveries
// stay idempotent.
func (s *auditService) Record(ctx context.Context, dashboardID, message string, activityType models.ActivityType) error {
	log := logger.FromContext(ctx)

	activity := models.Activity{
		ActivityID:  s.idGenerator.Generate(),
		DashboardID: dashboardID,
		Message:     message,
		Type:        activityType,
		CreatedAt:   s.clock.Now().UTC(),
	}

	if s.queue != nil {
		err := s.queue.Push(ctx, activity)
		if err == nil {
			return nil
		}
		log.Warn().Err(err).
			Bool("queue_full", errors.Is(err, queue.ErrQueueFull)).
			Str("dashboard_id", dashboardID).
			Msg("activity queue rejected entry, writing directly")
	}

	if err := s.activityRepository.AppendActivity(context.WithoutCancel(ctx), activity); err != nil {
		log.Err(err).
			Str("dashboard_id", dashboardID).
			Str("type", string(activityType)).
			Msg("activity append failed")
		return fmt.Errorf("activity append failed: %w", err)
	}

	return nil
}
