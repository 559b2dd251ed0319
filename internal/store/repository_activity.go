package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-bug-triage/internal/logger"
	"github.com/MKhiriev/go-bug-triage/internal/utils"
	"github.com/MKhiriev/go-bug-triage/models"
)

type activityRepository struct {
	db          *DB
	idGenerator *utils.UUIDGenerator
	logger      *logger.Logger
}

// NewActivityRepository constructs an [ActivityRepository] backed by db.
func NewActivityRepository(db *DB, logger *logger.Logger) ActivityRepository {
	logger.Debug().Msg("creating activity repository")
	return &activityRepository{
		db:          db,
		idGenerator: utils.NewUUIDGenerator(),
		logger:      logger,
	}
}

// AppendActivity implements [ActivityRepository]. Redelivered activities keep
// their ID, so a retried append of an already stored row fails instead of
// duplicating it.
func (r *activityRepository) AppendActivity(ctx context.Context, activity models.Activity) error {
	log := logger.FromContext(ctx)

	if activity.ActivityID == "" {
		activity.ActivityID = r.idGenerator.Generate()
	}
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = time.Now().UTC()
	}

	query, args, err := buildAppendActivityQuery(r.db.builder, activity)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			// already stored by an earlier delivery
			return nil
		}
		log.Err(err).
			Str("func", "*activityRepository.AppendActivity").
			Str("dashboard_id", activity.DashboardID).
			Msg("error appending activity")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *activityRepository) ListActivities(ctx context.Context, dashboardID string, limit uint64) ([]models.Activity, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListActivitiesQuery(r.db.builder, dashboardID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*activityRepository.ListActivities").Str("dashboard_id", dashboardID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	activities := make([]models.Activity, 0, 32)
	for rows.Next() {
		var (
			a            models.Activity
			activityType string
		)
		if scanErr := rows.Scan(&a.ActivityID, &a.DashboardID, &a.Message, &activityType, &a.CreatedAt); scanErr != nil {
			log.Err(scanErr).Str("func", "*activityRepository.ListActivities").Msg("failed to scan activity row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		a.Type = models.ActivityType(activityType)
		activities = append(activities, a)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*activityRepository.ListActivities").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return activities, nil
}
