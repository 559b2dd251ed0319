package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-bug-triage/internal/logger"
	"github.com/MKhiriev/go-bug-triage/internal/utils"
	"github.com/MKhiriev/go-bug-triage/models"
	sq "github.com/Masterminds/squirrel"
)

type dashboardRepository struct {
	db          *DB
	idGenerator *utils.UUIDGenerator
	logger      *logger.Logger
}

// NewDashboardRepository constructs a [DashboardRepository] backed by db.
func NewDashboardRepository(db *DB, logger *logger.Logger) DashboardRepository {
	logger.Debug().Msg("creating dashboard repository")
	return &dashboardRepository{
		db:          db,
		idGenerator: utils.NewUUIDGenerator(),
		logger:      logger,
	}
}

func (r *dashboardRepository) CreateDashboard(ctx context.Context, dashboard models.Dashboard, ownerID string) (models.Dashboard, error) {
	log := logger.FromContext(ctx)

	if dashboard.DashboardID == "" {
		dashboard.DashboardID = r.idGenerator.Generate()
	}
	if dashboard.CreatedAt.IsZero() {
		dashboard.CreatedAt = time.Now().UTC()
	}

	insertDashboard, dashboardArgs, err := buildCreateDashboardQuery(r.db.builder, dashboard)
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	insertMember, memberArgs, err := buildAddMemberQuery(r.db.builder, dashboard.DashboardID, ownerID)
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withTx(ctx, func(tx *sql.Tx) error {
		if _, execErr := tx.ExecContext(ctx, insertDashboard, dashboardArgs...); execErr != nil {
			if isUniqueViolation(execErr) {
				return ErrAccessKeyAlreadyExists
			}
			return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
		}
		if _, execErr := tx.ExecContext(ctx, insertMember, memberArgs...); execErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*dashboardRepository.CreateDashboard").Msg("error creating dashboard")
		return models.Dashboard{}, err
	}

	return dashboard, nil
}

func (r *dashboardRepository) FindDashboardByID(ctx context.Context, dashboardID string) (models.Dashboard, error) {
	return r.findDashboard(ctx, sq.Eq{"id": dashboardID}, "*dashboardRepository.FindDashboardByID")
}

func (r *dashboardRepository) FindDashboardByAccessKey(ctx context.Context, accessKey string) (models.Dashboard, error) {
	return r.findDashboard(ctx, sq.Eq{"access_key": accessKey}, "*dashboardRepository.FindDashboardByAccessKey")
}

func (r *dashboardRepository) ListDashboardsForUser(ctx context.Context, userID string) ([]models.Dashboard, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListDashboardsForUserQuery(r.db.builder, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*dashboardRepository.ListDashboardsForUser").Str("user_id", userID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	dashboards := make([]models.Dashboard, 0, 8)
	for rows.Next() {
		var d models.Dashboard
		if scanErr := rows.Scan(&d.DashboardID, &d.Name, &d.AccessKey, &d.CreatedAt); scanErr != nil {
			log.Err(scanErr).Str("func", "*dashboardRepository.ListDashboardsForUser").Msg("failed to scan dashboard row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		dashboards = append(dashboards, d)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*dashboardRepository.ListDashboardsForUser").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return dashboards, nil
}

func (r *dashboardRepository) AddMember(ctx context.Context, dashboardID, userID string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildAddMemberQuery(r.db.builder, dashboardID, userID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*dashboardRepository.AddMember").
			Str("dashboard_id", dashboardID).
			Str("user_id", userID).
			Msg("error adding member")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected > 0, nil
}

// IsMember implements [DashboardRepository]. The query is a single EXISTS
// lookup on the membership primary key.
func (r *dashboardRepository) IsMember(ctx context.Context, dashboardID, userID string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildIsMemberQuery(r.db.builder, dashboardID, userID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var member bool
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&member); err != nil {
		log.Err(err).
			Str("func", "*dashboardRepository.IsMember").
			Str("dashboard_id", dashboardID).
			Str("user_id", userID).
			Msg("error checking membership")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return member, nil
}

func (r *dashboardRepository) PurgeDashboard(ctx context.Context, dashboardID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildPurgeDashboardQuery(r.db.builder, dashboardID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*dashboardRepository.PurgeDashboard").Str("dashboard_id", dashboardID).Msg("error purging dashboard")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *dashboardRepository) findDashboard(ctx context.Context, where sq.Eq, funcName string) (models.Dashboard, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindDashboardQuery(r.db.builder, where)
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var d models.Dashboard
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&d.DashboardID, &d.Name, &d.AccessKey, &d.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Dashboard{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error: scanning error")
		return models.Dashboard{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return d, nil
}
