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
)

type bugRepository struct {
	db          *DB
	idGenerator *utils.UUIDGenerator
	logger      *logger.Logger
}

// NewBugRepository constructs a [BugRepository] backed by db.
func NewBugRepository(db *DB, logger *logger.Logger) BugRepository {
	logger.Debug().Msg("creating bug repository")
	return &bugRepository{
		db:          db,
		idGenerator: utils.NewUUIDGenerator(),
		logger:      logger,
	}
}

// CreateBug implements [BugRepository]. New bugs always start OPEN.
func (r *bugRepository) CreateBug(ctx context.Context, bug models.Bug) (models.Bug, error) {
	log := logger.FromContext(ctx)

	if bug.BugID == "" {
		bug.BugID = r.idGenerator.Generate()
	}
	bug.Status = models.BugStatusOpen
	if bug.CreatedAt.IsZero() {
		bug.CreatedAt = time.Now().UTC()
	}

	query, args, err := buildCreateBugQuery(r.db.builder, bug)
	if err != nil {
		return models.Bug{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*bugRepository.CreateBug").
			Str("dashboard_id", bug.DashboardID).
			Msg("error inserting bug")
		return models.Bug{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return bug, nil
}

func (r *bugRepository) FindBugByID(ctx context.Context, bugID string) (models.Bug, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindBugQuery(r.db.builder, bugID)
	if err != nil {
		return models.Bug{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	bug, err := scanBug(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Bug{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*bugRepository.FindBugByID").Str("bug_id", bugID).Msg("error: scanning error")
		return models.Bug{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return bug, nil
}

func (r *bugRepository) ListBugsByDashboard(ctx context.Context, dashboardID string) ([]models.Bug, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListBugsQuery(r.db.builder, dashboardID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bugRepository.ListBugsByDashboard").Str("dashboard_id", dashboardID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	bugs := make([]models.Bug, 0, 32)
	for rows.Next() {
		bug, scanErr := scanBug(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*bugRepository.ListBugsByDashboard").Msg("failed to scan bug row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		bugs = append(bugs, bug)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*bugRepository.ListBugsByDashboard").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return bugs, nil
}

// ResolveBug implements [BugRepository]. The status guard lives in the
// WHERE clause, so concurrent resolves of one bug succeed exactly once.
func (r *bugRepository) ResolveBug(ctx context.Context, bugID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildResolveBugQuery(r.db.builder, bugID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bugRepository.ResolveBug").Str("bug_id", bugID).Msg("error resolving bug")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrBugAlreadyResolved
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBug(row rowScanner) (models.Bug, error) {
	var (
		bug      models.Bug
		severity string
		status   string
	)
	err := row.Scan(&bug.BugID, &bug.Title, &bug.Description, &severity, &status, &bug.DashboardID, &bug.CreatedAt)
	if err != nil {
		return models.Bug{}, err
	}

	bug.Severity = models.Severity(severity)
	bug.Status = models.BugStatus(status)
	return bug, nil
}
