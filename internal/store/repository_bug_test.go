package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-bug-triage/internal/logger"
	"github.com/MKhiriev/go-bug-triage/internal/utils"
	"github.com/MKhiriev/go-bug-triage/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bugRowColumns = []string{"id", "title", "description", "severity", "status", "dashboard_id", "created_at"}

func newTestBugRepo(t *testing.T) (*bugRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return &bugRepository{db: db, idGenerator: utils.NewUUIDGenerator(), logger: logger.Nop()}, mock
}

func TestCreateBug_AlwaysOpen(t *testing.T) {
	repo, mock := newTestBugRepo(t)

	mock.ExpectExec("INSERT INTO bugs").
		WithArgs(sqlmock.AnyArg(), "Crash", "On save", "Low", "OPEN", "d-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	bug, err := repo.CreateBug(context.Background(), models.Bug{
		Title:       "Crash",
		Description: "On save",
		Severity:    models.SeverityLow,
		Status:      models.BugStatusResolved,
		DashboardID: "d-1",
	})
	require.NoError(t, err)
	assert.Equal(t, models.BugStatusOpen, bug.Status)
	assert.NotEmpty(t, bug.BugID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBug_StoreFailure(t *testing.T) {
	repo, mock := newTestBugRepo(t)

	mock.ExpectExec("INSERT INTO bugs").WillReturnError(errors.New("disk full"))

	_, err := repo.CreateBug(context.Background(), models.Bug{Title: "t", Description: "d", Severity: models.SeverityHigh, DashboardID: "d-1"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestFindBugByID(t *testing.T) {
	repo, mock := newTestBugRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT .* FROM bugs WHERE id = \$1`).
		WithArgs("b-1").
		WillReturnRows(sqlmock.NewRows(bugRowColumns).
			AddRow("b-1", "Crash", "On save", "Normal", "OPEN", "d-1", now))
	mock.ExpectQuery("SELECT .* FROM bugs").
		WithArgs("b-2").
		WillReturnRows(sqlmock.NewRows(bugRowColumns))

	bug, err := repo.FindBugByID(context.Background(), "b-1")
	require.NoError(t, err)
	assert.Equal(t, models.SeverityNormal, bug.Severity)
	assert.Equal(t, models.BugStatusOpen, bug.Status)

	_, err = repo.FindBugByID(context.Background(), "b-2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListBugsByDashboard(t *testing.T) {
	repo, mock := newTestBugRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT .* FROM bugs WHERE dashboard_id = \$1 ORDER BY created_at DESC, id DESC`).
		WithArgs("d-1").
		WillReturnRows(sqlmock.NewRows(bugRowColumns).
			AddRow("b-2", "Second", "d", "High", "OPEN", "d-1", now).
			AddRow("b-1", "First", "d", "Low", "RESOLVED", "d-1", now.Add(-time.Minute)))

	bugs, err := repo.ListBugsByDashboard(context.Background(), "d-1")
	require.NoError(t, err)
	require.Len(t, bugs, 2)
	assert.Equal(t, "b-2", bugs[0].BugID)
	assert.Equal(t, models.BugStatusResolved, bugs[1].Status)
}

func TestListBugsByDashboard_RowError(t *testing.T) {
	repo, mock := newTestBugRepo(t)

	mock.ExpectQuery("SELECT .* FROM bugs").
		WillReturnRows(sqlmock.NewRows(bugRowColumns).
			AddRow("b-1", "t", "d", "High", "OPEN", "d-1", time.Now()).
			RowError(0, errors.New("broken row")))

	_, err := repo.ListBugsByDashboard(context.Background(), "d-1")
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestResolveBug(t *testing.T) {
	repo, mock := newTestBugRepo(t)

	mock.ExpectExec(`UPDATE bugs SET status = \$1 WHERE id = \$2 AND status = \$3`).
		WithArgs("RESOLVED", "b-1", "OPEN").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE bugs").
		WithArgs("RESOLVED", "b-1", "OPEN").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.ResolveBug(context.Background(), "b-1"))
	assert.ErrorIs(t, repo.ResolveBug(context.Background(), "b-1"), ErrBugAlreadyResolved)
}
