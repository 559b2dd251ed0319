package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-bug-triage/internal/config"
	"github.com/MKhiriev/go-bug-triage/internal/logger"
	"github.com/MKhiriev/go-bug-triage/migrations"
	"github.com/MKhiriev/go-bug-triage/models"
	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPostgresDSN(t *testing.T) {
	assert.True(t, isPostgresDSN("postgres://u:p@localhost:5432/db"))
	assert.True(t, isPostgresDSN("postgresql://localhost/db"))
	assert.True(t, isPostgresDSN("host=localhost user=u dbname=db"))
	assert.False(t, isPostgresDSN("file:triage.db"))
	assert.False(t, isPostgresDSN("/var/lib/triage/triage.db"))
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "triage.db?_foreign_keys=on&_busy_timeout=5000", sqliteDSN("triage.db"))
	assert.Equal(t, "file:triage.db?cache=shared&_foreign_keys=on&_busy_timeout=5000", sqliteDSN("file:triage.db?cache=shared"))
	assert.Equal(t, "file:x.db?_fk=1&_busy_timeout=1", sqliteDSN("file:x.db?_fk=1&_busy_timeout=1"))
}

func TestNewDB_PlaceholderPerDialect(t *testing.T) {
	tests := []struct {
		dialect string
		wantSQL string
	}{
		{dialect: migrations.DialectPostgres, wantSQL: "SELECT id FROM bugs WHERE dashboard_id = $1"},
		{dialect: migrations.DialectSQLite, wantSQL: "SELECT id FROM bugs WHERE dashboard_id = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.dialect, func(t *testing.T) {
			db := newDB(nil, tt.dialect, logger.Nop())

			query, args, err := db.builder.Select("id").From("bugs").Where("dashboard_id = ?", "d-1").ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, query)
			assert.Equal(t, []any{"d-1"}, args)
		})
	}
}

func TestErrorClassifiers(t *testing.T) {
	pg := NewPostgresErrorClassifier()
	assert.Equal(t, Retryable, pg.Classify(pgError(pgerrcode.SerializationFailure)))
	assert.Equal(t, Retryable, pg.Classify(pgError(pgerrcode.CannotConnectNow)))
	assert.Equal(t, NonRetryable, pg.Classify(pgError(pgerrcode.UniqueViolation)))
	assert.Equal(t, NonRetryable, pg.Classify(errors.New("plain")))
	assert.Equal(t, NonRetryable, pg.Classify(nil))

	lite := NewSQLiteErrorClassifier()
	assert.Equal(t, Retryable, lite.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, NonRetryable, lite.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(pgError(pgerrcode.UniqueViolation)))
	assert.True(t, isUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}))
	assert.False(t, isUniqueViolation(pgError(pgerrcode.ForeignKeyViolation)))
	assert.False(t, isUniqueViolation(errors.New("plain")))
}

func TestRetryableOnConnect(t *testing.T) {
	db := newDB(nil, migrations.DialectPostgres, logger.Nop())

	assert.True(t, db.retryableOnConnect(errors.New("dial tcp: connection refused")))
	assert.True(t, db.retryableOnConnect(pgError(pgerrcode.CannotConnectNow)))
	assert.False(t, db.retryableOnConnect(pgError(pgerrcode.InvalidPassword)))
}

// ── sqlite end to end ─────────────────────────────────────────────────────────

func newSQLiteStorages(t *testing.T) (*Storages, *DB) {
	t.Helper()
	cfg := config.DB{
		DSN:             filepath.Join(t.TempDir(), "data", "triage.db"),
		ConnectAttempts: 1,
		ConnectInterval: time.Millisecond,
	}

	db, err := NewConnection(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.Equal(t, migrations.DialectSQLite, db.Dialect())
	require.NoError(t, db.Migrate())

	return NewStorages(db, logger.Nop()), db
}

func TestSQLite_MembershipAndPurge(t *testing.T) {
	s, _ := newSQLiteStorages(t)
	ctx := context.Background()

	owner, err := s.UserRepository.CreateUser(ctx, models.User{Email: "owner@example.com", Name: "Owner"})
	require.NoError(t, err)
	guest, err := s.UserRepository.CreateUser(ctx, models.User{Email: "guest@example.com"})
	require.NoError(t, err)

	_, err = s.UserRepository.CreateUser(ctx, models.User{Email: "owner@example.com"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	dashboard, err := s.DashboardRepository.CreateDashboard(ctx, models.Dashboard{Name: "Core", AccessKey: "ABC123"}, owner.UserID)
	require.NoError(t, err)

	_, err = s.DashboardRepository.CreateDashboard(ctx, models.Dashboard{Name: "Clone", AccessKey: "ABC123"}, owner.UserID)
	assert.ErrorIs(t, err, ErrAccessKeyAlreadyExists)

	member, err := s.DashboardRepository.IsMember(ctx, dashboard.DashboardID, owner.UserID)
	require.NoError(t, err)
	assert.True(t, member)

	member, err = s.DashboardRepository.IsMember(ctx, dashboard.DashboardID, guest.UserID)
	require.NoError(t, err)
	assert.False(t, member)

	member, err = s.DashboardRepository.IsMember(ctx, "missing-dashboard", owner.UserID)
	require.NoError(t, err)
	assert.False(t, member)

	added, err := s.DashboardRepository.AddMember(ctx, dashboard.DashboardID, guest.UserID)
	require.NoError(t, err)
	assert.True(t, added)
	added, err = s.DashboardRepository.AddMember(ctx, dashboard.DashboardID, guest.UserID)
	require.NoError(t, err)
	assert.False(t, added)

	found, err := s.DashboardRepository.FindDashboardByAccessKey(ctx, "ABC123")
	require.NoError(t, err)
	assert.Equal(t, dashboard.DashboardID, found.DashboardID)

	list, err := s.DashboardRepository.ListDashboardsForUser(ctx, guest.UserID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	bug, err := s.BugRepository.CreateBug(ctx, models.Bug{
		Title:       "Crash",
		Description: "On save",
		Severity:    models.SeverityLow,
		DashboardID: dashboard.DashboardID,
	})
	require.NoError(t, err)
	require.NoError(t, s.ActivityRepository.AppendActivity(ctx, models.Activity{
		DashboardID: dashboard.DashboardID,
		Message:     "hello",
		Type:        models.ActivityBugCreated,
	}))

	require.NoError(t, s.DashboardRepository.PurgeDashboard(ctx, dashboard.DashboardID))
	assert.ErrorIs(t, s.DashboardRepository.PurgeDashboard(ctx, dashboard.DashboardID), ErrNotFound)

	_, err = s.BugRepository.FindBugByID(ctx, bug.BugID)
	assert.ErrorIs(t, err, ErrNotFound)

	activities, err := s.ActivityRepository.ListActivities(ctx, dashboard.DashboardID, 0)
	require.NoError(t, err)
	assert.Empty(t, activities)

	member, err = s.DashboardRepository.IsMember(ctx, dashboard.DashboardID, guest.UserID)
	require.NoError(t, err)
	assert.False(t, member)
}

func TestSQLite_BugLifecycle(t *testing.T) {
	s, _ := newSQLiteStorages(t)
	ctx := context.Background()

	owner, err := s.UserRepository.CreateUser(ctx, models.User{Email: "owner@example.com"})
	require.NoError(t, err)
	dashboard, err := s.DashboardRepository.CreateDashboard(ctx, models.Dashboard{Name: "Core", AccessKey: "XYZ789"}, owner.UserID)
	require.NoError(t, err)

	base := time.Now().UTC().Add(-time.Hour)
	first, err := s.BugRepository.CreateBug(ctx, models.Bug{Title: "First", Description: "d", Severity: models.SeverityHigh, DashboardID: dashboard.DashboardID, CreatedAt: base})
	require.NoError(t, err)
	second, err := s.BugRepository.CreateBug(ctx, models.Bug{Title: "Second", Description: "d", Severity: models.SeverityNormal, DashboardID: dashboard.DashboardID, CreatedAt: base.Add(time.Minute)})
	require.NoError(t, err)

	bugs, err := s.BugRepository.ListBugsByDashboard(ctx, dashboard.DashboardID)
	require.NoError(t, err)
	require.Len(t, bugs, 2)
	assert.Equal(t, second.BugID, bugs[0].BugID)
	assert.Equal(t, first.BugID, bugs[1].BugID)

	require.NoError(t, s.BugRepository.ResolveBug(ctx, first.BugID))
	assert.ErrorIs(t, s.BugRepository.ResolveBug(ctx, first.BugID), ErrBugAlreadyResolved)

	resolved, err := s.BugRepository.FindBugByID(ctx, first.BugID)
	require.NoError(t, err)
	assert.Equal(t, models.BugStatusResolved, resolved.Status)
	assert.WithinDuration(t, base, resolved.CreatedAt, time.Second)
}

func TestSQLite_UpdateProfile(t *testing.T) {
	s, _ := newSQLiteStorages(t)
	ctx := context.Background()

	user, err := s.UserRepository.CreateUser(ctx, models.User{Email: "ada@example.com", Name: "Ada"})
	require.NoError(t, err)

	avatar := "https://example.com/ada.png"
	updated, err := s.UserRepository.UpdateProfile(ctx, models.UpdateProfileRequest{UserID: user.UserID, AvatarURL: &avatar})
	require.NoError(t, err)
	assert.Equal(t, "Ada", updated.Name)
	assert.Equal(t, avatar, updated.AvatarURL)

	byEmail, err := s.UserRepository.FindUserByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.UserID, byEmail.UserID)
}

func TestSQLite_PingerReportsHealth(t *testing.T) {
	s, db := newSQLiteStorages(t)
	require.NoError(t, s.Pinger.PingContext(context.Background()))

	require.NoError(t, db.Close())
	assert.Error(t, s.Pinger.PingContext(context.Background()))
}
