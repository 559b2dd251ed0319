package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-bug-triage/internal/logger"
	"github.com/MKhiriev/go-bug-triage/internal/mock"
	"github.com/MKhiriev/go-bug-triage/internal/store"
	"github.com/MKhiriev/go-bug-triage/internal/utils"
	"github.com/MKhiriev/go-bug-triage/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type dashboardFixture struct {
	svc        *dashboardService
	dashboards *mock.MockDashboardRepository
	activities *mock.MockActivityRepository
	audit      *fakeAuditService
}

func newDashboardFixture(t *testing.T) *dashboardFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &dashboardFixture{
		dashboards: mock.NewMockDashboardRepository(ctrl),
		activities: mock.NewMockActivityRepository(ctrl),
		audit:      &fakeAuditService{},
	}
	guard := NewMembershipGuard(f.dashboards, logger.Nop())
	f.svc = NewDashboardService(f.dashboards, f.activities, guard, f.audit, logger.Nop()).(*dashboardService)
	return f
}

// keySequence returns a generator yielding keys in order.
func keySequence(keys ...string) func() (string, error) {
	i := 0
	return func() (string, error) {
		k := keys[i%len(keys)]
		i++
		return k, nil
	}
}

// ─────────────────────────────────────────────
// CreateDashboard
// ─────────────────────────────────────────────

func TestCreateDashboard_Success(t *testing.T) {
	f := newDashboardFixture(t)
	f.svc.generateAccessKey = keySequence("ABC123")

	f.dashboards.EXPECT().
		CreateDashboard(gomock.Any(), models.Dashboard{Name: "Mobile", AccessKey: "ABC123"}, "u-1").
		Return(models.Dashboard{DashboardID: "d-1", Name: "Mobile", AccessKey: "ABC123"}, nil)

	d, err := f.svc.CreateDashboard(context.Background(), "u-1", models.CreateDashboardRequest{Name: " Mobile "})

	require.NoError(t, err)
	assert.Equal(t, "ABC123", d.AccessKey)
	assert.Equal(t, []recordedActivity{{
		dashboardID:  "d-1",
		message:      `Dashboard "Mobile" created`,
		activityType: models.ActivityDashboardCreated,
	}}, f.audit.Recorded())
}

func TestCreateDashboard_RegeneratesKeyOnCollision(t *testing.T) {
	f := newDashboardFixture(t)
	f.svc.generateAccessKey = keySequence("AAAAAA", "BBBBBB")

	gomock.InOrder(
		f.dashboards.EXPECT().CreateDashboard(gomock.Any(), models.Dashboard{Name: "Web", AccessKey: "AAAAAA"}, "u-1").
			Return(models.Dashboard{}, store.ErrAccessKeyAlreadyExists),
		f.dashboards.EXPECT().CreateDashboard(gomock.Any(), models.Dashboard{Name: "Web", AccessKey: "BBBBBB"}, "u-1").
			Return(models.Dashboard{DashboardID: "d-2", Name: "Web", AccessKey: "BBBBBB"}, nil),
	)

	d, err := f.svc.CreateDashboard(context.Background(), "u-1", models.CreateDashboardRequest{Name: "Web"})

	require.NoError(t, err)
	assert.Equal(t, "BBBBBB", d.AccessKey)
}

func TestCreateDashboard_KeySpaceExhausted(t *testing.T) {
	f := newDashboardFixture(t)
	f.svc.generateAccessKey = keySequence("AAAAAA")
	f.dashboards.EXPECT().CreateDashboard(gomock.Any(), gomock.Any(), "u-1").
		Return(models.Dashboard{}, store.ErrAccessKeyAlreadyExists).Times(accessKeyAttempts)

	_, err := f.svc.CreateDashboard(context.Background(), "u-1", models.CreateDashboardRequest{Name: "Web"})

	assert.ErrorIs(t, err, ErrAccessKeyExhausted)
	assert.Empty(t, f.audit.Recorded())
}

func TestCreateDashboard_EmptyName(t *testing.T) {
	f := newDashboardFixture(t)

	_, err := f.svc.CreateDashboard(context.Background(), "u-1", models.CreateDashboardRequest{Name: "  "})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestNewDashboardService_GeneratesValidKeys(t *testing.T) {
	f := newDashboardFixture(t)

	key, err := f.svc.generateAccessKey()

	require.NoError(t, err)
	assert.True(t, utils.IsValidAccessKey(key))
}

// ─────────────────────────────────────────────
// JoinDashboard
// ─────────────────────────────────────────────

func TestJoinDashboard(t *testing.T) {
	dashboard := models.Dashboard{DashboardID: "d-1", Name: "Mobile", AccessKey: "ABC123"}

	t.Run("first join records activity", func(t *testing.T) {
		f := newDashboardFixture(t)
		f.dashboards.EXPECT().FindDashboardByAccessKey(gomock.Any(), "ABC123").Return(dashboard, nil)
		f.dashboards.EXPECT().AddMember(gomock.Any(), "d-1", "u-2").Return(true, nil)

		ctx := utils.WithUserID(context.Background(), "u-2", "bob@example.com")
		d, err := f.svc.JoinDashboard(ctx, "u-2", models.JoinDashboardRequest{AccessKey: " abc123 "})

		require.NoError(t, err)
		assert.Equal(t, dashboard, d)
		require.Len(t, f.audit.Recorded(), 1)
		assert.Equal(t, "bob@example.com joined the dashboard", f.audit.Recorded()[0].message)
		assert.Equal(t, models.ActivityUserJoined, f.audit.Recorded()[0].activityType)
	})

	t.Run("second join is silent", func(t *testing.T) {
		f := newDashboardFixture(t)
		f.dashboards.EXPECT().FindDashboardByAccessKey(gomock.Any(), "ABC123").Return(dashboard, nil)
		f.dashboards.EXPECT().AddMember(gomock.Any(), "d-1", "u-2").Return(false, nil)

		_, err := f.svc.JoinDashboard(context.Background(), "u-2", models.JoinDashboardRequest{AccessKey: "ABC123"})

		require.NoError(t, err)
		assert.Empty(t, f.audit.Recorded())
	})

	t.Run("unknown key", func(t *testing.T) {
		f := newDashboardFixture(t)
		f.dashboards.EXPECT().FindDashboardByAccessKey(gomock.Any(), "ZZZ999").Return(models.Dashboard{}, store.ErrNotFound)

		_, err := f.svc.JoinDashboard(context.Background(), "u-2", models.JoinDashboardRequest{AccessKey: "zzz999"})
		assert.ErrorIs(t, err, ErrDashboardNotFound)
	})

	t.Run("malformed key is not found without a lookup", func(t *testing.T) {
		f := newDashboardFixture(t)

		_, err := f.svc.JoinDashboard(context.Background(), "u-2", models.JoinDashboardRequest{AccessKey: "not-a-key"})
		assert.ErrorIs(t, err, ErrDashboardNotFound)
	})

	t.Run("empty key", func(t *testing.T) {
		f := newDashboardFixture(t)

		_, err := f.svc.JoinDashboard(context.Background(), "u-2", models.JoinDashboardRequest{})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

// ─────────────────────────────────────────────
// PurgeDashboard / ListActivities / ListDashboards
// ─────────────────────────────────────────────

func TestPurgeDashboard(t *testing.T) {
	t.Run("member purges", func(t *testing.T) {
		f := newDashboardFixture(t)
		f.dashboards.EXPECT().IsMember(gomock.Any(), "d-1", "u-1").Return(true, nil)
		f.dashboards.EXPECT().PurgeDashboard(gomock.Any(), "d-1").Return(nil)

		assert.NoError(t, f.svc.PurgeDashboard(context.Background(), "u-1", "d-1"))
	})

	t.Run("non member is forbidden", func(t *testing.T) {
		f := newDashboardFixture(t)
		f.dashboards.EXPECT().IsMember(gomock.Any(), "d-1", "u-9").Return(false, nil)

		assert.ErrorIs(t, f.svc.PurgeDashboard(context.Background(), "u-9", "d-1"), ErrForbidden)
	})

	t.Run("missing dashboard is forbidden too", func(t *testing.T) {
		f := newDashboardFixture(t)
		f.dashboards.EXPECT().IsMember(gomock.Any(), "nope", "u-1").Return(false, nil)

		assert.ErrorIs(t, f.svc.PurgeDashboard(context.Background(), "u-1", "nope"), ErrForbidden)
	})

	t.Run("deleted concurrently", func(t *testing.T) {
		f := newDashboardFixture(t)
		f.dashboards.EXPECT().IsMember(gomock.Any(), "d-1", "u-1").Return(true, nil)
		f.dashboards.EXPECT().PurgeDashboard(gomock.Any(), "d-1").Return(store.ErrNotFound)

		assert.ErrorIs(t, f.svc.PurgeDashboard(context.Background(), "u-1", "d-1"), ErrDashboardNotFound)
	})
}

func TestListActivities(t *testing.T) {
	f := newDashboardFixture(t)
	want := []models.Activity{{ActivityID: "a-2"}, {ActivityID: "a-1"}}
	f.dashboards.EXPECT().IsMember(gomock.Any(), "d-1", "u-1").Return(true, nil)
	f.activities.EXPECT().ListActivities(gomock.Any(), "d-1", uint64(activitiesLimit)).Return(want, nil)

	got, err := f.svc.ListActivities(context.Background(), "u-1", "d-1")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestListDashboards(t *testing.T) {
	f := newDashboardFixture(t)
	f.dashboards.EXPECT().ListDashboardsForUser(gomock.Any(), "u-1").Return(nil, errors.New("boom"))

	_, err := f.svc.ListDashboards(context.Background(), "u-1")

	assert.Error(t, err)
}
