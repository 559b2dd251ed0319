package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-bug-triage/models"
)

const (
	dashboardMembersTable = "dashboard_members"
	activitiesTable       = "activities"
)

var (
	usersTable      = models.User{}.TableName()
	dashboardsTable = models.Dashboard{}.TableName()
	bugsTable       = models.Bug{}.TableName()
)

var (
	userColumns      = []string{"id", "email", "password_hash", "name", "avatar_url", "created_at"}
	dashboardColumns = []string{"id", "name", "access_key", "created_at"}
	bugColumns       = []string{"id", "title", "description", "severity", "status", "dashboard_id", "created_at"}
	activityColumns  = []string{"id", "dashboard_id", "message", "type", "created_at"}
)

// ── users ─────────────────────────────────────────────────────────────────────

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(userColumns...).
		Values(user.UserID, user.Email, user.PasswordHash, user.Name, user.AvatarURL, user.CreatedAt).
		ToSql()
}

func buildFindUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
}

// buildUpdateProfileQuery returns an empty query when req changes nothing.
func buildUpdateProfileQuery(b sq.StatementBuilderType, req models.UpdateProfileRequest) (string, []any, error) {
	set := map[string]any{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.AvatarURL != nil {
		set["avatar_url"] = *req.AvatarURL
	}
	if len(set) == 0 {
		return "", nil, nil
	}

	return b.Update(usersTable).
		SetMap(set).
		Where(sq.Eq{"id": req.UserID}).
		ToSql()
}

// ── dashboards ────────────────────────────────────────────────────────────────

func buildCreateDashboardQuery(b sq.StatementBuilderType, dashboard models.Dashboard) (string, []any, error) {
	return b.Insert(dashboardsTable).
		Columns(dashboardColumns...).
		Values(dashboard.DashboardID, dashboard.Name, dashboard.AccessKey, dashboard.CreatedAt).
		ToSql()
}

func buildFindDashboardQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(dashboardColumns...).
		From(dashboardsTable).
		Where(where).
		ToSql()
}

func buildListDashboardsForUserQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	columns := make([]string, 0, len(dashboardColumns))
	for _, c := range dashboardColumns {
		columns = append(columns, "d."+c)
	}

	return b.Select(columns...).
		From(dashboardsTable + " d").
		Join(dashboardMembersTable + " m ON m.dashboard_id = d.id").
		Where(sq.Eq{"m.user_id": userID}).
		OrderBy("d.created_at DESC", "d.id DESC").
		ToSql()
}

// buildAddMemberQuery ignores an existing (dashboard_id, user_id) pair.
func buildAddMemberQuery(b sq.StatementBuilderType, dashboardID, userID string) (string, []any, error) {
	return b.Insert(dashboardMembersTable).
		Columns("dashboard_id", "user_id").
		Values(dashboardID, userID).
		Suffix("ON CONFLICT (dashboard_id, user_id) DO NOTHING").
		ToSql()
}

// buildIsMemberQuery yields a single boolean column.
func buildIsMemberQuery(b sq.StatementBuilderType, dashboardID, userID string) (string, []any, error) {
	sub := sq.Select("1").
		From(dashboardMembersTable).
		Where(sq.Eq{"dashboard_id": dashboardID, "user_id": userID})

	return b.Select().
		Column(sq.Expr("EXISTS (?)", sub)).
		ToSql()
}

func buildPurgeDashboardQuery(b sq.StatementBuilderType, dashboardID string) (string, []any, error) {
	return b.Delete(dashboardsTable).
		Where(sq.Eq{"id": dashboardID}).
		ToSql()
}

// ── bugs ──────────────────────────────────────────────────────────────────────

func buildCreateBugQuery(b sq.StatementBuilderType, bug models.Bug) (string, []any, error) {
	return b.Insert(bugsTable).
		Columns(bugColumns...).
		Values(bug.BugID, bug.Title, bug.Description, string(bug.Severity), string(bug.Status), bug.DashboardID, bug.CreatedAt).
		ToSql()
}

func buildFindBugQuery(b sq.StatementBuilderType, bugID string) (string, []any, error) {
	return b.Select(bugColumns...).
		From(bugsTable).
		Where(sq.Eq{"id": bugID}).
		ToSql()
}

func buildListBugsQuery(b sq.StatementBuilderType, dashboardID string) (string, []any, error) {
	return b.Select(bugColumns...).
		From(bugsTable).
		Where(sq.Eq{"dashboard_id": dashboardID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func buildResolveBugQuery(b sq.StatementBuilderType, bugID string) (string, []any, error) {
	return b.Update(bugsTable).
		Set("status", string(models.BugStatusResolved)).
		Where(sq.Eq{"id": bugID, "status": string(models.BugStatusOpen)}).
		ToSql()
}

// ── activities ────────────────────────────────────────────────────────────────

func buildAppendActivityQuery(b sq.StatementBuilderType, activity models.Activity) (string, []any, error) {
	return b.Insert(activitiesTable).
		Columns(activityColumns...).
		Values(activity.ActivityID, activity.DashboardID, activity.Message, string(activity.Type), activity.CreatedAt).
		ToSql()
}

func buildListActivitiesQuery(b sq.StatementBuilderType, dashboardID string, limit uint64) (string, []any, error) {
	query := b.Select(activityColumns...).
		From(activitiesTable).
		Where(sq.Eq{"dashboard_id": dashboardID}).
		OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	return query.ToSql()
}
