// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-bug-triage/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pgBuilder     = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildIsMemberQuery(t *testing.T) {
	query, args, err := buildIsMemberQuery(pgBuilder, "d-1", "u-1")
	require.NoError(t, err)

	assert.Equal(t, "SELECT EXISTS (SELECT 1 FROM dashboard_members WHERE dashboard_id = $1 AND user_id = $2)", query)
	assert.Equal(t, []any{"d-1", "u-1"}, args)

	query, _, err = buildIsMemberQuery(sqliteBuilder, "d-1", "u-1")
	require.NoError(t, err)
	assert.Contains(t, query, "dashboard_id = ? AND user_id = ?")
}

func Test_buildUpdateProfileQuery(t *testing.T) {
	name := "Ada"
	avatar := "https://example.com/a.png"

	tests := []struct {
		name      string
		req       models.UpdateProfileRequest
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "both fields",
			req:       models.UpdateProfileRequest{UserID: "u-1", Name: &name, AvatarURL: &avatar},
			wantQuery: "UPDATE users SET avatar_url = $1, name = $2 WHERE id = $3",
			wantArgs:  []any{avatar, name, "u-1"},
		},
		{
			name:      "name only",
			req:       models.UpdateProfileRequest{UserID: "u-1", Name: &name},
			wantQuery: "UPDATE users SET name = $1 WHERE id = $2",
			wantArgs:  []any{name, "u-1"},
		},
		{
			name: "nothing to change",
			req:  models.UpdateProfileRequest{UserID: "u-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateProfileQuery(pgBuilder, tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildAddMemberQuery_IgnoresConflicts(t *testing.T) {
	query, args, err := buildAddMemberQuery(pgBuilder, "d-1", "u-1")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO dashboard_members (dashboard_id,user_id) VALUES ($1,$2)"))
	assert.True(t, strings.HasSuffix(query, "ON CONFLICT (dashboard_id, user_id) DO NOTHING"))
	assert.Equal(t, []any{"d-1", "u-1"}, args)
}

func Test_buildResolveBugQuery_GuardsOnOpenStatus(t *testing.T) {
	query, args, err := buildResolveBugQuery(pgBuilder, "b-1")
	require.NoError(t, err)

	assert.Equal(t, "UPDATE bugs SET status = $1 WHERE id = $2 AND status = $3", query)
	assert.Equal(t, []any{"RESOLVED", "b-1", "OPEN"}, args)
}

func Test_buildListActivitiesQuery(t *testing.T) {
	query, _, err := buildListActivitiesQuery(pgBuilder, "d-1", 0)
	require.NoError(t, err)
	assert.NotContains(t, query, "LIMIT")
	assert.Contains(t, query, "ORDER BY created_at DESC, id DESC")

	query, _, err = buildListActivitiesQuery(pgBuilder, "d-1", 20)
	require.NoError(t, err)
	assert.Contains(t, query, "LIMIT 20")
}

func Test_buildListDashboardsForUserQuery(t *testing.T) {
	query, args, err := buildListDashboardsForUserQuery(pgBuilder, "u-1")
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "from dashboards d join dashboard_members m on m.dashboard_id = d.id")
	assert.Contains(t, q, "where m.user_id = $1")
	assert.Equal(t, []any{"u-1"}, args)
}
