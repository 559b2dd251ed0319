// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "userID", UserIDCtxKey.String())
	assert.Equal(t, "email", EmailCtxKey.String())
}

func TestGetUserIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID string
		wantOK bool
	}{
		{"set via WithUserID", WithUserID(context.Background(), "u-1", "a@b.c"), "u-1", true},
		{"missing", context.Background(), "", false},
		{"wrong type", context.WithValue(context.Background(), UserIDCtxKey, int64(42)), "", false},
		{"empty string", context.WithValue(context.Background(), UserIDCtxKey, ""), "", false},
		{"different key", context.WithValue(context.Background(), contextKey("other"), "u-2"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := GetUserIDFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestWithUserID_StoresEmail(t *testing.T) {
	ctx := WithUserID(context.Background(), "u-1", "a@b.c")
	assert.Equal(t, "a@b.c", ctx.Value(EmailCtxKey))

	email, ok := GetEmailFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "a@b.c", email)

	_, ok = GetEmailFromContext(context.Background())
	assert.False(t, ok)
}
