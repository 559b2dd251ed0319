// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		label  string
		want   Severity
		wantOK bool
	}{
		{"High", SeverityHigh, true},
		{"high", SeverityHigh, true},
		{"  NORMAL ", SeverityNormal, true},
		{"low", SeverityLow, true},
		{"Critical", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := ParseSeverity(tt.label)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeverity_Valid(t *testing.T) {
	assert.True(t, SeverityHigh.Valid())
	assert.True(t, SeverityNormal.Valid())
	assert.True(t, SeverityLow.Valid())
	assert.False(t, Severity("high").Valid())
	assert.False(t, Severity("").Valid())
}
