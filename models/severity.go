// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Severity is the triage level assigned to a bug by the classifier.
type Severity string

const (
	SeverityHigh   Severity = "High"
	SeverityNormal Severity = "Normal"
	SeverityLow    Severity = "Low"
)

// ParseSeverity maps a classifier label onto a [Severity]. Matching is
// case-insensitive and ignores surrounding whitespace; ok is false for any
// label outside the three known levels.
func ParseSeverity(label string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "high":
		return SeverityHigh, true
	case "normal":
		return SeverityNormal, true
	case "low":
		return SeverityLow, true
	default:
		return "", false
	}
}

// Valid reports whether s is one of the known severity levels.
func (s Severity) Valid() bool {
	switch s {
	case SeverityHigh, SeverityNormal, SeverityLow:
		return true
	default:
		return false
	}
}

func (s Severity) String() string {
	return string(s)
}
