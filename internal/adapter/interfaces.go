// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds clients for services the triage server depends on.
//
// The only outbound dependency is the severity classifier. [SeverityClassifier]
// decouples the bug pipeline from the transport; [NewHTTPClassifier] is the
// REST implementation. Every attempt is reduced to an [AttemptOutcome]
// (success, retryable, fatal or cancelled) by the mappers in
// errors_mapper.go, and the retry loop in classifier.go acts only on that tag.
// Errors never leave the package through Classify: a failed classification
// degrades to the configured default severity.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-bug-triage/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/classifier_mock.go -package=mock

// SeverityClassifier assigns a severity to a bug report.
type SeverityClassifier interface {
	// Classify returns the classifier's severity for the report, or the
	// configured default when the classifier cannot provide one. It never
	// fails.
	Classify(ctx context.Context, title, description string) models.Severity

	// ClassifyWithReport behaves like Classify and also returns how the
	// result was reached.
	ClassifyWithReport(ctx context.Context, title, description string) ClassificationReport
}
