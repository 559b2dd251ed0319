// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the input of triage operations before it reaches
// storage: bug submissions, registrations and logins, profile updates,
// dashboard creation and joins by access key.
//
// Services hold a [Validator] and pass the request model together with the
// field names that apply to the operation, for example
//
//	v.Validate(ctx, req, FieldTitle, FieldDescription, FieldDashboardID)
//
// for a bug submission. Every failure wraps one of the sentinel errors of
// this package so callers can map it with [errors.Is].
package validators

import "context"

// Validator checks a request model. With no field names every field the model
// has is checked; otherwise only the named ones.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
