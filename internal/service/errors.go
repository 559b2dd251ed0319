package service

import (
	"errors"

	"github.com/MKhiriev/go-bug-triage/internal/validators"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrEmailAlreadyRegistered = errors.New("email is already registered")
	ErrUserNotFound           = errors.New("user not found")
	ErrDashboardNotFound      = errors.New("dashboard not found")
	ErrBugNotFound            = errors.New("bug not found")
	ErrBugAlreadyResolved     = errors.New("bug is already resolved")

	// ErrForbidden is returned for every dashboard the caller is not a
	// member of, including dashboards that do not exist.
	ErrForbidden = errors.New("not a member of the dashboard")

	ErrAccessKeyExhausted = errors.New("could not generate a unique access key")
)

// Bug submission validation errors. They are always wrapped with
// ErrInvalidDataProvided.
var (
	ErrValidationNoTitle       = validators.ErrEmptyTitle
	ErrValidationNoDescription = validators.ErrEmptyDescription
	ErrValidationNoDashboardID = validators.ErrEmptyDashboardID
)
