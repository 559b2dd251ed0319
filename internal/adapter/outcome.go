package adapter

import (
	"time"

	"github.com/MKhiriev/go-bug-triage/models"
)

// OutcomeKind tags the result of a single classifier attempt.
type OutcomeKind string

const (
	OutcomeSuccess   OutcomeKind = "success"
	OutcomeRetryable OutcomeKind = "retryable"
	OutcomeFatal     OutcomeKind = "fatal"
	OutcomeCancelled OutcomeKind = "cancelled"
)

// AttemptOutcome is the tagged result of one POST to the classifier.
// Severity is set only for OutcomeSuccess; Err carries the reason otherwise.
type AttemptOutcome struct {
	Kind     OutcomeKind
	Severity models.Severity
	Err      error

	// RateLimited marks a retryable outcome caused by HTTP 429.
	RateLimited bool
}

func success(severity models.Severity) AttemptOutcome {
	return AttemptOutcome{Kind: OutcomeSuccess, Severity: severity}
}

func retryable(err error) AttemptOutcome {
	return AttemptOutcome{Kind: OutcomeRetryable, Err: err}
}

func rateLimited(err error) AttemptOutcome {
	return AttemptOutcome{Kind: OutcomeRetryable, Err: err, RateLimited: true}
}

func fatal(err error) AttemptOutcome {
	return AttemptOutcome{Kind: OutcomeFatal, Err: err}
}

func cancelled(err error) AttemptOutcome {
	return AttemptOutcome{Kind: OutcomeCancelled, Err: err}
}

// ClassificationReport describes a whole Classify run.
type ClassificationReport struct {
	Severity models.Severity
	Attempts int
	Outcome  OutcomeKind
	LastErr  error
	Waits    []time.Duration
	Elapsed  time.Duration

	// FellBack is true when Severity is the configured default rather
	// than a label returned by the classifier.
	FellBack bool
}
