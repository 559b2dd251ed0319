package adapter

import "errors"

var (
	ErrClassifierUnavailable  = errors.New("classifier unavailable")
	ErrClassifierRateLimited  = errors.New("classifier rate limited")
	ErrClassifierTimeout      = errors.New("classifier attempt timed out")
	ErrClassifierStatus       = errors.New("classifier returned unexpected status")
	ErrClassifierMalformed    = errors.New("classifier returned malformed body")
	ErrClassifierUnknownLabel = errors.New("classifier returned unknown severity label")
	ErrClassifierCancelled    = errors.New("classification cancelled")
	ErrClassifierTransport    = errors.New("classifier transport error")
)
