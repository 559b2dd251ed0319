// Package queue carries audit activities from request handlers to the audit
// worker. Two backends exist: an in-process buffered channel and a Redis
// list, which lets several server instances share one worker pool.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-bug-triage/internal/config"
	"github.com/MKhiriev/go-bug-triage/internal/logger"
	"github.com/MKhiriev/go-bug-triage/models"
)

//go:generate mockgen -source=queue.go -destination=../mock/queue_mock.go -package=mock

var (
	// ErrQueueFull is returned by Push when the queue cannot take more entries.
	ErrQueueFull = errors.New("activity queue is full")

	// ErrQueueClosed is returned by Push and Pop after Close.
	ErrQueueClosed = errors.New("activity queue is closed")

	// ErrQueueEmpty is returned by Pop when nothing arrived within the timeout.
	ErrQueueEmpty = errors.New("activity queue is empty")
)

// ActivityQueue is a FIFO of pending activity log entries.
type ActivityQueue interface {
	// Push enqueues activity without blocking on a full queue.
	Push(ctx context.Context, activity models.Activity) error

	// Pop waits up to timeout for the next activity.
	Pop(ctx context.Context, timeout time.Duration) (models.Activity, error)

	Close() error
}

// sharedQueue is implemented by backends whose entries live outside the
// process and are read by every server instance.
type sharedQueue interface {
	Shared() bool
}

// IsShared reports whether q is visible to other server instances. Workers
// leave such a queue alone on shutdown: the entries survive the process and
// the remaining instances deliver them.
func IsShared(q ActivityQueue) bool {
	s, ok := q.(sharedQueue)
	return ok && s.Shared()
}

// New returns the Redis queue when cfg.RedisURL is set and the in-process
// queue otherwise.
func New(ctx context.Context, cfg config.Queue, log *logger.Logger) (ActivityQueue, error) {
	if cfg.RedisURL == "" {
		log.Info().Int("size", cfg.Size).Msg("using in-process activity queue")
		return NewMemoryQueue(cfg.Size), nil
	}

	log.Info().Str("key", cfg.Key).Msg("using redis activity queue")
	return NewRedisQueue(ctx, cfg.RedisURL, cfg.Key)
}
