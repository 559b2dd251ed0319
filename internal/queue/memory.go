package queue

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-bug-triage/models"
)

const defaultMemoryQueueSize = 1024

// MemoryQueue is an [ActivityQueue] over a buffered channel.
type MemoryQueue struct {
	mu     sync.RWMutex
	ch     chan models.Activity
	closed bool
}

func NewMemoryQueue(size int) *MemoryQueue {
	if size <= 0 {
		size = defaultMemoryQueueSize
	}
	return &MemoryQueue{ch: make(chan models.Activity, size)}
}

func (q *MemoryQueue) Push(ctx context.Context, activity models.Activity) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.ch <- activity:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrQueueFull
	}
}

// Pop drains entries buffered before Close, then reports ErrQueueClosed.
func (q *MemoryQueue) Pop(ctx context.Context, timeout time.Duration) (models.Activity, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case activity, ok := <-q.ch:
		if !ok {
			return models.Activity{}, ErrQueueClosed
		}
		return activity, nil
	case <-ctx.Done():
		return models.Activity{}, ctx.Err()
	case <-timer.C:
		return models.Activity{}, ErrQueueEmpty
	}
}

func (q *MemoryQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.closed {
		q.closed = true
		close(q.ch)
	}
	return nil
}

// Len returns the number of buffered entries.
func (q *MemoryQueue) Len() int {
	return len(q.ch)
}
