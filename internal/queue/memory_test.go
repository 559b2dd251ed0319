package queue

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-bug-triage/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryQueue_FIFO(t *testing.T) {
	q := NewMemoryQueue(4)
	ctx := context.Background()

	require.NoError(t, q.Push(ctx, models.Activity{ActivityID: "a-1"}))
	require.NoError(t, q.Push(ctx, models.Activity{ActivityID: "a-2"}))
	assert.Equal(t, 2, q.Len())

	first, err := q.Pop(ctx, time.Second)
	require.NoError(t, err)
	second, err := q.Pop(ctx, time.Second)
	require.NoError(t, err)

	assert.Equal(t, "a-1", first.ActivityID)
	assert.Equal(t, "a-2", second.ActivityID)
}

func TestMemoryQueue_Full(t *testing.T) {
	q := NewMemoryQueue(1)
	ctx := context.Background()

	require.NoError(t, q.Push(ctx, models.Activity{}))
	assert.ErrorIs(t, q.Push(ctx, models.Activity{}), ErrQueueFull)
}

func TestMemoryQueue_PopTimesOut(t *testing.T) {
	q := NewMemoryQueue(1)

	_, err := q.Pop(context.Background(), 10*time.Millisecond)
	assert.ErrorIs(t, err, ErrQueueEmpty)
}

func TestMemoryQueue_PopHonoursContext(t *testing.T) {
	q := NewMemoryQueue(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := q.Pop(ctx, time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryQueue_CloseDrainsThenReportsClosed(t *testing.T) {
	q := NewMemoryQueue(2)
	ctx := context.Background()

	require.NoError(t, q.Push(ctx, models.Activity{ActivityID: "a-1"}))
	require.NoError(t, q.Close())
	require.NoError(t, q.Close())

	assert.ErrorIs(t, q.Push(ctx, models.Activity{}), ErrQueueClosed)

	got, err := q.Pop(ctx, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "a-1", got.ActivityID)

	_, err = q.Pop(ctx, time.Second)
	assert.ErrorIs(t, err, ErrQueueClosed)
}

func TestNewMemoryQueue_DefaultSize(t *testing.T) {
	q := NewMemoryQueue(0)
	assert.Equal(t, defaultMemoryQueueSize, cap(q.ch))
}
