package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-bug-triage/models"
	"github.com/redis/go-redis/v9"
)

const defaultRedisKey = "bug-triage:activities"

// redisClient is the part of *redis.Client the queue uses.
type redisClient interface {
	LPush(ctx context.Context, key string, values ...any) *redis.IntCmd
	BRPop(ctx context.Context, timeout time.Duration, keys ...string) *redis.StringSliceCmd
	Close() error
}

// RedisQueue is an [ActivityQueue] over a Redis list: LPUSH to enqueue,
// BRPOP to dequeue.
type RedisQueue struct {
	client redisClient
	key    string
	closed atomic.Bool
}

// NewRedisQueue connects to redisURL and verifies the connection.
func NewRedisQueue(ctx context.Context, redisURL, key string) (*RedisQueue, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err = client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return newRedisQueue(client, key), nil
}

func newRedisQueue(client redisClient, key string) *RedisQueue {
	if key == "" {
		key = defaultRedisKey
	}
	return &RedisQueue{client: client, key: key}
}

func (q *RedisQueue) Push(ctx context.Context, activity models.Activity) error {
	if q.closed.Load() {
		return ErrQueueClosed
	}

	payload, err := json.Marshal(activity)
	if err != nil {
		return fmt.Errorf("error marshaling activity: %w", err)
	}

	if err = q.client.LPush(ctx, q.key, payload).Err(); err != nil {
		return fmt.Errorf("redis lpush: %w", err)
	}
	return nil
}

func (q *RedisQueue) Pop(ctx context.Context, timeout time.Duration) (models.Activity, error) {
	if q.closed.Load() {
		return models.Activity{}, ErrQueueClosed
	}

	result, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if errors.Is(err, redis.Nil) {
		return models.Activity{}, ErrQueueEmpty
	}
	if err != nil {
		return models.Activity{}, fmt.Errorf("redis brpop: %w", err)
	}

	// BRPOP replies with [key, value]
	if len(result) != 2 {
		return models.Activity{}, fmt.Errorf("redis brpop: unexpected reply of %d elements", len(result))
	}

	var activity models.Activity
	if err = json.Unmarshal([]byte(result[1]), &activity); err != nil {
		return models.Activity{}, fmt.Errorf("error unmarshaling activity: %w", err)
	}

	return activity, nil
}

// Shared reports true: the list is read by every instance configured with
// the same key.
func (q *RedisQueue) Shared() bool {
	return true
}

func (q *RedisQueue) Close() error {
	if q.closed.Swap(true) {
		return nil
	}
	return q.client.Close()
}
