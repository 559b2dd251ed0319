// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-bug-triage/internal/config"
	"github.com/MKhiriev/go-bug-triage/internal/logger"
	"github.com/MKhiriev/go-bug-triage/internal/queue"
	"github.com/MKhiriev/go-bug-triage/internal/store"
	"github.com/MKhiriev/go-bug-triage/models"
)

const (
	defaultPollTimeout = time.Second

	// drainTimeout bounds each pop while flushing an in-process queue on Stop.
	drainTimeout = 50 * time.Millisecond
)

// AuditWorker moves activities from the queue into the activity log.
//
// Delivery is at least once: an entry whose append fails is pushed back
// with Deliveries incremented until it reaches maxDeliveries, then dropped.
// Entries keep their ID across redeliveries, which makes the append
// idempotent.
type AuditWorker struct {
	queue              queue.ActivityQueue
	activityRepository store.ActivityRepository
	maxDeliveries      int
	pollTimeout        time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

func NewAuditWorker(activityQueue queue.ActivityQueue, activityRepository store.ActivityRepository, cfg config.Workers, logger *logger.Logger) *AuditWorker {
	maxDeliveries := cfg.AuditMaxDeliveries
	if maxDeliveries < 1 {
		maxDeliveries = 1
	}
	pollTimeout := cfg.AuditPollTimeout
	if pollTimeout <= 0 {
		pollTimeout = defaultPollTimeout
	}

	return &AuditWorker{
		queue:              activityQueue,
		activityRepository: activityRepository,
		maxDeliveries:      maxDeliveries,
		pollTimeout:        pollTimeout,
		logger:             logger,
	}
}

// Run implements [Worker]. Calling Run on a running worker is a no-op.
func (w *AuditWorker) Run(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.cancel != nil {
		return
	}

	ctx, w.cancel = context.WithCancel(ctx)
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.loop(ctx)
		w.drain()
	}()

	w.logger.Info().Int("max_deliveries", w.maxDeliveries).Msg("audit worker started")
}

// Stop implements [Worker]. Entries already in an in-process queue are
// flushed before it returns.
func (w *AuditWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	w.wg.Wait()

	w.logger.Info().Msg("audit worker stopped")
}

func (w *AuditWorker) loop(ctx context.Context) {
	for {
		activity, err := w.queue.Pop(ctx, w.pollTimeout)
		switch {
		case err == nil:
			w.deliver(ctx, activity)
		case errors.Is(err, queue.ErrQueueEmpty):
		case errors.Is(err, queue.ErrQueueClosed):
			return
		case ctx.Err() != nil:
			return
		default:
			w.logger.Err(err).Msg("activity queue pop failed")
			select {
			case <-ctx.Done():
				return
			case <-time.After(w.pollTimeout):
			}
		}
	}
}

// drain flushes what is still buffered once the loop has exited. A shared
// queue is skipped: its entries outlive this process and another instance
// would otherwise lose them to this one on every rolling restart.
func (w *AuditWorker) drain() {
	if queue.IsShared(w.queue) {
		w.logger.Info().Msg("shared activity queue left to the remaining instances")
		return
	}

	ctx := context.Background()
	for {
		activity, err := w.queue.Pop(ctx, drainTimeout)
		if err != nil {
			return
		}
		w.deliver(ctx, activity)
	}
}

func (w *AuditWorker) deliver(ctx context.Context, activity models.Activity) {
	err := w.activityRepository.AppendActivity(context.WithoutCancel(ctx), activity)
	if err == nil {
		return
	}

	activity.Deliveries++
	log := w.logger.With().
		Str("activity_id", activity.ActivityID).
		Str("dashboard_id", activity.DashboardID).
		Int("deliveries", activity.Deliveries).
		Logger()

	if activity.Deliveries >= w.maxDeliveries {
		log.Error().Err(err).Msg("activity dropped after max deliveries")
		return
	}

	if pushErr := w.queue.Push(context.WithoutCancel(ctx), activity); pushErr != nil {
		log.Error().Err(pushErr).Msg("activity dropped, requeue failed")
		return
	}
	log.Warn().Err(err).Msg("activity append failed, requeued")
}
