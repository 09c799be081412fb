// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/canonical/content-service/internal/apperrors"
	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/queue"
	"github.com/canonical/content-service/internal/tracing"
	"github.com/canonical/content-service/internal/types"
	"github.com/canonical/content-service/internal/vendors"
	"github.com/canonical/content-service/pkg/outputs"
)

const (
	outcomeCompleted    = "completed"
	outcomeFailed       = "failed"
	outcomeRetried      = "retried"
	outcomeDeadLettered = "dead_lettered"
	outcomeSkipped      = "skipped"
	outcomeAbandoned    = "abandoned"
)

type WorkerConfig struct {
	// Concurrency is the number of lanes, each running one job at a time.
	Concurrency         int
	PollInterval        time.Duration
	Visibility          time.Duration
	HeartbeatInterval   time.Duration
	MaxPipelineDuration time.Duration
	JobTypes            []queue.JobType
}

// Worker pulls jobs from the queue and drives their outputs through the pipelines.
type Worker struct {
	cfg      WorkerConfig
	queue    QueueInterface
	outputs  OutputsInterface
	runner   RunnerInterface
	policies map[queue.JobType]queue.RetryPolicy

	mu      sync.Mutex
	wg      sync.WaitGroup
	cancel  context.CancelFunc
	running bool

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Start launches the lanes, they run until Stop is called or ctx is cancelled.
func (w *Worker) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return errors.New("worker already running")
	}

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.running = true

	w.wg.Add(w.cfg.Concurrency)
	for lane := 0; lane < w.cfg.Concurrency; lane++ {
		go w.runLane(runCtx, lane)
	}

	w.logger.Infof("worker started with %d lanes for %v", w.cfg.Concurrency, w.cfg.JobTypes)

	return nil
}

// Stop cancels the lanes and waits for them to return. Jobs interrupted by
// the shutdown are left unacknowledged and become visible again.
func (w *Worker) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	cancel := w.cancel
	w.running = false
	w.cancel = nil
	w.mu.Unlock()

	cancel()
	w.wg.Wait()
}

func (w *Worker) runLane(ctx context.Context, lane int) {
	defer w.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		d, err := w.queue.Dequeue(ctx, w.cfg.JobTypes...)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			w.logger.Errorf("lane %d failed to dequeue: %v", lane, err)
			w.wait(ctx)
			continue
		}

		if d == nil {
			w.wait(ctx)
			continue
		}

		w.Process(ctx, d)
	}
}

func (w *Worker) wait(ctx context.Context) {
	select {
	case <-ctx.Done():
	case <-time.After(w.cfg.PollInterval):
	}
}

// Process handles one delivery to the end and returns the outcome recorded for it.
// Pipeline failures never escape: every path settles the delivery or leaves
// it for redelivery.
func (w *Worker) Process(ctx context.Context, d *queue.Delivery) string {
	ctx, span := w.tracer.Start(ctx, "pipeline.Worker.Process")
	defer span.End()

	started := time.Now()
	outcome := w.process(ctx, d)

	tags := map[string]string{"job_type": string(d.Type), "outcome": outcome}
	if err := w.monitor.SetJobDurationMetric(tags, time.Since(started).Seconds()); err != nil {
		w.logger.Debugf("failed to record job duration: %v", err)
	}
	if err := w.monitor.IncJobOutcome(tags); err != nil {
		w.logger.Debugf("failed to record job outcome: %v", err)
	}

	return outcome
}

func (w *Worker) process(ctx context.Context, d *queue.Delivery) string {
	payload, err := d.Decode()
	if err != nil {
		w.logger.Errorf("job %s has an unreadable payload: %v", d.ID, err)
		return w.deadLetter(ctx, d, fmt.Sprintf("unreadable payload: %v", err))
	}

	ref := payload.Output()

	if d.Exhausted() {
		msg := fmt.Sprintf("%s: job %s exceeded %d attempts", outputs.CodeDeadLetter, d.ID, d.MaxAttempts)
		if d.LastError != "" {
			msg = fmt.Sprintf("%s: %s", msg, d.LastError)
		}
		w.fail(ctx, ref.OutputID, d.ID, msg)
		return w.deadLetter(ctx, d, msg)
	}

	o, err := w.outputs.Acquire(ctx, ref.OutputID, d.ID)
	switch {
	case errors.Is(err, apperrors.ErrInvalidTransition), errors.Is(err, apperrors.ErrNotFound):
		w.logger.Infof("dropping job %s, output %s is not available: %v", d.ID, ref.OutputID, err)
		return w.ack(ctx, d, outcomeSkipped)
	case err != nil:
		if ctx.Err() != nil {
			return outcomeAbandoned
		}
		w.logger.Errorf("failed to acquire output %s for job %s: %v", ref.OutputID, d.ID, err)
		return w.retry(ctx, d, w.policy(d.Type).Backoff(d.Attempts), err.Error())
	}

	result, err := w.run(ctx, d, o, payload)
	switch {
	case err == nil:
		return w.complete(ctx, d, o, result)
	case errors.Is(err, ErrLostOwnership):
		w.logger.Warnf("job %s lost output %s while running", d.ID, o.ID)
		return w.ack(ctx, d, outcomeSkipped)
	case ctx.Err() != nil:
		w.logger.Infof("job %s interrupted by shutdown, leaving it for redelivery", d.ID)
		return outcomeAbandoned
	}

	w.logger.Warnf("job %s attempt %d on output %s failed: %v", d.ID, d.Attempts, o.ID, err)

	if delay, retry := w.retryDelay(d, err); retry {
		return w.retry(ctx, d, delay, err.Error())
	}

	if w.retryable(d, err) {
		msg := fmt.Sprintf("%s: %v", outputs.CodeDeadLetter, err)
		w.fail(ctx, o.ID, d.ID, msg)
		return w.deadLetter(ctx, d, msg)
	}

	w.fail(ctx, o.ID, d.ID, err.Error())
	return w.ack(ctx, d, outcomeFailed)
}

// run executes the pipeline under the job deadline while heartbeating the delivery.
func (w *Worker) run(ctx context.Context, d *queue.Delivery, o *types.Output, payload queue.Payload) (result types.OutputPayload, err error) {
	runCtx, cancel := context.WithTimeout(ctx, w.cfg.MaxPipelineDuration)

	var hb sync.WaitGroup
	hb.Add(1)
	go w.heartbeat(runCtx, &hb, d)
	defer hb.Wait()
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			w.logger.Errorf("pipeline of job %s panicked: %v", d.ID, r)
			result, err = nil, fmt.Errorf("pipeline panicked: %v", r)
		}
	}()

	result, err = w.runner.Run(runCtx, o, d.ID, payload)
	if err != nil && ctx.Err() == nil && errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return nil, apperrors.NewTimeoutError("pipeline", w.cfg.MaxPipelineDuration)
	}

	return result, err
}

func (w *Worker) heartbeat(ctx context.Context, wg *sync.WaitGroup, d *queue.Delivery) {
	defer wg.Done()

	ticker := time.NewTicker(w.cfg.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.queue.Extend(ctx, d, w.cfg.Visibility); err != nil && ctx.Err() == nil {
				w.logger.Warnf("failed to extend visibility of job %s: %v", d.ID, err)
			}
		}
	}
}

func (w *Worker) complete(ctx context.Context, d *queue.Delivery, o *types.Output, result types.OutputPayload) string {
	_, err := w.outputs.Complete(ctx, o.ID, result, outputs.WithJobID(d.ID))
	switch {
	case err == nil:
		return w.ack(ctx, d, outcomeCompleted)
	case errors.Is(err, apperrors.ErrInvalidTransition):
		w.logger.Warnf("job %s finished but output %s moved on: %v", d.ID, o.ID, err)
		return w.ack(ctx, d, outcomeSkipped)
	case errors.Is(err, apperrors.ErrValidation):
		w.fail(ctx, o.ID, d.ID, err.Error())
		return w.ack(ctx, d, outcomeFailed)
	}

	// stages are checkpointed, a redelivery only repeats the completion
	w.logger.Errorf("failed to complete output %s for job %s: %v", o.ID, d.ID, err)
	return w.retry(ctx, d, w.policy(d.Type).Backoff(d.Attempts), err.Error())
}

func (w *Worker) fail(ctx context.Context, outputID, jobID, message string) {
	if _, err := w.outputs.Fail(ctx, outputID, message, outputs.WithJobID(jobID)); err != nil {
		w.logger.Warnf("failed to mark output %s failed for job %s: %v", outputID, jobID, err)
	}
}

func (w *Worker) ack(ctx context.Context, d *queue.Delivery, outcome string) string {
	if err := w.queue.Ack(ctx, d); err != nil {
		w.logger.Errorf("failed to ack job %s: %v", d.ID, err)
	}
	return outcome
}

func (w *Worker) retry(ctx context.Context, d *queue.Delivery, delay time.Duration, lastError string) string {
	if err := w.queue.Retry(ctx, d, delay, lastError); err != nil {
		w.logger.Errorf("failed to reschedule job %s: %v", d.ID, err)
	}
	return outcomeRetried
}

func (w *Worker) deadLetter(ctx context.Context, d *queue.Delivery, reason string) string {
	if err := w.queue.DeadLetter(ctx, d, reason); err != nil {
		w.logger.Errorf("failed to dead-letter job %s: %v", d.ID, err)
	}
	return outcomeDeadLettered
}

func (w *Worker) policy(jt queue.JobType) queue.RetryPolicy {
	return w.policies[jt]
}

func (w *Worker) maxAttempts(d *queue.Delivery) int {
	if d.MaxAttempts > 0 {
		return d.MaxAttempts
	}
	return w.policy(d.Type).MaxAttempts
}

// retryable reports whether err is a vendor error flagged retryable with a code
// the job type retries on.
func (w *Worker) retryable(d *queue.Delivery, err error) bool {
	var vErr *vendors.Error
	if !errors.As(err, &vErr) {
		return false
	}
	return vErr.Retryable && w.policy(d.Type).Retryable(vErr.Code)
}

func (w *Worker) retryDelay(d *queue.Delivery, err error) (time.Duration, bool) {
	if !w.retryable(d, err) || d.Attempts >= w.maxAttempts(d) {
		return 0, false
	}

	delay := w.policy(d.Type).Backoff(d.Attempts)

	var vErr *vendors.Error
	if errors.As(err, &vErr) && vErr.RetryAfter > delay {
		delay = vErr.RetryAfter
	}

	return delay, true
}

func NewWorker(
	cfg WorkerConfig,
	q QueueInterface,
	out OutputsInterface,
	runner RunnerInterface,
	policies map[queue.JobType]queue.RetryPolicy,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Worker {
	w := new(Worker)

	w.cfg = cfg
	if w.cfg.Concurrency <= 0 {
		w.cfg.Concurrency = 1
	}
	if w.cfg.PollInterval <= 0 {
		w.cfg.PollInterval = 2 * time.Second
	}
	if w.cfg.Visibility <= 0 {
		w.cfg.Visibility = 5 * time.Minute
	}
	if w.cfg.HeartbeatInterval <= 0 {
		w.cfg.HeartbeatInterval = w.cfg.Visibility / 3
	}
	if w.cfg.MaxPipelineDuration <= 0 {
		w.cfg.MaxPipelineDuration = 30 * time.Minute
	}
	if len(w.cfg.JobTypes) == 0 {
		w.cfg.JobTypes = queue.JobTypes
	}

	w.queue = q
	w.outputs = out
	w.runner = runner

	w.policies = policies
	if w.policies == nil {
		w.policies = queue.DefaultPolicies()
	}

	w.tracer = tracer
	w.monitor = monitor
	w.logger = logger

	return w
}
