// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package pipeline

import (
	"context"
	"time"

	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/queue"
	"github.com/canonical/content-service/internal/tracing"
)

// Reaper fails outputs left PROCESSING by workers that died with their job.
type Reaper struct {
	outputs    OutputsInterface
	staleAfter time.Duration
	interval   time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Run reaps on every tick until ctx is cancelled.
func (r *Reaper) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Reap(ctx)
		}
	}
}

func (r *Reaper) Reap(ctx context.Context) int {
	ctx, span := r.tracer.Start(ctx, "pipeline.Reaper.Reap")
	defer span.End()

	n, err := r.outputs.ReapStale(ctx, time.Now().Add(-r.staleAfter))
	if err != nil {
		r.logger.Errorf("failed to reap stale outputs: %v", err)
	}
	if n > 0 {
		r.logger.Infof("reaped %d outputs processing for more than %s", n, r.staleAfter)
	}

	return n
}

// StaleBudget is the longest a live job can leave its output without a heartbeat:
// one full attempt, the longest retry backoff and the visibility timeout of a
// delivery lost with its worker. A reaper threshold at or below it fails outputs
// that are still being generated.
func StaleBudget(cfg WorkerConfig, policies map[queue.JobType]queue.RetryPolicy) time.Duration {
	var backoff time.Duration
	for _, p := range policies {
		backoff = max(backoff, p.MaxBackoff)
	}

	return cfg.MaxPipelineDuration + cfg.Visibility + backoff
}

func NewReaper(
	out OutputsInterface,
	staleAfter, interval time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Reaper {
	r := new(Reaper)

	r.outputs = out
	r.staleAfter = staleAfter
	r.interval = interval
	if r.interval <= 0 {
		r.interval = time.Minute
	}

	r.tracer = tracer
	r.monitor = monitor
	r.logger = logger

	return r
}
