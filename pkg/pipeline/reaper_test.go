// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/queue"
	"github.com/canonical/content-service/internal/tracing"
)

func TestReaperReap(t *testing.T) {
	tests := []struct {
		name   string
		reaped int
		err    error
		want   int
	}{
		{name: "reaps stale outputs", reaped: 2, want: 2},
		{name: "nothing stale", want: 0},
		{name: "storage failure", err: errors.New("connection reset"), want: 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			out := NewMockOutputsInterface(ctrl)

			logger := logging.NewNoopLogger()
			r := NewReaper(out, 30*time.Minute, time.Minute, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

			before := time.Now().Add(-30 * time.Minute)
			out.EXPECT().ReapStale(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, cutoff time.Time) (int, error) {
					assert.False(t, cutoff.Before(before))
					assert.True(t, cutoff.Before(time.Now().Add(-29*time.Minute)))
					return test.reaped, test.err
				},
			)

			assert.Equal(t, test.want, r.Reap(context.Background()))
		})
	}
}

func TestReaperRunStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	out := NewMockOutputsInterface(ctrl)

	logger := logging.NewNoopLogger()
	r := NewReaper(out, time.Minute, time.Millisecond, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	ctx, cancel := context.WithCancel(context.Background())
	out.EXPECT().ReapStale(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, time.Time) (int, error) {
			cancel()
			return 0, nil
		},
	).MinTimes(1)

	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("reaper did not stop")
	}
}

func TestStaleBudget(t *testing.T) {
	cfg := WorkerConfig{MaxPipelineDuration: 20 * time.Minute, Visibility: 5 * time.Minute}

	tests := []struct {
		name     string
		policies map[queue.JobType]queue.RetryPolicy
		want     time.Duration
	}{
		{name: "default policies", policies: queue.DefaultPolicies(), want: 40 * time.Minute},
		{name: "no policies", want: 25 * time.Minute},
		{
			name: "longest backoff wins",
			policies: map[queue.JobType]queue.RetryPolicy{
				queue.JobQuiz:  {MaxBackoff: time.Minute},
				queue.JobVideo: {MaxBackoff: time.Hour},
			},
			want: 85 * time.Minute,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, StaleBudget(cfg, test.policies))
		})
	}
}
