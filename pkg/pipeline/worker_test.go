// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/canonical/content-service/internal/apperrors"
	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/queue"
	"github.com/canonical/content-service/internal/tracing"
	"github.com/canonical/content-service/internal/types"
	"github.com/canonical/content-service/internal/vendors"
	"github.com/canonical/content-service/pkg/outputs"
)

type workerFixture struct {
	queue   *MockQueueInterface
	outputs *MockOutputsInterface
	runner  *MockRunnerInterface
	worker  *Worker
}

func newWorkerFixture(t *testing.T, cfg WorkerConfig) *workerFixture {
	ctrl := gomock.NewController(t)

	f := &workerFixture{
		queue:   NewMockQueueInterface(ctrl),
		outputs: NewMockOutputsInterface(ctrl),
		runner:  NewMockRunnerInterface(ctrl),
	}

	logger := logging.NewNoopLogger()
	f.worker = NewWorker(
		cfg, f.queue, f.outputs, f.runner, nil,
		tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger,
	)

	f.queue.EXPECT().Extend(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func delivery(t *testing.T, attempts int) *queue.Delivery {
	job, err := queue.NewJob(jobID, queue.AudioJob{OutputRef: ref(types.KindAudio)}, 3)
	require.NoError(t, err)

	job.Attempts = attempts
	return &queue.Delivery{Job: *job, VisibleUntil: time.Now().Add(time.Minute)}
}

func TestWorkerProcess(t *testing.T) {
	payload := types.AudioPayload{AudioFileURL: "https://cdn.example.com/a.mp3", DurationSeconds: 3, Transcript: "hi"}
	rateLimited := func() error {
		e := vendors.NewError("speech", vendors.CodeRateLimited, "slow down")
		return apperrors.NewStageError("synthesize", e)
	}

	tests := []struct {
		name     string
		attempts int
		setup    func(t *testing.T, f *workerFixture, d *queue.Delivery)
		want     string
	}{
		{
			name:     "successful run completes and acks",
			attempts: 1,
			setup: func(t *testing.T, f *workerFixture, d *queue.Delivery) {
				o := processingOutput(types.KindAudio)
				f.outputs.EXPECT().Acquire(gomock.Any(), outputID, jobID).Return(o, nil)
				f.runner.EXPECT().Run(gomock.Any(), o, jobID, gomock.Any()).Return(payload, nil)
				f.outputs.EXPECT().Complete(gomock.Any(), outputID, payload, gomock.Any()).Return(o, nil)
				f.queue.EXPECT().Ack(gomock.Any(), d).Return(nil)
			},
			want: outcomeCompleted,
		},
		{
			name:     "unreadable payload is dead-lettered",
			attempts: 1,
			setup: func(t *testing.T, f *workerFixture, d *queue.Delivery) {
				d.Payload = json.RawMessage(`{`)
				f.queue.EXPECT().DeadLetter(gomock.Any(), d, gomock.Any()).Return(nil)
			},
			want: outcomeDeadLettered,
		},
		{
			name:     "exhausted job fails the output and is dead-lettered",
			attempts: 4,
			setup: func(t *testing.T, f *workerFixture, d *queue.Delivery) {
				d.LastError = "speech: rate_limited: slow down"
				f.outputs.EXPECT().Fail(gomock.Any(), outputID, gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _, msg string, _ ...outputs.Option) (*types.Output, error) {
						assert.Contains(t, msg, "dead_letter: job job-1 exceeded 3 attempts")
						assert.Contains(t, msg, "rate_limited")
						return nil, nil
					},
				)
				f.queue.EXPECT().DeadLetter(gomock.Any(), d, gomock.Any()).Return(nil)
			},
			want: outcomeDeadLettered,
		},
		{
			name:     "output owned by another job is skipped",
			attempts: 1,
			setup: func(t *testing.T, f *workerFixture, d *queue.Delivery) {
				f.outputs.EXPECT().Acquire(gomock.Any(), outputID, jobID).Return(nil, apperrors.NewInvalidTransition("output", outputID, "PROCESSING", "PROCESSING"))
				f.queue.EXPECT().Ack(gomock.Any(), d).Return(nil)
			},
			want: outcomeSkipped,
		},
		{
			name:     "retryable failure with attempts left is retried with backoff",
			attempts: 1,
			setup: func(t *testing.T, f *workerFixture, d *queue.Delivery) {
				f.outputs.EXPECT().Acquire(gomock.Any(), outputID, jobID).Return(processingOutput(types.KindAudio), nil)
				f.runner.EXPECT().Run(gomock.Any(), gomock.Any(), jobID, gomock.Any()).Return(nil, rateLimited())
				f.queue.EXPECT().Retry(gomock.Any(), d, 30*time.Second, gomock.Any()).Return(nil)
			},
			want: outcomeRetried,
		},
		{
			name:     "retry after hint extends the backoff",
			attempts: 1,
			setup: func(t *testing.T, f *workerFixture, d *queue.Delivery) {
				e := vendors.NewError("speech", vendors.CodeRateLimited, "slow down")
				e.RetryAfter = 2 * time.Minute

				f.outputs.EXPECT().Acquire(gomock.Any(), outputID, jobID).Return(processingOutput(types.KindAudio), nil)
				f.runner.EXPECT().Run(gomock.Any(), gomock.Any(), jobID, gomock.Any()).Return(nil, apperrors.NewStageError("synthesize", e))
				f.queue.EXPECT().Retry(gomock.Any(), d, 2*time.Minute, gomock.Any()).Return(nil)
			},
			want: outcomeRetried,
		},
		{
			name:     "retryable failure on the last attempt is dead-lettered",
			attempts: 3,
			setup: func(t *testing.T, f *workerFixture, d *queue.Delivery) {
				f.outputs.EXPECT().Acquire(gomock.Any(), outputID, jobID).Return(processingOutput(types.KindAudio), nil)
				f.runner.EXPECT().Run(gomock.Any(), gomock.Any(), jobID, gomock.Any()).Return(nil, rateLimited())
				f.outputs.EXPECT().Fail(gomock.Any(), outputID, gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _, msg string, _ ...outputs.Option) (*types.Output, error) {
						assert.Contains(t, msg, "dead_letter: stage synthesize failed")
						return nil, nil
					},
				)
				f.queue.EXPECT().DeadLetter(gomock.Any(), d, gomock.Any()).Return(nil)
			},
			want: outcomeDeadLettered,
		},
		{
			name:     "permanent failure fails the output and acks",
			attempts: 1,
			setup: func(t *testing.T, f *workerFixture, d *queue.Delivery) {
				bad := apperrors.NewStageError("script", vendors.NewError("textgen", vendors.CodeBadResponse, "not json"))

				f.outputs.EXPECT().Acquire(gomock.Any(), outputID, jobID).Return(processingOutput(types.KindAudio), nil)
				f.runner.EXPECT().Run(gomock.Any(), gomock.Any(), jobID, gomock.Any()).Return(nil, bad)
				f.outputs.EXPECT().Fail(gomock.Any(), outputID, bad.Error(), gomock.Any()).Return(nil, nil)
				f.queue.EXPECT().Ack(gomock.Any(), d).Return(nil)
			},
			want: outcomeFailed,
		},
		{
			name:     "vendor error flagged permanent is not retried",
			attempts: 1,
			setup: func(t *testing.T, f *workerFixture, d *queue.Delivery) {
				e := vendors.NewError("speech", vendors.CodeRateLimited, "quota exhausted for the month")
				e.Retryable = false
				bad := apperrors.NewStageError("synthesize", e)

				f.outputs.EXPECT().Acquire(gomock.Any(), outputID, jobID).Return(processingOutput(types.KindAudio), nil)
				f.runner.EXPECT().Run(gomock.Any(), gomock.Any(), jobID, gomock.Any()).Return(nil, bad)
				f.outputs.EXPECT().Fail(gomock.Any(), outputID, bad.Error(), gomock.Any()).Return(nil, nil)
				f.queue.EXPECT().Ack(gomock.Any(), d).Return(nil)
			},
			want: outcomeFailed,
		},
		{
			name:     "panicking pipeline fails the output",
			attempts: 1,
			setup: func(t *testing.T, f *workerFixture, d *queue.Delivery) {
				f.outputs.EXPECT().Acquire(gomock.Any(), outputID, jobID).Return(processingOutput(types.KindAudio), nil)
				f.runner.EXPECT().Run(gomock.Any(), gomock.Any(), jobID, gomock.Any()).DoAndReturn(
					func(context.Context, *types.Output, string, queue.Payload) (types.OutputPayload, error) {
						panic("nil map")
					},
				)
				f.outputs.EXPECT().Fail(gomock.Any(), outputID, "pipeline panicked: nil map", gomock.Any()).Return(nil, nil)
				f.queue.EXPECT().Ack(gomock.Any(), d).Return(nil)
			},
			want: outcomeFailed,
		},
		{
			name:     "lost ownership acks without touching the output",
			attempts: 1,
			setup: func(t *testing.T, f *workerFixture, d *queue.Delivery) {
				f.outputs.EXPECT().Acquire(gomock.Any(), outputID, jobID).Return(processingOutput(types.KindAudio), nil)
				f.runner.EXPECT().Run(gomock.Any(), gomock.Any(), jobID, gomock.Any()).Return(nil, ErrLostOwnership)
				f.queue.EXPECT().Ack(gomock.Any(), d).Return(nil)
			},
			want: outcomeSkipped,
		},
		{
			name:     "completion lost to a concurrent transition is skipped",
			attempts: 1,
			setup: func(t *testing.T, f *workerFixture, d *queue.Delivery) {
				f.outputs.EXPECT().Acquire(gomock.Any(), outputID, jobID).Return(processingOutput(types.KindAudio), nil)
				f.runner.EXPECT().Run(gomock.Any(), gomock.Any(), jobID, gomock.Any()).Return(payload, nil)
				f.outputs.EXPECT().Complete(gomock.Any(), outputID, payload, gomock.Any()).Return(nil, apperrors.NewInvalidTransition("output", outputID, "FAILED", "COMPLETED"))
				f.queue.EXPECT().Ack(gomock.Any(), d).Return(nil)
			},
			want: outcomeSkipped,
		},
		{
			name:     "storage error on completion is retried",
			attempts: 1,
			setup: func(t *testing.T, f *workerFixture, d *queue.Delivery) {
				f.outputs.EXPECT().Acquire(gomock.Any(), outputID, jobID).Return(processingOutput(types.KindAudio), nil)
				f.runner.EXPECT().Run(gomock.Any(), gomock.Any(), jobID, gomock.Any()).Return(payload, nil)
				f.outputs.EXPECT().Complete(gomock.Any(), outputID, payload, gomock.Any()).Return(nil, errors.New("connection reset"))
				f.queue.EXPECT().Retry(gomock.Any(), d, 30*time.Second, "connection reset").Return(nil)
			},
			want: outcomeRetried,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newWorkerFixture(t, WorkerConfig{MaxPipelineDuration: time.Minute})
			d := delivery(t, test.attempts)
			test.setup(t, f, d)

			assert.Equal(t, test.want, f.worker.Process(context.Background(), d))
		})
	}
}

func TestWorkerPipelineTimeout(t *testing.T) {
	f := newWorkerFixture(t, WorkerConfig{MaxPipelineDuration: 10 * time.Millisecond})
	d := delivery(t, 1)

	f.outputs.EXPECT().Acquire(gomock.Any(), outputID, jobID).Return(processingOutput(types.KindAudio), nil)
	f.runner.EXPECT().Run(gomock.Any(), gomock.Any(), jobID, gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ *types.Output, _ string, _ queue.Payload) (types.OutputPayload, error) {
			<-ctx.Done()
			return nil, apperrors.NewStageError("render", vendors.Classify("avatar", ctx.Err()))
		},
	)
	f.outputs.EXPECT().Fail(gomock.Any(), outputID, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _, msg string, _ ...outputs.Option) (*types.Output, error) {
			assert.Contains(t, msg, "pipeline timed out")
			return nil, nil
		},
	)
	f.queue.EXPECT().Ack(gomock.Any(), d).Return(nil)

	assert.Equal(t, outcomeFailed, f.worker.Process(context.Background(), d))
}

func TestWorkerShutdownLeavesJobUnacked(t *testing.T) {
	f := newWorkerFixture(t, WorkerConfig{MaxPipelineDuration: time.Minute})
	d := delivery(t, 1)

	ctx, cancel := context.WithCancel(context.Background())

	f.outputs.EXPECT().Acquire(gomock.Any(), outputID, jobID).Return(processingOutput(types.KindAudio), nil)
	f.runner.EXPECT().Run(gomock.Any(), gomock.Any(), jobID, gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ *types.Output, _ string, _ queue.Payload) (types.OutputPayload, error) {
			cancel()
			<-ctx.Done()
			return nil, apperrors.NewStageError("synthesize", vendors.Classify("speech", ctx.Err()))
		},
	)

	assert.Equal(t, outcomeAbandoned, f.worker.Process(ctx, d))
}

func TestWorkerHeartbeatExtendsVisibility(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := NewMockQueueInterface(ctrl)
	out := NewMockOutputsInterface(ctrl)
	runner := NewMockRunnerInterface(ctrl)

	logger := logging.NewNoopLogger()
	w := NewWorker(
		WorkerConfig{Visibility: time.Minute, HeartbeatInterval: time.Millisecond, MaxPipelineDuration: time.Minute},
		q, out, runner, nil,
		tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger,
	)

	d := delivery(t, 1)
	payload := types.AudioPayload{AudioFileURL: "https://cdn.example.com/a.mp3"}

	out.EXPECT().Acquire(gomock.Any(), outputID, jobID).Return(processingOutput(types.KindAudio), nil)
	runner.EXPECT().Run(gomock.Any(), gomock.Any(), jobID, gomock.Any()).DoAndReturn(
		func(context.Context, *types.Output, string, queue.Payload) (types.OutputPayload, error) {
			time.Sleep(50 * time.Millisecond)
			return payload, nil
		},
	)
	q.EXPECT().Extend(gomock.Any(), d, time.Minute).Return(nil).MinTimes(1)
	out.EXPECT().Complete(gomock.Any(), outputID, payload, gomock.Any()).Return(nil, nil)
	q.EXPECT().Ack(gomock.Any(), d).Return(nil)

	assert.Equal(t, outcomeCompleted, w.Process(context.Background(), d))
}

func TestWorkerStartStop(t *testing.T) {
	f := newWorkerFixture(t, WorkerConfig{Concurrency: 2, PollInterval: time.Millisecond})

	polled := make(chan struct{}, 1)
	f.queue.EXPECT().Dequeue(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, ...queue.JobType) (*queue.Delivery, error) {
			select {
			case polled <- struct{}{}:
			default:
			}
			return nil, nil
		},
	).AnyTimes()

	require.NoError(t, f.worker.Start(context.Background()))
	assert.Error(t, f.worker.Start(context.Background()))

	select {
	case <-polled:
	case <-time.After(time.Second):
		t.Fatal("lanes never polled the queue")
	}

	f.worker.Stop()
	f.worker.Stop()
}
