// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package pipeline

import (
	"context"
	"time"

	"github.com/canonical/content-service/internal/queue"
	"github.com/canonical/content-service/internal/types"
	"github.com/canonical/content-service/pkg/outputs"
)

// OutputsInterface is the part of the output state machine driven by workers.
type OutputsInterface interface {
	Acquire(ctx context.Context, id, jobID string) (*types.Output, error)
	Complete(ctx context.Context, id string, payload types.OutputPayload, opts ...outputs.Option) (*types.Output, error)
	Fail(ctx context.Context, id, message string, opts ...outputs.Option) (*types.Output, error)
	ReapStale(ctx context.Context, cutoff time.Time) (int, error)
}

// StorageInterface reads generation inputs and persists stage checkpoints.
type StorageInterface interface {
	GetSubmission(ctx context.Context, id string) (*types.Submission, error)
	GetArticle(ctx context.Context, id string) (*types.Article, error)
	GetCharacter(ctx context.Context, id string) (*types.Character, error)
	GetVoice(ctx context.Context, id string) (*types.Voice, error)
	SaveCheckpoint(ctx context.Context, id, jobID string, cp *types.Checkpoint) error
}

// QueueInterface is the consumer side of a queue transport.
type QueueInterface interface {
	Dequeue(ctx context.Context, jobTypes ...queue.JobType) (*queue.Delivery, error)
	Ack(ctx context.Context, d *queue.Delivery) error
	Retry(ctx context.Context, d *queue.Delivery, delay time.Duration, lastError string) error
	DeadLetter(ctx context.Context, d *queue.Delivery, reason string) error
	Extend(ctx context.Context, d *queue.Delivery, visibility time.Duration) error
}

type TranslatorInterface interface {
	TranslateAll(ctx context.Context, texts []string, source, target string) ([]string, error)
}

// RunnerInterface produces the payload of one job.
type RunnerInterface interface {
	Run(ctx context.Context, o *types.Output, jobID string, p queue.Payload) (types.OutputPayload, error)
}
