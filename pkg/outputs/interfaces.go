// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package outputs

import (
	"context"
	"time"

	"github.com/canonical/content-service/internal/events"
	"github.com/canonical/content-service/internal/queue"
	"github.com/canonical/content-service/internal/types"
)

// StorageInterface is the subset of internal/storage used by the output state machine.
type StorageInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
	GetOutput(ctx context.Context, id string) (*types.Output, error)
	StartOutput(ctx context.Context, id, jobID string, from []types.OutputStatus) (*types.Output, error)
	CompleteOutput(ctx context.Context, id, jobID string, payload []byte) (*types.Output, error)
	FailOutput(ctx context.Context, id, jobID, message string) (*types.Output, error)
	TouchOutput(ctx context.Context, id, jobID string) error
	SetOutputApproval(ctx context.Context, id string, approved bool) (*types.Output, error)
	ListStaleOutputs(ctx context.Context, cutoff time.Time, limit uint64) ([]*types.Output, error)
	GetVoice(ctx context.Context, id string) (*types.Voice, error)
	GetCharacter(ctx context.Context, id string) (*types.Character, error)
}

// QueueInterface enqueues regeneration jobs.
type QueueInterface interface {
	Enqueue(ctx context.Context, job *queue.Job) (string, error)
	Transactional() bool
}

// StatusRecomputerInterface refreshes the aggregate status of a submission.
type StatusRecomputerInterface interface {
	RecomputeStatus(ctx context.Context, submissionID string) (types.SubmissionStatus, error)
}

type PublisherInterface interface {
	PublishTransition(ctx context.Context, ev *events.OutputTransitioned) error
}

type ServiceInterface interface {
	Get(ctx context.Context, orgID, id string) (*types.Output, error)
	Start(ctx context.Context, id, jobID string) (*types.Output, error)
	Acquire(ctx context.Context, id, jobID string) (*types.Output, error)
	Complete(ctx context.Context, id string, payload types.OutputPayload, opts ...Option) (*types.Output, error)
	Fail(ctx context.Context, id, message string, opts ...Option) (*types.Output, error)
	Approve(ctx context.Context, orgID, id string) (*types.Output, error)
	Unapprove(ctx context.Context, orgID, id string) (*types.Output, error)
	Regenerate(ctx context.Context, orgID, id string, params queue.GenerationParams) (*types.Output, error)
	ReapStale(ctx context.Context, cutoff time.Time) (int, error)
}
