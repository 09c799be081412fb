// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package submissions

import (
	"context"

	"github.com/canonical/content-service/internal/events"
	"github.com/canonical/content-service/internal/queue"
	"github.com/canonical/content-service/internal/types"
)

type StorageInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
	CreateArticle(ctx context.Context, a *types.Article) (*types.Article, error)
	GetArticle(ctx context.Context, id string) (*types.Article, error)
	GetCharacter(ctx context.Context, id string) (*types.Character, error)
	CreateSubmission(ctx context.Context, sub *types.Submission) (*types.Submission, error)
	GetSubmission(ctx context.Context, id string) (*types.Submission, error)
	LockSubmission(ctx context.Context, id string) (*types.Submission, error)
	ListSubmissions(ctx context.Context, orgID string, page, size int64) ([]*types.Submission, error)
	UpdateSubmissionStatus(ctx context.Context, id string, status types.SubmissionStatus) error
	CreateOutputs(ctx context.Context, submissionID, orgID string, kinds []types.OutputKind) ([]*types.Output, error)
	ListOutputs(ctx context.Context, submissionID string) ([]*types.Output, error)
	ListOutputStatuses(ctx context.Context, submissionID string) ([]types.OutputStatus, error)
	StartOutput(ctx context.Context, id, jobID string, from []types.OutputStatus) (*types.Output, error)
	FailOutput(ctx context.Context, id, jobID, message string) (*types.Output, error)
}

type QueueInterface interface {
	Enqueue(ctx context.Context, job *queue.Job) (string, error)
	Transactional() bool
}

type PublisherInterface interface {
	PublishTransition(ctx context.Context, ev *events.OutputTransitioned) error
}

type ServiceInterface interface {
	Create(ctx context.Context, in *CreateInput) (*Detail, error)
	Get(ctx context.Context, orgID, id string) (*Detail, error)
	List(ctx context.Context, orgID string, page, size int64) ([]*types.Submission, error)
	RecomputeStatus(ctx context.Context, submissionID string) (types.SubmissionStatus, error)
}
