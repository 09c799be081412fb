// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package submissions

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/canonical/content-service/internal/apperrors"
	"github.com/canonical/content-service/internal/events"
	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/queue"
	"github.com/canonical/content-service/internal/storage"
	"github.com/canonical/content-service/internal/tracing"
	"github.com/canonical/content-service/internal/types"
	"github.com/canonical/content-service/internal/vendors/translation"
)

const codeEnqueueFailed = "enqueue_failed"

// ArticleInput is an article uploaded together with the submission.
type ArticleInput struct {
	Title   string `json:"title" validate:"required,max=500"`
	Content string `json:"content" validate:"required"`
}

type CreateInput struct {
	OrganizationID string `json:"-"`
	CreatedBy      string `json:"-"`

	ArticleID string        `json:"article_id,omitempty"`
	Article   *ArticleInput `json:"article,omitempty"`

	GenerateAudio              bool    `json:"generate_audio"`
	GeneratePodcast            bool    `json:"generate_podcast"`
	GenerateInteractivePodcast bool    `json:"generate_interactive_podcast"`
	GenerateVideo              bool    `json:"generate_video"`
	GenerateQuiz               bool    `json:"generate_quiz"`
	Language                   string  `json:"language,omitempty"`
	CharacterID                *string `json:"character_id,omitempty"`
}

// Detail is a submission with its outputs and the per-kind outcome.
type Detail struct {
	*types.Submission

	Outputs []*types.Output `json:"outputs"`
	Summary Summary         `json:"summary"`
}

type Service struct {
	storage   StorageInterface
	queue     QueueInterface
	publisher PublisherInterface
	policies  map[queue.JobType]queue.RetryPolicy

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Create validates the request, stores the submission with one PENDING output
// per requested kind and enqueues one job per output. It does not wait for
// any generation to run.
func (s *Service) Create(ctx context.Context, in *CreateInput) (*Detail, error) {
	ctx, span := s.tracer.Start(ctx, "submissions.Service.Create")
	defer span.End()

	sub := &types.Submission{
		OrganizationID:             in.OrganizationID,
		ArticleID:                  in.ArticleID,
		GenerateAudio:              in.GenerateAudio,
		GeneratePodcast:            in.GeneratePodcast,
		GenerateInteractivePodcast: in.GenerateInteractivePodcast,
		GenerateVideo:              in.GenerateVideo,
		GenerateQuiz:               in.GenerateQuiz,
		CharacterID:                in.CharacterID,
		CreatedBy:                  in.CreatedBy,
	}

	kinds := sub.RequestedKinds()
	if len(kinds) == 0 {
		return nil, apperrors.NewValidationError("generate", "at least one output type must be requested")
	}

	if in.ArticleID == "" && in.Article == nil {
		return nil, apperrors.NewValidationError("article_id", "an article or an article_id is required")
	}

	if in.ArticleID != "" && in.Article != nil {
		return nil, apperrors.NewValidationError("article", "article and article_id are mutually exclusive")
	}

	var article *types.Article
	if in.ArticleID != "" {
		a, err := s.storage.GetArticle(ctx, in.ArticleID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, apperrors.NewValidationError("article_id", "article %s does not exist", in.ArticleID)
			}
			return nil, err
		}
		if a.OrganizationID != in.OrganizationID {
			return nil, apperrors.NewConstraintError("article_same_organization", "article %s belongs to another organization", a.ID)
		}
		article = a
	}

	language := in.Language
	if language == "" && article != nil {
		language = article.Language
	}

	tag, err := translation.Normalize(language)
	if err != nil || language == "" {
		return nil, apperrors.NewValidationError("language", "%q is not a valid BCP-47 tag", language)
	}
	sub.Language = tag

	if in.CharacterID != nil && *in.CharacterID != "" {
		c, err := s.storage.GetCharacter(ctx, *in.CharacterID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, apperrors.NewValidationError("character_id", "character %s does not exist", *in.CharacterID)
			}
			return nil, err
		}
		if c.OrganizationID != in.OrganizationID {
			return nil, apperrors.NewConstraintError("character_same_organization", "character %s belongs to another organization", c.ID)
		}
	} else {
		sub.CharacterID = nil
	}

	var (
		created *types.Submission
		outputs []*types.Output
		jobs    []*queue.Job
	)

	err = s.storage.WithTx(ctx, func(ctx context.Context) error {
		if in.Article != nil {
			a, err := s.storage.CreateArticle(ctx, &types.Article{
				OrganizationID: in.OrganizationID,
				Title:          strings.TrimSpace(in.Article.Title),
				Content:        in.Article.Content,
				Language:       sub.Language,
			})
			if err != nil {
				return err
			}
			sub.ArticleID = a.ID
		}

		var err error
		if created, err = s.storage.CreateSubmission(ctx, sub); err != nil {
			return err
		}

		if outputs, err = s.storage.CreateOutputs(ctx, created.ID, created.OrganizationID, kinds); err != nil {
			return err
		}

		if jobs, err = s.newJobs(created, outputs); err != nil {
			return err
		}

		if !s.queue.Transactional() {
			return nil
		}

		for _, job := range jobs {
			if _, err := s.queue.Enqueue(ctx, job); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, s.mapError(err)
	}

	if !s.queue.Transactional() {
		s.enqueueAfterCommit(ctx, created, outputs, jobs)
	}

	s.logger.Infof("created submission %s with %d outputs", created.ID, len(outputs))

	return s.detail(ctx, created)
}

// enqueueAfterCommit pushes jobs to a queue that cannot join the transaction,
// an output whose job is rejected is failed so the submission still settles.
func (s *Service) enqueueAfterCommit(ctx context.Context, sub *types.Submission, outputs []*types.Output, jobs []*queue.Job) {
	for i, job := range jobs {
		if _, err := s.queue.Enqueue(ctx, job); err != nil {
			s.logger.Errorf("failed to enqueue job for output %s: %v", outputs[i].ID, err)
			s.abandon(ctx, sub.ID, outputs[i].ID, job.ID, fmt.Sprintf("%s: %v", codeEnqueueFailed, err))
		}
	}
}

// abandon runs the output through start and fail under the rejected job, the
// same transitions a worker would make, and publishes both.
func (s *Service) abandon(ctx context.Context, submissionID, outputID, jobID, message string) {
	var started, failed *types.Output
	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		var err error
		if started, err = s.storage.StartOutput(ctx, outputID, jobID, []types.OutputStatus{types.OutputPending}); err != nil {
			return err
		}

		if failed, err = s.storage.FailOutput(ctx, outputID, jobID, message); err != nil {
			return err
		}

		_, err = s.recompute(ctx, submissionID)
		return err
	})
	if err != nil {
		s.logger.Errorf("failed to release output %s: %v", outputID, err)
		return
	}

	s.publish(ctx, started, types.OutputPending, jobID)
	s.publish(ctx, failed, types.OutputProcessing, jobID)
}

func (s *Service) publish(ctx context.Context, o *types.Output, from types.OutputStatus, jobID string) {
	if err := s.publisher.PublishTransition(ctx, events.NewOutputTransitioned(o, from, jobID)); err != nil {
		s.logger.Warnf("failed to publish transition of output %s: %v", o.ID, err)
	}
}

func (s *Service) newJobs(sub *types.Submission, outputs []*types.Output) ([]*queue.Job, error) {
	params := queue.GenerationParams{Language: sub.Language}
	if sub.CharacterID != nil {
		params.CharacterID = *sub.CharacterID
	}

	jobs := make([]*queue.Job, 0, len(outputs))
	for _, o := range outputs {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("failed to generate job ID: %w", err)
		}

		payload, err := queue.NewPayload(
			queue.OutputRef{
				SubmissionID:   sub.ID,
				OutputID:       o.ID,
				OrganizationID: sub.OrganizationID,
				Kind:           o.Kind,
			},
			params,
		)
		if err != nil {
			return nil, err
		}

		job, err := queue.NewJob(id.String(), payload, s.policies[payload.JobType()].MaxAttempts)
		if err != nil {
			return nil, err
		}

		jobs = append(jobs, job)
	}

	return jobs, nil
}

func (s *Service) Get(ctx context.Context, orgID, id string) (*Detail, error) {
	ctx, span := s.tracer.Start(ctx, "submissions.Service.Get")
	defer span.End()

	sub, err := s.storage.GetSubmission(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.NewNotFound("submission", id)
		}
		return nil, err
	}

	if sub.OrganizationID != orgID {
		return nil, apperrors.NewNotFound("submission", id)
	}

	return s.detail(ctx, sub)
}

func (s *Service) detail(ctx context.Context, sub *types.Submission) (*Detail, error) {
	outputs, err := s.storage.ListOutputs(ctx, sub.ID)
	if err != nil {
		return nil, err
	}

	if outputs == nil {
		outputs = []*types.Output{}
	}

	return &Detail{Submission: sub, Outputs: outputs, Summary: Summarize(outputs)}, nil
}

func (s *Service) List(ctx context.Context, orgID string, page, size int64) ([]*types.Submission, error) {
	ctx, span := s.tracer.Start(ctx, "submissions.Service.List")
	defer span.End()

	subs, err := s.storage.ListSubmissions(ctx, orgID, page, size)
	if err != nil {
		return nil, err
	}

	if subs == nil {
		subs = []*types.Submission{}
	}

	return subs, nil
}

// RecomputeStatus locks the submission row, reads the statuses of all its
// outputs and stores their aggregate. Concurrent callers serialize on the lock
// so the last writer always sees the final output set.
func (s *Service) RecomputeStatus(ctx context.Context, submissionID string) (types.SubmissionStatus, error) {
	ctx, span := s.tracer.Start(ctx, "submissions.Service.RecomputeStatus")
	defer span.End()

	var status types.SubmissionStatus
	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		var err error
		status, err = s.recompute(ctx, submissionID)
		return err
	})
	if err != nil {
		return "", err
	}

	return status, nil
}

func (s *Service) recompute(ctx context.Context, submissionID string) (types.SubmissionStatus, error) {
	sub, err := s.storage.LockSubmission(ctx, submissionID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", apperrors.NewNotFound("submission", submissionID)
		}
		return "", err
	}

	statuses, err := s.storage.ListOutputStatuses(ctx, submissionID)
	if err != nil {
		return "", err
	}

	status := AggregateStatus(statuses)
	if status == sub.Status {
		return status, nil
	}

	if err := s.storage.UpdateSubmissionStatus(ctx, submissionID, status); err != nil {
		return "", err
	}

	s.logger.Debugf("submission %s moved from %s to %s", submissionID, sub.Status, status)

	return status, nil
}

func (s *Service) mapError(err error) error {
	switch {
	case errors.Is(err, storage.ErrForeignKeyViolation):
		return apperrors.NewConstraintError("submission_references", "%v", err)
	case errors.Is(err, storage.ErrDuplicateKey):
		return apperrors.NewConstraintError("submission_unique", "%v", err)
	}
	return err
}

func NewService(
	storage StorageInterface,
	q QueueInterface,
	publisher PublisherInterface,
	policies map[queue.JobType]queue.RetryPolicy,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.queue = q
	s.publisher = publisher
	s.policies = policies

	if s.policies == nil {
		s.policies = queue.DefaultPolicies()
	}

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
