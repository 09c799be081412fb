// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package outputs

import (
	"context"
	"errors"
	"fmt"
	"time"

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

const (
	entity = "output"

	// CodeDeadLetter prefixes the error of outputs whose job ran out of attempts.
	CodeDeadLetter = "dead_letter"
	// CodeEnqueueFailed prefixes the error of outputs whose regeneration job could not be queued.
	CodeEnqueueFailed = "enqueue_failed"

	reapBatch uint64 = 100
)

var (
	startableStatuses     = []types.OutputStatus{types.OutputPending, types.OutputFailed, types.OutputCompleted}
	firstRunStatuses      = []types.OutputStatus{types.OutputPending}
	regeneratableStatuses = []types.OutputStatus{types.OutputCompleted, types.OutputFailed}
)

type options struct {
	jobID string
}

// Option narrows a transition.
type Option func(*options)

// WithJobID restricts a release to the job that currently owns the output.
func WithJobID(jobID string) Option {
	return func(o *options) {
		o.jobID = jobID
	}
}

type Service struct {
	storage    StorageInterface
	queue      QueueInterface
	submission StatusRecomputerInterface
	publisher  PublisherInterface
	policies   map[queue.JobType]queue.RetryPolicy

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Get returns an output of the organization, with a stale flag on payloads left over from an earlier run.
func (s *Service) Get(ctx context.Context, orgID, id string) (*types.Output, error) {
	ctx, span := s.tracer.Start(ctx, "outputs.Service.Get")
	defer span.End()

	return s.get(ctx, orgID, id)
}

func (s *Service) get(ctx context.Context, orgID, id string) (*types.Output, error) {
	o, err := s.storage.GetOutput(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.NewNotFound(entity, id)
		}
		return nil, err
	}

	if orgID != "" && o.OrganizationID != orgID {
		return nil, apperrors.NewNotFound(entity, id)
	}

	return o, nil
}

// Start locks the output for jobID. A PROCESSING output cannot be started again.
func (s *Service) Start(ctx context.Context, id, jobID string) (*types.Output, error) {
	ctx, span := s.tracer.Start(ctx, "outputs.Service.Start")
	defer span.End()

	return s.start(ctx, id, jobID, startableStatuses)
}

func (s *Service) start(ctx context.Context, id, jobID string, from []types.OutputStatus) (*types.Output, error) {
	current, err := s.get(ctx, "", id)
	if err != nil {
		return nil, err
	}

	var started *types.Output
	err = s.storage.WithTx(ctx, func(ctx context.Context) error {
		o, err := s.storage.StartOutput(ctx, id, jobID, from)
		if err != nil {
			return s.transitionError(ctx, id, err, types.OutputProcessing, apperrors.NewInvalidTransition)
		}

		if _, err := s.submission.RecomputeStatus(ctx, o.SubmissionID); err != nil {
			return err
		}

		started = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, started, current.Status, jobID)

	return started, nil
}

// Acquire hands the output to a worker. An output already owned by jobID, either
// because it was regenerated under that job or because the job was redelivered,
// gets its heartbeat refreshed and is returned. Otherwise only a PENDING output
// is started, FAILED and COMPLETED outputs change hands through Regenerate.
func (s *Service) Acquire(ctx context.Context, id, jobID string) (*types.Output, error) {
	ctx, span := s.tracer.Start(ctx, "outputs.Service.Acquire")
	defer span.End()

	o, err := s.get(ctx, "", id)
	if err != nil {
		return nil, err
	}

	if !o.OwnedBy(jobID) {
		return s.start(ctx, id, jobID, firstRunStatuses)
	}

	if err := s.storage.TouchOutput(ctx, id, jobID); err != nil {
		return nil, s.transitionError(ctx, id, err, types.OutputProcessing, apperrors.NewInvalidTransition)
	}

	return o, nil
}

// Complete stores the payload of a PROCESSING output and refreshes the submission status.
func (s *Service) Complete(ctx context.Context, id string, payload types.OutputPayload, opts ...Option) (*types.Output, error) {
	ctx, span := s.tracer.Start(ctx, "outputs.Service.Complete")
	defer span.End()

	o := s.options(opts)

	current, err := s.get(ctx, "", id)
	if err != nil {
		return nil, err
	}

	if payload == nil {
		return nil, apperrors.NewValidationError("payload", "a %s output cannot complete without a payload", current.Kind)
	}

	raw, err := types.EncodePayload(current.Kind, payload)
	if err != nil {
		return nil, apperrors.NewValidationError("payload", "%v", err)
	}

	return s.release(ctx, current, types.OutputCompleted, o.jobID, func(ctx context.Context) (*types.Output, error) {
		return s.storage.CompleteOutput(ctx, id, o.jobID, raw)
	})
}

// Fail records the error of a PROCESSING output, the previous payload is kept.
func (s *Service) Fail(ctx context.Context, id, message string, opts ...Option) (*types.Output, error) {
	ctx, span := s.tracer.Start(ctx, "outputs.Service.Fail")
	defer span.End()

	o := s.options(opts)

	current, err := s.get(ctx, "", id)
	if err != nil {
		return nil, err
	}

	return s.release(ctx, current, types.OutputFailed, o.jobID, func(ctx context.Context) (*types.Output, error) {
		return s.storage.FailOutput(ctx, id, o.jobID, message)
	})
}

func (s *Service) release(
	ctx context.Context,
	current *types.Output,
	target types.OutputStatus,
	jobID string,
	update func(context.Context) (*types.Output, error),
) (*types.Output, error) {
	var released *types.Output
	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		o, err := update(ctx)
		if err != nil {
			return s.transitionError(ctx, current.ID, err, target, apperrors.NewInvalidTransition)
		}

		if _, err := s.submission.RecomputeStatus(ctx, o.SubmissionID); err != nil {
			return err
		}

		released = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, released, current.Status, jobID)

	return released, nil
}

func (s *Service) Approve(ctx context.Context, orgID, id string) (*types.Output, error) {
	ctx, span := s.tracer.Start(ctx, "outputs.Service.Approve")
	defer span.End()

	return s.setApproval(ctx, orgID, id, true)
}

func (s *Service) Unapprove(ctx context.Context, orgID, id string) (*types.Output, error) {
	ctx, span := s.tracer.Start(ctx, "outputs.Service.Unapprove")
	defer span.End()

	return s.setApproval(ctx, orgID, id, false)
}

// setApproval only touches COMPLETED outputs and is idempotent, the status never changes.
func (s *Service) setApproval(ctx context.Context, orgID, id string, approved bool) (*types.Output, error) {
	current, err := s.get(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	if current.Status != types.OutputCompleted {
		return nil, apperrors.NewInvalidState(entity, id, string(current.Status), string(approvalTarget(approved)))
	}

	if current.IsApproved == approved {
		return current, nil
	}

	o, err := s.storage.SetOutputApproval(ctx, id, approved)
	if err != nil {
		return nil, s.transitionError(ctx, id, err, approvalTarget(approved), apperrors.NewInvalidState)
	}

	s.publish(ctx, o, current.Status, "")

	return o, nil
}

func approvalTarget(approved bool) types.OutputStatus {
	if approved {
		return "APPROVED"
	}
	return "UNAPPROVED"
}

// Regenerate moves a COMPLETED or FAILED output back to PROCESSING under a new
// job and enqueues that job. Of two concurrent calls exactly one wins, the other
// gets an invalid state error.
func (s *Service) Regenerate(ctx context.Context, orgID, id string, params queue.GenerationParams) (*types.Output, error) {
	ctx, span := s.tracer.Start(ctx, "outputs.Service.Regenerate")
	defer span.End()

	current, err := s.get(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	if params, err = s.validateParams(ctx, current.OrganizationID, params); err != nil {
		return nil, err
	}

	jobID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate job ID: %w", err)
	}

	job, err := s.newJob(current, jobID.String(), params)
	if err != nil {
		return nil, err
	}

	var started *types.Output
	start := func(ctx context.Context) error {
		o, err := s.storage.StartOutput(ctx, id, job.ID, regeneratableStatuses)
		if err != nil {
			return s.transitionError(ctx, id, err, types.OutputProcessing, apperrors.NewInvalidState)
		}

		if _, err := s.submission.RecomputeStatus(ctx, o.SubmissionID); err != nil {
			return err
		}

		started = o
		return nil
	}

	if s.queue.Transactional() {
		err = s.storage.WithTx(ctx, func(ctx context.Context) error {
			if err := start(ctx); err != nil {
				return err
			}

			_, err := s.queue.Enqueue(ctx, job)
			return err
		})
		if err != nil {
			return nil, err
		}

		s.publish(ctx, started, current.Status, job.ID)

		return started, nil
	}

	if err := s.storage.WithTx(ctx, start); err != nil {
		return nil, err
	}

	s.publish(ctx, started, current.Status, job.ID)

	if _, err := s.queue.Enqueue(ctx, job); err != nil {
		s.logger.Errorf("failed to enqueue regeneration of output %s, releasing it: %v", id, err)

		if _, ferr := s.Fail(ctx, id, fmt.Sprintf("%s: %v", CodeEnqueueFailed, err), WithJobID(job.ID)); ferr != nil {
			s.logger.Errorf("failed to release output %s after enqueue error: %v", id, ferr)
		}

		return nil, fmt.Errorf("failed to enqueue regeneration: %w", err)
	}

	return started, nil
}

func (s *Service) validateParams(ctx context.Context, orgID string, params queue.GenerationParams) (queue.GenerationParams, error) {
	if params.Language != "" {
		tag, err := translation.Normalize(params.Language)
		if err != nil {
			return params, apperrors.NewValidationError("language", "%q is not a valid BCP-47 tag", params.Language)
		}
		params.Language = tag
	}

	if params.VoiceID != "" {
		v, err := s.storage.GetVoice(ctx, params.VoiceID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return params, apperrors.NewValidationError("voice_id", "voice %s does not exist", params.VoiceID)
			}
			return params, err
		}
		if v.OrganizationID != orgID {
			return params, apperrors.NewConstraintError("voice_same_organization", "voice %s belongs to another organization", v.ID)
		}
	}

	if params.CharacterID != "" {
		c, err := s.storage.GetCharacter(ctx, params.CharacterID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return params, apperrors.NewValidationError("character_id", "character %s does not exist", params.CharacterID)
			}
			return params, err
		}
		if c.OrganizationID != orgID {
			return params, apperrors.NewConstraintError("character_same_organization", "character %s belongs to another organization", c.ID)
		}
	}

	return params, nil
}

func (s *Service) newJob(o *types.Output, jobID string, params queue.GenerationParams) (*queue.Job, error) {
	payload, err := queue.NewPayload(
		queue.OutputRef{
			SubmissionID:   o.SubmissionID,
			OutputID:       o.ID,
			OrganizationID: o.OrganizationID,
			Kind:           o.Kind,
		},
		params,
	)
	if err != nil {
		return nil, err
	}

	return queue.NewJob(jobID, payload, s.policies[payload.JobType()].MaxAttempts)
}

// ReapStale fails PROCESSING outputs whose last heartbeat is older than cutoff,
// usually left by a worker that died with its job. It returns the number of
// outputs released.
func (s *Service) ReapStale(ctx context.Context, cutoff time.Time) (int, error) {
	ctx, span := s.tracer.Start(ctx, "outputs.Service.ReapStale")
	defer span.End()

	stale, err := s.storage.ListStaleOutputs(ctx, cutoff, reapBatch)
	if err != nil {
		return 0, err
	}

	reaped := 0
	for _, o := range stale {
		jobID := ""
		if o.JobID != nil {
			jobID = *o.JobID
		}

		var after time.Duration
		if o.StartedAt != nil {
			after = time.Since(*o.StartedAt).Truncate(time.Second)
		}

		msg := apperrors.NewTimeoutError(fmt.Sprintf("%s generation", o.Kind), after).Error()
		if _, err := s.Fail(ctx, o.ID, msg, WithJobID(jobID)); err != nil {
			if errors.Is(err, apperrors.ErrInvalidTransition) {
				continue
			}
			s.logger.Errorf("failed to reap stale output %s: %v", o.ID, err)
			continue
		}

		reaped++
	}

	if reaped > 0 {
		s.logger.Infof("reaped %d stale outputs", reaped)
	}

	return reaped, nil
}

// transitionError turns a failed conditional update into a typed error carrying the current status.
func (s *Service) transitionError(
	ctx context.Context,
	id string,
	err error,
	target types.OutputStatus,
	build func(entity, id, current, target string) error,
) error {
	if !errors.Is(err, storage.ErrConditionFailed) {
		return err
	}

	o, gerr := s.storage.GetOutput(ctx, id)
	if gerr != nil {
		if errors.Is(gerr, storage.ErrNotFound) {
			return apperrors.NewNotFound(entity, id)
		}
		return build(entity, id, "", string(target))
	}

	return build(entity, id, string(o.Status), string(target))
}

func (s *Service) publish(ctx context.Context, o *types.Output, from types.OutputStatus, jobID string) {
	if err := s.publisher.PublishTransition(ctx, events.NewOutputTransitioned(o, from, jobID)); err != nil {
		s.logger.Warnf("failed to publish transition of output %s: %v", o.ID, err)
	}
}

func (s *Service) options(opts []Option) *options {
	o := new(options)
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func NewService(
	storage StorageInterface,
	q QueueInterface,
	submission StatusRecomputerInterface,
	publisher PublisherInterface,
	policies map[queue.JobType]queue.RetryPolicy,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.queue = q
	s.submission = submission
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
