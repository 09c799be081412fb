// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/content-service/internal/types"
)

var outputColumns = []string{
	"id", "submission_id", "organization_id", "kind", "status", "is_approved", "error",
	"payload", "job_id", "generation", "checkpoint", "started_at", "created_at", "updated_at",
}

func scanOutput(row sq.RowScanner) (*types.Output, error) {
	o := new(types.Output)

	var payload, checkpoint []byte
	err := row.Scan(
		&o.ID, &o.SubmissionID, &o.OrganizationID, &o.Kind, &o.Status, &o.IsApproved, &o.Error,
		&payload, &o.JobID, &o.Generation, &checkpoint, &o.StartedAt, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if o.Payload, err = types.DecodePayload(o.Kind, payload); err != nil {
		return nil, err
	}

	o.Stale = o.HasStalePayload()

	if len(checkpoint) > 0 && string(checkpoint) != "null" {
		o.Checkpoint = new(types.Checkpoint)
		if err := json.Unmarshal(checkpoint, o.Checkpoint); err != nil {
			return nil, fmt.Errorf("failed to decode checkpoint: %w", err)
		}
	}

	return o, nil
}

func statusValues(statuses []types.OutputStatus) []string {
	values := make([]string, len(statuses))
	for i, st := range statuses {
		values[i] = string(st)
	}
	return values
}

// CreateOutputs inserts one PENDING output per kind for the submission.
func (s *Storage) CreateOutputs(ctx context.Context, submissionID, orgID string, kinds []types.OutputKind) ([]*types.Output, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateOutputs")
	defer span.End()

	if len(kinds) == 0 {
		return nil, nil
	}

	q := s.db.Statement(ctx).
		Insert("outputs").
		Columns("id", "submission_id", "organization_id", "kind", "status")

	for _, k := range kinds {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("failed to generate output ID: %w", err)
		}
		q = q.Values(id.String(), submissionID, orgID, string(k), string(types.OutputPending))
	}

	rows, err := q.Suffix("RETURNING " + columnList(outputColumns)).QueryContext(ctx)
	if err != nil {
		return nil, mapWriteError(err, "failed to insert outputs")
	}
	defer rows.Close()

	return collectOutputs(rows)
}

func (s *Storage) GetOutput(ctx context.Context, id string) (*types.Output, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOutput")
	defer span.End()

	o, err := scanOutput(
		s.db.Statement(ctx).
			Select(outputColumns...).
			From("outputs").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get output: %w", err)
	}

	return o, nil
}

func (s *Storage) ListOutputs(ctx context.Context, submissionID string) ([]*types.Output, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListOutputs")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(outputColumns...).
		From("outputs").
		Where(sq.Eq{"submission_id": submissionID}).
		OrderBy("created_at", "id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list outputs: %w", err)
	}
	defer rows.Close()

	return collectOutputs(rows)
}

// ListOutputStatuses reads the current status of every output of a submission.
func (s *Storage) ListOutputStatuses(ctx context.Context, submissionID string) ([]types.OutputStatus, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListOutputStatuses")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("status").
		From("outputs").
		Where(sq.Eq{"submission_id": submissionID}).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list output statuses: %w", err)
	}
	defer rows.Close()

	var statuses []types.OutputStatus
	for rows.Next() {
		var st types.OutputStatus
		if err := rows.Scan(&st); err != nil {
			return nil, fmt.Errorf("failed to scan output status: %w", err)
		}
		statuses = append(statuses, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating output status rows: %w", err)
	}

	return statuses, nil
}

// StartOutput moves the output to PROCESSING under jobID if its current status is one of from.
func (s *Storage) StartOutput(ctx context.Context, id, jobID string, from []types.OutputStatus) (*types.Output, error) {
	ctx, span := s.tracer.Start(ctx, "storage.StartOutput")
	defer span.End()

	return s.updateOutput(
		ctx,
		s.db.Statement(ctx).
			Update("outputs").
			Set("status", string(types.OutputProcessing)).
			Set("job_id", jobID).
			Set("error", nil).
			Set("checkpoint", nil).
			Set("generation", sq.Expr("generation + 1")).
			Set("started_at", sq.Expr("NOW()")).
			Set("heartbeat_at", sq.Expr("NOW()")).
			Set("updated_at", sq.Expr("NOW()")).
			Where(sq.Eq{"id": id, "status": statusValues(from)}),
	)
}

// TouchOutput refreshes the heartbeat of an output still owned by jobID.
func (s *Storage) TouchOutput(ctx context.Context, id, jobID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.TouchOutput")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("outputs").
		Set("heartbeat_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "job_id": jobID, "status": string(types.OutputProcessing)}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh output heartbeat: %w", err)
	}

	if err := expectAffected(res); err != nil {
		return ErrConditionFailed
	}

	return nil
}

// CompleteOutput stores the payload of a PROCESSING output, restricted to jobID when it is not empty.
func (s *Storage) CompleteOutput(ctx context.Context, id, jobID string, payload []byte) (*types.Output, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CompleteOutput")
	defer span.End()

	q := s.db.Statement(ctx).
		Update("outputs").
		Set("status", string(types.OutputCompleted)).
		Set("payload", payload).
		Set("error", nil).
		Set("job_id", nil).
		Set("checkpoint", nil).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "status": string(types.OutputProcessing)})

	if jobID != "" {
		q = q.Where(sq.Eq{"job_id": jobID})
	}

	return s.updateOutput(ctx, q)
}

// FailOutput records the error of a PROCESSING output and keeps its previous payload.
func (s *Storage) FailOutput(ctx context.Context, id, jobID, message string) (*types.Output, error) {
	ctx, span := s.tracer.Start(ctx, "storage.FailOutput")
	defer span.End()

	q := s.db.Statement(ctx).
		Update("outputs").
		Set("status", string(types.OutputFailed)).
		Set("error", message).
		Set("job_id", nil).
		Set("checkpoint", nil).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "status": string(types.OutputProcessing)})

	if jobID != "" {
		q = q.Where(sq.Eq{"job_id": jobID})
	}

	return s.updateOutput(ctx, q)
}

// SetOutputApproval flips the approval flag of a COMPLETED output.
func (s *Storage) SetOutputApproval(ctx context.Context, id string, approved bool) (*types.Output, error) {
	ctx, span := s.tracer.Start(ctx, "storage.SetOutputApproval")
	defer span.End()

	return s.updateOutput(
		ctx,
		s.db.Statement(ctx).
			Update("outputs").
			Set("is_approved", approved).
			Set("updated_at", sq.Expr("NOW()")).
			Where(sq.Eq{"id": id, "status": string(types.OutputCompleted)}),
	)
}

// SaveCheckpoint persists stage results while the output is still owned by jobID.
func (s *Storage) SaveCheckpoint(ctx context.Context, id, jobID string, cp *types.Checkpoint) error {
	ctx, span := s.tracer.Start(ctx, "storage.SaveCheckpoint")
	defer span.End()

	raw, err := json.Marshal(cp)
	if err != nil {
		return fmt.Errorf("failed to encode checkpoint: %w", err)
	}

	res, err := s.db.Statement(ctx).
		Update("outputs").
		Set("checkpoint", raw).
		Set("heartbeat_at", sq.Expr("NOW()")).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "job_id": jobID, "status": string(types.OutputProcessing)}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to save checkpoint: %w", err)
	}

	if err := expectAffected(res); err != nil {
		return ErrConditionFailed
	}

	return nil
}

// ListStaleOutputs returns PROCESSING outputs without a heartbeat since cutoff.
func (s *Storage) ListStaleOutputs(ctx context.Context, cutoff time.Time, limit uint64) ([]*types.Output, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListStaleOutputs")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(outputColumns...).
		From("outputs").
		Where(sq.Eq{"status": string(types.OutputProcessing)}).
		Where(sq.Lt{"heartbeat_at": cutoff}).
		OrderBy("heartbeat_at").
		Limit(limit).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale outputs: %w", err)
	}
	defer rows.Close()

	return collectOutputs(rows)
}

func (s *Storage) updateOutput(ctx context.Context, q sq.UpdateBuilder) (*types.Output, error) {
	o, err := scanOutput(q.Suffix("RETURNING " + columnList(outputColumns)).QueryRowContext(ctx))
	if err != nil {
		if isNoRows(err) {
			return nil, ErrConditionFailed
		}
		return nil, fmt.Errorf("failed to update output: %w", err)
	}

	return o, nil
}

type rowsScanner interface {
	sq.RowScanner
	Next() bool
	Err() error
}

func collectOutputs(rows rowsScanner) ([]*types.Output, error) {
	var outputs []*types.Output
	for rows.Next() {
		o, err := scanOutput(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan output: %w", err)
		}
		outputs = append(outputs, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating output rows: %w", err)
	}

	return outputs, nil
}
