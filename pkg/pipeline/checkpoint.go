// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/canonical/content-service/internal/apperrors"
	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/storage"
	"github.com/canonical/content-service/internal/types"
)

// ErrLostOwnership is returned when the output was released or taken over by another job mid-run.
var ErrLostOwnership = errors.New("output is no longer owned by this job")

// run carries the state of one attempt of a job over one output.
type run struct {
	output *types.Output
	jobID  string
	cp     *types.Checkpoint

	storage StorageInterface
	logger  logging.LoggerInterface
}

func newRun(o *types.Output, jobID string, s StorageInterface, logger logging.LoggerInterface) *run {
	r := &run{output: o, jobID: jobID, storage: s, logger: logger}

	if o.Checkpoint != nil && o.Checkpoint.JobID == jobID {
		r.cp = o.Checkpoint
	}
	if r.cp == nil {
		r.cp = &types.Checkpoint{JobID: jobID}
	}
	if r.cp.Stages == nil {
		r.cp.Stages = map[string]json.RawMessage{}
	}

	return r
}

// stage runs fn once per job: a result checkpointed by an earlier attempt of
// the same job is returned without calling fn again.
func stage[T any](ctx context.Context, r *run, name string, fn func(context.Context) (T, error)) (T, error) {
	var out T

	if raw, ok := r.cp.Stages[name]; ok {
		if err := json.Unmarshal(raw, &out); err == nil {
			r.logger.Debugf("output %s resumes after stage %s", r.output.ID, name)
			return out, nil
		}
		r.logger.Warnf("discarding unreadable checkpoint of stage %s on output %s", name, r.output.ID)
	}

	if err := ctx.Err(); err != nil {
		return out, apperrors.NewStageError(name, err)
	}

	out, err := fn(ctx)
	if err != nil {
		return out, apperrors.NewStageError(name, err)
	}

	raw, err := json.Marshal(out)
	if err != nil {
		return out, apperrors.NewStageError(name, fmt.Errorf("failed to encode result: %w", err))
	}

	r.cp.Stages[name] = raw
	if err := r.storage.SaveCheckpoint(ctx, r.output.ID, r.jobID, r.cp); err != nil {
		if errors.Is(err, storage.ErrConditionFailed) {
			return out, ErrLostOwnership
		}
		r.logger.Warnf("failed to checkpoint stage %s of output %s: %v", name, r.output.ID, err)
	}

	return out, nil
}
