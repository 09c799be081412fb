// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package submissions

import (
	"github.com/canonical/content-service/internal/types"
)

// AggregateStatus derives the submission status from the statuses of its outputs.
// It is the only rule used to compute a submission status after creation.
func AggregateStatus(statuses []types.OutputStatus) types.SubmissionStatus {
	if len(statuses) == 0 {
		return types.SubmissionPending
	}

	var completed, failed int
	for _, st := range statuses {
		switch st {
		case types.OutputPending, types.OutputProcessing:
			return types.SubmissionProcessing
		case types.OutputCompleted:
			completed++
		case types.OutputFailed:
			failed++
		}
	}

	switch {
	case completed == len(statuses):
		return types.SubmissionCompleted
	case failed == len(statuses):
		return types.SubmissionFailed
	default:
		return types.SubmissionPartialComplete
	}
}

// Summary attributes each output kind of a submission to its outcome.
type Summary struct {
	Succeeded  []types.OutputKind `json:"succeeded"`
	Failed     []types.OutputKind `json:"failed"`
	InProgress []types.OutputKind `json:"in_progress"`
}

func Summarize(outputs []*types.Output) Summary {
	s := Summary{
		Succeeded:  []types.OutputKind{},
		Failed:     []types.OutputKind{},
		InProgress: []types.OutputKind{},
	}

	for _, o := range outputs {
		switch o.Status {
		case types.OutputCompleted:
			s.Succeeded = append(s.Succeeded, o.Kind)
		case types.OutputFailed:
			s.Failed = append(s.Failed, o.Kind)
		default:
			s.InProgress = append(s.InProgress, o.Kind)
		}
	}

	return s
}
