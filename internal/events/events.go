// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package events

import (
	"time"

	"github.com/canonical/content-service/internal/types"
)

const EventOutputTransitioned = "output.transitioned"

// OutputTransitioned is emitted after every committed output state change.
type OutputTransitioned struct {
	Type           string             `json:"type"`
	OutputID       string             `json:"output_id"`
	SubmissionID   string             `json:"submission_id"`
	OrganizationID string             `json:"organization_id"`
	Kind           types.OutputKind   `json:"kind"`
	From           types.OutputStatus `json:"from,omitempty"`
	To             types.OutputStatus `json:"to"`
	Approved       bool               `json:"approved"`
	Generation     int                `json:"generation"`
	JobID          string             `json:"job_id,omitempty"`
	Error          string             `json:"error,omitempty"`
	OccurredAt     time.Time          `json:"occurred_at"`
}

// NewOutputTransitioned describes the move of o from the given status to its current one.
func NewOutputTransitioned(o *types.Output, from types.OutputStatus, jobID string) *OutputTransitioned {
	ev := &OutputTransitioned{
		Type:           EventOutputTransitioned,
		OutputID:       o.ID,
		SubmissionID:   o.SubmissionID,
		OrganizationID: o.OrganizationID,
		Kind:           o.Kind,
		From:           from,
		To:             o.Status,
		Approved:       o.IsApproved,
		Generation:     o.Generation,
		JobID:          jobID,
		OccurredAt:     time.Now().UTC(),
	}

	if o.Error != nil {
		ev.Error = *o.Error
	}

	return ev
}
