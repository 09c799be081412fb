// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"time"

	"github.com/canonical/content-service/internal/queue"
	"github.com/canonical/content-service/internal/types"
	"github.com/canonical/content-service/pkg/submissions"
)

// contentClient is the subset of the REST API driven from the command line.
type contentClient interface {
	CreateSubmission(ctx context.Context, in *submissions.CreateInput) (*submissionView, error)
	GetSubmission(ctx context.Context, id string) (*submissionView, error)
	ListSubmissions(ctx context.Context, page, size int) ([]*submissionView, error)

	GetOutput(ctx context.Context, id string) (*outputView, error)
	ApproveOutput(ctx context.Context, id string, approved bool) (*outputView, error)
	RegenerateOutput(ctx context.Context, id string, params *queue.GenerationParams) (*outputView, error)
}

// outputView mirrors the output JSON without decoding the per-kind payload.
type outputView struct {
	ID         string             `json:"id"`
	Kind       types.OutputKind   `json:"kind"`
	Status     types.OutputStatus `json:"status"`
	IsApproved bool               `json:"is_approved"`
	Stale      bool               `json:"stale"`
	Error      *string            `json:"error,omitempty"`
	Generation int                `json:"generation"`
	Payload    json.RawMessage    `json:"payload,omitempty"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

type submissionView struct {
	types.Submission

	Outputs []*outputView       `json:"outputs"`
	Summary submissions.Summary `json:"summary"`
}

func getClient() contentClient {
	return newHTTPContentClient(httpEndpoint, userID, accessToken)
}
