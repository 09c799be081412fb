// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package textgen

import (
	"context"
)

type Prompt struct {
	System      string
	User        string
	Temperature *float64
}

type GeneratorInterface interface {
	Generate(ctx context.Context, p Prompt) (string, error)
	GenerateJSON(ctx context.Context, p Prompt, out any) error
}
