// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mediaproc

import (
	"context"
)

type ProcessorInterface interface {
	TempFile(pattern string, data []byte) (string, error)
	OutputPath(name string) string
	ConcatAudio(ctx context.Context, inputs []string, output string) error
	PostProcess(ctx context.Context, req PostProcessRequest) error
	Duration(ctx context.Context, path string) (float64, error)
}
