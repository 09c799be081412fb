// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package avatar

import (
	"context"
	"time"
)

type RendererInterface interface {
	Submit(ctx context.Context, req RenderRequest) (string, error)
	Poll(ctx context.Context, renderID string) (*PollResult, error)
	Wait(ctx context.Context, renderID string, interval time.Duration) (*PollResult, error)
}
