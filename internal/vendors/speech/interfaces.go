// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package speech

import (
	"context"
)

type SynthesizerInterface interface {
	Synthesize(ctx context.Context, voiceID, text string) (*Audio, error)
}
