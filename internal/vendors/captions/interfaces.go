// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package captions

import (
	"context"

	"github.com/canonical/content-service/internal/vendors/speech"
)

type BurnerInterface interface {
	Burn(ctx context.Context, videoURL string, words []speech.Word, language string) (string, error)
}
