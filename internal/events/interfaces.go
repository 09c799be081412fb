// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package events

import (
	"context"
)

type PublisherInterface interface {
	PublishTransition(ctx context.Context, ev *OutputTransitioned) error
	Close() error
}
