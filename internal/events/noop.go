// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package events

import (
	"context"

	"github.com/canonical/content-service/internal/logging"
)

type NoopPublisher struct {
	logger logging.LoggerInterface
}

func (p *NoopPublisher) PublishTransition(ctx context.Context, ev *OutputTransitioned) error {
	p.logger.Debugf("event publishing disabled, dropping %s for output %s", ev.Type, ev.OutputID)
	return nil
}

func (p *NoopPublisher) Close() error {
	return nil
}

func NewNoopPublisher(logger logging.LoggerInterface) *NoopPublisher {
	return &NoopPublisher{logger: logger}
}
