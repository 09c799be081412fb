// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
)

// NoopVerifier accepts any non empty token and uses it as the user ID.
// Only meant for local development.
type NoopVerifier struct{}

func NewNoopVerifier() *NoopVerifier {
	return new(NoopVerifier)
}

func (n *NoopVerifier) VerifyToken(_ context.Context, rawToken string) (*Principal, error) {
	if rawToken == "" {
		return nil, errors.New("empty token")
	}
	return &Principal{UserID: rawToken}, nil
}
