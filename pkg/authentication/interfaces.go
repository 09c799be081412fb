// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/coreos/go-oidc/v3/oidc"
)

type ProviderInterface interface {
	Verifier(*oidc.Config) *oidc.IDTokenVerifier
}

// TokenVerifierInterface resolves a bearer token to the principal it was issued to.
type TokenVerifierInterface interface {
	VerifyToken(ctx context.Context, rawToken string) (*Principal, error)
}
