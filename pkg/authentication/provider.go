// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/content-service/internal/tracing"
)

var oidcHTTPClient = tracing.NewHTTPClient(&http.Client{Timeout: 10 * time.Second})

// NewProvider runs OIDC discovery against issuer.
func NewProvider(ctx context.Context, issuer string) (*oidc.Provider, error) {
	provider, err := oidc.NewProvider(oidc.ClientContext(ctx, oidcHTTPClient), issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %w", err)
	}

	return provider, nil
}

// NewProviderWithJWKS skips discovery and verifies tokens of issuer with the
// key set served at jwksURL.
func NewProviderWithJWKS(ctx context.Context, issuer, jwksURL string) *oidc.IDTokenVerifier {
	keySet := oidc.NewRemoteKeySet(oidc.ClientContext(ctx, oidcHTTPClient), jwksURL)
	return oidc.NewVerifier(issuer, keySet, verifierConfig())
}
