// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"

	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/tracing"
)

// NewJWTAuthenticator builds a verifier for tokens of issuer. Keys are fetched
// from jwksURL when set, from the issuer discovery document otherwise.
func NewJWTAuthenticator(
	ctx context.Context,
	issuer string,
	jwksURL string,
	policy AccessPolicy,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (*JWTVerifier, error) {
	if issuer == "" {
		return nil, fmt.Errorf("issuer is required for JWT authentication")
	}

	if jwksURL != "" {
		logger.Infof("verifying tokens of %s with keys from %s", issuer, jwksURL)
		return NewJWTVerifierDirect(NewProviderWithJWKS(ctx, issuer, jwksURL), policy, tracer, monitor, logger), nil
	}

	provider, err := NewProvider(ctx, issuer)
	if err != nil {
		return nil, err
	}

	logger.Infof("verifying tokens of %s with discovered keys", issuer)
	return NewJWTVerifier(provider, policy, tracer, monitor, logger), nil
}
