// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"
	"strings"

	httptypes "github.com/canonical/content-service/internal/http/types"
	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/tracing"
)

// Middleware rejects requests without a valid bearer token and stores the
// resolved principal in the request context.
type Middleware struct {
	verifier TokenVerifierInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			token, ok := bearerToken(r.Header)
			if !ok {
				httptypes.WriteErrorMessage(w, http.StatusUnauthorized, httptypes.CodeUnauth, "missing bearer token")
				return
			}

			principal, err := m.verifier.VerifyToken(ctx, token)
			if err != nil {
				m.logger.Debugf("token rejected: %v", err)
				m.logger.Security().AuthnFailure(r.RemoteAddr, "invalid_token")
				httptypes.WriteErrorMessage(w, http.StatusUnauthorized, httptypes.CodeUnauth, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(ctx, principal)))
		})
	}
}

// bearerToken extracts the credentials of an RFC 6750 Authorization header.
// The scheme is matched case insensitively.
func bearerToken(headers http.Header) (string, bool) {
	scheme, token, ok := strings.Cut(headers.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}

func NewMiddleware(verifier TokenVerifierInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	m := new(Middleware)

	m.verifier = verifier
	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m
}
