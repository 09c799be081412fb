// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"
	"strings"

	httptypes "github.com/canonical/content-service/internal/http/types"
	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/tracing"
	"github.com/canonical/content-service/pkg/authentication"
)

// HeaderName is the header the gateway uses to pass the authenticated identity ID.
const HeaderName = "X-Kratos-Authenticated-Identity-Id"

type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HTTPMiddleware trusts the identity header set by the gateway and rejects requests without one.
func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		userID := strings.TrimSpace(r.Header.Get(HeaderName))
		if userID == "" {
			m.logger.Security().AuthnFailure(r.RemoteAddr, "missing_identity_header")
			httptypes.WriteErrorMessage(w, http.StatusUnauthorized, httptypes.CodeUnauth, "missing identity")
			return
		}

		next.ServeHTTP(w, r.WithContext(authentication.WithUserID(ctx, userID)))
	})
}
