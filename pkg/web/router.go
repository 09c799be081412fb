// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/tracing"
	"github.com/canonical/content-service/pkg/metrics"
	"github.com/canonical/content-service/pkg/status"
)

// EndpointsInterface is implemented by every API mounted on the router.
type EndpointsInterface interface {
	RegisterEndpoints(chi.Router)
}

type RouterConfig struct {
	// Authenticate resolves the caller identity, either from a bearer token or a gateway header.
	Authenticate func(http.Handler) http.Handler
	// EnsureProfile lazily creates the profile of the authenticated caller.
	EnsureProfile func(http.Handler) http.Handler
	// RequireMembership stores the caller's organization membership in the request context.
	RequireMembership func(http.Handler) http.Handler

	// Public APIs are served without authentication.
	Public []EndpointsInterface
	// Authenticated APIs need an identity but no organization.
	Authenticated []EndpointsInterface
	// Members APIs are scoped to the caller's organization.
	Members []EndpointsInterface

	Dependencies   map[string]status.PingerInterface
	AllowedOrigins []string
}

func NewRouter(
	cfg *RouterConfig,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		middleware.Recoverer,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(cfg.AllowedOrigins),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(cfg.Dependencies, tracer, monitor, logger).RegisterEndpoints(router)

	for _, api := range cfg.Public {
		api.RegisterEndpoints(router)
	}

	router.Group(func(r chi.Router) {
		r.Use(inline(cfg.Authenticate), inline(cfg.EnsureProfile))

		for _, api := range cfg.Authenticated {
			api.RegisterEndpoints(r)
		}

		r.Group(func(r chi.Router) {
			r.Use(inline(cfg.RequireMembership))

			for _, api := range cfg.Members {
				api.RegisterEndpoints(r)
			}
		})
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func inline(mw func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	if mw == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return mw
}
