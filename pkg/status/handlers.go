// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/content-service/internal/http/types"
	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/tracing"
	"github.com/canonical/content-service/internal/version"
)

const checkTimeout = 2 * time.Second

// PingerInterface is a dependency the service cannot serve without.
type PingerInterface interface {
	Ping(context.Context) error
}

type Status struct {
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks,omitempty"`
}

type API struct {
	dependencies map[string]PingerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/ready", a.ready)
	mux.Get("/api/v0/version", a.alive)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	httptypes.WriteJSON(w, http.StatusOK, Status{Version: version.Version})
}

// ready pings every dependency and answers 503 when any of them is down.
func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.ready")
	defer span.End()

	names := make([]string, 0, len(a.dependencies))
	for name := range a.dependencies {
		names = append(names, name)
	}
	sort.Strings(names)

	s := Status{Version: version.Version, Checks: make(map[string]string, len(names))}
	healthy := true

	for _, name := range names {
		cctx, cancel := context.WithTimeout(ctx, checkTimeout)
		err := a.dependencies[name].Ping(cctx)
		cancel()

		available := 1.0
		s.Checks[name] = "ok"
		if err != nil {
			a.logger.Warnf("dependency %s is unavailable: %v", name, err)
			available = 0
			healthy = false
			s.Checks[name] = "unavailable"
		}

		if err := a.monitor.SetDependencyAvailability(map[string]string{"component": name}, available); err != nil {
			a.logger.Debugf("failed to record availability of %s: %v", name, err)
		}
	}

	if !healthy {
		httptypes.WriteJSON(w, http.StatusServiceUnavailable, s)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, s)
}

func NewAPI(dependencies map[string]PingerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.dependencies = dependencies
	if a.dependencies == nil {
		a.dependencies = map[string]PingerInterface{}
	}

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
