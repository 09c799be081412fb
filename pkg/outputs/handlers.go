// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package outputs

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/content-service/internal/http/types"
	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/queue"
	"github.com/canonical/content-service/internal/tracing"
	"github.com/canonical/content-service/internal/types"
	"github.com/canonical/content-service/pkg/organizations"
)

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// RegisterEndpoints mounts the output routes, they expect a resolved membership in the context.
func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/outputs/{outputID}", a.get)
	mux.Post("/api/v0/outputs/{outputID}/approve", a.approve)
	mux.Post("/api/v0/outputs/{outputID}/unapprove", a.unapprove)
	mux.Post("/api/v0/outputs/{outputID}/regenerate", a.regenerate)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	a.respond(w, r, http.StatusOK, func(orgID, id string) (*types.Output, error) {
		return a.service.Get(r.Context(), orgID, id)
	})
}

func (a *API) approve(w http.ResponseWriter, r *http.Request) {
	a.respond(w, r, http.StatusOK, func(orgID, id string) (*types.Output, error) {
		return a.service.Approve(r.Context(), orgID, id)
	})
}

func (a *API) unapprove(w http.ResponseWriter, r *http.Request) {
	a.respond(w, r, http.StatusOK, func(orgID, id string) (*types.Output, error) {
		return a.service.Unapprove(r.Context(), orgID, id)
	})
}

// regenerate accepts an optional body of generation overrides and answers 202 once the job is queued.
func (a *API) regenerate(w http.ResponseWriter, r *http.Request) {
	var params queue.GenerationParams
	if r.ContentLength != 0 {
		if err := httptypes.DecodeJSON(r, &params); err != nil {
			httptypes.WriteError(w, err)
			return
		}
	}

	a.respond(w, r, http.StatusAccepted, func(orgID, id string) (*types.Output, error) {
		return a.service.Regenerate(r.Context(), orgID, id, params)
	})
}

func (a *API) respond(w http.ResponseWriter, r *http.Request, status int, fn func(orgID, id string) (*types.Output, error)) {
	m, ok := organizations.MemberFromContext(r.Context())
	if !ok {
		httptypes.WriteErrorMessage(w, http.StatusForbidden, httptypes.CodeForbidden, "profile does not belong to an organization")
		return
	}

	o, err := fn(m.OrganizationID, chi.URLParam(r, "outputID"))
	if err != nil {
		if code, _ := httptypes.StatusFor(err); code == http.StatusInternalServerError {
			a.logger.Errorf("output request %s %s failed: %v", r.Method, r.URL.Path, err)
		}
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, status, o)
}
