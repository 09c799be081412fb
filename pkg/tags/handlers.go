// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tags

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/content-service/internal/http/types"
	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/tracing"
	"github.com/canonical/content-service/pkg/organizations"
)

type createTagRequest struct {
	Name string `json:"name" validate:"required"`
}

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

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/tags", a.list)
	mux.Post("/api/v0/tags", a.create)
	mux.Get("/api/v0/outputs/{outputID}/tags", a.listForOutput)
	mux.Put("/api/v0/outputs/{outputID}/tags/{tagID}", a.attach)
	mux.Delete("/api/v0/outputs/{outputID}/tags/{tagID}", a.detach)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	orgID, ok := a.organization(w, r)
	if !ok {
		return
	}

	tags, err := a.service.List(r.Context(), orgID)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, tags)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	orgID, ok := a.organization(w, r)
	if !ok {
		return
	}

	var req createTagRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	t, err := a.service.Create(r.Context(), orgID, req.Name)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, t)
}

func (a *API) listForOutput(w http.ResponseWriter, r *http.Request) {
	orgID, ok := a.organization(w, r)
	if !ok {
		return
	}

	tags, err := a.service.ListForOutput(r.Context(), orgID, chi.URLParam(r, "outputID"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, tags)
}

func (a *API) attach(w http.ResponseWriter, r *http.Request) {
	orgID, ok := a.organization(w, r)
	if !ok {
		return
	}

	if err := a.service.Attach(r.Context(), orgID, chi.URLParam(r, "tagID"), chi.URLParam(r, "outputID")); err != nil {
		a.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) detach(w http.ResponseWriter, r *http.Request) {
	orgID, ok := a.organization(w, r)
	if !ok {
		return
	}

	if err := a.service.Detach(r.Context(), orgID, chi.URLParam(r, "tagID"), chi.URLParam(r, "outputID")); err != nil {
		a.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) organization(w http.ResponseWriter, r *http.Request) (string, bool) {
	m, ok := organizations.MemberFromContext(r.Context())
	if !ok {
		httptypes.WriteErrorMessage(w, http.StatusForbidden, httptypes.CodeForbidden, "profile does not belong to an organization")
		return "", false
	}
	return m.OrganizationID, true
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	if status, _ := httptypes.StatusFor(err); status == http.StatusInternalServerError {
		a.logger.Errorf("tag request failed: %v", err)
	}
	httptypes.WriteError(w, err)
}
