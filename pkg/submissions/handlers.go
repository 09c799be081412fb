// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package submissions

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/content-service/internal/http/types"
	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/tracing"
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

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/v0/submissions", a.create)
	mux.Get("/api/v0/submissions", a.list)
	mux.Get("/api/v0/submissions/{submissionID}", a.get)
}

// create answers 201 as soon as the submission is stored, generation runs in the workers.
func (a *API) create(w http.ResponseWriter, r *http.Request) {
	m, ok := organizations.MemberFromContext(r.Context())
	if !ok {
		a.forbidden(w)
		return
	}

	in := new(CreateInput)
	if err := httptypes.DecodeJSON(r, in); err != nil {
		httptypes.WriteError(w, err)
		return
	}
	in.OrganizationID = m.OrganizationID
	in.CreatedBy = m.ProfileID

	d, err := a.service.Create(r.Context(), in)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, d)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	m, ok := organizations.MemberFromContext(r.Context())
	if !ok {
		a.forbidden(w)
		return
	}

	page, size, err := httptypes.Pagination(r)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	subs, err := a.service.List(r.Context(), m.OrganizationID, page, size)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	httptypes.WritePage(w, subs, page, size)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	m, ok := organizations.MemberFromContext(r.Context())
	if !ok {
		a.forbidden(w)
		return
	}

	d, err := a.service.Get(r.Context(), m.OrganizationID, chi.URLParam(r, "submissionID"))
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, d)
}

func (a *API) forbidden(w http.ResponseWriter) {
	httptypes.WriteErrorMessage(w, http.StatusForbidden, httptypes.CodeForbidden, "profile does not belong to an organization")
}

func (a *API) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if status, _ := httptypes.StatusFor(err); status == http.StatusInternalServerError {
		a.logger.Errorf("submission request %s %s failed: %v", r.Method, r.URL.Path, err)
	}
	httptypes.WriteError(w, err)
}
