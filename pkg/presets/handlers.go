// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package presets

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/content-service/internal/http/types"
	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/tracing"
	"github.com/canonical/content-service/pkg/organizations"
)

type createVoiceRequest struct {
	Name          string `json:"name" validate:"required,max=100"`
	VendorVoiceID string `json:"vendor_voice_id" validate:"required"`
}

type createCharacterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	AvatarID string `json:"avatar_id" validate:"required"`
	VoiceID  string `json:"voice_id" validate:"required"`
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
	mux.Get("/api/v0/voices", a.listVoices)
	mux.Post("/api/v0/voices", a.createVoice)
	mux.Get("/api/v0/characters", a.listCharacters)
	mux.Post("/api/v0/characters", a.createCharacter)
}

func (a *API) listVoices(w http.ResponseWriter, r *http.Request) {
	m, ok := organizations.MemberFromContext(r.Context())
	if !ok {
		a.forbidden(w)
		return
	}

	voices, err := a.service.ListVoices(r.Context(), m.OrganizationID)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, voices)
}

func (a *API) createVoice(w http.ResponseWriter, r *http.Request) {
	m, ok := organizations.MemberFromContext(r.Context())
	if !ok {
		a.forbidden(w)
		return
	}

	var req createVoiceRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	v, err := a.service.CreateVoice(r.Context(), m.OrganizationID, req.Name, req.VendorVoiceID)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, v)
}

func (a *API) listCharacters(w http.ResponseWriter, r *http.Request) {
	m, ok := organizations.MemberFromContext(r.Context())
	if !ok {
		a.forbidden(w)
		return
	}

	characters, err := a.service.ListCharacters(r.Context(), m.OrganizationID)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, characters)
}

func (a *API) createCharacter(w http.ResponseWriter, r *http.Request) {
	m, ok := organizations.MemberFromContext(r.Context())
	if !ok {
		a.forbidden(w)
		return
	}

	var req createCharacterRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	c, err := a.service.CreateCharacter(r.Context(), m.OrganizationID, req.Name, req.AvatarID, req.VoiceID)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, c)
}

func (a *API) forbidden(w http.ResponseWriter) {
	httptypes.WriteErrorMessage(w, http.StatusForbidden, httptypes.CodeForbidden, "profile does not belong to an organization")
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	if status, _ := httptypes.StatusFor(err); status == http.StatusInternalServerError {
		a.logger.Errorf("preset request failed: %v", err)
	}
	httptypes.WriteError(w, err)
}
