// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organizations

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/content-service/internal/http/types"
	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/tracing"
	"github.com/canonical/content-service/internal/types"
	"github.com/canonical/content-service/pkg/authentication"
	"github.com/canonical/content-service/pkg/profiles"
)

type changeRoleRequest struct {
	Role types.Role `json:"role" validate:"required,oneof=OWNER ADMIN MEMBER"`
}

type joinRequest struct {
	OrganizationID string `json:"organization_id,omitempty" validate:"required_without=JoinCode"`
	JoinCode       string `json:"join_code,omitempty" validate:"required_without=OrganizationID"`
}

type inviteRequest struct {
	Email      string `json:"email,omitempty" validate:"omitempty,email"`
	TTLSeconds int64  `json:"ttl_seconds,omitempty" validate:"gte=0"`
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

// RegisterEndpoints mounts the organization routes, callers must be authenticated.
func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/me/membership", a.membership)
	mux.Post("/api/v0/join-requests", a.requestToJoin)
	mux.Post("/api/v0/invites/{token}/redeem", a.redeemInvite)

	mux.Route("/api/v0/organizations/{orgID}", func(r chi.Router) {
		r.Get("/", a.get)
		r.Get("/members", a.listMembers)
		r.Put("/members/{profileID}", a.changeRole)
		r.Delete("/members/{profileID}", a.removeMember)
		r.Get("/join-requests", a.listJoinRequests)
		r.Post("/join-requests/{requestID}/approve", a.approve)
		r.Post("/join-requests/{requestID}/deny", a.deny)
		r.Post("/invites", a.createInvite)
	})
}

func (a *API) membership(w http.ResponseWriter, r *http.Request) {
	m, err := a.service.Membership(r.Context(), a.userID(r))
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, m)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")

	// the organization is only visible to its members
	if _, err := a.service.ListMembers(r.Context(), a.userID(r), orgID); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	org, err := a.service.Get(r.Context(), orgID)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, org)
}

func (a *API) listMembers(w http.ResponseWriter, r *http.Request) {
	members, err := a.service.ListMembers(r.Context(), a.userID(r), chi.URLParam(r, "orgID"))
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, members)
}

func (a *API) changeRole(w http.ResponseWriter, r *http.Request) {
	var req changeRoleRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	err := a.service.ChangeRole(r.Context(), a.userID(r), chi.URLParam(r, "orgID"), chi.URLParam(r, "profileID"), req.Role)
	if err != nil {
		a.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) removeMember(w http.ResponseWriter, r *http.Request) {
	err := a.service.RemoveMember(r.Context(), a.userID(r), chi.URLParam(r, "orgID"), chi.URLParam(r, "profileID"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) requestToJoin(w http.ResponseWriter, r *http.Request) {
	var req joinRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	jr, err := a.service.RequestToJoin(r.Context(), a.userID(r), JoinTarget{OrganizationID: req.OrganizationID, JoinCode: req.JoinCode})
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, jr)
}

func (a *API) redeemInvite(w http.ResponseWriter, r *http.Request) {
	var email string
	if p, ok := profiles.FromContext(r.Context()); ok {
		email = p.Email
	}

	jr, err := a.service.RedeemInvite(r.Context(), a.userID(r), email, chi.URLParam(r, "token"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, jr)
}

func (a *API) listJoinRequests(w http.ResponseWriter, r *http.Request) {
	status := types.JoinRequestStatus(r.URL.Query().Get("status"))

	jrs, err := a.service.ListJoinRequests(r.Context(), a.userID(r), chi.URLParam(r, "orgID"), status)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, jrs)
}

func (a *API) approve(w http.ResponseWriter, r *http.Request) {
	jr, err := a.service.ApproveJoinRequest(r.Context(), a.userID(r), chi.URLParam(r, "orgID"), chi.URLParam(r, "requestID"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, jr)
}

func (a *API) deny(w http.ResponseWriter, r *http.Request) {
	jr, err := a.service.DenyJoinRequest(r.Context(), a.userID(r), chi.URLParam(r, "orgID"), chi.URLParam(r, "requestID"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, jr)
}

func (a *API) createInvite(w http.ResponseWriter, r *http.Request) {
	var req inviteRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	inv, err := a.service.CreateInvite(r.Context(), a.userID(r), chi.URLParam(r, "orgID"), req.Email, time.Duration(req.TTLSeconds)*time.Second)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, inv)
}

func (a *API) userID(r *http.Request) string {
	id, _ := authentication.GetUserID(r.Context())
	return id
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	if status, _ := httptypes.StatusFor(err); status == http.StatusInternalServerError {
		a.logger.Errorf("organization request failed: %v", err)
	}
	httptypes.WriteError(w, err)
}
