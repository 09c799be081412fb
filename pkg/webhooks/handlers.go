// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/content-service/internal/http/types"
	"github.com/canonical/content-service/internal/logging"
)

const maxHookBody = 1 << 20

type API struct {
	service ServiceInterface
	apiKey  string
	logger  logging.LoggerInterface
}

// NewAPI serves the Kratos hooks. A non empty apiKey must be sent as the
// Authorization header, matching the api_key auth of the Kratos web_hook.
func NewAPI(service ServiceInterface, apiKey string, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.apiKey = apiKey
	a.logger = logger

	return a
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.With(a.requireAPIKey).Post("/webhooks/registration", a.registration)
}

func (a *API) requireAPIKey(next http.Handler) http.Handler {
	if a.apiKey == "" {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if subtle.ConstantTimeCompare([]byte(r.Header.Get("Authorization")), []byte(a.apiKey)) != 1 {
			a.logger.Security().AuthnFailure(r.RemoteAddr, "invalid_webhook_key")
			types.WriteErrorMessage(w, http.StatusUnauthorized, types.CodeUnauth, "invalid webhook key")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (a *API) registration(w http.ResponseWriter, r *http.Request) {
	hook := new(registrationHook)
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxHookBody)).Decode(hook); err != nil {
		a.logger.Errorf("invalid registration webhook body: %v", err)
		types.WriteErrorMessage(w, http.StatusBadRequest, types.CodeValidation, "invalid request body")
		return
	}

	identity := hook.identity()

	org, err := a.service.HandleRegistration(r.Context(), identity.ID, identity.Traits.Email)
	if err != nil {
		a.logger.Errorf("failed to handle registration of %s: %v", identity.ID, err)
		types.WriteError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, org)
}
