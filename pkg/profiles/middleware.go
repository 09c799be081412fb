// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package profiles

import (
	"context"
	"net/http"

	httptypes "github.com/canonical/content-service/internal/http/types"
	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/types"
	"github.com/canonical/content-service/pkg/authentication"
)

type contextKey struct{}

var profileContextKey = contextKey{}

func WithProfile(ctx context.Context, p *types.Profile) context.Context {
	return context.WithValue(ctx, profileContextKey, p)
}

// FromContext returns the profile stored by the middleware, if any.
func FromContext(ctx context.Context) (*types.Profile, bool) {
	p, ok := ctx.Value(profileContextKey).(*types.Profile)
	return p, ok
}

type Middleware struct {
	profiles ServiceInterface
	logger   logging.LoggerInterface
}

// Ensure loads or lazily creates the profile of the authenticated user.
// It must run after the authentication middleware.
func (m *Middleware) Ensure(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authentication.GetUserID(r.Context())
		if !ok || userID == "" {
			httptypes.WriteErrorMessage(w, http.StatusUnauthorized, httptypes.CodeUnauth, "missing identity")
			return
		}

		p, err := m.profiles.Ensure(r.Context(), userID)
		if err != nil {
			m.logger.Errorf("failed to ensure profile of %s: %v", userID, err)
			httptypes.WriteError(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithProfile(r.Context(), p)))
	})
}

func NewMiddleware(profiles ServiceInterface, logger logging.LoggerInterface) *Middleware {
	m := new(Middleware)

	m.profiles = profiles
	m.logger = logger

	return m
}
