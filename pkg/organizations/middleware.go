// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organizations

import (
	"context"
	"errors"
	"net/http"

	"github.com/canonical/content-service/internal/apperrors"
	httptypes "github.com/canonical/content-service/internal/http/types"
	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/types"
	"github.com/canonical/content-service/pkg/authentication"
)

type contextKey struct{}

var memberContextKey = contextKey{}

func WithMember(ctx context.Context, m *types.Member) context.Context {
	return context.WithValue(ctx, memberContextKey, m)
}

// MemberFromContext returns the membership resolved by RequireMembership.
func MemberFromContext(ctx context.Context) (*types.Member, bool) {
	m, ok := ctx.Value(memberContextKey).(*types.Member)
	return m, ok && m != nil
}

type Middleware struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

// RequireMembership rejects callers without organization and stores their membership in the context.
func (m *Middleware) RequireMembership(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authentication.GetUserID(r.Context())
		if !ok || userID == "" {
			httptypes.WriteErrorMessage(w, http.StatusUnauthorized, httptypes.CodeUnauth, "missing identity")
			return
		}

		member, err := m.service.Membership(r.Context(), userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				httptypes.WriteErrorMessage(w, http.StatusForbidden, httptypes.CodeForbidden, "profile does not belong to an organization")
				return
			}
			m.logger.Errorf("failed to resolve membership of %s: %v", userID, err)
			httptypes.WriteError(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithMember(r.Context(), member)))
	})
}

func NewMiddleware(service ServiceInterface, logger logging.LoggerInterface) *Middleware {
	m := new(Middleware)

	m.service = service
	m.logger = logger

	return m
}
