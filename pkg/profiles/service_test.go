// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package profiles

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/canonical/content-service/internal/kratos"
	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/storage"
	"github.com/canonical/content-service/internal/tracing"
	"github.com/canonical/content-service/internal/types"
	"github.com/canonical/content-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package profiles -destination ./mock_profiles.go -source=./interfaces.go

func TestServiceEnsure(t *testing.T) {
	tests := []struct {
		name      string
		ctx       context.Context
		setup     func(*MockStorageInterface, *MockIdentityInterface)
		wantEmail string
		wantErr   bool
	}{
		{
			name: "existing profile",
			setup: func(s *MockStorageInterface, _ *MockIdentityInterface) {
				s.EXPECT().GetProfile(gomock.Any(), "user-1").Return(&types.Profile{ID: "user-1", Email: "a@example.com"}, nil)
			},
			wantEmail: "a@example.com",
		},
		{
			name: "first request creates the profile from traits",
			setup: func(s *MockStorageInterface, i *MockIdentityInterface) {
				s.EXPECT().GetProfile(gomock.Any(), "user-1").Return(nil, storage.ErrNotFound)
				i.EXPECT().GetTraits(gomock.Any(), "user-1").Return(&kratos.Traits{Email: "b@example.com", FullName: "Bea"}, nil)
				s.EXPECT().UpsertProfile(gomock.Any(), &types.Profile{ID: "user-1", Email: "b@example.com", FullName: "Bea"}).
					Return(&types.Profile{ID: "user-1", Email: "b@example.com", FullName: "Bea"}, nil)
			},
			wantEmail: "b@example.com",
		},
		{
			name: "identity lookup failure still creates the profile",
			setup: func(s *MockStorageInterface, i *MockIdentityInterface) {
				s.EXPECT().GetProfile(gomock.Any(), "user-1").Return(nil, storage.ErrNotFound)
				i.EXPECT().GetTraits(gomock.Any(), "user-1").Return(nil, errors.New("kratos down"))
				s.EXPECT().UpsertProfile(gomock.Any(), &types.Profile{ID: "user-1"}).Return(&types.Profile{ID: "user-1"}, nil)
			},
		},
		{
			name: "missing identity falls back to the token email",
			ctx:  authentication.WithPrincipal(context.Background(), &authentication.Principal{UserID: "user-1", Email: "c@example.com"}),
			setup: func(s *MockStorageInterface, i *MockIdentityInterface) {
				s.EXPECT().GetProfile(gomock.Any(), "user-1").Return(nil, storage.ErrNotFound)
				i.EXPECT().GetTraits(gomock.Any(), "user-1").Return(nil, kratos.ErrIdentityNotFound)
				s.EXPECT().UpsertProfile(gomock.Any(), &types.Profile{ID: "user-1", Email: "c@example.com"}).
					Return(&types.Profile{ID: "user-1", Email: "c@example.com"}, nil)
			},
			wantEmail: "c@example.com",
		},
		{
			name: "storage failure",
			setup: func(s *MockStorageInterface, _ *MockIdentityInterface) {
				s.EXPECT().GetProfile(gomock.Any(), "user-1").Return(nil, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := NewMockStorageInterface(ctrl)
			identity := NewMockIdentityInterface(ctrl)
			test.setup(store, identity)

			logger := logging.NewNoopLogger()
			s := NewService(store, identity, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

			ctx := test.ctx
			if ctx == nil {
				ctx = context.Background()
			}

			p, err := s.Ensure(ctx, "user-1")

			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.wantEmail, p.Email)
		})
	}
}

func TestMiddlewareEnsure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockServiceInterface(ctrl)
	svc.EXPECT().Ensure(gomock.Any(), "user-1").Return(&types.Profile{ID: "user-1"}, nil)

	m := NewMiddleware(svc, logging.NewNoopLogger())

	var seen *types.Profile
	handler := m.Ensure(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v0/submissions", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req.WithContext(authentication.WithUserID(req.Context(), "user-1")))

	assert.Equal(t, http.StatusNoContent, w.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "user-1", seen.ID)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/submissions", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
