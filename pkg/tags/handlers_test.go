// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tags

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/canonical/content-service/internal/apperrors"
	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/tracing"
	"github.com/canonical/content-service/internal/types"
	"github.com/canonical/content-service/pkg/organizations"
)

func TestAPI(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   string
		setup  func(*MockServiceInterface)
		status int
	}{
		{
			name:   "create",
			method: http.MethodPost,
			path:   "/api/v0/tags",
			body:   `{"name":"science"}`,
			setup: func(m *MockServiceInterface) {
				m.EXPECT().Create(gomock.Any(), "org-1", "science").Return(&types.Tag{ID: "tag-1"}, nil)
			},
			status: http.StatusCreated,
		},
		{
			name:   "attach",
			method: http.MethodPut,
			path:   "/api/v0/outputs/out-1/tags/tag-1",
			setup: func(m *MockServiceInterface) {
				m.EXPECT().Attach(gomock.Any(), "org-1", "tag-1", "out-1").Return(nil)
			},
			status: http.StatusNoContent,
		},
		{
			name:   "attach across organizations",
			method: http.MethodPut,
			path:   "/api/v0/outputs/out-1/tags/tag-9",
			setup: func(m *MockServiceInterface) {
				m.EXPECT().Attach(gomock.Any(), "org-1", "tag-9", "out-1").
					Return(apperrors.NewConstraintError(ConstraintSameTenant, "tag tag-9 and output out-1 must both belong to organization org-1"))
			},
			status: http.StatusConflict,
		},
		{
			name:   "detach",
			method: http.MethodDelete,
			path:   "/api/v0/outputs/out-1/tags/tag-1",
			setup: func(m *MockServiceInterface) {
				m.EXPECT().Detach(gomock.Any(), "org-1", "tag-1", "out-1").Return(nil)
			},
			status: http.StatusNoContent,
		},
		{
			name:   "list for output",
			method: http.MethodGet,
			path:   "/api/v0/outputs/out-1/tags",
			setup: func(m *MockServiceInterface) {
				m.EXPECT().ListForOutput(gomock.Any(), "org-1", "out-1").Return([]*types.Tag{{ID: "tag-1"}}, nil)
			},
			status: http.StatusOK,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			svc := NewMockServiceInterface(gomock.NewController(t))
			test.setup(svc)

			logger := logging.NewNoopLogger()
			mux := chi.NewMux()
			NewAPI(svc, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger).RegisterEndpoints(mux)

			req := httptest.NewRequest(test.method, test.path, strings.NewReader(test.body))
			req = req.WithContext(organizations.WithMember(req.Context(), &types.Member{OrganizationID: "org-1", ProfileID: "alice"}))

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			assert.Equal(t, test.status, w.Code, w.Body.String())
		})
	}
}
