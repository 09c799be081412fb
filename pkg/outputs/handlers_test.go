// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package outputs

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/canonical/content-service/internal/apperrors"
	httptypes "github.com/canonical/content-service/internal/http/types"
	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/queue"
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
		member bool
		setup  func(*MockServiceInterface)
		status int
		code   string
	}{
		{
			name:   "get",
			method: http.MethodGet,
			path:   "/api/v0/outputs/out-1",
			member: true,
			setup: func(m *MockServiceInterface) {
				m.EXPECT().Get(gomock.Any(), orgID, outputID).Return(&types.Output{ID: outputID, Status: types.OutputCompleted}, nil)
			},
			status: http.StatusOK,
		},
		{
			name:   "approve a processing output",
			method: http.MethodPost,
			path:   "/api/v0/outputs/out-1/approve",
			member: true,
			setup: func(m *MockServiceInterface) {
				m.EXPECT().Approve(gomock.Any(), orgID, outputID).
					Return(nil, apperrors.NewInvalidTransition(entity, outputID, "PROCESSING", "COMPLETED"))
			},
			status: http.StatusConflict,
			code:   httptypes.CodeConflict,
		},
		{
			name:   "regenerate with overrides",
			method: http.MethodPost,
			path:   "/api/v0/outputs/out-1/regenerate",
			body:   `{"custom_prompt":"shorter","language":"fr"}`,
			member: true,
			setup: func(m *MockServiceInterface) {
				m.EXPECT().Regenerate(gomock.Any(), orgID, outputID, queue.GenerationParams{CustomPrompt: "shorter", Language: "fr"}).
					Return(&types.Output{ID: outputID, Status: types.OutputProcessing}, nil)
			},
			status: http.StatusAccepted,
		},
		{
			name:   "regenerate without body",
			method: http.MethodPost,
			path:   "/api/v0/outputs/out-1/regenerate",
			member: true,
			setup: func(m *MockServiceInterface) {
				m.EXPECT().Regenerate(gomock.Any(), orgID, outputID, queue.GenerationParams{}).
					Return(&types.Output{ID: outputID, Status: types.OutputProcessing}, nil)
			},
			status: http.StatusAccepted,
		},
		{
			name:   "concurrent regenerate loses",
			method: http.MethodPost,
			path:   "/api/v0/outputs/out-1/regenerate",
			member: true,
			setup: func(m *MockServiceInterface) {
				m.EXPECT().Regenerate(gomock.Any(), orgID, outputID, gomock.Any()).
					Return(nil, apperrors.NewInvalidState(entity, outputID, "PROCESSING", "PROCESSING"))
			},
			status: http.StatusConflict,
			code:   httptypes.CodeConflict,
		},
		{
			name:   "storage failure is opaque",
			method: http.MethodPost,
			path:   "/api/v0/outputs/out-1/unapprove",
			member: true,
			setup: func(m *MockServiceInterface) {
				m.EXPECT().Unapprove(gomock.Any(), orgID, outputID).Return(nil, errors.New("pq: connection reset"))
			},
			status: http.StatusInternalServerError,
			code:   httptypes.CodeInternal,
		},
		{
			name:   "no membership",
			method: http.MethodGet,
			path:   "/api/v0/outputs/out-1",
			status: http.StatusForbidden,
			code:   httptypes.CodeForbidden,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			svc := NewMockServiceInterface(gomock.NewController(t))
			if test.setup != nil {
				test.setup(svc)
			}

			logger := logging.NewNoopLogger()
			mux := chi.NewMux()
			NewAPI(svc, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger).RegisterEndpoints(mux)

			req := httptest.NewRequest(test.method, test.path, strings.NewReader(test.body))
			if test.member {
				req = req.WithContext(organizations.WithMember(req.Context(), &types.Member{OrganizationID: orgID, ProfileID: "alice", Role: types.RoleAdmin}))
			}

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			require.Equal(t, test.status, w.Code, w.Body.String())

			var resp httptypes.Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			if test.code != "" {
				require.NotNil(t, resp.Error)
				assert.Equal(t, test.code, resp.Error.Code)
				assert.NotContains(t, resp.Error.Message, "pq:")
				return
			}
			assert.True(t, resp.Success)
		})
	}
}
