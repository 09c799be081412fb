// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package submissions

import (
	"context"
	"encoding/json"
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
	"github.com/canonical/content-service/internal/tracing"
	"github.com/canonical/content-service/internal/types"
	"github.com/canonical/content-service/pkg/organizations"
)

func newTestMux(t *testing.T, setup func(*MockServiceInterface)) *chi.Mux {
	svc := NewMockServiceInterface(gomock.NewController(t))
	if setup != nil {
		setup(svc)
	}

	logger := logging.NewNoopLogger()
	mux := chi.NewMux()
	mux.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m := &types.Member{OrganizationID: orgID, ProfileID: "alice", Role: types.RoleMember}
			next.ServeHTTP(w, r.WithContext(organizations.WithMember(r.Context(), m)))
		})
	})
	NewAPI(svc, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger).RegisterEndpoints(mux)

	return mux
}

func TestAPICreate(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		setup  func(*MockServiceInterface)
		status int
	}{
		{
			name: "created with the caller organization",
			body: `{"article_id":"art-1","generate_audio":true,"generate_quiz":true,"language":"es"}`,
			setup: func(m *MockServiceInterface) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, in *CreateInput) (*Detail, error) {
						assert.Equal(t, orgID, in.OrganizationID)
						assert.Equal(t, "alice", in.CreatedBy)
						assert.True(t, in.GenerateAudio)
						assert.True(t, in.GenerateQuiz)
						assert.Equal(t, "es", in.Language)
						return &Detail{Submission: &types.Submission{ID: "sub-1", Status: types.SubmissionPending}}, nil
					},
				)
			},
			status: http.StatusCreated,
		},
		{
			name:   "client cannot choose the organization",
			body:   `{"article_id":"art-1","generate_audio":true,"organization_id":"org-2"}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "inline article requires a title",
			body:   `{"article":{"content":"text"},"generate_audio":true}`,
			status: http.StatusBadRequest,
		},
		{
			name: "no output requested",
			body: `{"article_id":"art-1"}`,
			setup: func(m *MockServiceInterface) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, apperrors.NewValidationError("generate", "at least one output type is required"))
			},
			status: http.StatusBadRequest,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mux := newTestMux(t, test.setup)

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v0/submissions", strings.NewReader(test.body)))

			assert.Equal(t, test.status, w.Code, w.Body.String())
		})
	}
}

func TestAPIGetAttributesPartialFailures(t *testing.T) {
	outputs := []*types.Output{
		{ID: "out-audio", Kind: types.KindAudio, Status: types.OutputCompleted},
		{ID: "out-video", Kind: types.KindVideo, Status: types.OutputFailed},
	}

	mux := newTestMux(t, func(m *MockServiceInterface) {
		m.EXPECT().Get(gomock.Any(), orgID, "sub-1").Return(&Detail{
			Submission: &types.Submission{ID: "sub-1", Status: types.SubmissionPartialComplete},
			Outputs:    outputs,
			Summary:    Summarize(outputs),
		}, nil)
	})

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/submissions/sub-1", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Status  string `json:"status"`
			Summary struct {
				Succeeded []string `json:"succeeded"`
				Failed    []string `json:"failed"`
			} `json:"summary"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, string(types.SubmissionPartialComplete), resp.Data.Status)
	assert.Equal(t, []string{string(types.KindAudio)}, resp.Data.Summary.Succeeded)
	assert.Equal(t, []string{string(types.KindVideo)}, resp.Data.Summary.Failed)
}

func TestAPIListPaginates(t *testing.T) {
	mux := newTestMux(t, func(m *MockServiceInterface) {
		m.EXPECT().List(gomock.Any(), orgID, int64(2), int64(10)).Return([]*types.Submission{{ID: "sub-1"}}, nil)
	})

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/submissions?page=2&size=10", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp httptypes.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(2), resp.Meta.Page)
}
