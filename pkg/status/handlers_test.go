// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/tracing"
)

type pinger func(context.Context) error

func (p pinger) Ping(ctx context.Context) error { return p(ctx) }

func TestReady(t *testing.T) {
	tests := []struct {
		name   string
		deps   map[string]PingerInterface
		status int
		checks map[string]string
	}{
		{
			name:   "no dependencies",
			status: http.StatusOK,
		},
		{
			name: "all healthy",
			deps: map[string]PingerInterface{
				"database": pinger(func(context.Context) error { return nil }),
				"queue":    pinger(func(context.Context) error { return nil }),
			},
			status: http.StatusOK,
			checks: map[string]string{"database": "ok", "queue": "ok"},
		},
		{
			name: "queue down",
			deps: map[string]PingerInterface{
				"database": pinger(func(context.Context) error { return nil }),
				"queue":    pinger(func(context.Context) error { return errors.New("dial tcp: refused") }),
			},
			status: http.StatusServiceUnavailable,
			checks: map[string]string{"database": "ok", "queue": "unavailable"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			logger := logging.NewNoopLogger()
			mux := chi.NewMux()
			NewAPI(test.deps, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger).RegisterEndpoints(mux)

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/ready", nil))

			if w.Code != test.status {
				t.Fatalf("expected status %d, got %d", test.status, w.Code)
			}

			var resp struct {
				Data Status `json:"data"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			for name, want := range test.checks {
				if got := resp.Data.Checks[name]; got != want {
					t.Errorf("expected %s to be %s, got %s", name, want, got)
				}
			}
		})
	}
}
