// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package captions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/tracing"
	"github.com/canonical/content-service/internal/vendors"
	"github.com/canonical/content-service/internal/vendors/speech"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := logging.NewNoopLogger()
	return NewClient(Config{URL: srv.URL, APIKey: "key", Timeout: time.Second}, srv.Client(), tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
}

func TestBurn(t *testing.T) {
	words := []speech.Word{{Text: "hello", Start: 0, End: 0.4}, {Text: "world", Start: 0.5, End: 0.9}}

	tests := []struct {
		name   string
		status int
		body   string
		words  []speech.Word
		want   string
		code   string
		calls  int
	}{
		{name: "burned", status: http.StatusOK, body: `{"video_url":"https://cdn/captioned.mp4"}`, words: words, want: "https://cdn/captioned.mp4", calls: 1},
		{name: "no words keeps source", words: nil, want: "https://cdn/raw.mp4", calls: 0},
		{name: "rate limited", status: http.StatusTooManyRequests, body: `slow down`, words: words, code: vendors.CodeRateLimited, calls: 1},
		{name: "empty response", status: http.StatusOK, body: `{}`, words: words, code: vendors.CodeBadResponse, calls: 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			calls := 0
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				calls++
				assert.Equal(t, "key", r.Header.Get("X-Api-Key"))

				req := new(BurnRequest)
				require.NoError(t, json.NewDecoder(r.Body).Decode(req))
				assert.Equal(t, defaultStyle, req.Style)
				assert.Len(t, req.Words, 2)

				w.WriteHeader(test.status)
				w.Write([]byte(test.body))
			})

			got, err := c.Burn(context.Background(), "https://cdn/raw.mp4", test.words, "en")

			assert.Equal(t, test.calls, calls)
			if test.code != "" {
				var e *vendors.Error
				require.True(t, errors.As(err, &e))
				assert.Equal(t, test.code, e.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}
