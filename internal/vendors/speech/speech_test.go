// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package speech

import (
	"context"
	"encoding/base64"
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
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := logging.NewNoopLogger()
	return NewClient(
		Config{URL: srv.URL, APIKey: "key", Model: "eleven_multilingual_v2", Timeout: time.Second},
		srv.Client(),
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("test", logger),
		logger,
	)
}

func TestSynthesize(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/text-to-speech/narrator/with-timestamps", r.URL.Path)
		assert.Equal(t, "key", r.Header.Get("xi-api-key"))

		req := new(synthesizeRequest)
		require.NoError(t, json.NewDecoder(r.Body).Decode(req))
		assert.Equal(t, "Hi yo", req.Text)

		json.NewEncoder(w).Encode(synthesizeResponse{
			AudioBase64: base64.StdEncoding.EncodeToString([]byte("mp3")),
			Alignment: &alignment{
				Characters: []string{"H", "i", " ", "y", "o"},
				Starts:     []float64{0, 0.1, 0.2, 0.3, 0.4},
				Ends:       []float64{0.1, 0.2, 0.3, 0.4, 0.5},
			},
		})
	})

	audio, err := c.Synthesize(context.Background(), "narrator", "Hi yo")

	require.NoError(t, err)
	assert.Equal(t, []byte("mp3"), audio.Data)
	assert.Equal(t, 0.5, audio.DurationSeconds)
	assert.Equal(t, []Word{{Text: "Hi", Start: 0, End: 0.2}, {Text: "yo", Start: 0.3, End: 0.5}}, audio.Words)
}

func TestSynthesizeVendorErrors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		code      string
		retryable bool
	}{
		{name: "quota", status: http.StatusTooManyRequests, code: vendors.CodeRateLimited, retryable: true},
		{name: "bad voice", status: http.StatusNotFound, code: vendors.CodeInvalidRequest},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(test.status)
			})

			_, err := c.Synthesize(context.Background(), "narrator", "text")

			var e *vendors.Error
			require.True(t, errors.As(err, &e))
			assert.Equal(t, test.code, e.Code)
			assert.Equal(t, test.retryable, e.Retryable)
		})
	}
}

func TestSynthesizeMissingAudio(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"audio_base64":""}`))
	})

	_, err := c.Synthesize(context.Background(), "narrator", "text")

	assert.Error(t, err)
	assert.False(t, vendors.IsRetryable(err))
}
