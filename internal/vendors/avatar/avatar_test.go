// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package avatar

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
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
	return NewClient(Config{URL: srv.URL, APIKey: "key", Timeout: time.Second}, srv.Client(), tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
}

func TestSubmitAndWait(t *testing.T) {
	var polls atomic.Int32

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))

		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/v1/videos":
			req := new(RenderRequest)
			require.NoError(t, json.NewDecoder(r.Body).Decode(req))
			assert.Equal(t, "av-1", req.AvatarID)
			w.Write([]byte(`{"id":"r-1"}`))
		case r.URL.Path == "/v1/videos/r-1":
			if polls.Add(1) < 3 {
				w.Write([]byte(`{"status":"processing"}`))
				return
			}
			w.Write([]byte(`{"status":"completed","video_url":"https://cdn/v.mp4","duration":42}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	id, err := c.Submit(context.Background(), RenderRequest{AvatarID: "av-1", AudioURL: "https://cdn/a.mp3"})
	require.NoError(t, err)
	assert.Equal(t, "r-1", id)

	res, err := c.Wait(context.Background(), id, time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/v.mp4", res.VideoURL)
	assert.Equal(t, 42.0, res.DurationSeconds)
	assert.Equal(t, int32(3), polls.Load())
}

func TestWaitFailedRender(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"failed","error":"face not detected"}`))
	})

	_, err := c.Wait(context.Background(), "r-1", time.Millisecond)

	var e *vendors.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, vendors.CodeRenderFailed, e.Code)
	assert.False(t, e.Retryable)
}

func TestWaitStillPending(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"queued"}`))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := c.Wait(ctx, "r-1", 5*time.Millisecond)

	var e *vendors.Error
	require.True(t, errors.As(err, &e))
	assert.True(t, e.Code == vendors.CodeRenderPending || e.Code == vendors.CodeTimeout, e.Code)
	assert.True(t, e.Retryable)
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusFailed.Terminal())
	assert.False(t, StatusQueued.Terminal())
}
