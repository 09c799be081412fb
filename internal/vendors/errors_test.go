// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package vendors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromStatus(t *testing.T) {
	tests := []struct {
		status    int
		code      string
		retryable bool
	}{
		{status: http.StatusTooManyRequests, code: CodeRateLimited, retryable: true},
		{status: http.StatusBadGateway, code: CodeUnavailable, retryable: true},
		{status: http.StatusGatewayTimeout, code: CodeTimeout, retryable: true},
		{status: http.StatusUnauthorized, code: CodeUnauthorized},
		{status: http.StatusUnprocessableEntity, code: CodeInvalidRequest},
	}

	for _, test := range tests {
		t.Run(http.StatusText(test.status), func(t *testing.T) {
			e := FromStatus("speech", test.status, "nope", nil)

			assert.Equal(t, test.code, e.Code)
			assert.Equal(t, test.retryable, e.Retryable)
			assert.Equal(t, test.status, e.StatusCode)
		})
	}
}

func TestFromStatusRetryAfter(t *testing.T) {
	h := http.Header{}
	h.Set("Retry-After", "12")

	e := FromStatus("avatar", http.StatusTooManyRequests, "", h)

	assert.Equal(t, 12*time.Second, e.RetryAfter)
}

func TestClassify(t *testing.T) {
	deadline := Classify("textgen", fmt.Errorf("chat: %w", context.DeadlineExceeded))

	var e *Error
	require.True(t, errors.As(deadline, &e))
	assert.Equal(t, CodeTimeout, e.Code)
	assert.True(t, IsRetryable(deadline))
	assert.ErrorIs(t, deadline, context.DeadlineExceeded)

	original := NewError("speech", CodeInvalidRequest, "bad voice")
	assert.Same(t, original, Classify("other", fmt.Errorf("wrapped: %w", original)))
	assert.False(t, IsRetryable(original))
	assert.Nil(t, Classify("speech", nil))
}

func TestHTTPClientDoJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Api-Key") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.URL.Path {
		case "/ok":
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"id":"v-1"}`)
		case "/garbage":
			fmt.Fprint(w, `not json`)
		default:
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}))
	defer srv.Close()

	c := NewHTTPClient("avatar", srv.URL+"/", time.Second, map[string]string{"X-Api-Key": "secret"}, srv.Client())

	var out struct {
		ID string `json:"id"`
	}
	require.NoError(t, c.DoJSON(context.Background(), http.MethodPost, "/ok", map[string]string{"a": "b"}, &out))
	assert.Equal(t, "v-1", out.ID)

	err := c.DoJSON(context.Background(), http.MethodGet, "/garbage", nil, &out)
	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, CodeBadResponse, e.Code)

	err = c.DoJSON(context.Background(), http.MethodGet, "/down", nil, nil)
	require.True(t, errors.As(err, &e))
	assert.Equal(t, CodeUnavailable, e.Code)
	assert.True(t, e.Retryable)
}

func TestHTTPClientTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer srv.Close()

	c := NewHTTPClient("captions", srv.URL, 20*time.Millisecond, nil, srv.Client())

	err := c.DoJSON(context.Background(), http.MethodGet, "/slow", nil, nil)

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, CodeTimeout, e.Code)
}
