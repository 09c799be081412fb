// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package textgen

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/tracing"
	"github.com/canonical/content-service/internal/vendors"
)

func newTestCohere(t *testing.T, handler http.HandlerFunc) *Cohere {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := logging.NewNoopLogger()
	return NewCohere(
		Config{APIKey: "key", BaseURL: srv.URL, Model: "command-r", Timeout: time.Second},
		srv.Client(),
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("test", logger),
		logger,
	)
}

func TestGenerateJSON(t *testing.T) {
	c := newTestCohere(t, func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasSuffix(r.URL.Path, "/chat"), r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "command-r", body["model"])
		assert.Equal(t, "You write quizzes.", body["preamble"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"text": "Here you go:\n```json\n{\"questions\":[{\"question\":\"q\"}]}\n```",
		})
	})

	var out struct {
		Questions []struct {
			Question string `json:"question"`
		} `json:"questions"`
	}
	err := c.GenerateJSON(context.Background(), Prompt{System: "You write quizzes.", User: "article"}, &out)

	require.NoError(t, err)
	require.Len(t, out.Questions, 1)
	assert.Equal(t, "q", out.Questions[0].Question)
}

func TestGenerateRateLimited(t *testing.T) {
	c := newTestCohere(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"message":"slow down"}`))
	})

	_, err := c.Generate(context.Background(), Prompt{User: "article"})

	var e *vendors.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, vendors.CodeRateLimited, e.Code)
	assert.True(t, e.Retryable)
}

func TestGenerateRequiresPrompt(t *testing.T) {
	c := newTestCohere(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	_, err := c.Generate(context.Background(), Prompt{})

	assert.False(t, vendors.IsRetryable(err))
	assert.Error(t, err)
}

func TestExtractJSON(t *testing.T) {
	tests := map[string]string{
		`{"a":1}`:                   `{"a":1}`,
		"```json\n[1,2]\n```":       `[1,2]`,
		`Sure! {"a":{"b":2}} Done.`: `{"a":{"b":2}}`,
		`no json here`:              `no json here`,
	}

	for in, want := range tests {
		assert.Equal(t, want, ExtractJSON(in), in)
	}
}
