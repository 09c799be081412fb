// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	fga "github.com/openfga/go-sdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/tracing"
)

const (
	testStoreID = "01HVMMBCMGZNT3SED4Z17ECXCA"
	testModelID = "01HVMMBD5W9ZB1KSNG8XQ9Y8W6"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)

	logger := logging.NewNoopLogger()
	return NewClient(NewConfig(u.Scheme, u.Host, testStoreID, "", testModelID, false, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger))
}

func TestClientCheck(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/stores/"+testStoreID+"/check", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		key := body["tuple_key"].(map[string]any)
		assert.Equal(t, "user:u-1", key["user"])
		assert.Equal(t, "can_edit", key["relation"])
		assert.Equal(t, "organization:o-1", key["object"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"allowed":true}`))
	})

	allowed, err := c.Check(context.Background(), "user:u-1", "can_edit", "organization:o-1")

	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestClientWriteTuples(t *testing.T) {
	var writes []map[string]any

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/stores/"+testStoreID+"/write", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writes = append(writes, body)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	})

	err := c.WriteTuple(context.Background(), "user:u-1", "owner", "organization:o-1")
	require.NoError(t, err)

	require.Len(t, writes, 1)
	keys := writes[0]["writes"].(map[string]any)["tuple_keys"].([]any)
	require.Len(t, keys, 1)
	assert.Equal(t, "owner", keys[0].(map[string]any)["relation"])
}

func TestClientWriteTuplesEmpty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("unexpected request %s", r.URL.Path)
	})

	assert.NoError(t, c.WriteTuples(context.Background()))
	assert.NoError(t, c.DeleteTuples(context.Background()))
}

func TestNoopClient(t *testing.T) {
	logger := logging.NewNoopLogger()
	c := NewNoopClient(tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	allowed, err := c.Check(context.Background(), "user:u-1", "can_manage", "organization:o-1")
	require.NoError(t, err)
	assert.True(t, allowed)

	eq, err := c.CompareModel(context.Background(), fga.AuthorizationModel{})
	require.NoError(t, err)
	assert.True(t, eq)
}
