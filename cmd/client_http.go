// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/canonical/content-service/internal/identity"
	"github.com/canonical/content-service/internal/queue"
	"github.com/canonical/content-service/internal/tracing"
	"github.com/canonical/content-service/pkg/submissions"
)

var _ contentClient = (*httpContentClient)(nil)

type httpContentClient struct {
	endpoint string
	userID   string
	token    string
	client   *http.Client
}

// envelope is the response body of every API call.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func newHTTPContentClient(endpoint, userID, token string) *httpContentClient {
	if !strings.HasPrefix(endpoint, "http") {
		endpoint = "http://" + endpoint
	}

	return &httpContentClient{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		userID:   userID,
		token:    token,
		client:   tracing.NewHTTPClient(&http.Client{Timeout: 30 * time.Second}),
	}
}

func (c *httpContentClient) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.userID != "" {
		req.Header.Set(identity.HeaderName, c.userID)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	env := new(envelope)
	if err := json.Unmarshal(raw, env); err != nil {
		return fmt.Errorf("api error (status %d): %s", resp.StatusCode, string(raw))
	}
	if !env.Success || resp.StatusCode >= 400 {
		if env.Error != nil {
			return fmt.Errorf("api error (status %d, %s): %s", resp.StatusCode, env.Error.Code, env.Error.Message)
		}
		return fmt.Errorf("api error (status %d)", resp.StatusCode)
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}

func (c *httpContentClient) CreateSubmission(ctx context.Context, in *submissions.CreateInput) (*submissionView, error) {
	out := new(submissionView)
	if err := c.do(ctx, http.MethodPost, "/api/v0/submissions", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *httpContentClient) GetSubmission(ctx context.Context, id string) (*submissionView, error) {
	out := new(submissionView)
	if err := c.do(ctx, http.MethodGet, "/api/v0/submissions/"+url.PathEscape(id), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *httpContentClient) ListSubmissions(ctx context.Context, page, size int) ([]*submissionView, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))

	out := make([]*submissionView, 0)
	if err := c.do(ctx, http.MethodGet, "/api/v0/submissions?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *httpContentClient) GetOutput(ctx context.Context, id string) (*outputView, error) {
	out := new(outputView)
	if err := c.do(ctx, http.MethodGet, "/api/v0/outputs/"+url.PathEscape(id), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *httpContentClient) ApproveOutput(ctx context.Context, id string, approved bool) (*outputView, error) {
	action := "approve"
	if !approved {
		action = "unapprove"
	}

	out := new(outputView)
	if err := c.do(ctx, http.MethodPost, "/api/v0/outputs/"+url.PathEscape(id)+"/"+action, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *httpContentClient) RegenerateOutput(ctx context.Context, id string, params *queue.GenerationParams) (*outputView, error) {
	out := new(outputView)
	if err := c.do(ctx, http.MethodPost, "/api/v0/outputs/"+url.PathEscape(id)+"/regenerate", params, out); err != nil {
		return nil, err
	}
	return out, nil
}
