// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package vendors

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const maxResponseBytes = 64 << 20

// HTTPClient performs single JSON calls against one vendor API.
type HTTPClient struct {
	vendor  string
	baseURL string
	headers map[string]string
	timeout time.Duration
	client  *http.Client
}

func NewHTTPClient(vendor, baseURL string, timeout time.Duration, headers map[string]string, client *http.Client) *HTTPClient {
	if client == nil {
		client = http.DefaultClient
	}

	return &HTTPClient{
		vendor:  vendor,
		baseURL: strings.TrimRight(baseURL, "/"),
		headers: headers,
		timeout: timeout,
		client:  client,
	}
}

func (c *HTTPClient) Vendor() string {
	return c.vendor
}

// DoJSON sends in as the JSON body (nil for none) and decodes the response into out (nil to discard).
func (c *HTTPClient) DoJSON(ctx context.Context, method, path string, in, out any) error {
	body, _, err := c.do(ctx, method, path, in, "application/json")
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return NewError(c.vendor, CodeBadResponse, fmt.Sprintf("failed to decode response: %v", err))
	}

	return nil
}

// DoRaw returns the raw response body and its content type.
func (c *HTTPClient) DoRaw(ctx context.Context, method, path string, in any, accept string) ([]byte, string, error) {
	return c.do(ctx, method, path, in, accept)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, in any, accept string) ([]byte, string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return nil, "", NewError(c.vendor, CodeInvalidRequest, fmt.Sprintf("failed to encode request: %v", err))
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, "", NewError(c.vendor, CodeInvalidRequest, err.Error())
	}

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, "", Classify(c.vendor, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, "", Classify(c.vendor, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", FromStatus(c.vendor, resp.StatusCode, string(body), resp.Header)
	}

	return body, resp.Header.Get("Content-Type"), nil
}
