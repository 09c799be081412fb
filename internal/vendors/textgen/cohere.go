// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package textgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
	"github.com/cohere-ai/cohere-go/v2/core"
	"github.com/cohere-ai/cohere-go/v2/option"

	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/tracing"
	"github.com/canonical/content-service/internal/vendors"
)

const vendorName = "cohere"

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

var _ GeneratorInterface = (*Cohere)(nil)

// Cohere generates scripts, dialogues and questions with the Cohere chat API.
type Cohere struct {
	client  *cohereclient.Client
	model   string
	timeout time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *Cohere) Generate(ctx context.Context, p Prompt) (string, error) {
	ctx, span := c.tracer.Start(ctx, "textgen.Cohere.Generate")
	defer span.End()

	if strings.TrimSpace(p.User) == "" {
		return "", vendors.NewError(vendorName, vendors.CodeInvalidRequest, "prompt required")
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req := &cohere.ChatRequest{
		Message: p.User,
		Model:   cohere.String(c.model),
	}
	if p.System != "" {
		req.Preamble = cohere.String(p.System)
	}
	if p.Temperature != nil {
		req.Temperature = p.Temperature
	}

	start := time.Now()
	resp, err := c.client.Chat(ctx, req)
	c.logger.Debugf("cohere chat took %s", time.Since(start))
	if err != nil {
		return "", classify(err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", vendors.NewError(vendorName, vendors.CodeBadResponse, "empty completion")
	}

	return text, nil
}

// GenerateJSON asks for a JSON document and decodes it into out.
func (c *Cohere) GenerateJSON(ctx context.Context, p Prompt, out any) error {
	text, err := c.Generate(ctx, p)
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(ExtractJSON(text)), out); err != nil {
		return vendors.NewError(vendorName, vendors.CodeBadResponse, fmt.Sprintf("completion is not valid JSON: %v", err))
	}

	return nil
}

func classify(err error) error {
	var apiErr *core.APIError
	if errors.As(err, &apiErr) {
		return vendors.FromStatus(vendorName, apiErr.StatusCode, apiErr.Error(), nil)
	}
	return vendors.Classify(vendorName, err)
}

// ExtractJSON strips markdown fences and chatter around the first JSON value in s.
func ExtractJSON(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return s
	}

	closing := byte('}')
	if s[start] == '[' {
		closing = ']'
	}

	end := strings.LastIndexByte(s, closing)
	if end < start {
		return s[start:]
	}

	return s[start : end+1]
}

func NewCohere(cfg Config, httpClient *http.Client, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Cohere {
	opts := []option.RequestOption{
		cohereclient.WithToken(cfg.APIKey),
		option.WithMaxAttempts(1),
	}
	if httpClient != nil {
		opts = append(opts, cohereclient.WithHTTPClient(httpClient))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, cohereclient.WithBaseURL(cfg.BaseURL))
	}

	c := new(Cohere)

	c.client = cohereclient.NewClient(opts...)
	c.model = cfg.Model
	c.timeout = cfg.Timeout

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
