// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package captions

import (
	"context"
	"net/http"
	"time"

	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/tracing"
	"github.com/canonical/content-service/internal/vendors"
	"github.com/canonical/content-service/internal/vendors/speech"
)

const vendorName = "captions"

const defaultStyle = "bold-center"

type Config struct {
	URL     string
	APIKey  string
	Style   string
	Timeout time.Duration
}

type BurnRequest struct {
	VideoURL string        `json:"video_url"`
	Words    []speech.Word `json:"words"`
	Style    string        `json:"style"`
	Language string        `json:"language,omitempty"`
}

type burnResponse struct {
	VideoURL string `json:"video_url"`
}

var _ BurnerInterface = (*Client)(nil)

type Client struct {
	http  *vendors.HTTPClient
	style string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Burn renders styled word-level captions onto the video and returns the URL of the captioned copy.
func (c *Client) Burn(ctx context.Context, videoURL string, words []speech.Word, language string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "captions.Client.Burn")
	defer span.End()

	if videoURL == "" {
		return "", vendors.NewError(vendorName, vendors.CodeInvalidRequest, "video url is required")
	}

	// nothing to caption
	if len(words) == 0 {
		return videoURL, nil
	}

	resp := new(burnResponse)
	req := BurnRequest{VideoURL: videoURL, Words: words, Style: c.style, Language: language}
	if err := c.http.DoJSON(ctx, http.MethodPost, "/v1/burn", req, resp); err != nil {
		return "", err
	}

	if resp.VideoURL == "" {
		return "", vendors.NewError(vendorName, vendors.CodeBadResponse, "captioned video url missing")
	}

	return resp.VideoURL, nil
}

func NewClient(cfg Config, httpClient *http.Client, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	c := new(Client)

	c.http = vendors.NewHTTPClient(vendorName, cfg.URL, cfg.Timeout, map[string]string{"X-Api-Key": cfg.APIKey}, httpClient)
	c.style = cfg.Style
	if c.style == "" {
		c.style = defaultStyle
	}

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
