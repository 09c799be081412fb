// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package avatar

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/tracing"
	"github.com/canonical/content-service/internal/vendors"
)

const vendorName = "avatar"

type Status string

const (
	StatusQueued     Status = "queued"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

type Config struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

type RenderRequest struct {
	AvatarID string `json:"avatar_id"`
	AudioURL string `json:"audio_url"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
}

type PollResult struct {
	Status          Status  `json:"status"`
	VideoURL        string  `json:"video_url,omitempty"`
	ThumbnailURL    string  `json:"thumbnail_url,omitempty"`
	DurationSeconds float64 `json:"duration,omitempty"`
	Error           string  `json:"error,omitempty"`
}

var _ RendererInterface = (*Client)(nil)

// Client drives an asynchronous avatar video renderer: Submit starts a render, Poll reads its state.
type Client struct {
	http *vendors.HTTPClient

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *Client) Submit(ctx context.Context, req RenderRequest) (string, error) {
	ctx, span := c.tracer.Start(ctx, "avatar.Client.Submit")
	defer span.End()

	if req.AvatarID == "" || req.AudioURL == "" {
		return "", vendors.NewError(vendorName, vendors.CodeInvalidRequest, "avatar and audio are required")
	}

	var resp struct {
		ID string `json:"id"`
	}
	if err := c.http.DoJSON(ctx, http.MethodPost, "/v1/videos", req, &resp); err != nil {
		return "", err
	}

	if resp.ID == "" {
		return "", vendors.NewError(vendorName, vendors.CodeBadResponse, "render id missing")
	}

	return resp.ID, nil
}

func (c *Client) Poll(ctx context.Context, renderID string) (*PollResult, error) {
	ctx, span := c.tracer.Start(ctx, "avatar.Client.Poll")
	defer span.End()

	res := new(PollResult)
	if err := c.http.DoJSON(ctx, http.MethodGet, "/v1/videos/"+url.PathEscape(renderID), nil, res); err != nil {
		return nil, err
	}

	return res, nil
}

// Wait polls until the render is terminal, ctx bounds the total wait.
func (c *Client) Wait(ctx context.Context, renderID string, interval time.Duration) (*PollResult, error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		res, err := c.Poll(ctx, renderID)
		if err != nil {
			return nil, err
		}

		switch res.Status {
		case StatusCompleted:
			if res.VideoURL == "" {
				return nil, vendors.NewError(vendorName, vendors.CodeBadResponse, "completed render has no video")
			}
			return res, nil
		case StatusFailed:
			return nil, vendors.NewError(vendorName, vendors.CodeRenderFailed, res.Error)
		}

		c.logger.Debugf("avatar render %s is %s", renderID, res.Status)

		select {
		case <-ctx.Done():
			return nil, vendors.NewError(vendorName, vendors.CodeRenderPending, "render still "+string(res.Status))
		case <-ticker.C:
		}
	}
}

func NewClient(cfg Config, httpClient *http.Client, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	c := new(Client)

	c.http = vendors.NewHTTPClient(vendorName, cfg.URL, cfg.Timeout, map[string]string{"Authorization": "Bearer " + cfg.APIKey}, httpClient)

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
