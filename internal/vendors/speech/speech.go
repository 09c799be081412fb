// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package speech

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/tracing"
	"github.com/canonical/content-service/internal/vendors"
)

const vendorName = "speech"

type Config struct {
	URL     string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Word is a spoken word with its offsets in seconds, used for captions and quiz timing.
type Word struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

type Audio struct {
	Data            []byte
	ContentType     string
	DurationSeconds float64
	Words           []Word
}

type synthesizeRequest struct {
	Text    string `json:"text"`
	ModelID string `json:"model_id"`
}

type alignment struct {
	Characters []string  `json:"characters"`
	Starts     []float64 `json:"character_start_times_seconds"`
	Ends       []float64 `json:"character_end_times_seconds"`
}

type synthesizeResponse struct {
	AudioBase64 string     `json:"audio_base64"`
	Alignment   *alignment `json:"alignment"`
}

var _ SynthesizerInterface = (*Client)(nil)

// Client talks to an ElevenLabs compatible text-to-speech API.
type Client struct {
	http  *vendors.HTTPClient
	model string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *Client) Synthesize(ctx context.Context, voiceID, text string) (*Audio, error) {
	ctx, span := c.tracer.Start(ctx, "speech.Client.Synthesize")
	defer span.End()

	if strings.TrimSpace(text) == "" {
		return nil, vendors.NewError(vendorName, vendors.CodeInvalidRequest, "text required")
	}
	if voiceID == "" {
		return nil, vendors.NewError(vendorName, vendors.CodeInvalidRequest, "voice required")
	}

	resp := new(synthesizeResponse)
	err := c.http.DoJSON(
		ctx,
		http.MethodPost,
		fmt.Sprintf("/v1/text-to-speech/%s/with-timestamps", url.PathEscape(voiceID)),
		synthesizeRequest{Text: text, ModelID: c.model},
		resp,
	)
	if err != nil {
		return nil, err
	}

	data, err := base64.StdEncoding.DecodeString(resp.AudioBase64)
	if err != nil || len(data) == 0 {
		return nil, vendors.NewError(vendorName, vendors.CodeBadResponse, "missing audio data")
	}

	audio := &Audio{Data: data, ContentType: "audio/mpeg"}
	if resp.Alignment != nil {
		audio.Words = words(resp.Alignment)
		if n := len(resp.Alignment.Ends); n > 0 {
			audio.DurationSeconds = resp.Alignment.Ends[n-1]
		}
	}

	return audio, nil
}

// words folds the per-character alignment into words split on whitespace.
func words(a *alignment) []Word {
	var (
		out     []Word
		current strings.Builder
		start   float64
	)

	n := min(len(a.Characters), len(a.Starts), len(a.Ends))
	for i := 0; i < n; i++ {
		ch := a.Characters[i]
		if strings.TrimSpace(ch) == "" {
			if current.Len() > 0 {
				out = append(out, Word{Text: current.String(), Start: start, End: a.Ends[i-1]})
				current.Reset()
			}
			continue
		}
		if current.Len() == 0 {
			start = a.Starts[i]
		}
		current.WriteString(ch)
	}

	if current.Len() > 0 {
		out = append(out, Word{Text: current.String(), Start: start, End: a.Ends[n-1]})
	}

	return out
}

func NewClient(cfg Config, httpClient *http.Client, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	c := new(Client)

	c.http = vendors.NewHTTPClient(vendorName, cfg.URL, cfg.Timeout, map[string]string{"xi-api-key": cfg.APIKey}, httpClient)
	c.model = cfg.Model

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
