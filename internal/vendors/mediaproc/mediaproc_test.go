// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mediaproc

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/tracing"
	"github.com/canonical/content-service/internal/vendors"
)

type recorder struct {
	args []string
	err  error
}

func (r *recorder) run(ctx context.Context, args []string) error {
	r.args = args
	return r.err
}

func newTestProcessor(t *testing.T, cfg Config, r *recorder, probe Prober) *Processor {
	t.Helper()

	if cfg.WorkDir == "" {
		cfg.WorkDir = t.TempDir()
	}

	logger := logging.NewNoopLogger()
	return NewProcessor(cfg, r.run, probe, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
}

func TestConcatAudio(t *testing.T) {
	r := new(recorder)
	p := newTestProcessor(t, Config{}, r, nil)

	err := p.ConcatAudio(context.Background(), []string{"a.mp3", "b.mp3", "c.mp3"}, "out.mp3")

	require.NoError(t, err)

	joined := strings.Join(r.args, " ")
	assert.Contains(t, joined, "-i a.mp3")
	assert.Contains(t, joined, "-i c.mp3")
	assert.Contains(t, joined, "concat")
	assert.Contains(t, joined, "n=3")
	assert.Contains(t, r.args, "out.mp3")
	assert.Contains(t, r.args, "-y")
}

func TestConcatAudioRequiresInputs(t *testing.T) {
	r := new(recorder)
	p := newTestProcessor(t, Config{}, r, nil)

	err := p.ConcatAudio(context.Background(), nil, "out.mp3")

	var e *vendors.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, vendors.CodeInvalidRequest, e.Code)
	assert.Nil(t, r.args)
}

func TestPostProcess(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		contains []string
		missing  []string
	}{
		{
			name:     "bumper and music",
			cfg:      Config{BumperPath: "bumper.mp4", MusicPath: "music.mp3"},
			contains: []string{"-i bumper.mp4", "-stream_loop -1 -i music.mp3", "amix", "concat=a=1:n=2:v=1", "scale"},
		},
		{
			name:     "bumper only",
			cfg:      Config{BumperPath: "bumper.mp4"},
			contains: []string{"-i bumper.mp4", "concat=a=1:n=2:v=1", "-map [s"},
			missing:  []string{"amix", "music.mp3"},
		},
		{
			name:     "no extras",
			cfg:      Config{},
			contains: []string{"-i https://cdn/render.mp4", "scale"},
			missing:  []string{"amix", "concat"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := new(recorder)
			p := newTestProcessor(t, test.cfg, r, nil)

			err := p.PostProcess(context.Background(), PostProcessRequest{VideoURL: "https://cdn/render.mp4", Output: "final.mp4"})
			require.NoError(t, err)

			joined := strings.Join(r.args, " ")
			for _, c := range test.contains {
				assert.Contains(t, joined, c)
			}
			for _, m := range test.missing {
				assert.NotContains(t, joined, m)
			}
		})
	}
}

func TestRunFailure(t *testing.T) {
	r := &recorder{err: errors.New("exit status 1: invalid data")}
	p := newTestProcessor(t, Config{}, r, nil)

	err := p.ConcatAudio(context.Background(), []string{"a.mp3"}, "out.mp3")

	var e *vendors.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, vendors.CodeInternal, e.Code)
	assert.False(t, e.Retryable)
}

func TestDuration(t *testing.T) {
	tests := []struct {
		name  string
		probe Prober
		want  float64
		code  string
	}{
		{
			name:  "ok",
			probe: func(string) (string, error) { return `{"format":{"duration":"12.480000"}}`, nil },
			want:  12.48,
		},
		{
			name:  "no duration",
			probe: func(string) (string, error) { return `{"format":{}}`, nil },
			code:  vendors.CodeBadResponse,
		},
		{
			name:  "probe error",
			probe: func(string) (string, error) { return "", errors.New("no such file") },
			code:  vendors.CodeInternal,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := newTestProcessor(t, Config{}, new(recorder), test.probe)

			got, err := p.Duration(context.Background(), "x.mp3")

			if test.code != "" {
				var e *vendors.Error
				require.True(t, errors.As(err, &e))
				assert.Equal(t, test.code, e.Code)
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, test.want, got, 0.001)
		})
	}
}

func TestTempFile(t *testing.T) {
	p := newTestProcessor(t, Config{}, new(recorder), nil)

	path, err := p.TempFile("clip-*.mp3", []byte("ID3"))
	require.NoError(t, err)
	defer os.Remove(path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("ID3"), data)
}
