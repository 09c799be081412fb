// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mediaproc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/tracing"
	"github.com/canonical/content-service/internal/vendors"
)

const vendorName = "ffmpeg"

const (
	videoWidth  = 1080
	videoHeight = 1920
	musicVolume = "0.12"
)

// Runner executes ffmpeg with the given arguments.
type Runner func(ctx context.Context, args []string) error

// Prober returns the ffprobe JSON document of a media file.
type Prober func(path string) (string, error)

type Config struct {
	WorkDir    string
	BumperPath string
	MusicPath  string
}

type PostProcessRequest struct {
	VideoURL string
	Output   string
}

var _ ProcessorInterface = (*Processor)(nil)

// Processor assembles media locally with ffmpeg.
type Processor struct {
	workDir string
	bumper  string
	music   string

	run   Runner
	probe Prober

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// TempFile writes data into the work directory and returns its path, callers remove it.
func (p *Processor) TempFile(pattern string, data []byte) (string, error) {
	f, err := os.CreateTemp(p.workDir, pattern)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}

	return f.Name(), nil
}

// OutputPath reserves a path in the work directory for a generated file.
func (p *Processor) OutputPath(name string) string {
	return filepath.Join(p.workDir, name)
}

// ConcatAudio joins audio clips in order into output.
func (p *Processor) ConcatAudio(ctx context.Context, inputs []string, output string) error {
	ctx, span := p.tracer.Start(ctx, "mediaproc.Processor.ConcatAudio")
	defer span.End()

	if len(inputs) == 0 {
		return vendors.NewError(vendorName, vendors.CodeInvalidRequest, "no audio clips to join")
	}

	streams := make([]*ffmpeg.Stream, 0, len(inputs))
	for _, in := range inputs {
		streams = append(streams, ffmpeg.Input(in).Audio())
	}

	joined := ffmpeg.Concat(streams, ffmpeg.KwArgs{"v": 0, "a": 1})

	args := ffmpeg.Output([]*ffmpeg.Stream{joined}, output, ffmpeg.KwArgs{
		"c:a": "libmp3lame",
		"b:a": "192k",
	}).OverWriteOutput().GetArgs()

	return p.exec(ctx, args)
}

// PostProcess prepends the bumper and mixes background music under the rendered video.
func (p *Processor) PostProcess(ctx context.Context, req PostProcessRequest) error {
	ctx, span := p.tracer.Start(ctx, "mediaproc.Processor.PostProcess")
	defer span.End()

	if req.VideoURL == "" || req.Output == "" {
		return vendors.NewError(vendorName, vendors.CodeInvalidRequest, "video and output are required")
	}

	main := ffmpeg.Input(req.VideoURL)
	video := scale(main.Video())
	audio := main.Audio()

	if p.music != "" {
		music := ffmpeg.Input(p.music, ffmpeg.KwArgs{"stream_loop": -1}).Audio().Filter("volume", ffmpeg.Args{musicVolume})
		audio = ffmpeg.Filter([]*ffmpeg.Stream{audio, music}, "amix", ffmpeg.Args{}, ffmpeg.KwArgs{"inputs": 2, "duration": "first"})
	}

	if p.bumper != "" {
		bumper := ffmpeg.Input(p.bumper)
		// concat outputs are addressed by index, 0 is the video and 1 the audio
		joined := ffmpeg.Concat([]*ffmpeg.Stream{scale(bumper.Video()), bumper.Audio(), video, audio}, ffmpeg.KwArgs{"v": 1, "a": 1}).Node
		video = joined.Get("0")
		audio = joined.Get("1")
	}

	args := ffmpeg.Output([]*ffmpeg.Stream{video, audio}, req.Output, ffmpeg.KwArgs{
		"c:v":      "libx264",
		"c:a":      "aac",
		"b:a":      "192k",
		"preset":   "fast",
		"movflags": "+faststart",
	}).OverWriteOutput().GetArgs()

	return p.exec(ctx, args)
}

// Duration reads the duration of a media file in seconds.
func (p *Processor) Duration(ctx context.Context, path string) (float64, error) {
	_, span := p.tracer.Start(ctx, "mediaproc.Processor.Duration")
	defer span.End()

	raw, err := p.probe(path)
	if err != nil {
		return 0, vendors.Classify(vendorName, err)
	}

	var doc struct {
		Format struct {
			Duration string `json:"duration"`
		} `json:"format"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return 0, vendors.NewError(vendorName, vendors.CodeBadResponse, fmt.Sprintf("failed to decode probe output: %v", err))
	}

	d, err := strconv.ParseFloat(doc.Format.Duration, 64)
	if err != nil {
		return 0, vendors.NewError(vendorName, vendors.CodeBadResponse, "probe output has no duration")
	}

	return d, nil
}

func (p *Processor) exec(ctx context.Context, args []string) error {
	p.logger.Debugf("running ffmpeg %v", args)

	if err := p.run(ctx, args); err != nil {
		if ctx.Err() != nil {
			return vendors.Classify(vendorName, ctx.Err())
		}
		return vendors.NewError(vendorName, vendors.CodeInternal, err.Error())
	}

	return nil
}

func scale(s *ffmpeg.Stream) *ffmpeg.Stream {
	return s.
		Filter("scale", ffmpeg.Args{fmt.Sprintf("%d:%d", videoWidth, videoHeight)}, ffmpeg.KwArgs{"force_original_aspect_ratio": "increase"}).
		Filter("crop", ffmpeg.Args{fmt.Sprintf("%d:%d", videoWidth, videoHeight)}).
		Filter("setsar", ffmpeg.Args{"1"})
}

func runFFmpeg(ctx context.Context, args []string) error {
	var stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := stderr.String()
		if len(msg) > 512 {
			msg = msg[len(msg)-512:]
		}
		return fmt.Errorf("%w: %s", err, msg)
	}

	return nil
}

func probeFFmpeg(path string) (string, error) {
	return ffmpeg.Probe(path)
}

func NewProcessor(cfg Config, run Runner, probe Prober, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Processor {
	p := new(Processor)

	p.workDir = cfg.WorkDir
	if p.workDir == "" {
		p.workDir = os.TempDir()
	}
	p.bumper = cfg.BumperPath
	p.music = cfg.MusicPath

	p.run = run
	if p.run == nil {
		p.run = runFFmpeg
	}
	p.probe = probe
	if p.probe == nil {
		p.probe = probeFFmpeg
	}

	p.tracer = tracer
	p.monitor = monitor
	p.logger = logger

	return p
}
