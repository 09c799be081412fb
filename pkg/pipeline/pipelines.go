// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/canonical/content-service/internal/apperrors"
	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/queue"
	"github.com/canonical/content-service/internal/storage"
	"github.com/canonical/content-service/internal/tracing"
	"github.com/canonical/content-service/internal/types"
	"github.com/canonical/content-service/internal/vendors/avatar"
	"github.com/canonical/content-service/internal/vendors/captions"
	"github.com/canonical/content-service/internal/vendors/mediaproc"
	"github.com/canonical/content-service/internal/vendors/objectstore"
	"github.com/canonical/content-service/internal/vendors/speech"
	"github.com/canonical/content-service/internal/vendors/textgen"
)

const (
	defaultQuizQuestions       = 5
	defaultCheckpointQuestions = 3
	defaultVideoBubbles        = 2
	videoWidth                 = 1080
	videoHeight                = 1920
)

// Config holds the generation defaults of the pipelines.
type Config struct {
	NarratorVoice      string
	GuestVoice         string
	DefaultAvatarID    string
	AvatarPollInterval time.Duration
}

// Vendors groups the adapters the pipelines call.
type Vendors struct {
	Text       textgen.GeneratorInterface
	Translator TranslatorInterface
	Speech     speech.SynthesizerInterface
	Avatar     avatar.RendererInterface
	Captions   captions.BurnerInterface
	Uploader   objectstore.UploaderInterface
	Media      mediaproc.ProcessorInterface
}

// inputs are the resolved generation parameters of a job.
type inputs struct {
	ref          queue.OutputRef
	generation   int
	article      *types.Article
	language     string
	customPrompt string
	voice        string
	avatarID     string
}

// Pipelines runs the stage chain matching each job type.
type Pipelines struct {
	cfg     Config
	vendors Vendors
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (p *Pipelines) Run(ctx context.Context, o *types.Output, jobID string, payload queue.Payload) (types.OutputPayload, error) {
	ctx, span := p.tracer.Start(ctx, "pipeline.Pipelines.Run")
	defer span.End()

	r := newRun(o, jobID, p.storage, p.logger)

	in, err := p.resolve(ctx, o, payload)
	if err != nil {
		return nil, apperrors.NewStageError("inputs", err)
	}

	switch j := payload.(type) {
	case queue.AudioJob:
		return p.audio(ctx, r, in)
	case queue.PodcastJob:
		return p.podcast(ctx, r, in)
	case queue.InteractivePodcastJob:
		return p.interactivePodcast(ctx, r, in, j.Questions)
	case queue.VideoJob:
		if j.AvatarID != "" {
			in.avatarID = j.AvatarID
		}
		return p.video(ctx, r, in)
	case queue.QuizJob:
		return p.quiz(ctx, r, in, j.Questions)
	}

	return nil, fmt.Errorf("no pipeline for job type %s", payload.JobType())
}

func (p *Pipelines) resolve(ctx context.Context, o *types.Output, payload queue.Payload) (*inputs, error) {
	ref := payload.Output()

	params, err := generationParams(payload)
	if err != nil {
		return nil, err
	}

	sub, err := p.storage.GetSubmission(ctx, ref.SubmissionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load submission %s: %w", ref.SubmissionID, err)
	}

	article, err := p.storage.GetArticle(ctx, sub.ArticleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load article %s: %w", sub.ArticleID, err)
	}

	in := &inputs{
		ref:          ref,
		generation:   o.Generation,
		article:      article,
		language:     sub.Language,
		customPrompt: params.CustomPrompt,
		voice:        p.cfg.NarratorVoice,
		avatarID:     p.cfg.DefaultAvatarID,
	}

	if params.Language != "" {
		in.language = params.Language
	}

	characterID := params.CharacterID
	if characterID == "" && sub.CharacterID != nil {
		characterID = *sub.CharacterID
	}

	voiceID := params.VoiceID
	if characterID != "" {
		c, err := p.storage.GetCharacter(ctx, characterID)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("failed to load character %s: %w", characterID, err)
		}
		if c != nil {
			in.avatarID = c.AvatarID
			if voiceID == "" {
				voiceID = c.VoiceID
			}
		}
	}

	if voiceID != "" {
		v, err := p.storage.GetVoice(ctx, voiceID)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("failed to load voice %s: %w", voiceID, err)
		}
		if v != nil {
			in.voice = v.VendorVoiceID
		}
	}

	return in, nil
}

func generationParams(payload queue.Payload) (queue.GenerationParams, error) {
	switch j := payload.(type) {
	case queue.AudioJob:
		return j.GenerationParams, nil
	case queue.PodcastJob:
		return j.GenerationParams, nil
	case queue.InteractivePodcastJob:
		return j.GenerationParams, nil
	case queue.VideoJob:
		return j.GenerationParams, nil
	case queue.QuizJob:
		return j.GenerationParams, nil
	}
	return queue.GenerationParams{}, fmt.Errorf("unknown job payload %T", payload)
}

func (p *Pipelines) speakerVoice(in *inputs, speaker string) string {
	if speaker == "guest" && p.cfg.GuestVoice != "" {
		return p.cfg.GuestVoice
	}
	return in.voice
}

func (p *Pipelines) key(in *inputs, name string) string {
	return objectstore.Key(in.ref.OrganizationID, in.ref.SubmissionID, in.ref.OutputID, fmt.Sprintf("g%d-%s", in.generation, name))
}

type uploaded struct {
	URL             string        `json:"url"`
	DurationSeconds float64       `json:"duration_seconds"`
	Words           []speech.Word `json:"words,omitempty"`
}

// speak synthesizes text and uploads the audio under name.
func (p *Pipelines) speak(ctx context.Context, in *inputs, voice, text, name string) (uploaded, error) {
	audio, err := p.vendors.Speech.Synthesize(ctx, voice, text)
	if err != nil {
		return uploaded{}, err
	}

	url, err := p.vendors.Uploader.Put(ctx, p.key(in, name), audio.Data, audio.ContentType)
	if err != nil {
		return uploaded{}, err
	}

	return uploaded{URL: url, DurationSeconds: audio.DurationSeconds, Words: audio.Words}, nil
}

// publishFile uploads a file produced by the media processor and removes it.
func (p *Pipelines) publishFile(ctx context.Context, in *inputs, path, name, contentType string) (uploaded, error) {
	defer os.Remove(path)

	duration, err := p.vendors.Media.Duration(ctx, path)
	if err != nil {
		return uploaded{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return uploaded{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	url, err := p.vendors.Uploader.Put(ctx, p.key(in, name), data, contentType)
	if err != nil {
		return uploaded{}, err
	}

	return uploaded{URL: url, DurationSeconds: duration}, nil
}

func NewPipelines(
	cfg Config,
	vendors Vendors,
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Pipelines {
	p := new(Pipelines)

	p.cfg = cfg
	p.vendors = vendors
	p.storage = storage

	if p.cfg.AvatarPollInterval <= 0 {
		p.cfg.AvatarPollInterval = 10 * time.Second
	}

	p.tracer = tracer
	p.monitor = monitor
	p.logger = logger

	return p
}
