// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/canonical/content-service/internal/types"
)

type JobType string

const (
	JobAudio              JobType = "audio-generation"
	JobPodcast            JobType = "podcast-generation"
	JobInteractivePodcast JobType = "interactive-podcast-media-generation"
	JobVideo              JobType = "video-media-generation"
	JobQuiz               JobType = "quiz-generation"
)

var JobTypes = []JobType{JobAudio, JobPodcast, JobInteractivePodcast, JobVideo, JobQuiz}

var kindJobTypes = map[types.OutputKind]JobType{
	types.KindAudio:              JobAudio,
	types.KindPodcast:            JobPodcast,
	types.KindInteractivePodcast: JobInteractivePodcast,
	types.KindVideo:              JobVideo,
	types.KindQuiz:               JobQuiz,
}

// JobTypeFor returns the job type producing outputs of the given kind.
func JobTypeFor(kind types.OutputKind) (JobType, error) {
	jt, ok := kindJobTypes[kind]
	if !ok {
		return "", fmt.Errorf("no job type for output kind %q", kind)
	}
	return jt, nil
}

// OutputRef identifies the output a job generates.
type OutputRef struct {
	SubmissionID   string           `json:"submission_id"`
	OutputID       string           `json:"output_id"`
	OrganizationID string           `json:"organization_id"`
	Kind           types.OutputKind `json:"kind"`
}

// GenerationParams carries the optional overrides of a regeneration request.
type GenerationParams struct {
	CustomPrompt string `json:"custom_prompt,omitempty"`
	VoiceID      string `json:"voice_id,omitempty"`
	CharacterID  string `json:"character_id,omitempty"`
	Language     string `json:"language,omitempty"`
}

type Payload interface {
	JobType() JobType
	Output() OutputRef
}

type AudioJob struct {
	OutputRef
	GenerationParams
}

func (AudioJob) JobType() JobType { return JobAudio }
func (j AudioJob) Output() OutputRef { return j.OutputRef }

type PodcastJob struct {
	OutputRef
	GenerationParams
}

func (PodcastJob) JobType() JobType { return JobPodcast }
func (j PodcastJob) Output() OutputRef { return j.OutputRef }

type InteractivePodcastJob struct {
	OutputRef
	GenerationParams
	Questions int `json:"questions,omitempty"`
}

func (InteractivePodcastJob) JobType() JobType { return JobInteractivePodcast }
func (j InteractivePodcastJob) Output() OutputRef { return j.OutputRef }

type VideoJob struct {
	OutputRef
	GenerationParams
	AvatarID string `json:"avatar_id,omitempty"`
}

func (VideoJob) JobType() JobType { return JobVideo }
func (j VideoJob) Output() OutputRef { return j.OutputRef }

type QuizJob struct {
	OutputRef
	GenerationParams
	Questions int `json:"questions,omitempty"`
}

func (QuizJob) JobType() JobType { return JobQuiz }
func (j QuizJob) Output() OutputRef { return j.OutputRef }

// NewPayload builds the job payload matching the output kind.
func NewPayload(ref OutputRef, params GenerationParams) (Payload, error) {
	switch ref.Kind {
	case types.KindAudio:
		return AudioJob{ref, params}, nil
	case types.KindPodcast:
		return PodcastJob{ref, params}, nil
	case types.KindInteractivePodcast:
		return InteractivePodcastJob{OutputRef: ref, GenerationParams: params}, nil
	case types.KindVideo:
		return VideoJob{OutputRef: ref, GenerationParams: params}, nil
	case types.KindQuiz:
		return QuizJob{OutputRef: ref, GenerationParams: params}, nil
	}
	return nil, fmt.Errorf("no job payload for output kind %q", ref.Kind)
}

// DecodePayload parses a raw job payload using the job type as the discriminator.
func DecodePayload(jt JobType, raw []byte) (Payload, error) {
	var (
		p   Payload
		err error
	)

	switch jt {
	case JobAudio:
		v := AudioJob{}
		err = json.Unmarshal(raw, &v)
		p = v
	case JobPodcast:
		v := PodcastJob{}
		err = json.Unmarshal(raw, &v)
		p = v
	case JobInteractivePodcast:
		v := InteractivePodcastJob{}
		err = json.Unmarshal(raw, &v)
		p = v
	case JobVideo:
		v := VideoJob{}
		err = json.Unmarshal(raw, &v)
		p = v
	case JobQuiz:
		v := QuizJob{}
		err = json.Unmarshal(raw, &v)
		p = v
	default:
		return nil, fmt.Errorf("unknown job type %q", jt)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to decode %s payload: %w", jt, err)
	}

	return p, nil
}

// Job is a unit of work as it is stored by a transport.
type Job struct {
	ID          string          `json:"id"`
	Type        JobType         `json:"type"`
	Payload     json.RawMessage `json:"payload"`
	Attempts    int             `json:"attempts"`
	MaxAttempts int             `json:"max_attempts"`
	LastError   string          `json:"last_error,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewJob encodes the payload into a job, jobID may be empty to let the transport assign one.
func NewJob(jobID string, p Payload, maxAttempts int) (*Job, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s payload: %w", p.JobType(), err)
	}

	return &Job{
		ID:          jobID,
		Type:        p.JobType(),
		Payload:     raw,
		MaxAttempts: maxAttempts,
	}, nil
}

// Delivery is a claimed job, hidden from other consumers until its visibility expires.
type Delivery struct {
	Job

	VisibleUntil time.Time
}

// Decode returns the typed payload of the delivered job.
func (d *Delivery) Decode() (Payload, error) {
	return DecodePayload(d.Type, d.Payload)
}

// Exhausted reports whether the delivery used up every attempt.
func (d *Delivery) Exhausted() bool {
	return d.MaxAttempts > 0 && d.Attempts > d.MaxAttempts
}

type Stats struct {
	Queued   map[JobType]int64 `json:"queued"`
	Inflight map[JobType]int64 `json:"inflight"`
	Dead     int64             `json:"dead"`
}
