// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"fmt"
	"time"
)

type SubmissionStatus string

const (
	SubmissionPending         SubmissionStatus = "PENDING"
	SubmissionProcessing      SubmissionStatus = "PROCESSING"
	SubmissionCompleted       SubmissionStatus = "COMPLETED"
	SubmissionFailed          SubmissionStatus = "FAILED"
	SubmissionPartialComplete SubmissionStatus = "PARTIAL_COMPLETE"
)

type OutputStatus string

const (
	OutputPending    OutputStatus = "PENDING"
	OutputProcessing OutputStatus = "PROCESSING"
	OutputCompleted  OutputStatus = "COMPLETED"
	OutputFailed     OutputStatus = "FAILED"
)

// Terminal reports whether the status releases the output lock.
func (s OutputStatus) Terminal() bool {
	return s == OutputCompleted || s == OutputFailed
}

type OutputKind string

const (
	KindAudio              OutputKind = "AUDIO"
	KindPodcast            OutputKind = "PODCAST"
	KindInteractivePodcast OutputKind = "INTERACTIVE_PODCAST"
	KindVideo              OutputKind = "VIDEO"
	KindQuiz               OutputKind = "QUIZ"
)

var OutputKinds = []OutputKind{KindAudio, KindPodcast, KindInteractivePodcast, KindVideo, KindQuiz}

func (k OutputKind) Valid() bool {
	for _, known := range OutputKinds {
		if k == known {
			return true
		}
	}
	return false
}

type Submission struct {
	ID                         string           `db:"id" json:"id"`
	OrganizationID             string           `db:"organization_id" json:"organization_id"`
	ArticleID                  string           `db:"article_id" json:"article_id"`
	GenerateAudio              bool             `db:"generate_audio" json:"generate_audio"`
	GeneratePodcast            bool             `db:"generate_podcast" json:"generate_podcast"`
	GenerateInteractivePodcast bool             `db:"generate_interactive_podcast" json:"generate_interactive_podcast"`
	GenerateVideo              bool             `db:"generate_video" json:"generate_video"`
	GenerateQuiz               bool             `db:"generate_quiz" json:"generate_quiz"`
	Status                     SubmissionStatus `db:"status" json:"status"`
	Language                   string           `db:"language" json:"language"`
	CharacterID                *string          `db:"character_id" json:"character_id,omitempty"`
	CreatedBy                  string           `db:"created_by" json:"created_by"`
	CreatedAt                  time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt                  time.Time        `db:"updated_at" json:"updated_at"`
}

// RequestedKinds returns the output kinds selected by the generate flags, in a stable order.
func (s *Submission) RequestedKinds() []OutputKind {
	flags := map[OutputKind]bool{
		KindAudio:              s.GenerateAudio,
		KindPodcast:            s.GeneratePodcast,
		KindInteractivePodcast: s.GenerateInteractivePodcast,
		KindVideo:              s.GenerateVideo,
		KindQuiz:               s.GenerateQuiz,
	}

	kinds := make([]OutputKind, 0, len(OutputKinds))
	for _, k := range OutputKinds {
		if flags[k] {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

type Output struct {
	ID             string        `db:"id" json:"id"`
	SubmissionID   string        `db:"submission_id" json:"submission_id"`
	OrganizationID string        `db:"organization_id" json:"organization_id"`
	Kind           OutputKind    `db:"kind" json:"kind"`
	Status         OutputStatus  `db:"status" json:"status"`
	IsApproved     bool          `db:"is_approved" json:"is_approved"`
	Error          *string       `db:"error" json:"error,omitempty"`
	Payload        OutputPayload `db:"payload" json:"payload,omitempty"`
	Stale          bool          `db:"-" json:"stale"`
	JobID          *string       `db:"job_id" json:"-"`
	Generation     int           `db:"generation" json:"generation"`
	Checkpoint     *Checkpoint   `db:"checkpoint" json:"-"`
	StartedAt      *time.Time    `db:"started_at" json:"started_at,omitempty"`
	CreatedAt      time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time     `db:"updated_at" json:"updated_at"`
}

// OwnedBy reports whether the output is currently locked by the given job.
func (o *Output) OwnedBy(jobID string) bool {
	return o.Status == OutputProcessing && o.JobID != nil && *o.JobID == jobID
}

// HasStalePayload reports whether the stored payload belongs to an earlier
// generation, which is the case for a FAILED or re-running output that kept
// the result of its last successful run.
func (o *Output) HasStalePayload() bool {
	return o.Payload != nil && o.Status != OutputCompleted
}

// Checkpoint stores the results of completed pipeline stages for the job that
// currently owns the output, a retried attempt of the same job resumes from it.
type Checkpoint struct {
	JobID  string                     `json:"job_id"`
	Stages map[string]json.RawMessage `json:"stages"`
}

// OutputPayload is the typed, per-kind result of a completed generation.
type OutputPayload interface {
	Kind() OutputKind
}

type AudioPayload struct {
	AudioFileURL    string  `json:"audio_file_url"`
	DurationSeconds float64 `json:"duration_seconds"`
	Transcript      string  `json:"transcript"`
}

func (AudioPayload) Kind() OutputKind { return KindAudio }

type PodcastSegment struct {
	Speaker string  `json:"speaker"`
	Text    string  `json:"text"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
}

type PodcastPayload struct {
	AudioFileURL    string           `json:"audio_file_url"`
	DurationSeconds float64          `json:"duration_seconds"`
	Transcript      string           `json:"transcript"`
	Segments        []PodcastSegment `json:"segments"`
}

func (PodcastPayload) Kind() OutputKind { return KindPodcast }

type InteractiveSegment struct {
	Speaker         string  `json:"speaker"`
	Text            string  `json:"text"`
	AudioURL        string  `json:"audio_url"`
	DurationSeconds float64 `json:"duration_seconds"`
}

// Checkpoint questions are asked after the segment at AfterSegment.
type CheckpointQuestion struct {
	AfterSegment int          `json:"after_segment"`
	Question     QuizQuestion `json:"question"`
}

type InteractivePodcastPayload struct {
	Segments  []InteractiveSegment `json:"segments"`
	Questions []CheckpointQuestion `json:"questions"`
}

func (InteractivePodcastPayload) Kind() OutputKind { return KindInteractivePodcast }

type QuizBubble struct {
	AtSeconds   float64  `json:"at_seconds"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answer_index"`
}

type VideoPayload struct {
	VideoURL        string       `json:"video_url"`
	ThumbnailURL    string       `json:"thumbnail_url,omitempty"`
	DurationSeconds float64      `json:"duration_seconds"`
	Transcript      string       `json:"transcript"`
	Bubbles         []QuizBubble `json:"bubbles"`
}

func (VideoPayload) Kind() OutputKind { return KindVideo }

type QuizQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answer_index"`
	Explanation string   `json:"explanation,omitempty"`
}

type QuizPayload struct {
	Questions []QuizQuestion `json:"questions"`
}

func (QuizPayload) Kind() OutputKind { return KindQuiz }

// DecodePayload parses a stored payload using the output kind as the discriminator.
func DecodePayload(kind OutputKind, raw []byte) (OutputPayload, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var p OutputPayload
	var err error

	switch kind {
	case KindAudio:
		v := AudioPayload{}
		err = json.Unmarshal(raw, &v)
		p = v
	case KindPodcast:
		v := PodcastPayload{}
		err = json.Unmarshal(raw, &v)
		p = v
	case KindInteractivePodcast:
		v := InteractivePodcastPayload{}
		err = json.Unmarshal(raw, &v)
		p = v
	case KindVideo:
		v := VideoPayload{}
		err = json.Unmarshal(raw, &v)
		p = v
	case KindQuiz:
		v := QuizPayload{}
		err = json.Unmarshal(raw, &v)
		p = v
	default:
		return nil, fmt.Errorf("unknown output kind %q", kind)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to decode %s payload: %w", kind, err)
	}

	return p, nil
}

// EncodePayload serializes a payload, refusing one whose kind does not match the output.
func EncodePayload(kind OutputKind, p OutputPayload) ([]byte, error) {
	if p == nil {
		return nil, nil
	}

	if p.Kind() != kind {
		return nil, fmt.Errorf("payload of kind %s cannot be stored on a %s output", p.Kind(), kind)
	}

	return json.Marshal(p)
}
