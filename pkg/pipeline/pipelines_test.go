// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/canonical/content-service/internal/apperrors"
	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/queue"
	"github.com/canonical/content-service/internal/storage"
	"github.com/canonical/content-service/internal/tracing"
	"github.com/canonical/content-service/internal/types"
	"github.com/canonical/content-service/internal/vendors"
	"github.com/canonical/content-service/internal/vendors/avatar"
	"github.com/canonical/content-service/internal/vendors/mediaproc"
	"github.com/canonical/content-service/internal/vendors/speech"
	"github.com/canonical/content-service/internal/vendors/textgen"
)

//go:generate mockgen -build_flags=--mod=mod -package pipeline -destination ./mock_textgen.go -source=../../internal/vendors/textgen/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package pipeline -destination ./mock_speech.go -source=../../internal/vendors/speech/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package pipeline -destination ./mock_avatar.go -source=../../internal/vendors/avatar/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package pipeline -destination ./mock_captions.go -source=../../internal/vendors/captions/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package pipeline -destination ./mock_objectstore.go -source=../../internal/vendors/objectstore/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package pipeline -destination ./mock_mediaproc.go -source=../../internal/vendors/mediaproc/interfaces.go

const (
	orgID        = "org-1"
	submissionID = "sub-1"
	outputID     = "out-1"
	articleID    = "art-1"
	jobID        = "job-1"
)

type fixture struct {
	storage    *MockStorageInterface
	text       *MockGeneratorInterface
	translator *MockTranslatorInterface
	speech     *MockSynthesizerInterface
	avatar     *MockRendererInterface
	captions   *MockBurnerInterface
	uploader   *MockUploaderInterface
	media      *MockProcessorInterface
	pipelines  *Pipelines
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		storage:    NewMockStorageInterface(ctrl),
		text:       NewMockGeneratorInterface(ctrl),
		translator: NewMockTranslatorInterface(ctrl),
		speech:     NewMockSynthesizerInterface(ctrl),
		avatar:     NewMockRendererInterface(ctrl),
		captions:   NewMockBurnerInterface(ctrl),
		uploader:   NewMockUploaderInterface(ctrl),
		media:      NewMockProcessorInterface(ctrl),
	}

	logger := logging.NewNoopLogger()
	f.pipelines = NewPipelines(
		Config{NarratorVoice: "narrator", GuestVoice: "guest-voice", DefaultAvatarID: "avatar-default", AvatarPollInterval: time.Millisecond},
		Vendors{
			Text:       f.text,
			Translator: f.translator,
			Speech:     f.speech,
			Avatar:     f.avatar,
			Captions:   f.captions,
			Uploader:   f.uploader,
			Media:      f.media,
		},
		f.storage,
		tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger,
	)

	return f
}

// inputs registers the submission and article reads, language is the target of the submission.
func (f *fixture) inputs(language string) {
	f.storage.EXPECT().GetSubmission(gomock.Any(), submissionID).Return(&types.Submission{
		ID:             submissionID,
		OrganizationID: orgID,
		ArticleID:      articleID,
		Language:       language,
	}, nil)
	f.storage.EXPECT().GetArticle(gomock.Any(), articleID).Return(&types.Article{
		ID:             articleID,
		OrganizationID: orgID,
		Title:          "Tides",
		Content:        "The moon pulls the sea.",
		Language:       "en",
	}, nil)
}

// passthrough makes the translator return its input.
func (f *fixture) passthrough() {
	f.translator.EXPECT().TranslateAll(gomock.Any(), gomock.Any(), "en", gomock.Any()).DoAndReturn(
		func(_ context.Context, texts []string, _, _ string) ([]string, error) {
			return texts, nil
		},
	).AnyTimes()
}

func (f *fixture) checkpoints() {
	f.storage.EXPECT().SaveCheckpoint(gomock.Any(), outputID, jobID, gomock.Any()).Return(nil).AnyTimes()
}

func replyJSON(body string) func(context.Context, textgen.Prompt, any) error {
	return func(_ context.Context, _ textgen.Prompt, out any) error {
		return json.Unmarshal([]byte(body), out)
	}
}

func processingOutput(kind types.OutputKind) *types.Output {
	job := jobID
	return &types.Output{
		ID:             outputID,
		SubmissionID:   submissionID,
		OrganizationID: orgID,
		Kind:           kind,
		Status:         types.OutputProcessing,
		JobID:          &job,
		Generation:     2,
	}
}

func ref(kind types.OutputKind) queue.OutputRef {
	return queue.OutputRef{SubmissionID: submissionID, OutputID: outputID, OrganizationID: orgID, Kind: kind}
}

func TestAudioPipeline(t *testing.T) {
	f := newFixture(t)
	f.inputs("en")
	f.passthrough()
	f.checkpoints()

	f.text.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p textgen.Prompt) (string, error) {
			assert.Equal(t, narrationSystem, p.System)
			assert.Contains(t, p.User, "The moon pulls the sea.")
			return "  The moon pulls the sea, gently.  ", nil
		},
	)
	f.speech.EXPECT().Synthesize(gomock.Any(), "narrator", "The moon pulls the sea, gently.").Return(&speech.Audio{
		Data:            []byte("mp3"),
		ContentType:     "audio/mpeg",
		DurationSeconds: 4.5,
	}, nil)
	f.uploader.EXPECT().Put(gomock.Any(), "org-1/sub-1/out-1/g2-narration.mp3", []byte("mp3"), "audio/mpeg").Return("https://cdn.example.com/narration.mp3", nil)

	p, err := f.pipelines.Run(context.Background(), processingOutput(types.KindAudio), jobID, queue.AudioJob{OutputRef: ref(types.KindAudio)})

	require.NoError(t, err)
	assert.Equal(t, types.AudioPayload{
		AudioFileURL:    "https://cdn.example.com/narration.mp3",
		DurationSeconds: 4.5,
		Transcript:      "The moon pulls the sea, gently.",
	}, p)
}

func TestAudioPipelineResumesFromCheckpoint(t *testing.T) {
	f := newFixture(t)
	f.inputs("fr")
	f.checkpoints()

	o := processingOutput(types.KindAudio)
	o.Checkpoint = &types.Checkpoint{
		JobID: jobID,
		Stages: map[string]json.RawMessage{
			"script":    json.RawMessage(`"The moon pulls the sea."`),
			"translate": json.RawMessage(`"La lune attire la mer."`),
		},
	}

	f.speech.EXPECT().Synthesize(gomock.Any(), "narrator", "La lune attire la mer.").Return(&speech.Audio{Data: []byte("mp3"), ContentType: "audio/mpeg", DurationSeconds: 3}, nil)
	f.uploader.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("https://cdn.example.com/fr.mp3", nil)

	p, err := f.pipelines.Run(context.Background(), o, jobID, queue.AudioJob{OutputRef: ref(types.KindAudio)})

	require.NoError(t, err)
	assert.Equal(t, "La lune attire la mer.", p.(types.AudioPayload).Transcript)
}

func TestAudioPipelineEmptyNarration(t *testing.T) {
	f := newFixture(t)
	f.inputs("en")

	f.text.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(" ", nil)

	_, err := f.pipelines.Run(context.Background(), processingOutput(types.KindAudio), jobID, queue.AudioJob{OutputRef: ref(types.KindAudio)})

	var se *apperrors.StageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "script", se.Stage)

	var vErr *vendors.Error
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, vendors.CodeBadResponse, vErr.Code)
}

func TestPodcastPipeline(t *testing.T) {
	dir := t.TempDir()

	f := newFixture(t)
	f.inputs("en")
	f.passthrough()
	f.checkpoints()

	f.text.EXPECT().GenerateJSON(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		replyJSON(`{"lines":[{"speaker":"host","text":"Why tides?"},{"speaker":"guest","text":"The moon."}]}`),
	)
	f.speech.EXPECT().Synthesize(gomock.Any(), "narrator", "Why tides?").Return(&speech.Audio{Data: []byte("a"), DurationSeconds: 2}, nil)
	f.speech.EXPECT().Synthesize(gomock.Any(), "guest-voice", "The moon.").Return(&speech.Audio{Data: []byte("b"), DurationSeconds: 1.5}, nil)
	f.media.EXPECT().TempFile("podcast-line-*.mp3", gomock.Any()).DoAndReturn(
		func(pattern string, data []byte) (string, error) {
			path := filepath.Join(dir, string(data)+".mp3")
			return path, os.WriteFile(path, data, 0o600)
		},
	).Times(2)

	output := filepath.Join(dir, "out-1-podcast.mp3")
	f.media.EXPECT().OutputPath("out-1-podcast.mp3").Return(output)
	f.media.EXPECT().ConcatAudio(gomock.Any(), []string{filepath.Join(dir, "a.mp3"), filepath.Join(dir, "b.mp3")}, output).DoAndReturn(
		func(_ context.Context, _ []string, out string) error {
			return os.WriteFile(out, []byte("ab"), 0o600)
		},
	)
	f.media.EXPECT().Duration(gomock.Any(), output).Return(3.5, nil)
	f.uploader.EXPECT().Put(gomock.Any(), "org-1/sub-1/out-1/g2-podcast.mp3", []byte("ab"), "audio/mpeg").Return("https://cdn.example.com/podcast.mp3", nil)

	p, err := f.pipelines.Run(context.Background(), processingOutput(types.KindPodcast), jobID, queue.PodcastJob{OutputRef: ref(types.KindPodcast)})

	require.NoError(t, err)

	podcast := p.(types.PodcastPayload)
	assert.Equal(t, "https://cdn.example.com/podcast.mp3", podcast.AudioFileURL)
	assert.Equal(t, 3.5, podcast.DurationSeconds)
	assert.Equal(t, "host: Why tides?\nguest: The moon.", podcast.Transcript)
	assert.Equal(t, []types.PodcastSegment{
		{Speaker: "host", Text: "Why tides?", Start: 0, End: 2},
		{Speaker: "guest", Text: "The moon.", Start: 2, End: 3.5},
	}, podcast.Segments)

	_, err = os.Stat(output)
	assert.True(t, os.IsNotExist(err), "published file is removed")
	_, err = os.Stat(filepath.Join(dir, "a.mp3"))
	assert.True(t, os.IsNotExist(err), "line files are removed")
}

func TestInteractivePodcastPipeline(t *testing.T) {
	f := newFixture(t)
	f.inputs("en")
	f.passthrough()
	f.checkpoints()

	f.text.EXPECT().GenerateJSON(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p textgen.Prompt, out any) error {
			assert.Contains(t, p.System, "write 2 multiple choice checkpoint questions")
			return replyJSON(`{
				"segments":[{"speaker":"host","text":"One"},{"speaker":"guest","text":"Two"}],
				"questions":[{"after_segment":1,"question":{"question":"What pulls?","options":["moon","sun"],"answer_index":0}}]
			}`)(nil, p, out)
		},
	)
	f.speech.EXPECT().Synthesize(gomock.Any(), "narrator", "One").Return(&speech.Audio{Data: []byte("1"), ContentType: "audio/mpeg", DurationSeconds: 1}, nil)
	f.speech.EXPECT().Synthesize(gomock.Any(), "guest-voice", "Two").Return(&speech.Audio{Data: []byte("2"), ContentType: "audio/mpeg", DurationSeconds: 2}, nil)
	f.uploader.EXPECT().Put(gomock.Any(), "org-1/sub-1/out-1/g2-segment-00.mp3", gomock.Any(), "audio/mpeg").Return("https://cdn.example.com/0.mp3", nil)
	f.uploader.EXPECT().Put(gomock.Any(), "org-1/sub-1/out-1/g2-segment-01.mp3", gomock.Any(), "audio/mpeg").Return("https://cdn.example.com/1.mp3", nil)

	p, err := f.pipelines.Run(
		context.Background(), processingOutput(types.KindInteractivePodcast), jobID,
		queue.InteractivePodcastJob{OutputRef: ref(types.KindInteractivePodcast), Questions: 2},
	)

	require.NoError(t, err)

	ip := p.(types.InteractivePodcastPayload)
	require.Len(t, ip.Segments, 2)
	assert.Equal(t, "https://cdn.example.com/1.mp3", ip.Segments[1].AudioURL)
	require.Len(t, ip.Questions, 1)
	assert.Equal(t, 1, ip.Questions[0].AfterSegment)
	assert.Equal(t, []string{"moon", "sun"}, ip.Questions[0].Question.Options)
}

func TestVideoPipeline(t *testing.T) {
	dir := t.TempDir()

	f := newFixture(t)
	f.inputs("en")
	f.passthrough()
	f.checkpoints()

	character := "char-1"
	f.storage.EXPECT().GetCharacter(gomock.Any(), character).Return(&types.Character{ID: character, OrganizationID: orgID, AvatarID: "avatar-7", VoiceID: "voice-1"}, nil)
	f.storage.EXPECT().GetVoice(gomock.Any(), "voice-1").Return(&types.Voice{ID: "voice-1", OrganizationID: orgID, VendorVoiceID: "eleven-1"}, nil)

	f.text.EXPECT().GenerateJSON(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		replyJSON(`{"script":"Tides follow the moon.","bubbles":[{"question":"Who?","options":["moon","sun"],"answer_index":0},{"question":"When?","options":["daily","yearly"],"answer_index":0}]}`),
	)
	words := []speech.Word{{Text: "Tides", Start: 0, End: 0.5}}
	f.speech.EXPECT().Synthesize(gomock.Any(), "eleven-1", "Tides follow the moon.").Return(&speech.Audio{Data: []byte("v"), ContentType: "audio/mpeg", DurationSeconds: 9, Words: words}, nil)
	f.uploader.EXPECT().Put(gomock.Any(), "org-1/sub-1/out-1/g2-video-voice.mp3", gomock.Any(), "audio/mpeg").Return("https://cdn.example.com/voice.mp3", nil)
	f.avatar.EXPECT().Submit(gomock.Any(), avatar.RenderRequest{AvatarID: "avatar-7", AudioURL: "https://cdn.example.com/voice.mp3", Width: 1080, Height: 1920}).Return("render-1", nil)
	f.avatar.EXPECT().Wait(gomock.Any(), "render-1", time.Millisecond).Return(&avatar.PollResult{
		Status:       avatar.StatusCompleted,
		VideoURL:     "https://render.example.com/1.mp4",
		ThumbnailURL: "https://render.example.com/1.jpg",
	}, nil)
	f.captions.EXPECT().Burn(gomock.Any(), "https://render.example.com/1.mp4", words, "en").Return("https://captions.example.com/1.mp4", nil)

	output := filepath.Join(dir, "out-1-video.mp4")
	f.media.EXPECT().OutputPath("out-1-video.mp4").Return(output)
	f.media.EXPECT().PostProcess(gomock.Any(), mediaproc.PostProcessRequest{VideoURL: "https://captions.example.com/1.mp4", Output: output}).DoAndReturn(
		func(_ context.Context, req mediaproc.PostProcessRequest) error {
			return os.WriteFile(req.Output, []byte("mp4"), 0o600)
		},
	)
	f.media.EXPECT().Duration(gomock.Any(), output).Return(12.0, nil)
	f.uploader.EXPECT().Put(gomock.Any(), "org-1/sub-1/out-1/g2-video.mp4", []byte("mp4"), "video/mp4").Return("https://cdn.example.com/video.mp4", nil)

	job := queue.VideoJob{OutputRef: ref(types.KindVideo), GenerationParams: queue.GenerationParams{CharacterID: character}}
	p, err := f.pipelines.Run(context.Background(), processingOutput(types.KindVideo), jobID, job)

	require.NoError(t, err)

	video := p.(types.VideoPayload)
	assert.Equal(t, "https://cdn.example.com/video.mp4", video.VideoURL)
	assert.Equal(t, "https://render.example.com/1.jpg", video.ThumbnailURL)
	assert.Equal(t, 12.0, video.DurationSeconds)
	assert.Equal(t, "Tides follow the moon.", video.Transcript)
	require.Len(t, video.Bubbles, 2)
	assert.Equal(t, 3.0, video.Bubbles[0].AtSeconds)
	assert.Equal(t, 6.0, video.Bubbles[1].AtSeconds)
}

func TestQuizPipelineTranslates(t *testing.T) {
	f := newFixture(t)
	f.inputs("fr")
	f.checkpoints()

	f.text.EXPECT().GenerateJSON(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p textgen.Prompt, out any) error {
			assert.Contains(t, p.System, "Write 5 questions")
			return replyJSON(`{"questions":[{"question":"What pulls the sea?","options":["The moon","The wind"],"answer_index":0,"explanation":"Gravity."}]}`)(nil, p, out)
		},
	)
	f.translator.EXPECT().TranslateAll(gomock.Any(), []string{"What pulls the sea?", "Gravity.", "The moon", "The wind"}, "en", "fr").Return(
		[]string{"Qu'est-ce qui attire la mer ?", "La gravite.", "La lune", "Le vent"}, nil,
	)

	p, err := f.pipelines.Run(context.Background(), processingOutput(types.KindQuiz), jobID, queue.QuizJob{OutputRef: ref(types.KindQuiz)})

	require.NoError(t, err)
	assert.Equal(t, types.QuizPayload{Questions: []types.QuizQuestion{{
		Question:    "Qu'est-ce qui attire la mer ?",
		Options:     []string{"La lune", "Le vent"},
		AnswerIndex: 0,
		Explanation: "La gravite.",
	}}}, p)
}

func TestResolve(t *testing.T) {
	character := "char-1"

	tests := []struct {
		name        string
		sub         *types.Submission
		params      queue.GenerationParams
		setup       func(f *fixture)
		wantVoice   string
		wantAvatar  string
		wantLang    string
		wantErrText string
	}{
		{
			name:       "defaults",
			sub:        &types.Submission{ArticleID: articleID, Language: "en"},
			wantVoice:  "narrator",
			wantAvatar: "avatar-default",
			wantLang:   "en",
		},
		{
			name:   "submission character supplies avatar and voice",
			sub:    &types.Submission{ArticleID: articleID, Language: "en", CharacterID: &character},
			params: queue.GenerationParams{Language: "de"},
			setup: func(f *fixture) {
				f.storage.EXPECT().GetCharacter(gomock.Any(), character).Return(&types.Character{AvatarID: "avatar-7", VoiceID: "voice-1"}, nil)
				f.storage.EXPECT().GetVoice(gomock.Any(), "voice-1").Return(&types.Voice{VendorVoiceID: "eleven-1"}, nil)
			},
			wantVoice:  "eleven-1",
			wantAvatar: "avatar-7",
			wantLang:   "de",
		},
		{
			name:   "explicit voice wins over the character voice",
			sub:    &types.Submission{ArticleID: articleID, Language: "en", CharacterID: &character},
			params: queue.GenerationParams{VoiceID: "voice-2"},
			setup: func(f *fixture) {
				f.storage.EXPECT().GetCharacter(gomock.Any(), character).Return(&types.Character{AvatarID: "avatar-7", VoiceID: "voice-1"}, nil)
				f.storage.EXPECT().GetVoice(gomock.Any(), "voice-2").Return(&types.Voice{VendorVoiceID: "eleven-2"}, nil)
			},
			wantVoice:  "eleven-2",
			wantAvatar: "avatar-7",
			wantLang:   "en",
		},
		{
			name:   "deleted voice falls back to the narrator",
			sub:    &types.Submission{ArticleID: articleID, Language: "en"},
			params: queue.GenerationParams{VoiceID: "voice-gone"},
			setup: func(f *fixture) {
				f.storage.EXPECT().GetVoice(gomock.Any(), "voice-gone").Return(nil, storage.ErrNotFound)
			},
			wantVoice:  "narrator",
			wantAvatar: "avatar-default",
			wantLang:   "en",
		},
		{
			name:   "storage failure",
			sub:    &types.Submission{ArticleID: articleID, Language: "en"},
			params: queue.GenerationParams{VoiceID: "voice-1"},
			setup: func(f *fixture) {
				f.storage.EXPECT().GetVoice(gomock.Any(), "voice-1").Return(nil, errors.New("connection reset"))
			},
			wantErrText: "failed to load voice voice-1",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newFixture(t)
			f.storage.EXPECT().GetSubmission(gomock.Any(), submissionID).Return(test.sub, nil)
			f.storage.EXPECT().GetArticle(gomock.Any(), articleID).Return(&types.Article{ID: articleID, Language: "en"}, nil)
			if test.setup != nil {
				test.setup(f)
			}

			in, err := f.pipelines.resolve(
				context.Background(), processingOutput(types.KindVideo),
				queue.VideoJob{OutputRef: ref(types.KindVideo), GenerationParams: test.params},
			)

			if test.wantErrText != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), test.wantErrText)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.wantVoice, in.voice)
			assert.Equal(t, test.wantAvatar, in.avatarID)
			assert.Equal(t, test.wantLang, in.language)
		})
	}
}
