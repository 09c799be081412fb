// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/canonical/content-service/internal/types"
	"github.com/canonical/content-service/internal/vendors/avatar"
	"github.com/canonical/content-service/internal/vendors/mediaproc"
)

func (p *Pipelines) translate(ctx context.Context, in *inputs, texts []string) ([]string, error) {
	return p.vendors.Translator.TranslateAll(ctx, texts, in.article.Language, in.language)
}

// audio: script, translate, synthesize.
func (p *Pipelines) audio(ctx context.Context, r *run, in *inputs) (types.OutputPayload, error) {
	script, err := stage(ctx, r, "script", func(ctx context.Context) (string, error) {
		text, err := p.vendors.Text.Generate(ctx, articlePrompt(narrationSystem, in.article, in.customPrompt))
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(text) == "" {
			return "", badScript("narration is empty")
		}
		return strings.TrimSpace(text), nil
	})
	if err != nil {
		return nil, err
	}

	text, err := stage(ctx, r, "translate", func(ctx context.Context) (string, error) {
		out, err := p.translate(ctx, in, []string{script})
		if err != nil {
			return "", err
		}
		return out[0], nil
	})
	if err != nil {
		return nil, err
	}

	audio, err := stage(ctx, r, "synthesize", func(ctx context.Context) (uploaded, error) {
		return p.speak(ctx, in, in.voice, text, "narration.mp3")
	})
	if err != nil {
		return nil, err
	}

	return types.AudioPayload{
		AudioFileURL:    audio.URL,
		DurationSeconds: audio.DurationSeconds,
		Transcript:      text,
	}, nil
}

type podcastResult struct {
	uploaded

	Segments []types.PodcastSegment `json:"segments"`
}

// podcast: dialogue script, translate, synthesize per line, concat, upload.
func (p *Pipelines) podcast(ctx context.Context, r *run, in *inputs) (types.OutputPayload, error) {
	script, err := stage(ctx, r, "script", func(ctx context.Context) (dialogueScript, error) {
		var s dialogueScript
		if err := p.vendors.Text.GenerateJSON(ctx, articlePrompt(dialogueSystem, in.article, in.customPrompt), &s); err != nil {
			return s, err
		}
		return s, s.validate()
	})
	if err != nil {
		return nil, err
	}

	lines, err := stage(ctx, r, "translate", func(ctx context.Context) ([]dialogueLine, error) {
		texts := make([]string, len(script.Lines))
		for i, l := range script.Lines {
			texts[i] = l.Text
		}

		translated, err := p.translate(ctx, in, texts)
		if err != nil {
			return nil, err
		}

		out := make([]dialogueLine, len(script.Lines))
		for i, l := range script.Lines {
			out[i] = dialogueLine{Speaker: l.Speaker, Text: translated[i]}
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}

	result, err := stage(ctx, r, "synthesize", func(ctx context.Context) (podcastResult, error) {
		var (
			res   podcastResult
			paths []string
			at    float64
		)

		defer func() {
			for _, path := range paths {
				os.Remove(path)
			}
		}()

		for i, l := range lines {
			audio, err := p.vendors.Speech.Synthesize(ctx, p.speakerVoice(in, l.Speaker), l.Text)
			if err != nil {
				return res, fmt.Errorf("line %d: %w", i, err)
			}

			path, err := p.vendors.Media.TempFile("podcast-line-*.mp3", audio.Data)
			if err != nil {
				return res, err
			}
			paths = append(paths, path)

			res.Segments = append(res.Segments, types.PodcastSegment{
				Speaker: l.Speaker,
				Text:    l.Text,
				Start:   at,
				End:     at + audio.DurationSeconds,
			})
			at += audio.DurationSeconds
		}

		output := p.vendors.Media.OutputPath(fmt.Sprintf("%s-podcast.mp3", in.ref.OutputID))
		if err := p.vendors.Media.ConcatAudio(ctx, paths, output); err != nil {
			return res, err
		}

		file, err := p.publishFile(ctx, in, output, "podcast.mp3", "audio/mpeg")
		if err != nil {
			return res, err
		}

		res.uploaded = file
		return res, nil
	})
	if err != nil {
		return nil, err
	}

	var transcript strings.Builder
	for _, s := range result.Segments {
		fmt.Fprintf(&transcript, "%s: %s\n", s.Speaker, s.Text)
	}

	return types.PodcastPayload{
		AudioFileURL:    result.URL,
		DurationSeconds: result.DurationSeconds,
		Transcript:      strings.TrimSpace(transcript.String()),
		Segments:        result.Segments,
	}, nil
}

// interactivePodcast: segments and checkpoint questions, translate, synthesize and upload each segment.
func (p *Pipelines) interactivePodcast(ctx context.Context, r *run, in *inputs, questions int) (types.OutputPayload, error) {
	if questions <= 0 {
		questions = defaultCheckpointQuestions
	}

	script, err := stage(ctx, r, "script", func(ctx context.Context) (interactiveScript, error) {
		var s interactiveScript
		prompt := articlePrompt(fmt.Sprintf(interactiveSystem, questions), in.article, in.customPrompt)
		if err := p.vendors.Text.GenerateJSON(ctx, prompt, &s); err != nil {
			return s, err
		}
		return s, s.validate()
	})
	if err != nil {
		return nil, err
	}

	translated, err := stage(ctx, r, "translate", func(ctx context.Context) (interactiveScript, error) {
		qs := make([]types.QuizQuestion, len(script.Questions))
		for i, q := range script.Questions {
			qs[i] = q.Question
		}

		texts := make([]string, 0, len(script.Segments))
		for _, s := range script.Segments {
			texts = append(texts, s.Text)
		}
		texts = append(texts, questionTexts(qs)...)

		out, err := p.translate(ctx, in, texts)
		if err != nil {
			return interactiveScript{}, err
		}

		res := interactiveScript{Segments: make([]dialogueLine, len(script.Segments))}
		for i, s := range script.Segments {
			res.Segments[i] = dialogueLine{Speaker: s.Speaker, Text: out[i]}
		}
		for i, q := range rebuildQuestions(qs, out[len(script.Segments):]) {
			res.Questions = append(res.Questions, types.CheckpointQuestion{AfterSegment: script.Questions[i].AfterSegment, Question: q})
		}
		return res, nil
	})
	if err != nil {
		return nil, err
	}

	segments, err := stage(ctx, r, "synthesize", func(ctx context.Context) ([]types.InteractiveSegment, error) {
		out := make([]types.InteractiveSegment, 0, len(translated.Segments))
		for i, s := range translated.Segments {
			audio, err := p.speak(ctx, in, p.speakerVoice(in, s.Speaker), s.Text, fmt.Sprintf("segment-%02d.mp3", i))
			if err != nil {
				return nil, fmt.Errorf("segment %d: %w", i, err)
			}

			out = append(out, types.InteractiveSegment{
				Speaker:         s.Speaker,
				Text:            s.Text,
				AudioURL:        audio.URL,
				DurationSeconds: audio.DurationSeconds,
			})
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}

	if translated.Questions == nil {
		translated.Questions = []types.CheckpointQuestion{}
	}

	return types.InteractivePodcastPayload{Segments: segments, Questions: translated.Questions}, nil
}

// video: script and bubbles, translate, synthesize, avatar render, caption burn, post-process, upload.
func (p *Pipelines) video(ctx context.Context, r *run, in *inputs) (types.OutputPayload, error) {
	script, err := stage(ctx, r, "script", func(ctx context.Context) (videoScript, error) {
		var s videoScript
		prompt := articlePrompt(fmt.Sprintf(videoSystem, defaultVideoBubbles), in.article, in.customPrompt)
		if err := p.vendors.Text.GenerateJSON(ctx, prompt, &s); err != nil {
			return s, err
		}
		return s, s.validate()
	})
	if err != nil {
		return nil, err
	}

	translated, err := stage(ctx, r, "translate", func(ctx context.Context) (videoScript, error) {
		qs := make([]types.QuizQuestion, len(script.Bubbles))
		for i, b := range script.Bubbles {
			qs[i] = types.QuizQuestion{Question: b.Question, Options: b.Options, AnswerIndex: b.AnswerIndex}
		}

		out, err := p.translate(ctx, in, append([]string{script.Script}, questionTexts(qs)...))
		if err != nil {
			return videoScript{}, err
		}

		res := videoScript{Script: out[0]}
		for _, q := range rebuildQuestions(qs, out[1:]) {
			res.Bubbles = append(res.Bubbles, videoBubble{Question: q.Question, Options: q.Options, AnswerIndex: q.AnswerIndex})
		}
		return res, nil
	})
	if err != nil {
		return nil, err
	}

	narration, err := stage(ctx, r, "synthesize", func(ctx context.Context) (uploaded, error) {
		return p.speak(ctx, in, in.voice, translated.Script, "video-voice.mp3")
	})
	if err != nil {
		return nil, err
	}

	renderID, err := stage(ctx, r, "render_submit", func(ctx context.Context) (string, error) {
		return p.vendors.Avatar.Submit(ctx, avatar.RenderRequest{
			AvatarID: in.avatarID,
			AudioURL: narration.URL,
			Width:    videoWidth,
			Height:   videoHeight,
		})
	})
	if err != nil {
		return nil, err
	}

	render, err := stage(ctx, r, "render", func(ctx context.Context) (avatar.PollResult, error) {
		res, err := p.vendors.Avatar.Wait(ctx, renderID, p.cfg.AvatarPollInterval)
		if err != nil {
			return avatar.PollResult{}, err
		}
		return *res, nil
	})
	if err != nil {
		return nil, err
	}

	captioned, err := stage(ctx, r, "captions", func(ctx context.Context) (string, error) {
		return p.vendors.Captions.Burn(ctx, render.VideoURL, narration.Words, in.language)
	})
	if err != nil {
		return nil, err
	}

	final, err := stage(ctx, r, "postprocess", func(ctx context.Context) (uploaded, error) {
		output := p.vendors.Media.OutputPath(fmt.Sprintf("%s-video.mp4", in.ref.OutputID))
		if err := p.vendors.Media.PostProcess(ctx, mediaproc.PostProcessRequest{VideoURL: captioned, Output: output}); err != nil {
			return uploaded{}, err
		}
		return p.publishFile(ctx, in, output, "video.mp4", "video/mp4")
	})
	if err != nil {
		return nil, err
	}

	bubbles := make([]types.QuizBubble, len(translated.Bubbles))
	for i, at := range bubbleTimes(len(translated.Bubbles), narration.DurationSeconds) {
		b := translated.Bubbles[i]
		bubbles[i] = types.QuizBubble{AtSeconds: at, Question: b.Question, Options: b.Options, AnswerIndex: b.AnswerIndex}
	}

	return types.VideoPayload{
		VideoURL:        final.URL,
		ThumbnailURL:    render.ThumbnailURL,
		DurationSeconds: final.DurationSeconds,
		Transcript:      translated.Script,
		Bubbles:         bubbles,
	}, nil
}

// quiz: questions, translate.
func (p *Pipelines) quiz(ctx context.Context, r *run, in *inputs, questions int) (types.OutputPayload, error) {
	if questions <= 0 {
		questions = defaultQuizQuestions
	}

	script, err := stage(ctx, r, "questions", func(ctx context.Context) (quizScript, error) {
		var s quizScript
		prompt := articlePrompt(fmt.Sprintf(quizSystem, questions), in.article, in.customPrompt)
		if err := p.vendors.Text.GenerateJSON(ctx, prompt, &s); err != nil {
			return s, err
		}
		return s, s.validate()
	})
	if err != nil {
		return nil, err
	}

	qs, err := stage(ctx, r, "translate", func(ctx context.Context) ([]types.QuizQuestion, error) {
		out, err := p.translate(ctx, in, questionTexts(script.Questions))
		if err != nil {
			return nil, err
		}
		return rebuildQuestions(script.Questions, out), nil
	})
	if err != nil {
		return nil, err
	}

	return types.QuizPayload{Questions: qs}, nil
}
