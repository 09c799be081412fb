// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package pipeline

import (
	"fmt"
	"strings"

	"github.com/canonical/content-service/internal/types"
	"github.com/canonical/content-service/internal/vendors"
	"github.com/canonical/content-service/internal/vendors/textgen"
)

const scriptVendor = "textgen"

const (
	narrationSystem = `You write narration scripts for educational audio.
Turn the article into a clear spoken narration of two to four minutes.
Write plain prose only: no headings, no lists, no stage directions.`

	dialogueSystem = `You write two-person educational podcast dialogues.
The host guides the conversation and the guest explains the article.
Answer with JSON: {"lines":[{"speaker":"host"|"guest","text":"..."}]}.`

	interactiveSystem = `You write interactive educational podcasts.
Split the article into short spoken segments between a host and a guest and
write %d multiple choice checkpoint questions, each asked after a segment.
Answer with JSON: {"segments":[{"speaker":"host"|"guest","text":"..."}],
"questions":[{"after_segment":0,"question":{"question":"...","options":["..."],"answer_index":0,"explanation":"..."}}]}.`

	videoSystem = `You write scripts for vertical short-form educational videos presented by one speaker.
Keep the script under 150 words and add %d quiz bubbles shown while the video plays.
Answer with JSON: {"script":"...","bubbles":[{"question":"...","options":["..."],"answer_index":0}]}.`

	quizSystem = `You write multiple choice quizzes that check understanding of an article.
Write %d questions with three or four options each and one correct answer.
Answer with JSON: {"questions":[{"question":"...","options":["..."],"answer_index":0,"explanation":"..."}]}.`
)

func articlePrompt(system string, a *types.Article, customPrompt string) textgen.Prompt {
	var b strings.Builder

	fmt.Fprintf(&b, "Title: %s\n\n%s", a.Title, a.Content)
	if customPrompt = strings.TrimSpace(customPrompt); customPrompt != "" {
		fmt.Fprintf(&b, "\n\nAdditional instructions: %s", customPrompt)
	}

	return textgen.Prompt{System: system, User: b.String()}
}

type dialogueLine struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

type dialogueScript struct {
	Lines []dialogueLine `json:"lines"`
}

type interactiveScript struct {
	Segments  []dialogueLine             `json:"segments"`
	Questions []types.CheckpointQuestion `json:"questions"`
}

type videoBubble struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answer_index"`
}

type videoScript struct {
	Script  string        `json:"script"`
	Bubbles []videoBubble `json:"bubbles"`
}

type quizScript struct {
	Questions []types.QuizQuestion `json:"questions"`
}

func badScript(format string, args ...any) error {
	return vendors.NewError(scriptVendor, vendors.CodeBadResponse, fmt.Sprintf(format, args...))
}

func validateLines(lines []dialogueLine) error {
	if len(lines) == 0 {
		return badScript("script has no lines")
	}
	for i, l := range lines {
		if strings.TrimSpace(l.Text) == "" {
			return badScript("line %d is empty", i)
		}
	}
	return nil
}

func validateQuestion(q types.QuizQuestion) error {
	if strings.TrimSpace(q.Question) == "" {
		return badScript("question text is empty")
	}
	if len(q.Options) < 2 {
		return badScript("question %q has %d options", q.Question, len(q.Options))
	}
	if q.AnswerIndex < 0 || q.AnswerIndex >= len(q.Options) {
		return badScript("question %q answer index %d is out of range", q.Question, q.AnswerIndex)
	}
	return nil
}

func (s dialogueScript) validate() error {
	return validateLines(s.Lines)
}

func (s interactiveScript) validate() error {
	if err := validateLines(s.Segments); err != nil {
		return err
	}
	for _, q := range s.Questions {
		if q.AfterSegment < 0 || q.AfterSegment >= len(s.Segments) {
			return badScript("checkpoint question after segment %d of %d", q.AfterSegment, len(s.Segments))
		}
		if err := validateQuestion(q.Question); err != nil {
			return err
		}
	}
	return nil
}

func (s videoScript) validate() error {
	if strings.TrimSpace(s.Script) == "" {
		return badScript("video script is empty")
	}
	for _, b := range s.Bubbles {
		if err := validateQuestion(types.QuizQuestion{Question: b.Question, Options: b.Options, AnswerIndex: b.AnswerIndex}); err != nil {
			return err
		}
	}
	return nil
}

func (s quizScript) validate() error {
	if len(s.Questions) == 0 {
		return badScript("quiz has no questions")
	}
	for _, q := range s.Questions {
		if err := validateQuestion(q); err != nil {
			return err
		}
	}
	return nil
}

// questionTexts flattens the translatable strings of questions, rebuild reverses it.
func questionTexts(qs []types.QuizQuestion) []string {
	var texts []string
	for _, q := range qs {
		texts = append(texts, q.Question, q.Explanation)
		texts = append(texts, q.Options...)
	}
	return texts
}

func rebuildQuestions(qs []types.QuizQuestion, texts []string) []types.QuizQuestion {
	out := make([]types.QuizQuestion, len(qs))

	i := 0
	for n, q := range qs {
		out[n] = types.QuizQuestion{
			Question:    texts[i],
			Explanation: texts[i+1],
			Options:     append([]string(nil), texts[i+2:i+2+len(q.Options)]...),
			AnswerIndex: q.AnswerIndex,
		}
		i += 2 + len(q.Options)
	}

	return out
}

// bubbleTimes spreads n bubbles evenly over a video of the given duration.
func bubbleTimes(n int, duration float64) []float64 {
	times := make([]float64, n)
	for i := range times {
		times[i] = duration * float64(i+1) / float64(n+1)
	}
	return times
}
