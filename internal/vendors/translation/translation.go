// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/tracing"
	"github.com/canonical/content-service/internal/vendors"
	"github.com/canonical/content-service/internal/vendors/textgen"
)

const vendorName = "translation"

const systemPrompt = `You are a professional translator for educational content.
Translate every string of the JSON array you receive from %s to %s.
Keep the order and the number of items. Answer with the JSON array only.`

// Normalize validates a BCP-47 tag and returns its canonical form.
func Normalize(tag string) (string, error) {
	t, err := language.Parse(strings.TrimSpace(tag))
	if err != nil {
		return "", fmt.Errorf("invalid language tag %q: %w", tag, err)
	}
	return t.String(), nil
}

// SameLanguage reports whether two tags share the same base language.
func SameLanguage(a, b string) bool {
	ta, errA := language.Parse(a)
	tb, errB := language.Parse(b)
	if errA != nil || errB != nil {
		return strings.EqualFold(a, b)
	}

	ba, _ := ta.Base()
	bb, _ := tb.Base()
	return ba == bb
}

type Translator struct {
	gen textgen.GeneratorInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// TranslateAll translates texts in one call, it returns them untouched when
// source and target share a language.
func (t *Translator) TranslateAll(ctx context.Context, texts []string, source, target string) ([]string, error) {
	ctx, span := t.tracer.Start(ctx, "translation.Translator.TranslateAll")
	defer span.End()

	if len(texts) == 0 || target == "" || SameLanguage(source, target) {
		return texts, nil
	}

	var out []string
	err := t.gen.GenerateJSON(ctx, textgen.Prompt{
		System: fmt.Sprintf(systemPrompt, languageName(source), languageName(target)),
		User:   encodeList(texts),
	}, &out)
	if err != nil {
		return nil, err
	}

	if len(out) != len(texts) {
		return nil, vendors.NewError(vendorName, vendors.CodeBadResponse, fmt.Sprintf("expected %d translations, got %d", len(texts), len(out)))
	}

	return out, nil
}

func (t *Translator) Translate(ctx context.Context, text, source, target string) (string, error) {
	out, err := t.TranslateAll(ctx, []string{text}, source, target)
	if err != nil {
		return "", err
	}
	return out[0], nil
}

func languageName(tag string) string {
	t, err := language.Parse(tag)
	if err != nil {
		return tag
	}
	return display.English.Tags().Name(t)
}

func NewTranslator(gen textgen.GeneratorInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Translator {
	t := new(Translator)

	t.gen = gen

	t.tracer = tracer
	t.monitor = monitor
	t.logger = logger

	return t
}

func encodeList(texts []string) string {
	raw, _ := json.Marshal(texts)
	return string(raw)
}
