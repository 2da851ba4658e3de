// Package builder turns source text plus style and duration parameters
// into a structured two-speaker script via one language model call.
package builder

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"podnest/internal/domain/script"
	"podnest/internal/domain/source"
	"podnest/internal/podcast"
	"podnest/internal/podcast/llm"
)

// Builder generates scripts with a language model collaborator.
type Builder struct {
	gen llm.Generator
}

func New(gen llm.Generator) *Builder {
	return &Builder{gen: gen}
}

// Generate performs a single, synchronous generation attempt. Failures
// are surfaced, not retried.
func (b *Builder) Generate(ctx context.Context, src source.Source, style script.Style, minutes int) (script.Script, error) {
	if _, err := script.ParseStyle(string(style)); err != nil {
		return script.Script{}, err
	}
	if !script.ValidDuration(minutes) {
		return script.Script{}, fmt.Errorf("%w: duration %d minutes not in %v", podcast.ErrValidation, minutes, script.Durations)
	}

	prompt := buildPrompt(src, style, minutes)

	logrus.WithFields(logrus.Fields{
		"source":  src.Name,
		"style":   style,
		"minutes": minutes,
	}).Info("Generating podcast script")

	raw, err := b.gen.Complete(ctx, prompt)
	if err != nil {
		return script.Script{}, fmt.Errorf("%w: %v", podcast.ErrGeneration, err)
	}

	turns, err := parseTranscript(raw)
	if err != nil {
		return script.Script{}, fmt.Errorf("%w: %v", podcast.ErrGeneration, err)
	}

	sc := script.New(src.ID, style, minutes, turns)
	logrus.WithField("lines", sc.LineCount).Info("Generated podcast script")
	return sc, nil
}
