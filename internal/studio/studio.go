// Package studio wires the pipeline together: Source Store → Script
// Builder → Speech Synthesizer. Each user action runs to completion
// before the next is accepted; the pipeline is strictly linear.
package studio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"podnest/internal/domain/script"
	"podnest/internal/domain/source"
	"podnest/internal/podcast"
	"podnest/internal/podcast/builder"
	"podnest/internal/podcast/extract"
	"podnest/internal/podcast/llm"
	"podnest/internal/podcast/synth"
)

// Capabilities records which optional collaborators resolved at
// startup. Unavailable features report as such instead of failing deep
// inside a request.
type Capabilities struct {
	Extraction bool
	Generation bool
	Synthesis  bool
}

// Studio is the main application structure.
type Studio struct {
	store   *source.Store
	builder *builder.Builder
	synth   *synth.Synthesizer
	engine  synth.Engine
	caps    Capabilities

	sessionPath string
}

// New resolves the configured collaborators once and loads the saved
// session.
func New() *Studio {
	s := &Studio{
		sessionPath: filepath.Join(sessionDirectory(), "session.json"),
	}

	extractor, err := extract.New(extract.Type(viper.GetString("extract.type")))
	if err != nil {
		logrus.WithError(err).Warn("Web extraction unavailable")
	} else {
		s.caps.Extraction = true
	}
	s.store = source.NewStore(extractor)

	gen, err := llm.New(llm.Type(viper.GetString("llm.type")))
	if err != nil {
		logrus.WithError(err).Warn("Script generation unavailable")
	} else {
		s.builder = builder.New(gen)
		s.caps.Generation = true
	}

	engine, err := synth.NewEngine(synth.EngineType(viper.GetString("tts.type")))
	if err != nil {
		logrus.WithError(err).Warn("Speech synthesis unavailable")
	} else {
		s.engine = engine
		s.synth = synth.NewFromConfig(engine)
		s.caps.Synthesis = true
	}

	s.loadSession()
	return s
}

// Capabilities reports the optional feature availability resolved at
// startup.
func (s *Studio) Capabilities() Capabilities {
	return s.caps
}

// Engine exposes the active TTS engine, nil when synthesis is
// unavailable.
func (s *Studio) Engine() synth.Engine {
	return s.engine
}

// AddText stores pasted text and saves the session.
func (s *Studio) AddText(name, content string) (source.Source, error) {
	src, err := s.store.AddText(name, content)
	if err != nil {
		return source.Source{}, err
	}
	s.saveSession()
	return src, nil
}

// AddWebsite extracts a URL into a source and saves the session.
func (s *Studio) AddWebsite(ctx context.Context, url string) (source.Source, error) {
	if !s.caps.Extraction {
		return source.Source{}, fmt.Errorf("%w: web extraction is unavailable", podcast.ErrConfiguration)
	}
	src, err := s.store.AddWebsite(ctx, url)
	if err != nil {
		return source.Source{}, err
	}
	s.saveSession()
	return src, nil
}

// Sources lists the session's sources in insertion order.
func (s *Studio) Sources() []source.Source {
	return s.store.List()
}

// RemoveSource deletes a source by id. Unknown ids are a no-op.
func (s *Studio) RemoveSource(id string) {
	s.store.Remove(id)
	s.saveSession()
}

// Result is the outcome of one generation request.
type Result struct {
	Script     script.Script
	ScriptPath string
	Asset      *synth.Asset // nil when synthesis was unavailable
	AudioNote  string       // set when audio was skipped
}

// Generate runs the full pipeline for one source: build the script,
// persist the script document, then synthesize audio when a TTS engine
// is available. A synthesis failure aborts the asset but the script
// document survives.
func (s *Studio) Generate(ctx context.Context, sourceID string, style script.Style, minutes int, voices synth.VoiceMap, outDir string) (Result, error) {
	if !s.caps.Generation {
		return Result{}, fmt.Errorf("%w: script generation requires a language model credential", podcast.ErrConfiguration)
	}

	src, ok := s.store.Find(sourceID)
	if !ok {
		return Result{}, fmt.Errorf("%w: source %q not found", podcast.ErrValidation, sourceID)
	}

	sc, err := s.builder.Generate(ctx, src, style, minutes)
	if err != nil {
		return Result{}, err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return Result{}, fmt.Errorf("%w: create output dir: %v", podcast.ErrGeneration, err)
	}

	doc, err := sc.MarshalDocument()
	if err != nil {
		return Result{}, fmt.Errorf("%w: marshal script document: %v", podcast.ErrGeneration, err)
	}
	scriptPath := filepath.Join(outDir, fmt.Sprintf("podcast_script_%d.json", time.Now().Unix()))
	if err := os.WriteFile(scriptPath, doc, 0644); err != nil {
		return Result{}, fmt.Errorf("%w: write script document: %v", podcast.ErrGeneration, err)
	}

	res := Result{Script: sc, ScriptPath: scriptPath}

	if !s.caps.Synthesis {
		res.AudioNote = "audio generation not available - no TTS engine configured"
		return res, nil
	}

	asset, err := s.synth.Synthesize(ctx, sc, voices, outDir)
	if err != nil {
		return Result{}, err
	}
	res.Asset = &asset
	return res, nil
}

// Play blocks while the given WAV file plays on the default device.
func (s *Studio) Play(path string) error {
	return synth.Play(path)
}

// IsConfigurationError reports whether err is a missing-feature error,
// so the CLI can hint at setup instead of printing a failure.
func IsConfigurationError(err error) bool {
	return errors.Is(err, podcast.ErrConfiguration)
}
