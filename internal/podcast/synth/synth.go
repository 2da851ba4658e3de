// Package synth converts a script into audio: one clip per turn plus a
// combined file with fixed inter-turn silence, all 16-bit mono PCM.
package synth

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"podnest/internal/domain/script"
	"podnest/internal/podcast"
)

// VoiceMap binds each speaker to a voice identifier.
type VoiceMap map[script.Speaker]string

// DefaultVoices reads the configured voice-per-speaker mapping.
func DefaultVoices() VoiceMap {
	return VoiceMap{
		script.Speaker1: viper.GetString("tts.voice.speaker1"),
		script.Speaker2: viper.GetString("tts.voice.speaker2"),
	}
}

// Engine produces raw PCM samples for one line of dialogue.
type Engine interface {
	Synthesize(ctx context.Context, text, voice string) ([]int16, error)
}

// Clip is the audio for one dialogue turn, tied to it by position.
type Clip struct {
	Index   int
	Speaker script.Speaker
	Samples []int16
	Path    string
}

// Duration is the clip length in seconds at the given sample rate.
func (c Clip) Duration(sampleRate int) float64 {
	return float64(len(c.Samples)) / float64(sampleRate)
}

// Asset is the terminal audio artifact for a script.
type Asset struct {
	ScriptID     string
	Clips        []Clip
	Combined     []int16
	CombinedPath string
	SampleRate   int
	PauseSeconds float64
}

// Duration is the combined length in seconds.
func (a Asset) Duration() float64 {
	return float64(len(a.Combined)) / float64(a.SampleRate)
}

// Synthesizer drives an engine over every turn of a script.
type Synthesizer struct {
	engine       Engine
	sampleRate   int
	pauseSeconds float64
}

// New creates a synthesizer with explicit audio parameters.
func New(engine Engine, sampleRate int, pauseSeconds float64) *Synthesizer {
	return &Synthesizer{engine: engine, sampleRate: sampleRate, pauseSeconds: pauseSeconds}
}

// NewFromConfig creates a synthesizer with the configured sample rate
// and pause duration.
func NewFromConfig(engine Engine) *Synthesizer {
	return New(engine, viper.GetInt("tts.sample_rate"), viper.GetFloat64("tts.pause_seconds"))
}

// Synthesize renders every turn in order with the voice bound to its
// speaker, writes each clip, then writes the combined podcast with a
// fixed silence gap between consecutive clips. The first failing turn
// aborts the whole asset: a partial podcast with a missing line is not
// an acceptable artifact.
func (s *Synthesizer) Synthesize(ctx context.Context, sc script.Script, voices VoiceMap, outDir string) (Asset, error) {
	if len(sc.Turns) == 0 {
		return Asset{}, fmt.Errorf("%w: script has no turns", podcast.ErrSynthesis)
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return Asset{}, fmt.Errorf("%w: create output dir: %v", podcast.ErrSynthesis, err)
	}

	asset := Asset{
		ScriptID:     sc.ID,
		SampleRate:   s.sampleRate,
		PauseSeconds: s.pauseSeconds,
	}

	for i, turn := range sc.Turns {
		voice := voices[turn.Speaker]
		samples, err := s.engine.Synthesize(ctx, cleanForSpeech(turn.Text), voice)
		if err != nil {
			return Asset{}, fmt.Errorf("%w: turn %d (%s): %v", podcast.ErrSynthesis, i+1, turn.Speaker.Label(), err)
		}

		name := fmt.Sprintf("segment_%03d_speaker_%d.wav", i+1, turn.Speaker)
		path := filepath.Join(outDir, name)
		if err := writeWAV(path, samples, s.sampleRate); err != nil {
			return Asset{}, fmt.Errorf("%w: write %s: %v", podcast.ErrSynthesis, name, err)
		}

		asset.Clips = append(asset.Clips, Clip{Index: i, Speaker: turn.Speaker, Samples: samples, Path: path})

		logrus.WithFields(logrus.Fields{
			"segment": fmt.Sprintf("%d/%d", i+1, len(sc.Turns)),
			"speaker": turn.Speaker.Label(),
			"file":    name,
		}).Info("Generated audio segment")
	}

	asset.Combined = combine(asset.Clips, s.sampleRate, s.pauseSeconds)
	asset.CombinedPath = filepath.Join(outDir, "complete_podcast.wav")
	if err := writeWAV(asset.CombinedPath, asset.Combined, s.sampleRate); err != nil {
		return Asset{}, fmt.Errorf("%w: write combined podcast: %v", podcast.ErrSynthesis, err)
	}

	logrus.WithFields(logrus.Fields{
		"file":     asset.CombinedPath,
		"duration": fmt.Sprintf("%.1fs", asset.Duration()),
	}).Info("Combined podcast saved")
	return asset, nil
}

// combine concatenates clips in turn order with pauseSeconds of silence
// between consecutive clips.
func combine(clips []Clip, sampleRate int, pauseSeconds float64) []int16 {
	pause := make([]int16, int(pauseSeconds*float64(sampleRate)))

	var combined []int16
	for i, clip := range clips {
		combined = append(combined, clip.Samples...)
		if i < len(clips)-1 {
			combined = append(combined, pause...)
		}
	}
	return combined
}

// cleanForSpeech normalizes punctuation quirks that trip TTS engines.
func cleanForSpeech(text string) string {
	clean := strings.TrimSpace(text)
	clean = strings.ReplaceAll(clean, "...", ".")
	clean = strings.ReplaceAll(clean, "!!", "!")
	clean = strings.ReplaceAll(clean, "??", "?")
	if !strings.HasSuffix(clean, ".") && !strings.HasSuffix(clean, "!") && !strings.HasSuffix(clean, "?") {
		clean += "."
	}
	return clean
}
