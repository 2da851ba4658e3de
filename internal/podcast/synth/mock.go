package synth

import (
	"context"
	"math"
	"strings"
)

// MockEngine produces deterministic tones instead of speech. Clip
// length follows the spoken length of the text at a conversational
// pace, so assembled assets have realistic proportions.
type MockEngine struct {
	sampleRate int
}

func NewMockEngine(sampleRate int) *MockEngine {
	return &MockEngine{sampleRate: sampleRate}
}

func (m *MockEngine) Synthesize(ctx context.Context, text, voice string) ([]int16, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	words := len(strings.Fields(text))
	if words == 0 {
		words = 1
	}
	seconds := float64(words) / 2.5 // ~150 words per minute

	// A different pitch per voice keeps the two speakers audible apart.
	freq := 220.0
	for _, r := range voice {
		freq += float64(r % 16)
	}

	n := int(seconds * float64(m.sampleRate))
	samples := make([]int16, n)
	for i := range samples {
		v := math.Sin(2 * math.Pi * freq * float64(i) / float64(m.sampleRate))
		samples[i] = int16(v * 0.2 * math.MaxInt16)
	}
	return samples, nil
}

func (m *MockEngine) Voices(ctx context.Context) ([]string, error) {
	return []string{"af_heart", "am_liam"}, nil
}
