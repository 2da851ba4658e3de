package synth

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"github.com/go-audio/wav"
	texttospeechpb "google.golang.org/genproto/googleapis/cloud/texttospeech/v1"
)

// googleEngine synthesizes speech through Google Cloud Text-to-Speech,
// requesting LINEAR16 at the pipeline sample rate.
type googleEngine struct {
	client     *texttospeech.Client
	sampleRate int
}

// Fallbacks used when the configured voice id is not a Google voice
// name (the defaults are Kokoro-style ids like "af_heart").
const (
	googleFemaleVoice = "en-GB-Chirp3-HD-Umbriel"
	googleMaleVoice   = "en-US-Chirp3-HD-Charon"
)

func newGoogleEngine(sampleRate int) (*googleEngine, error) {
	client, err := texttospeech.NewClient(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to create TTS client: %w", err)
	}
	return &googleEngine{client: client, sampleRate: sampleRate}, nil
}

func (g *googleEngine) Synthesize(ctx context.Context, text, voice string) ([]int16, error) {
	name := g.voiceName(voice)

	req := &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: languageCode(name),
			Name:         name,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding:   texttospeechpb.AudioEncoding_LINEAR16,
			SampleRateHertz: int32(g.sampleRate),
		},
	}

	resp, err := g.client.SynthesizeSpeech(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("synthesize speech: %w", err)
	}

	// LINEAR16 responses arrive in a WAV container.
	dec := wav.NewDecoder(bytes.NewReader(resp.AudioContent))
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decode LINEAR16 response: %w", err)
	}

	samples := make([]int16, len(buf.Data))
	for i, s := range buf.Data {
		samples[i] = int16(s)
	}
	return samples, nil
}

// Voices lists the voice names offered by the service.
func (g *googleEngine) Voices(ctx context.Context) ([]string, error) {
	resp, err := g.client.ListVoices(ctx, &texttospeechpb.ListVoicesRequest{})
	if err != nil {
		return nil, err
	}
	voices := make([]string, 0, len(resp.Voices))
	for _, v := range resp.Voices {
		voices = append(voices, v.Name)
	}
	return voices, nil
}

func (g *googleEngine) voiceName(voice string) string {
	if strings.Contains(voice, "-") {
		return voice
	}
	// Kokoro ids encode gender in the prefix: af_* female, am_* male.
	if strings.HasPrefix(voice, "am") {
		return googleMaleVoice
	}
	return googleFemaleVoice
}

// languageCode derives the language from a voice name like
// "en-US-Chirp3-HD-Charon".
func languageCode(voiceName string) string {
	parts := strings.SplitN(voiceName, "-", 3)
	if len(parts) >= 2 {
		return parts[0] + "-" + parts[1]
	}
	return "en-US"
}
