package studio

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"podnest/internal/domain/script"
	"podnest/internal/domain/source"
	"podnest/internal/podcast"
	"podnest/internal/podcast/builder"
	"podnest/internal/podcast/extract"
	"podnest/internal/podcast/llm"
	"podnest/internal/podcast/synth"
)

const testRate = 24000

var testVoices = synth.VoiceMap{
	script.Speaker1: "af_heart",
	script.Speaker2: "am_liam",
}

// newTestStudio wires the mock collaborators directly, skipping the
// credential resolution New performs.
func newTestStudio(t *testing.T) *Studio {
	t.Helper()
	engine := synth.NewMockEngine(testRate)
	s := &Studio{
		store:       source.NewStore(extract.NewMockExtractor()),
		builder:     builder.New(llm.NewMockGenerator()),
		synth:       synth.New(engine, testRate, 0.2),
		engine:      engine,
		caps:        Capabilities{Extraction: true, Generation: true, Synthesis: true},
		sessionPath: filepath.Join(t.TempDir(), "session.json"),
	}
	return s
}

func TestGenerateFullPipeline(t *testing.T) {
	s := newTestStudio(t)
	outDir := t.TempDir()

	src, err := s.AddText("Sky", "The sky is blue because of Rayleigh scattering.")
	if err != nil {
		t.Fatalf("AddText failed: %v", err)
	}

	res, err := s.Generate(context.Background(), src.ID, script.StyleConversational, 10, testVoices, outDir)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if res.Script.LineCount != 4 {
		t.Errorf("LineCount = %d, want 4", res.Script.LineCount)
	}
	if _, err := os.Stat(res.ScriptPath); err != nil {
		t.Errorf("script document missing: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(res.ScriptPath), "podcast_script_") {
		t.Errorf("script path = %q", res.ScriptPath)
	}
	if res.Asset == nil {
		t.Fatal("Asset is nil with synthesis available")
	}
	if len(res.Asset.Clips) != 4 {
		t.Errorf("clips = %d, want 4", len(res.Asset.Clips))
	}
	if _, err := os.Stat(res.Asset.CombinedPath); err != nil {
		t.Errorf("combined file missing: %v", err)
	}

	// The persisted document must parse back into the same script.
	data, err := os.ReadFile(res.ScriptPath)
	if err != nil {
		t.Fatalf("read script document: %v", err)
	}
	parsed, err := script.ParseDocument(data)
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}
	if parsed.LineCount != res.Script.LineCount {
		t.Errorf("parsed LineCount = %d, want %d", parsed.LineCount, res.Script.LineCount)
	}
}

func TestGenerateByName(t *testing.T) {
	s := newTestStudio(t)

	if _, err := s.AddText("Sky", "The sky is blue because of Rayleigh scattering."); err != nil {
		t.Fatalf("AddText failed: %v", err)
	}

	res, err := s.Generate(context.Background(), "Sky", script.StyleEducational, 5, testVoices, t.TempDir())
	if err != nil {
		t.Fatalf("Generate by name failed: %v", err)
	}
	if res.Script.Style != script.StyleEducational {
		t.Errorf("Style = %q", res.Script.Style)
	}
}

func TestGenerateUnknownSource(t *testing.T) {
	s := newTestStudio(t)

	_, err := s.Generate(context.Background(), "no-such-id", script.StyleConversational, 10, testVoices, t.TempDir())
	if !errors.Is(err, podcast.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}

func TestGenerateWithoutGenerator(t *testing.T) {
	s := newTestStudio(t)
	s.builder = nil
	s.caps.Generation = false

	_, err := s.Generate(context.Background(), "anything", script.StyleConversational, 10, testVoices, t.TempDir())
	if !errors.Is(err, podcast.ErrConfiguration) {
		t.Errorf("err = %v, want ErrConfiguration", err)
	}
	if !IsConfigurationError(err) {
		t.Error("IsConfigurationError = false")
	}
}

func TestGenerateWithoutSynthesisKeepsScript(t *testing.T) {
	s := newTestStudio(t)
	s.synth = nil
	s.engine = nil
	s.caps.Synthesis = false
	outDir := t.TempDir()

	src, err := s.AddText("Sky", "The sky is blue because of Rayleigh scattering.")
	if err != nil {
		t.Fatalf("AddText failed: %v", err)
	}

	res, err := s.Generate(context.Background(), src.ID, script.StyleConversational, 10, testVoices, outDir)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if res.Asset != nil {
		t.Error("Asset set without a TTS engine")
	}
	if res.AudioNote == "" {
		t.Error("AudioNote empty when audio was skipped")
	}
	if _, err := os.Stat(res.ScriptPath); err != nil {
		t.Errorf("script document missing: %v", err)
	}
}

func TestAddWebsiteWithoutExtraction(t *testing.T) {
	s := newTestStudio(t)
	s.caps.Extraction = false

	_, err := s.AddWebsite(context.Background(), "https://example.com")
	if !errors.Is(err, podcast.ErrConfiguration) {
		t.Errorf("err = %v, want ErrConfiguration", err)
	}
}

func TestSessionRoundTrip(t *testing.T) {
	sessionPath := filepath.Join(t.TempDir(), "session.json")

	first := newTestStudio(t)
	first.sessionPath = sessionPath
	if _, err := first.AddText("Sky", "The sky is blue because of Rayleigh scattering."); err != nil {
		t.Fatalf("AddText failed: %v", err)
	}
	if _, err := first.AddText("Sea", "The sea looks blue for much the same reason."); err != nil {
		t.Fatalf("AddText failed: %v", err)
	}

	second := newTestStudio(t)
	second.sessionPath = sessionPath
	second.loadSession()

	got := second.Sources()
	if len(got) != 2 {
		t.Fatalf("restored %d sources, want 2", len(got))
	}
	if got[0].Name != "Sky" || got[1].Name != "Sea" {
		t.Errorf("restored order = %q, %q", got[0].Name, got[1].Name)
	}

	second.RemoveSource(got[0].ID)

	third := newTestStudio(t)
	third.sessionPath = sessionPath
	third.loadSession()
	if remaining := third.Sources(); len(remaining) != 1 || remaining[0].Name != "Sea" {
		t.Errorf("after removal restored %+v", remaining)
	}
}

func TestLoadSessionCorruptFile(t *testing.T) {
	s := newTestStudio(t)
	if err := os.WriteFile(s.sessionPath, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	s.loadSession()
	if len(s.Sources()) != 0 {
		t.Errorf("corrupt session produced %d sources", len(s.Sources()))
	}
}
