package script

import (
	"errors"
	"testing"

	"podnest/internal/podcast"
)

func sampleTurns() []Turn {
	return []Turn{
		{Speaker: Speaker1, Text: "Welcome to the show!"},
		{Speaker: Speaker2, Text: "Great to be here."},
		{Speaker: Speaker1, Text: "Let's get into it."},
		{Speaker: Speaker2, Text: "Absolutely."},
	}
}

func TestNewSetsLineCount(t *testing.T) {
	sc := New("src-1", StyleConversational, 5, sampleTurns())
	if sc.LineCount != len(sc.Turns) {
		t.Errorf("LineCount = %d, want %d", sc.LineCount, len(sc.Turns))
	}
	if sc.ID == "" {
		t.Error("ID is empty")
	}
	for i, turn := range sc.Turns {
		if turn.Speaker != Speaker1 && turn.Speaker != Speaker2 {
			t.Errorf("turn %d has speaker %d, want 1 or 2", i, turn.Speaker)
		}
	}
}

func TestParseStyle(t *testing.T) {
	cases := []struct {
		in      string
		want    Style
		wantErr bool
	}{
		{"conversational", StyleConversational, false},
		{"Interview", StyleInterview, false},
		{" DEBATE ", StyleDebate, false},
		{"educational", StyleEducational, false},
		{"freestyle", "", true},
		{"", "", true},
	}

	for _, tc := range cases {
		got, err := ParseStyle(tc.in)
		if tc.wantErr {
			if !errors.Is(err, podcast.ErrValidation) {
				t.Errorf("ParseStyle(%q) err = %v, want ErrValidation", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseStyle(%q) failed: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseStyle(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestValidDuration(t *testing.T) {
	for _, d := range Durations {
		if !ValidDuration(d) {
			t.Errorf("ValidDuration(%d) = false, want true", d)
		}
	}
	for _, d := range []int{0, 3, 7, 30, -5} {
		if ValidDuration(d) {
			t.Errorf("ValidDuration(%d) = true, want false", d)
		}
	}
}

func TestSpeakerLines(t *testing.T) {
	sc := New("src-1", StyleConversational, 5, sampleTurns())
	s1 := sc.SpeakerLines(Speaker1)
	s2 := sc.SpeakerLines(Speaker2)
	if len(s1) != 2 || len(s2) != 2 {
		t.Fatalf("speaker line counts = %d/%d, want 2/2", len(s1), len(s2))
	}
	if s1[0] != "Welcome to the show!" {
		t.Errorf("first Speaker 1 line = %q", s1[0])
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	original := New("src-42", StyleInterview, 10, sampleTurns())

	data, err := original.MarshalDocument()
	if err != nil {
		t.Fatalf("MarshalDocument failed: %v", err)
	}

	parsed, err := ParseDocument(data)
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}

	if parsed.SourceID != original.SourceID {
		t.Errorf("SourceID = %q, want %q", parsed.SourceID, original.SourceID)
	}
	if parsed.Style != original.Style {
		t.Errorf("Style = %q, want %q", parsed.Style, original.Style)
	}
	if parsed.DurationMinutes != original.DurationMinutes {
		t.Errorf("DurationMinutes = %d, want %d", parsed.DurationMinutes, original.DurationMinutes)
	}
	if parsed.LineCount != original.LineCount {
		t.Errorf("LineCount = %d, want %d", parsed.LineCount, original.LineCount)
	}
	if len(parsed.Turns) != len(original.Turns) {
		t.Fatalf("parsed %d turns, want %d", len(parsed.Turns), len(original.Turns))
	}
	for i := range original.Turns {
		if parsed.Turns[i] != original.Turns[i] {
			t.Errorf("turn %d = %+v, want %+v", i, parsed.Turns[i], original.Turns[i])
		}
	}
}

func TestParseDocumentRejectsUnknownSpeaker(t *testing.T) {
	doc := `{"script":[{"Narrator":"Once upon a time."},{"Speaker 2":"Hello."}],"metadata":{}}`
	if _, err := ParseDocument([]byte(doc)); !errors.Is(err, podcast.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}

func TestParseDocumentRejectsLineCountMismatch(t *testing.T) {
	doc := `{"script":[{"Speaker 1":"Hi."},{"Speaker 2":"Hello."}],"metadata":{"line_count":5}}`
	if _, err := ParseDocument([]byte(doc)); !errors.Is(err, podcast.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}
