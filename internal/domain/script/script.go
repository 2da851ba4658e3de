package script

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"podnest/internal/podcast"
)

// Speaker identifies one of the two fixed podcast voices.
type Speaker int

const (
	Speaker1 Speaker = 1
	Speaker2 Speaker = 2
)

// Label returns the speaker name used in prompts and script documents.
func (s Speaker) Label() string {
	return fmt.Sprintf("Speaker %d", int(s))
}

// ParseLabel maps a document speaker label back to its Speaker.
func ParseLabel(label string) (Speaker, bool) {
	switch strings.TrimSpace(label) {
	case "Speaker 1":
		return Speaker1, true
	case "Speaker 2":
		return Speaker2, true
	}
	return 0, false
}

// Style selects the conversational pattern of a generated script.
type Style string

const (
	StyleConversational Style = "conversational"
	StyleInterview      Style = "interview"
	StyleDebate         Style = "debate"
	StyleEducational    Style = "educational"
)

// Styles lists the recognized styles in presentation order.
func Styles() []Style {
	return []Style{StyleConversational, StyleInterview, StyleDebate, StyleEducational}
}

// ParseStyle normalizes user input to a known style.
func ParseStyle(s string) (Style, error) {
	switch Style(strings.ToLower(strings.TrimSpace(s))) {
	case StyleConversational:
		return StyleConversational, nil
	case StyleInterview:
		return StyleInterview, nil
	case StyleDebate:
		return StyleDebate, nil
	case StyleEducational:
		return StyleEducational, nil
	}
	return "", fmt.Errorf("%w: unknown style %q", podcast.ErrValidation, s)
}

// Durations lists the supported target lengths in minutes.
var Durations = []int{5, 10, 15, 20}

// ValidDuration reports whether minutes is a supported target length.
func ValidDuration(minutes int) bool {
	for _, d := range Durations {
		if d == minutes {
			return true
		}
	}
	return false
}

// Turn is one line of dialogue attributed to a speaker.
type Turn struct {
	Speaker Speaker `json:"speaker"`
	Text    string  `json:"text"`
}

// Script is the ordered two-speaker dialogue produced for one
// generation request. Immutable once produced; regeneration creates a
// new Script.
type Script struct {
	ID              string `json:"id"`
	SourceID        string `json:"source_id"`
	Style           Style  `json:"style"`
	DurationMinutes int    `json:"duration_minutes"`
	Turns           []Turn `json:"turns"`
	LineCount       int    `json:"line_count"`
}

// New builds a Script from parsed turns. LineCount always equals the
// length of the turns sequence.
func New(sourceID string, style Style, durationMinutes int, turns []Turn) Script {
	return Script{
		ID:              uuid.NewString(),
		SourceID:        sourceID,
		Style:           style,
		DurationMinutes: durationMinutes,
		Turns:           turns,
		LineCount:       len(turns),
	}
}

// SpeakerLines returns the dialogue of one speaker in turn order.
func (sc Script) SpeakerLines(sp Speaker) []string {
	var lines []string
	for _, t := range sc.Turns {
		if t.Speaker == sp {
			lines = append(lines, t.Text)
		}
	}
	return lines
}
