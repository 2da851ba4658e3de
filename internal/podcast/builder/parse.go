package builder

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"podnest/internal/domain/script"
)

// Model responses are parsed with a strict grammar: a line belongs to
// Speaker 1 or Speaker 2, or it is a recoverable stray that gets merged
// into the prior turn. Speakers are never fabricated. The primary form
// is the JSON document the prompt asks for; a plain "Speaker N: text"
// transcript is accepted as a fallback.

type transcriptDoc struct {
	Script []map[string]string `json:"script"`
}

var linePattern = regexp.MustCompile(`^\s*\**\s*Speaker\s*([12])\s*\**\s*[:\-]\s*(.+)$`)

func parseTranscript(raw string) ([]script.Turn, error) {
	cleaned := stripCodeFences(strings.TrimSpace(raw))

	var doc transcriptDoc
	if err := json.Unmarshal([]byte(cleaned), &doc); err == nil && len(doc.Script) > 0 {
		return cleanTurns(doc.Script)
	}

	return parseLines(cleaned)
}

// cleanTurns validates the JSON form. Keys that are not an exact
// speaker label are normalized when they clearly reference speaker one
// or two; anything else is merged into the previous turn.
func cleanTurns(lines []map[string]string) ([]script.Turn, error) {
	var turns []script.Turn
	for _, line := range lines {
		if len(line) != 1 {
			continue
		}
		for label, dialogue := range line {
			dialogue = strings.TrimSpace(dialogue)
			if dialogue == "" {
				continue
			}
			sp, ok := normalizeSpeaker(label)
			if !ok {
				turns = mergeStray(turns, dialogue)
				continue
			}
			turns = append(turns, script.Turn{Speaker: sp, Text: ensureSentenceEnd(dialogue)})
		}
	}
	return requireMinimum(turns)
}

// parseLines is the fallback grammar for free-text transcripts.
func parseLines(raw string) ([]script.Turn, error) {
	var turns []script.Turn
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := linePattern.FindStringSubmatch(line)
		if m == nil {
			turns = mergeStray(turns, line)
			continue
		}
		sp := script.Speaker1
		if m[1] == "2" {
			sp = script.Speaker2
		}
		text := strings.TrimSpace(m[2])
		if text == "" {
			continue
		}
		turns = append(turns, script.Turn{Speaker: sp, Text: ensureSentenceEnd(text)})
	}
	return requireMinimum(turns)
}

func requireMinimum(turns []script.Turn) ([]script.Turn, error) {
	if len(turns) < 2 {
		return nil, fmt.Errorf("transcript yielded %d parsable turns, need at least 2", len(turns))
	}
	return turns, nil
}

// mergeStray appends an unattributable line to the prior turn. A stray
// before any attributed turn is dropped.
func mergeStray(turns []script.Turn, text string) []script.Turn {
	if len(turns) == 0 {
		return turns
	}
	last := &turns[len(turns)-1]
	last.Text = last.Text + " " + ensureSentenceEnd(text)
	return turns
}

func normalizeSpeaker(label string) (script.Speaker, bool) {
	if sp, ok := script.ParseLabel(label); ok {
		return sp, true
	}
	lower := strings.ToLower(strings.TrimSpace(label))
	if !strings.Contains(lower, "speaker") && !strings.Contains(lower, "host") {
		return 0, false
	}
	switch {
	case strings.Contains(lower, "1") || strings.Contains(lower, "one"):
		return script.Speaker1, true
	case strings.Contains(lower, "2") || strings.Contains(lower, "two"):
		return script.Speaker2, true
	}
	return 0, false
}

func ensureSentenceEnd(text string) string {
	if strings.HasSuffix(text, ".") || strings.HasSuffix(text, "!") || strings.HasSuffix(text, "?") {
		return text
	}
	return text + "."
}

// stripCodeFences unwraps responses the model wrapped in a Markdown
// code block.
func stripCodeFences(raw string) string {
	if !strings.HasPrefix(raw, "```") {
		return raw
	}
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(strings.TrimSpace(raw), "```")
	return strings.TrimSpace(raw)
}
