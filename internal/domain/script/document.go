package script

import (
	"encoding/json"
	"fmt"

	"podnest/internal/podcast"
)

// The persisted script document keeps the original artifact shape: an
// ordered array of single-key objects mapping a speaker label to their
// line, plus a metadata block.
type document struct {
	Script   []map[string]string `json:"script"`
	Metadata metadata            `json:"metadata"`
}

type metadata struct {
	SourceID        string `json:"source_id"`
	Style           Style  `json:"style"`
	DurationMinutes int    `json:"duration_minutes"`
	LineCount       int    `json:"line_count"`
}

// MarshalDocument serializes the script to its persisted JSON form.
func (sc Script) MarshalDocument() ([]byte, error) {
	doc := document{
		Script: make([]map[string]string, 0, len(sc.Turns)),
		Metadata: metadata{
			SourceID:        sc.SourceID,
			Style:           sc.Style,
			DurationMinutes: sc.DurationMinutes,
			LineCount:       sc.LineCount,
		},
	}
	for _, t := range sc.Turns {
		doc.Script = append(doc.Script, map[string]string{t.Speaker.Label(): t.Text})
	}
	return json.MarshalIndent(doc, "", "  ")
}

// ParseDocument reads a persisted script document back into a Script.
// The document is our own artifact, so unknown speaker labels are an
// error rather than a recoverable condition.
func ParseDocument(data []byte) (Script, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Script{}, fmt.Errorf("%w: parse script document: %v", podcast.ErrValidation, err)
	}

	turns := make([]Turn, 0, len(doc.Script))
	for i, line := range doc.Script {
		if len(line) != 1 {
			return Script{}, fmt.Errorf("%w: script line %d has %d entries, want 1", podcast.ErrValidation, i, len(line))
		}
		for label, text := range line {
			sp, ok := ParseLabel(label)
			if !ok {
				return Script{}, fmt.Errorf("%w: unknown speaker label %q at line %d", podcast.ErrValidation, label, i)
			}
			turns = append(turns, Turn{Speaker: sp, Text: text})
		}
	}

	sc := New(doc.Metadata.SourceID, doc.Metadata.Style, doc.Metadata.DurationMinutes, turns)
	if doc.Metadata.LineCount != 0 && doc.Metadata.LineCount != sc.LineCount {
		return Script{}, fmt.Errorf("%w: metadata line_count %d does not match %d turns",
			podcast.ErrValidation, doc.Metadata.LineCount, sc.LineCount)
	}
	return sc, nil
}
