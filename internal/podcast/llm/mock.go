package llm

import "context"

// mockTranscript is a fixed alternating dialogue in the response shape
// the builder asks the model for.
const mockTranscript = `{
  "script": [
    {"Speaker 1": "Welcome everyone to our podcast! Today we are looking at a fascinating topic."},
    {"Speaker 2": "Thanks for having me! There is a lot to unpack here, so let's dive right in."},
    {"Speaker 1": "Absolutely. The first thing that stood out to me was the core idea of the piece."},
    {"Speaker 2": "Right, and once you see that, the rest of the argument falls into place nicely."}
  ]
}`

// StaticGenerator returns a canned response regardless of the prompt.
type StaticGenerator struct {
	Response string
	Err      error
}

func (g *StaticGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	if g.Err != nil {
		return "", g.Err
	}
	return g.Response, nil
}

// NewMockGenerator returns a generator producing a fixed four-line
// alternating transcript.
func NewMockGenerator() Generator {
	return &StaticGenerator{Response: mockTranscript}
}
