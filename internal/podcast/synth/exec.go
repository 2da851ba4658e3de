package synth

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os/exec"
	"sync"

	"github.com/mattn/go-shellwords"
)

// execEngine shells out to a local synthesis command (a Kokoro wrapper,
// say). The request goes to stdin as JSON and the command answers with
// raw 16-bit little-endian mono PCM on stdout.
type execEngine struct {
	cmd        []string
	sampleRate int
	mu         sync.Mutex
}

type execRequest struct {
	Text       string `json:"text"`
	Voice      string `json:"voice"`
	SampleRate int    `json:"sample_rate"`
}

func newExecEngine(command string, sampleRate int) (*execEngine, error) {
	parser := shellwords.NewParser()
	args, err := parser.Parse(command)
	if err != nil {
		return nil, fmt.Errorf("parse tts command: %w", err)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("tts command empty")
	}
	return &execEngine{cmd: args, sampleRate: sampleRate}, nil
}

func (e *execEngine) Synthesize(ctx context.Context, text, voice string) ([]int16, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	payload, err := json.Marshal(execRequest{Text: text, Voice: voice, SampleRate: e.sampleRate})
	if err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, e.cmd[0], e.cmd[1:]...)
	cmd.Stdin = bytes.NewReader(payload)

	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("tts command: %s", bytes.TrimSpace(exitErr.Stderr))
		}
		return nil, fmt.Errorf("tts command: %w", err)
	}
	if len(out)%2 != 0 {
		return nil, fmt.Errorf("tts command produced %d bytes, not 16-bit aligned", len(out))
	}

	samples := make([]int16, len(out)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(out[i*2:]))
	}
	return samples, nil
}
