package synth

import (
	"fmt"

	"github.com/spf13/viper"

	"podnest/internal/config"
	"podnest/internal/podcast"
)

type EngineType string

const (
	EngineTypeMock   EngineType = "mock"
	EngineTypeGoogle EngineType = "google"
	EngineTypeExec   EngineType = "exec"
	EngineTypeAuto   EngineType = "auto"
)

func (e EngineType) String() string {
	return string(e)
}

// NewEngine creates a TTS engine of the given type. Auto prefers Google
// Cloud TTS when credentials are present, then a configured local
// synthesis command. With neither, synthesis is unavailable and the
// pipeline degrades to script-only output.
func NewEngine(t EngineType) (Engine, error) {
	sampleRate := viper.GetInt("tts.sample_rate")

	if t == EngineTypeAuto {
		switch {
		case config.HasGoogleCredentials():
			t = EngineTypeGoogle
		case viper.GetString("tts.command") != "":
			t = EngineTypeExec
		default:
			return nil, fmt.Errorf("%w: no tts engine available (set GOOGLE_APPLICATION_CREDENTIALS or tts.command)", podcast.ErrConfiguration)
		}
	}

	switch t {
	case EngineTypeMock:
		return NewMockEngine(sampleRate), nil
	case EngineTypeGoogle:
		return newGoogleEngine(sampleRate)
	case EngineTypeExec:
		return newExecEngine(viper.GetString("tts.command"), sampleRate)
	default:
		return nil, fmt.Errorf("unsupported TTS engine type: %s", t)
	}
}

// AvailableEngines returns the engine types usable right now.
func AvailableEngines() []EngineType {
	engines := []EngineType{EngineTypeMock}
	if config.HasGoogleCredentials() {
		engines = append(engines, EngineTypeGoogle)
	}
	if viper.GetString("tts.command") != "" {
		engines = append(engines, EngineTypeExec)
	}
	return engines
}
