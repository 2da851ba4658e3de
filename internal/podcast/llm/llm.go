// Package llm provides the language model collaborators used by the
// script builder. A Generator performs one blocking completion; no
// retry policy is layered on top.
package llm

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"podnest/internal/config"
	"podnest/internal/podcast"
)

// Generator produces one completion for a prompt.
type Generator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type Type string

const (
	TypeMock   Type = "mock"
	TypeOpenAI Type = "openai"
	TypeOllama Type = "ollama"
	TypeAuto   Type = "auto"
)

func (t Type) String() string {
	return string(t)
}

// New creates a generator of the given type. Auto prefers OpenAI when
// a key is present, then a configured Ollama endpoint.
func New(t Type) (Generator, error) {
	if t == TypeAuto {
		switch {
		case config.HasOpenAIKey():
			t = TypeOpenAI
		case viper.GetString("llm.endpoint") != "":
			t = TypeOllama
		default:
			return nil, fmt.Errorf("%w: set OPENAI_API_KEY or configure llm.endpoint", podcast.ErrConfiguration)
		}
	}

	switch t {
	case TypeMock:
		return NewMockGenerator(), nil
	case TypeOpenAI:
		return newOpenAIGenerator()
	case TypeOllama:
		return newOllamaGenerator(viper.GetString("llm.endpoint")), nil
	default:
		return nil, fmt.Errorf("unsupported llm type: %s", t)
	}
}

// Available returns the generator types usable right now.
func Available() []Type {
	types := []Type{TypeMock}
	if config.HasOpenAIKey() {
		types = append(types, TypeOpenAI)
	}
	if viper.GetString("llm.endpoint") != "" {
		types = append(types, TypeOllama)
	}
	return types
}
