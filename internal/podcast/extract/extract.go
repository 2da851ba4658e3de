// Package extract provides the web extraction collaborators. Engines
// are selected by type, with "auto" preferring the Firecrawl API when
// a credential is present and falling back to local readability
// extraction otherwise.
package extract

import (
	"fmt"

	"podnest/internal/config"
	"podnest/internal/domain/source"
)

type Type string

const (
	TypeMock        Type = "mock"
	TypeFirecrawl   Type = "firecrawl"
	TypeReadability Type = "readability"
	TypeAuto        Type = "auto"
)

func (t Type) String() string {
	return string(t)
}

// New creates an extractor of the given type.
func New(t Type) (source.Extractor, error) {
	if t == TypeAuto {
		if config.HasFirecrawlKey() {
			t = TypeFirecrawl
		} else {
			t = TypeReadability
		}
	}

	switch t {
	case TypeMock:
		return NewMockExtractor(), nil
	case TypeFirecrawl:
		return newFirecrawlExtractor()
	case TypeReadability:
		return newReadabilityExtractor(), nil
	default:
		return nil, fmt.Errorf("unsupported extractor type: %s", t)
	}
}

// Available returns the extractor types usable right now.
func Available() []Type {
	types := []Type{TypeMock, TypeReadability}
	if config.HasFirecrawlKey() {
		types = append(types, TypeFirecrawl)
	}
	return types
}
