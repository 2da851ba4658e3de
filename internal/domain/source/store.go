package source

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"podnest/internal/podcast"
)

// Store holds the sources of one session in insertion order. A single
// session mutates it one action at a time, so it carries no locking.
type Store struct {
	extractor Extractor
	sources   []Source
}

// NewStore creates a store. The extractor may be nil when web
// extraction is unavailable; AddWebsite then reports the feature as
// not configured.
func NewStore(extractor Extractor) *Store {
	return &Store{extractor: extractor}
}

// AddText stores pasted text under the given name.
func (s *Store) AddText(name, content string) (Source, error) {
	if strings.TrimSpace(name) == "" {
		return Source{}, fmt.Errorf("%w: source name is blank", podcast.ErrValidation)
	}
	if strings.TrimSpace(content) == "" {
		return Source{}, fmt.Errorf("%w: text content is empty", podcast.ErrValidation)
	}

	src := Source{
		ID:        uuid.NewString(),
		Name:      name,
		Origin:    OriginText,
		Text:      content,
		WordCount: len(strings.Fields(content)),
		CreatedAt: time.Now(),
	}
	s.sources = append(s.sources, src)

	logrus.WithFields(logrus.Fields{
		"name":  src.Name,
		"words": src.WordCount,
	}).Info("Added text source")
	return src, nil
}

// AddWebsite extracts the page behind rawURL and stores the result.
// The store is unchanged when extraction fails.
func (s *Store) AddWebsite(ctx context.Context, rawURL string) (Source, error) {
	if s.extractor == nil {
		return Source{}, fmt.Errorf("%w: web extraction requires an extractor", podcast.ErrConfiguration)
	}
	if !validURL(rawURL) {
		return Source{}, fmt.Errorf("%w: malformed URL %q", podcast.ErrExtraction, rawURL)
	}

	page, err := s.extractor.Extract(ctx, rawURL)
	if err != nil {
		return Source{}, fmt.Errorf("%w: %s: %v", podcast.ErrExtraction, rawURL, err)
	}
	if strings.TrimSpace(page.Text) == "" {
		return Source{}, fmt.Errorf("%w: no readable text at %s", podcast.ErrExtraction, rawURL)
	}

	name := page.Title
	if strings.TrimSpace(name) == "" {
		u, _ := url.Parse(rawURL)
		name = "Web Page - " + u.Host
	}

	src := Source{
		ID:        uuid.NewString(),
		Name:      name,
		Origin:    OriginWebsite,
		Text:      page.Text,
		WordCount: len(strings.Fields(page.Text)),
		CreatedAt: time.Now(),
	}
	s.sources = append(s.sources, src)

	logrus.WithFields(logrus.Fields{
		"url":   rawURL,
		"name":  src.Name,
		"words": src.WordCount,
	}).Info("Added website source")
	return src, nil
}

// Remove deletes the source with the given id. Removing an unknown id
// is a no-op.
func (s *Store) Remove(id string) {
	for i, src := range s.sources {
		if src.ID == id {
			s.sources = append(s.sources[:i], s.sources[i+1:]...)
			return
		}
	}
}

// List returns the sources in insertion order.
func (s *Store) List() []Source {
	out := make([]Source, len(s.sources))
	copy(out, s.sources)
	return out
}

// Find looks a source up by id, falling back to an exact name match.
func (s *Store) Find(idOrName string) (Source, bool) {
	for _, src := range s.sources {
		if src.ID == idOrName {
			return src, true
		}
	}
	for _, src := range s.sources {
		if src.Name == idOrName {
			return src, true
		}
	}
	return Source{}, false
}

// Load seeds the store with previously saved sources.
func (s *Store) Load(sources []Source) {
	s.sources = append(s.sources, sources...)
}

func validURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
