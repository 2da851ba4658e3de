package source

import (
	"context"
	"time"
)

// Origin says where a source's text came from.
type Origin string

const (
	OriginWebsite Origin = "Website"
	OriginText    Origin = "Text"
)

// Source is one unit of ingested content available for podcast
// generation. Immutable once stored.
type Source struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Origin    Origin    `json:"origin"`
	Text      string    `json:"text"`
	WordCount int       `json:"word_count"`
	CreatedAt time.Time `json:"created_at"`
}

// Page is the result of extracting a URL.
type Page struct {
	Title string
	Text  string
}

// Extractor turns a URL into readable page text. Implementations live
// in internal/podcast/extract.
type Extractor interface {
	Extract(ctx context.Context, url string) (Page, error)
}
