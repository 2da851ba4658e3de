package extract

import (
	"context"
	"fmt"
	"net/url"

	"podnest/internal/domain/source"
)

// MockExtractor is a placeholder implementation for demos and tests.
type MockExtractor struct {
	Pages map[string]source.Page
	Err   error
}

func NewMockExtractor() *MockExtractor {
	return &MockExtractor{Pages: map[string]source.Page{}}
}

func (m *MockExtractor) Extract(ctx context.Context, rawURL string) (source.Page, error) {
	if m.Err != nil {
		return source.Page{}, m.Err
	}
	if page, ok := m.Pages[rawURL]; ok {
		return page, nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return source.Page{}, err
	}
	return source.Page{
		Title: "Mock Page - " + u.Host,
		Text:  fmt.Sprintf("Mock article text extracted from %s.", rawURL),
	}, nil
}
