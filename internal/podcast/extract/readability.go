package extract

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-shiori/go-readability"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"podnest/internal/domain/source"
)

// readabilityExtractor fetches a page itself and runs article
// extraction locally. Needs no credential.
type readabilityExtractor struct {
	client *http.Client
}

func newReadabilityExtractor() *readabilityExtractor {
	timeout := time.Duration(viper.GetInt("extract.timeout_seconds")) * time.Second
	return &readabilityExtractor{
		client: &http.Client{Timeout: timeout},
	}
}

func (e *readabilityExtractor) Extract(ctx context.Context, rawURL string) (source.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return source.Page{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "podnest/1.0")

	resp, err := e.client.Do(req)
	if err != nil {
		return source.Page{}, fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return source.Page{}, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, resp.Status)
	}

	pageURL, err := url.Parse(rawURL)
	if err != nil {
		return source.Page{}, fmt.Errorf("parse url: %w", err)
	}

	article, err := readability.FromReader(resp.Body, pageURL)
	if err != nil {
		return source.Page{}, fmt.Errorf("readability extraction: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"url":   rawURL,
		"title": article.Title,
		"chars": len(article.TextContent),
	}).Info("Extracted page with readability")

	return source.Page{Title: article.Title, Text: article.TextContent}, nil
}
