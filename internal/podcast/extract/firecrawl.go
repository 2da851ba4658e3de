package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"podnest/internal/domain/source"
)

const firecrawlScrapeURL = "https://api.firecrawl.dev/v1/scrape"

// firecrawlExtractor delegates extraction to the Firecrawl scraping
// service. Requires FIRECRAWL_API_KEY.
type firecrawlExtractor struct {
	apiKey  string
	baseURL string
	client  *http.Client
	timeout time.Duration
}

type firecrawlRequest struct {
	URL     string   `json:"url"`
	Formats []string `json:"formats"`
	Timeout int      `json:"timeout,omitempty"` // milliseconds
}

type firecrawlResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Data    struct {
		Markdown string `json:"markdown"`
		Metadata struct {
			Title string `json:"title"`
		} `json:"metadata"`
	} `json:"data"`
}

func newFirecrawlExtractor() (*firecrawlExtractor, error) {
	apiKey := os.Getenv("FIRECRAWL_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("FIRECRAWL_API_KEY is not set")
	}

	timeout := time.Duration(viper.GetInt("extract.timeout_seconds")) * time.Second
	return &firecrawlExtractor{
		apiKey:  apiKey,
		baseURL: firecrawlScrapeURL,
		client:  &http.Client{Timeout: timeout + 10*time.Second},
		timeout: timeout,
	}, nil
}

func (e *firecrawlExtractor) Extract(ctx context.Context, rawURL string) (source.Page, error) {
	payload := firecrawlRequest{
		URL:     rawURL,
		Formats: []string{"markdown"},
		Timeout: int(e.timeout / time.Millisecond),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return source.Page{}, fmt.Errorf("marshal scrape request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL, bytes.NewReader(body))
	if err != nil {
		return source.Page{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.apiKey)

	resp, err := e.client.Do(req)
	if err != nil {
		return source.Page{}, fmt.Errorf("call firecrawl: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return source.Page{}, fmt.Errorf("firecrawl status %d: %s", resp.StatusCode, string(raw))
	}

	var scraped firecrawlResponse
	if err := json.NewDecoder(resp.Body).Decode(&scraped); err != nil {
		return source.Page{}, fmt.Errorf("decode firecrawl response: %w", err)
	}
	if !scraped.Success {
		return source.Page{}, fmt.Errorf("firecrawl scrape failed: %s", scraped.Error)
	}

	logrus.WithFields(logrus.Fields{
		"url":   rawURL,
		"title": scraped.Data.Metadata.Title,
		"chars": len(scraped.Data.Markdown),
	}).Info("Extracted page with firecrawl")

	return source.Page{
		Title: scraped.Data.Metadata.Title,
		Text:  scraped.Data.Markdown,
	}, nil
}
