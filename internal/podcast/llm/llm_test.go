package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestOpenAIComplete(t *testing.T) {
	var seen openAIRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&seen); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"choices": [{"message": {"role": "assistant", "content": "{\"script\": []}"}}]
		}`))
	}))
	defer server.Close()

	g := &openAIGenerator{
		apiKey:      "test-key",
		baseURL:     server.URL,
		model:       "gpt-4o-mini",
		temperature: 0.7,
		maxTokens:   4000,
		client:      server.Client(),
	}

	out, err := g.Complete(context.Background(), "write a script")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if out != `{"script": []}` {
		t.Errorf("completion = %q", out)
	}
	if seen.Model != "gpt-4o-mini" {
		t.Errorf("request model = %q", seen.Model)
	}
	if len(seen.Messages) != 1 || seen.Messages[0].Content != "write a script" {
		t.Errorf("request messages = %+v", seen.Messages)
	}
}

func TestOpenAICompleteErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    string
	}{
		{
			name: "http error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"error": {"message": "rate limit"}}`, http.StatusTooManyRequests)
			},
			want: "status 429",
		},
		{
			name: "api error body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"error": {"message": "context length exceeded"}}`))
			},
			want: "context length exceeded",
		},
		{
			name: "no choices",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"choices": []}`))
			},
			want: "no choices",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			g := &openAIGenerator{
				apiKey:  "test-key",
				baseURL: server.URL,
				client:  server.Client(),
			}
			_, err := g.Complete(context.Background(), "prompt")
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want substring %q", err, tt.want)
			}
		})
	}
}

func TestOllamaComplete(t *testing.T) {
	var seen ollamaRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&seen); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response": "{\"script\": []}", "done": true}`))
	}))
	defer server.Close()

	g := &ollamaGenerator{
		endpoint: server.URL,
		model:    "llama3.2:latest",
		client:   server.Client(),
	}

	out, err := g.Complete(context.Background(), "write a script")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if out != `{"script": []}` {
		t.Errorf("completion = %q", out)
	}
	if seen.Stream {
		t.Error("request asked for a streaming response")
	}
	if seen.Prompt != "write a script" {
		t.Errorf("request prompt = %q", seen.Prompt)
	}
}

func TestOllamaCompleteBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	g := &ollamaGenerator{
		endpoint: server.URL,
		model:    "missing:latest",
		client:   server.Client(),
	}
	if _, err := g.Complete(context.Background(), "prompt"); err == nil {
		t.Error("Complete succeeded against a 404 response")
	}
}

func TestCompleteHonoursContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"response": "late"}`))
	}))
	defer server.Close()

	g := &ollamaGenerator{
		endpoint: server.URL,
		model:    "llama3.2:latest",
		client:   server.Client(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := g.Complete(ctx, "prompt"); err == nil {
		t.Error("Complete ignored context cancellation")
	}
}

func TestMockGeneratorTranscriptShape(t *testing.T) {
	out, err := NewMockGenerator().Complete(context.Background(), "anything")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	var doc struct {
		Script []map[string]string `json:"script"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("mock transcript is not valid JSON: %v", err)
	}
	if len(doc.Script) < 2 {
		t.Fatalf("mock transcript has %d lines, want at least 2", len(doc.Script))
	}
	for i, line := range doc.Script {
		want := "Speaker 1"
		if i%2 == 1 {
			want = "Speaker 2"
		}
		if _, ok := line[want]; !ok {
			t.Errorf("line %d: missing key %q in %v", i, want, line)
		}
	}
}
