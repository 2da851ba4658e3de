package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type ollamaGenerator struct {
	endpoint string
	model    string
	client   *http.Client
}

type ollamaRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type ollamaResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

func newOllamaGenerator(endpoint string) *ollamaGenerator {
	model := viper.GetString("llm.model")
	if model == "" {
		model = "llama3.2:latest"
	}
	timeout := time.Duration(viper.GetInt("llm.timeout_seconds")) * time.Second
	return &ollamaGenerator{
		endpoint: endpoint,
		model:    model,
		client:   &http.Client{Timeout: timeout},
	}
}

func (g *ollamaGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	payload := ollamaRequest{
		Model:  g.model,
		Prompt: prompt,
		Stream: false,
		Options: ollamaOptions{
			Temperature: viper.GetFloat64("llm.temperature"),
			NumPredict:  viper.GetInt("llm.max_tokens"),
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call ollama: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("ollama returned status %s", resp.Status)
	}

	var completion ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("decode ollama response: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"model":   g.model,
		"latency": time.Since(start).Round(time.Millisecond),
	}).Info("Completion received from Ollama")

	return completion.Response, nil
}
