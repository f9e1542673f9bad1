package summarizer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
)

const ollamaClientTimeout = 2 * time.Minute

// OllamaSummarizer generates summaries on a local or remote Ollama server.
type OllamaSummarizer struct {
	client *api.Client
	model  string
	system string
}

func NewOllamaSummarizer(host, model, system string) (*OllamaSummarizer, error) {
	base, err := url.Parse(strings.TrimSpace(host))
	if err != nil {
		return nil, fmt.Errorf("parse host: %w", err)
	}

	return &OllamaSummarizer{
		client: api.NewClient(base, &http.Client{Timeout: ollamaClientTimeout}),
		model:  model,
		system: system,
	}, nil
}

// Ping probes the server. Failure here is advisory: summaries fail
// per entry, not per run.
func (s *OllamaSummarizer) Ping(ctx context.Context) error {
	if _, err := s.client.Version(ctx); err != nil {
		return fmt.Errorf("fetch server version: %w", err)
	}

	return nil
}

func (s *OllamaSummarizer) Summarize(
	ctx context.Context,
	input Input,
) (string, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return "", errors.New("input is empty")
	}

	stream := false
	var output strings.Builder

	err := s.client.Generate(ctx, &api.GenerateRequest{
		Model:  s.model,
		Prompt: buildUserPrompt(input),
		System: s.system,
		Stream: &stream,
	}, func(resp api.GenerateResponse) error {
		output.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}

	summary := strings.TrimSpace(output.String())
	if summary == "" {
		return "", errors.New("output text is missing")
	}

	return summary, nil
}
