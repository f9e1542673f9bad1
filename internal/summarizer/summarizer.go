package summarizer

import (
	"context"
	"strings"
)

// Input describes the payload for a summary request.
type Input struct {
	// Title is the entry title, optional context for the model.
	Title string
	// Text contains the original plain text to summarise.
	Text string
	// SourceURL is optional metadata that helps the model reference the origin.
	SourceURL string
}

// Summarizer produces a single summary for a given input text.
type Summarizer interface {
	Summarize(ctx context.Context, input Input) (string, error)
}

func buildUserPrompt(input Input) string {
	builder := strings.Builder{}

	if title := strings.TrimSpace(input.Title); title != "" {
		builder.WriteString("Title:\n")
		builder.WriteString(title)
		builder.WriteString("\n")
	}
	if sourceURL := strings.TrimSpace(input.SourceURL); sourceURL != "" {
		builder.WriteString("Source:\n")
		builder.WriteString(sourceURL)
		builder.WriteString("\n")
	}
	builder.WriteString("Content:\n")
	builder.WriteString(strings.TrimSpace(input.Text))

	return builder.String()
}
