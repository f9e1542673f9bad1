package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"

	defaultSystemPrompt = `Summarize the article in two or three sentences.

Rules:
- Keep the core idea and critical facts (dates, numbers, names).
- Neutral tone, plain prose, no lists.
- Answer in the same language as the article.`
)

type Config struct {
	SlackToken   string `env:"SLACK_API_TOKEN,required,notEmpty"`
	SlackChannel string `env:"SLACK_CHANNEL"       envDefault:"random"`

	FeedsPath    string        `env:"FEEDS_PATH"    envDefault:"feeds.txt"`
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT" envDefault:"20s"`

	Provider     string `env:"SUMMARIZER_PROVIDER" envDefault:"ollama"`
	OllamaHost   string `env:"OLLAMA_HOST"         envDefault:"http://localhost:11434"`
	Model        string `env:"MODEL"               envDefault:"llama3.2"`
	SystemPrompt string `env:"SYSTEM_OPS"`
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIModel  string `env:"OPENAI_MODEL"        envDefault:"gpt-5-mini-2025-08-07"`

	// DateBoundaryTZ names the location in which "published today" is
	// evaluated. The original behavior compared dates in UTC.
	DateBoundaryTZ string `env:"DATE_BOUNDARY_TZ" envDefault:"UTC"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	switch cfg.Provider {
	case ProviderOllama:
	case ProviderOpenAI:
		if strings.TrimSpace(cfg.OpenAIAPIKey) == "" {
			return Config{}, fmt.Errorf("OPENAI_API_KEY is required when SUMMARIZER_PROVIDER is %q", ProviderOpenAI)
		}
	default:
		return Config{}, fmt.Errorf("unknown SUMMARIZER_PROVIDER %q", cfg.Provider)
	}

	if strings.TrimSpace(cfg.SystemPrompt) == "" {
		cfg.SystemPrompt = defaultSystemPrompt
	}

	return cfg, nil
}

// BoundaryLocation resolves DateBoundaryTZ into a time.Location.
func (c Config) BoundaryLocation() (*time.Location, error) {
	loc, err := time.LoadLocation(strings.TrimSpace(c.DateBoundaryTZ))
	if err != nil {
		return nil, fmt.Errorf("load location %q: %w", c.DateBoundaryTZ, err)
	}

	return loc, nil
}
