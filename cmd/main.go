package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kokofeed/internal/config"
	"kokofeed/internal/digest"
	"kokofeed/internal/feed"
	"kokofeed/internal/notifier"
	"kokofeed/internal/ratelimiter"
	"kokofeed/internal/summarizer"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	start := time.Now()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.ErrorContext(ctx, "Invalid configuration",
			"error", err)
		os.Exit(1)
	}

	location, err := cfg.BoundaryLocation()
	if err != nil {
		log.ErrorContext(ctx, "Invalid date boundary timezone",
			"error", err,
			"DATE_BOUNDARY_TZ", cfg.DateBoundaryTZ)
		os.Exit(1)
	}

	feedURLs, err := feed.ReadSourceList(ctx, cfg.FeedsPath, log)
	if err != nil {
		log.ErrorContext(ctx, "Failed to read feed list",
			"error", err,
			"feedsPath", cfg.FeedsPath)
		os.Exit(1)
	}
	if len(feedURLs) == 0 {
		log.InfoContext(ctx, "No feed URLs found",
			"feedsPath", cfg.FeedsPath)

		return
	}
	log.InfoContext(ctx, "Feed list is loaded",
		"feedsPath", cfg.FeedsPath,
		"feedCount", len(feedURLs))

	s, err := initSummarizer(ctx, cfg, log)
	if err != nil {
		log.ErrorContext(ctx, "Failed to initialize summarizer",
			"error", err,
			"provider", cfg.Provider)
		os.Exit(1)
	}

	limiter := ratelimiter.New(log)
	defer limiter.Stop()

	slackNotifier := notifier.NewSlackNotifier(cfg.SlackToken, cfg.SlackChannel, limiter, log)
	fetcher := feed.NewFetcher(cfg.FetchTimeout, log)
	runner := digest.NewRunner(fetcher, s, slackNotifier, location, log)

	if err := runner.Run(ctx, feedURLs); err != nil {
		log.WarnContext(ctx, "Run finished with per-item errors",
			"error", err,
			"feedCount", len(feedURLs),
			"durationSeconds", time.Since(start).Seconds())

		return
	}

	log.InfoContext(ctx, "Run finished",
		"feedCount", len(feedURLs),
		"durationSeconds", time.Since(start).Seconds())
}

func initSummarizer(
	ctx context.Context,
	cfg config.Config,
	log *slog.Logger,
) (summarizer.Summarizer, error) {
	switch cfg.Provider {
	case config.ProviderOllama:
		s, err := summarizer.NewOllamaSummarizer(cfg.OllamaHost, cfg.Model, cfg.SystemPrompt)
		if err != nil {
			return nil, fmt.Errorf("create Ollama summarizer: %w", err)
		}

		if pingErr := s.Ping(ctx); pingErr != nil {
			log.WarnContext(ctx, "Ollama server is unreachable, summaries may fail",
				"error", pingErr,
				"host", cfg.OllamaHost)
		} else {
			log.InfoContext(ctx, "Connected to Ollama",
				"host", cfg.OllamaHost,
				"model", cfg.Model)
		}

		return summarizer.NewCached(s, log), nil

	case config.ProviderOpenAI:
		s, err := summarizer.NewOpenAISummarizer(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.SystemPrompt)
		if err != nil {
			return nil, fmt.Errorf("create OpenAI summarizer: %w", err)
		}

		log.InfoContext(ctx, "OpenAI summarizer is initialized",
			"model", cfg.OpenAIModel)

		return summarizer.NewCached(s, log), nil

	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}
