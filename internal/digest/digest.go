package digest

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"kokofeed/internal/domain"
	"kokofeed/internal/feed"
	"kokofeed/internal/summarizer"
)

const fetchFeedsMaxConcurrencyGrowthFactor = 4

// Notifier posts one summary to the configured channel.
type Notifier interface {
	Notify(ctx context.Context, summary domain.Summary) error
}

// Runner drives one pass: fetch every feed, keep today's entries,
// summarize each and post the result.
type Runner struct {
	fetcher    *feed.Fetcher
	summarizer summarizer.Summarizer
	notifier   Notifier
	location   *time.Location
	log        *slog.Logger
}

func NewRunner(
	fetcher *feed.Fetcher,
	s summarizer.Summarizer,
	notifier Notifier,
	location *time.Location,
	log *slog.Logger,
) *Runner {
	return &Runner{
		fetcher:    fetcher,
		summarizer: s,
		notifier:   notifier,
		location:   location,
		log:        log,
	}
}

// Run attempts every feed URL exactly once. Per-feed and per-entry failures
// are logged, joined into the returned error, and never abort the pass.
func (r *Runner) Run(ctx context.Context, feedURLs []string) error {
	if len(feedURLs) == 0 {
		return nil
	}

	var wg sync.WaitGroup

	concurrency := min(runtime.NumCPU()*fetchFeedsMaxConcurrencyGrowthFactor, len(feedURLs))
	semCh := make(chan struct{}, concurrency)
	errCh := make(chan error, len(feedURLs))

	for _, feedURL := range feedURLs {
		wg.Add(1)
		semCh <- struct{}{}

		go func(copiedURL string) {
			defer wg.Done()

			if err := r.processFeed(ctx, copiedURL); err != nil {
				errCh <- err
			}

			<-semCh
		}(feedURL)
	}

	wg.Wait()
	close(semCh)
	close(errCh)

	var errs []error
	for err := range errCh {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (r *Runner) processFeed(ctx context.Context, feedURL string) error {
	entries, err := r.fetcher.Fetch(ctx, feedURL)
	if err != nil {
		r.log.ErrorContext(ctx, "Failed to fetch feed",
			"error", err,
			"feedURL", feedURL)

		return err
	}

	today := feed.FilterByDay(entries, time.Now(), r.location)
	if len(today) == 0 {
		r.log.InfoContext(ctx, "No entries published today",
			"feedURL", feedURL,
			"entryCount", len(entries))

		return nil
	}

	r.log.InfoContext(ctx, "Processing feed",
		"feedURL", feedURL,
		"entryCount", len(entries),
		"todayCount", len(today))

	var errs []error
	for _, entry := range today {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())

			break
		}

		if err := r.processEntry(ctx, entry); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (r *Runner) processEntry(ctx context.Context, entry domain.Entry) error {
	text := feed.ExtractText(entry.Content)
	if text == "" {
		text = entry.Title
	}

	summaryText, err := r.summarizer.Summarize(ctx, summarizer.Input{
		Title:     entry.Title,
		Text:      text,
		SourceURL: entry.URL,
	})
	if err != nil {
		summarizeErr := &domain.SummarizeError{EntryURL: entry.URL, Err: err}
		r.log.ErrorContext(ctx, "Failed to summarize entry",
			"error", summarizeErr,
			"feedURL", entry.FeedURL,
			"entryURL", entry.URL,
			"textLen", len(text))

		return summarizeErr
	}

	if err := r.notifier.Notify(ctx, domain.Summary{
		Title: entry.Title,
		URL:   entry.URL,
		Text:  summaryText,
	}); err != nil {
		r.log.ErrorContext(ctx, "Failed to post summary",
			"error", err,
			"feedURL", entry.FeedURL,
			"entryURL", entry.URL)

		return err
	}

	return nil
}
