package feed

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"kokofeed/internal/domain"

	"github.com/mmcdole/gofeed"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/127.0.0.0 Safari/537.36"

type Fetcher struct {
	parser *gofeed.Parser
	log    *slog.Logger
}

func NewFetcher(timeout time.Duration, log *slog.Logger) *Fetcher {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: timeout}
	parser.UserAgent = userAgent

	return &Fetcher{
		parser: parser,
		log:    log,
	}
}

// Fetch retrieves one feed and parses it into entries. A network or XML
// failure yields a FetchError for this feed only.
func (f *Fetcher) Fetch(ctx context.Context, feedURL string) ([]domain.Entry, error) {
	feedURL = strings.TrimSpace(feedURL)

	parsed, err := f.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, &domain.FetchError{FeedURL: feedURL, Err: err}
	}

	entries := make([]domain.Entry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		entry, ok := f.entryFromItem(ctx, feedURL, item)
		if !ok {
			continue
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func (f *Fetcher) entryFromItem(
	ctx context.Context,
	feedURL string,
	item *gofeed.Item,
) (domain.Entry, bool) {
	entryURL := strings.TrimSpace(item.Link)
	if entryURL == "" {
		f.log.WarnContext(ctx, "Skipping feed item with empty URL",
			"feedURL", feedURL,
			"itemTitle", strings.TrimSpace(item.Title))

		return domain.Entry{}, false
	}

	var published time.Time
	if item.PublishedParsed != nil {
		published = *item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		published = *item.UpdatedParsed
	}

	content := strings.TrimSpace(item.Content)
	if content == "" {
		content = strings.TrimSpace(item.Description)
	}

	return domain.Entry{
		Title:     strings.TrimSpace(item.Title),
		URL:       entryURL,
		Published: published,
		Content:   content,
		FeedURL:   feedURL,
	}, true
}
