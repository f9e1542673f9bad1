package summarizer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"net/url"
	"strings"
	"time"
)

const summaryCacheTTL = 24 * time.Hour

// Cached decorates a Summarizer with the run-local LRU cache.
type Cached struct {
	inner Summarizer
	cache *summaryCache
	log   *slog.Logger
}

func NewCached(inner Summarizer, log *slog.Logger) *Cached {
	return &Cached{
		inner: inner,
		cache: newSummaryCache(summaryCacheMaxEntries),
		log:   log,
	}
}

func (c *Cached) Summarize(ctx context.Context, input Input) (string, error) {
	now := time.Now().UTC()
	key := summaryCacheKey(input.SourceURL, input.Text)

	if key != "" {
		if summary, ok := c.cache.get(key, now); ok {
			c.log.DebugContext(ctx, "Summary cache hit",
				"sourceURL", input.SourceURL)

			return summary, nil
		}
	}

	summary, err := c.inner.Summarize(ctx, input)
	if err != nil {
		return "", err
	}

	if key != "" {
		c.cache.set(key, summary, now.Add(summaryCacheTTL), now)
	}

	return summary, nil
}

// summaryCacheKey combines the canonical entry URL with a hash of the text,
// so an edited article bypasses the stale summary.
func summaryCacheKey(rawURL string, text string) string {
	canonicalURL := canonicalEntryURL(rawURL)
	if canonicalURL == "" {
		return ""
	}

	normalizedText := strings.TrimSpace(text)
	if normalizedText == "" {
		return ""
	}

	hash := sha256.Sum256([]byte(normalizedText))

	return canonicalURL + "|" + hex.EncodeToString(hash[:])
}

func canonicalEntryURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return trimmed
	}

	u.RawQuery = ""
	u.Fragment = ""

	return u.String()
}
