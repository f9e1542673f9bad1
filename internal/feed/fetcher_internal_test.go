package feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kokofeed/internal/domain"
)

const testFeedTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/">
<channel>
<title>Test feed</title>
<link>https://a.test</link>
<item>
<title>First post</title>
<link>https://a.test/posts/1</link>
<pubDate>%s</pubDate>
<description>short description</description>
<content:encoded><![CDATA[<p>full body</p>]]></content:encoded>
</item>
<item>
<title>No link</title>
<pubDate>%s</pubDate>
</item>
</channel>
</rss>`

func serveFeed(t *testing.T, body string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		if _, err := w.Write([]byte(body)); err != nil {
			t.Errorf("write feed body: %v", err)
		}
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestFetcherFetchParsesEntries(t *testing.T) {
	published := time.Date(2025, 6, 10, 8, 30, 0, 0, time.UTC)
	pubDate := published.Format(time.RFC1123Z)
	srv := serveFeed(t, fmt.Sprintf(testFeedTemplate, pubDate, pubDate))

	fetcher := NewFetcher(5*time.Second, slog.Default())

	entries, err := fetcher.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("expected the item without a link to be skipped, got %d entries", len(entries))
	}

	entry := entries[0]
	if entry.Title != "First post" {
		t.Fatalf("unexpected title: %q", entry.Title)
	}
	if entry.URL != "https://a.test/posts/1" {
		t.Fatalf("unexpected URL: %q", entry.URL)
	}
	if !entry.Published.Equal(published) {
		t.Fatalf("unexpected published time: got %v want %v", entry.Published, published)
	}
	if entry.Content != "<p>full body</p>" {
		t.Fatalf("expected content:encoded to win over description, got %q", entry.Content)
	}
	if entry.FeedURL != srv.URL {
		t.Fatalf("unexpected feed URL: %q", entry.FeedURL)
	}
}

func TestFetcherFetchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	fetcher := NewFetcher(5*time.Second, slog.Default())

	_, err := fetcher.Fetch(context.Background(), srv.URL)
	if err == nil {
		t.Fatalf("expected error for server failure")
	}

	var fetchErr *domain.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError, got %T: %v", err, err)
	}
	if fetchErr.FeedURL != srv.URL {
		t.Fatalf("unexpected feed URL in error: %q", fetchErr.FeedURL)
	}
}

func TestFetcherFetchMalformedXML(t *testing.T) {
	srv := serveFeed(t, "<html>not a feed</html>")

	fetcher := NewFetcher(5*time.Second, slog.Default())

	_, err := fetcher.Fetch(context.Background(), srv.URL)
	if err == nil {
		t.Fatalf("expected error for malformed feed")
	}

	var fetchErr *domain.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError, got %T: %v", err, err)
	}
}
