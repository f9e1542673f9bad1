package domain

import "time"

// Entry is one article parsed out of a feed.
type Entry struct {
	Title     string
	URL       string
	Published time.Time
	Content   string
	FeedURL   string
}

// Summary pairs an entry with its generated text.
type Summary struct {
	Title string
	URL   string
	Text  string
}
