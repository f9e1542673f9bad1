package domain

import "fmt"

// ConfigError aborts the run before any feed is processed.
type ConfigError struct {
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err == nil {
		return e.Reason
	}

	return fmt.Sprintf("%s: %v", e.Reason, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// FetchError means one feed could not be retrieved or parsed.
// The remaining feeds are still processed.
type FetchError struct {
	FeedURL string
	Err     error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch feed %s: %v", e.FeedURL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// SummarizeError means one entry could not be summarized.
// The remaining entries are still processed.
type SummarizeError struct {
	EntryURL string
	Err      error
}

func (e *SummarizeError) Error() string {
	return fmt.Sprintf("summarize entry %s: %v", e.EntryURL, e.Err)
}

func (e *SummarizeError) Unwrap() error { return e.Err }

// NotifyError means one summary could not be posted.
// The remaining summaries are still processed.
type NotifyError struct {
	Channel string
	Err     error
}

func (e *NotifyError) Error() string {
	return fmt.Sprintf("notify channel %s: %v", e.Channel, e.Err)
}

func (e *NotifyError) Unwrap() error { return e.Err }
