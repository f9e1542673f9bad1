package ratelimiter

import (
	"log/slog"
	"testing"
	"time"
)

func TestGetDelay(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		lastSent time.Time
		wantZero bool
	}{
		{
			"no delay needed",
			now.Add(-2 * time.Second),
			true,
		},
		{
			"delay needed",
			now.Add(-500 * time.Millisecond),
			false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := getDelay(test.lastSent)

			if test.wantZero && got > 0 {
				t.Errorf("Expected zero delay, got %v", got)
			}

			if !test.wantZero && got <= 0 {
				t.Errorf("Expected positive delay, got %v", got)
			}
		})
	}
}

func TestDoRunsSend(t *testing.T) {
	rl := New(slog.Default())
	defer rl.Stop()

	sent := false
	if err := rl.Do("random", func() error {
		sent = true
		return nil
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !sent {
		t.Fatalf("expected send to run")
	}
}

func TestDoPacesSameChannel(t *testing.T) {
	rl := New(slog.Default())
	defer rl.Stop()

	start := time.Now()

	for range 2 {
		if err := rl.Do("random", func() error { return nil }); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if elapsed := time.Since(start); elapsed < channelRate/2 {
		t.Fatalf("expected second send to be delayed, elapsed %v", elapsed)
	}
}
