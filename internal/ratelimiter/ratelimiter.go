package ratelimiter

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const (
	// Slack allows roughly one chat.postMessage per second per channel.
	channelRate = time.Second
	queueSize   = 100
)

type request struct {
	channel  string
	send     func() error
	response chan error
}

// RateLimiter serializes sends and paces them per channel.
type RateLimiter struct {
	queue    chan request
	lastSent map[string]time.Time
	mu       sync.Mutex
	ctx      context.Context
	cancel   context.CancelFunc
	log      *slog.Logger
}

func New(log *slog.Logger) *RateLimiter {
	ctx, cancel := context.WithCancel(context.Background())

	rl := &RateLimiter{
		queue:    make(chan request, queueSize),
		lastSent: make(map[string]time.Time),
		ctx:      ctx,
		cancel:   cancel,
		log:      log,
	}

	go rl.processQueue()

	return rl
}

// Do runs send through the queue, delaying it when the channel was
// written to less than channelRate ago.
func (rl *RateLimiter) Do(channel string, send func() error) error {
	req := request{
		channel:  channel,
		send:     send,
		response: make(chan error, 1),
	}

	select {
	case rl.queue <- req:
		return <-req.response
	case <-rl.ctx.Done():
		return rl.ctx.Err()
	}
}

func (rl *RateLimiter) Stop() {
	rl.cancel()
}

func (rl *RateLimiter) processQueue() {
	for {
		select {
		case req := <-rl.queue:
			rl.handleRequest(req)
		case <-rl.ctx.Done():
			close(rl.queue)

			for req := range rl.queue {
				req.response <- rl.ctx.Err()
			}

			return
		}
	}
}

func (rl *RateLimiter) handleRequest(req request) {
	rl.mu.Lock()
	lastSent, exists := rl.lastSent[req.channel]
	rl.mu.Unlock()

	if exists {
		delay := getDelay(lastSent)

		if delay > 0 {
			rl.log.DebugContext(rl.ctx, "Rate limiting message",
				"channel", req.channel,
				"delay", delay,
				"queueLen", len(rl.queue))

			select {
			case <-time.After(delay):
			case <-rl.ctx.Done():
				req.response <- rl.ctx.Err()

				return
			}
		}
	}

	err := req.send()

	rl.mu.Lock()
	rl.lastSent[req.channel] = time.Now()
	rl.mu.Unlock()

	req.response <- err
}

func getDelay(lastSent time.Time) time.Duration {
	elapsed := time.Since(lastSent)

	return max(channelRate-elapsed, 0)
}
