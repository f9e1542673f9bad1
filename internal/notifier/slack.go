package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"kokofeed/internal/domain"
	"kokofeed/internal/mrkdwn"
	"kokofeed/internal/ratelimiter"

	"github.com/slack-go/slack"
)

const (
	botUsername  = "KokoAI"
	botIconEmoji = ":robot_face:"
)

// SlackNotifier posts one message per summary to a single channel.
type SlackNotifier struct {
	client  *slack.Client
	channel string
	limiter *ratelimiter.RateLimiter
	log     *slog.Logger
}

func NewSlackNotifier(
	token string,
	channel string,
	limiter *ratelimiter.RateLimiter,
	log *slog.Logger,
) *SlackNotifier {
	return &SlackNotifier{
		client:  slack.New(strings.TrimSpace(token)),
		channel: channel,
		limiter: limiter,
		log:     log,
	}
}

func (n *SlackNotifier) Notify(ctx context.Context, summary domain.Summary) error {
	block := slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, formatBlockText(summary), false, false),
		nil,
		nil,
	)

	err := n.limiter.Do(n.channel, func() error {
		_, _, postErr := n.client.PostMessageContext(
			ctx,
			n.channel,
			slack.MsgOptionUsername(botUsername),
			slack.MsgOptionIconEmoji(botIconEmoji),
			slack.MsgOptionDisableLinkUnfurl(),
			slack.MsgOptionText(fmt.Sprintf("%s: %s", summary.Title, summary.Text), false),
			slack.MsgOptionBlocks(block),
		)

		return postErr
	})
	if err != nil {
		return &domain.NotifyError{Channel: n.channel, Err: err}
	}

	n.log.InfoContext(ctx, "Posted summary",
		"channel", n.channel,
		"title", summary.Title,
		"url", summary.URL)

	return nil
}

func formatBlockText(summary domain.Summary) string {
	return fmt.Sprintf(
		"*<%s|%s>*\n%s",
		summary.URL,
		mrkdwn.Escape(summary.Title),
		mrkdwn.Escape(summary.Text),
	)
}
