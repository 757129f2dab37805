// Package notify pushes client-side events to Telegram so a user can see
// new activity without the UI open. Everything is best-effort: delivery
// failures are logged and dropped.
package notify

import (
	"context"
	"fmt"
	"log"

	"github.com/go-telegram/bot"
)

// Notifier sends notifications to a single Telegram chat. A nil Notifier
// is valid and does nothing, so callers never need to branch.
type Notifier struct {
	bot    *bot.Bot
	chatID string
}

// NewTelegram creates a notifier, or nil when token or chat id are empty.
func NewTelegram(token, chatID string) (*Notifier, error) {
	if token == "" || chatID == "" {
		return nil, nil
	}
	b, err := bot.New(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return &Notifier{bot: b, chatID: chatID}, nil
}

// NewPosts announces posts found by the feed poll.
func (n *Notifier) NewPosts(ctx context.Context, count int) {
	plural := ""
	if count > 1 {
		plural = "s"
	}
	n.send(ctx, fmt.Sprintf("%d new post%s in your Globridge feed", count, plural))
}

// UnreadMessages announces a change in the unread message count.
func (n *Notifier) UnreadMessages(ctx context.Context, count int) {
	if count == 0 {
		return
	}
	n.send(ctx, fmt.Sprintf("You have %d unread Globridge message(s)", count))
}

// ConnectionRequests announces pending incoming connection requests.
func (n *Notifier) ConnectionRequests(ctx context.Context, count int) {
	if count == 0 {
		return
	}
	n.send(ctx, fmt.Sprintf("%d pending connection request(s) on Globridge", count))
}

func (n *Notifier) send(ctx context.Context, text string) {
	if n == nil {
		return
	}
	_, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: n.chatID,
		Text:   text,
	})
	if err != nil {
		log.Printf("Failed to send telegram notification: %v", err)
	}
}
