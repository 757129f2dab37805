package api

import (
	"context"
	"fmt"

	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/models"
)

// Conversations returns the caller's inbox, one row per partner.
func (c *Client) Conversations(ctx context.Context) ([]models.Conversation, error) {
	var resp struct {
		Conversations []models.Conversation `json:"conversations"`
	}
	if err := c.get(ctx, "/api/conversations", &resp); err != nil {
		return nil, err
	}
	return resp.Conversations, nil
}

// Conversation loads the full message thread with one partner. Viewing a
// thread marks its incoming messages read server-side.
func (c *Client) Conversation(ctx context.Context, partnerID int64) (*models.Thread, error) {
	var thread models.Thread
	if err := c.get(ctx, fmt.Sprintf("/api/messages/conversation/%d", partnerID), &thread); err != nil {
		return nil, err
	}
	return &thread, nil
}

// SendMessage delivers a direct message.
func (c *Client) SendMessage(ctx context.Context, msg models.OutgoingMessage) error {
	return c.postJSON(ctx, "/api/messages", msg, nil)
}

// UnreadCount returns the number of unread incoming messages.
func (c *Client) UnreadCount(ctx context.Context) (int, error) {
	var resp struct {
		UnreadCount int `json:"unread_count"`
	}
	if err := c.get(ctx, "/api/messages/unread-count", &resp); err != nil {
		return 0, err
	}
	return resp.UnreadCount, nil
}
