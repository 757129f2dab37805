package client

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/api"
	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/db"
	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/models"
	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/notify"
	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/protocol"
)

var (
	// ErrNoConversation is returned when sending without an open
	// conversation.
	ErrNoConversation = errors.New("please select a conversation first")

	// ErrEmptyMessage is returned for an empty trimmed body; no network
	// call is made.
	ErrEmptyMessage = errors.New("please enter a message")

	// ErrNotSupported marks inbox actions waiting on backend endpoints.
	ErrNotSupported = errors.New("not supported by the backend yet")
)

// MessagingController owns the inbox, the open conversation thread, and
// optimistic sending with delayed reconciliation.
type MessagingController struct {
	api      *api.Client
	cache    *db.ClientDB
	pub      Publisher
	notifier *notify.Notifier

	reconcileDelay time.Duration
	typingQuiet    time.Duration

	mu            sync.Mutex
	current       int64 // partner id of the open conversation, 0 when none
	currentReq    uuid.UUID
	conversations []models.Conversation
	sending       bool
	typing        bool
	typingTimer   *time.Timer
	lastUnread    int
}

// NewMessagingController wires the messaging flow.
func NewMessagingController(apiClient *api.Client, cache *db.ClientDB, pub Publisher, notifier *notify.Notifier, reconcileDelay, typingQuiet time.Duration) *MessagingController {
	return &MessagingController{
		api:            apiClient,
		cache:          cache,
		pub:            pub,
		notifier:       notifier,
		reconcileDelay: reconcileDelay,
		typingQuiet:    typingQuiet,
	}
}

// LoadConversations replaces the entire inbox from the server and then
// refreshes the unread badge.
func (m *MessagingController) LoadConversations(ctx context.Context) error {
	conversations, err := m.api.Conversations(ctx)
	if err != nil {
		log.Printf("Failed to load conversations: %v", err)
		m.pub.Publish(protocol.TypeConversations, []models.Conversation{})
		return err
	}

	m.mu.Lock()
	m.conversations = conversations
	m.mu.Unlock()

	m.pub.Publish(protocol.TypeConversations, conversations)
	m.RefreshUnread(ctx)
	return nil
}

// RefreshUnread updates the unread message badge. A count increase also
// pushes a notification, like the request badge does.
func (m *MessagingController) RefreshUnread(ctx context.Context) {
	count, err := m.api.UnreadCount(ctx)
	if err != nil {
		log.Printf("Failed to load unread count: %v", err)
		return
	}
	m.pub.Publish(protocol.TypeUnreadCount, protocol.UnreadCountEvent{Count: count})

	m.mu.Lock()
	grew := count > m.lastUnread
	m.lastUnread = count
	m.mu.Unlock()

	if grew {
		m.notifier.UnreadMessages(ctx, count)
	}
}

// Open switches the current conversation and loads its thread. The
// cached copy paints immediately; the network response replaces it, but
// only when it is still the latest outstanding open for this controller
// — a stale response for a superseded conversation is discarded.
func (m *MessagingController) Open(ctx context.Context, partnerID int64) error {
	reqID := uuid.New()

	m.mu.Lock()
	m.current = partnerID
	m.currentReq = reqID
	m.mu.Unlock()

	if m.cache != nil {
		if cached, err := m.cache.CachedThread(partnerID); err == nil && len(cached) > 0 {
			m.pub.Publish(protocol.TypeThread, protocol.ThreadEvent{
				Thread: &models.Thread{PartnerID: partnerID, Messages: cached},
				Cached: true,
			})
		}
	}

	thread, err := m.api.Conversation(ctx, partnerID)
	if err != nil {
		log.Printf("Failed to load conversation with %d: %v", partnerID, err)
		return err
	}

	m.mu.Lock()
	stale := m.currentReq != reqID
	m.mu.Unlock()
	if stale {
		return nil
	}

	m.pub.Publish(protocol.TypeThread, protocol.ThreadEvent{Thread: thread})
	if m.cache != nil {
		if err := m.cache.CacheThread(partnerID, thread.Messages); err != nil {
			log.Printf("Failed to cache thread: %v", err)
		}
	}
	m.RefreshUnread(ctx)
	return nil
}

// Current returns the open conversation's partner id, 0 when none.
func (m *MessagingController) Current() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Send delivers a message optimistically: a provisional rendering is
// published before the POST, and a delayed reconciliation reload
// replaces it with server-confirmed state. On failure the send control
// re-enables but the provisional message stays — the next successful
// thread reload clears it.
func (m *MessagingController) Send(ctx context.Context, body string) error {
	m.mu.Lock()
	partnerID := m.current
	if partnerID == 0 {
		m.mu.Unlock()
		toast(m.pub, levelError, ErrNoConversation.Error())
		return ErrNoConversation
	}
	body = strings.TrimSpace(body)
	if body == "" {
		m.mu.Unlock()
		toast(m.pub, levelError, ErrEmptyMessage.Error())
		return ErrEmptyMessage
	}
	if m.sending {
		m.mu.Unlock()
		return nil
	}
	m.sending = true
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.sending = false
		m.mu.Unlock()
	}()

	m.pub.Publish(protocol.TypeProvisional, models.Message{
		Content:     body,
		ToUserID:    partnerID,
		IsFromMe:    true,
		CreatedAt:   models.Timestamp{Time: time.Now().UTC()},
		Provisional: true,
	})

	err := m.api.SendMessage(ctx, models.OutgoingMessage{ToUserID: partnerID, Body: body})
	if err != nil {
		toast(m.pub, levelError, "Failed to send message")
		return err
	}

	toast(m.pub, levelSuccess, "Message sent successfully!")

	time.AfterFunc(m.reconcileDelay, func() {
		m.mu.Lock()
		still := m.current == partnerID
		m.mu.Unlock()
		if !still {
			return
		}
		reconcileCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := m.Open(reconcileCtx, partnerID); err != nil {
			log.Printf("Reconciliation reload failed: %v", err)
		}
		if err := m.LoadConversations(reconcileCtx); err != nil {
			log.Printf("Inbox refresh after send failed: %v", err)
		}
	})
	return nil
}

// Typing records local typing activity with a quiet-period debounce. No
// network signal is sent; the indicator is a local placeholder.
func (m *MessagingController) Typing() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == 0 {
		return
	}
	if m.typingTimer != nil {
		m.typingTimer.Stop()
	}
	m.typing = true
	m.typingTimer = time.AfterFunc(m.typingQuiet, func() {
		m.mu.Lock()
		m.typing = false
		m.mu.Unlock()
	})
}

// IsTyping reports the debounced local typing flag.
func (m *MessagingController) IsTyping() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.typing
}

// FilterInbox narrows the already-loaded inbox by a case-insensitive
// substring over partner name and message preview. Purely client-side.
func (m *MessagingController) FilterInbox(query string) []models.Conversation {
	query = strings.ToLower(strings.TrimSpace(query))

	m.mu.Lock()
	conversations := make([]models.Conversation, len(m.conversations))
	copy(conversations, m.conversations)
	m.mu.Unlock()

	if query == "" {
		m.pub.Publish(protocol.TypeConversations, conversations)
		return conversations
	}

	var filtered []models.Conversation
	for _, c := range conversations {
		if strings.Contains(strings.ToLower(c.PartnerName), query) ||
			strings.Contains(strings.ToLower(c.LastMessage), query) {
			filtered = append(filtered, c)
		}
	}
	m.pub.Publish(protocol.TypeConversations, filtered)
	return filtered
}

// MarkAllRead is pending a backend endpoint; the action is surfaced as
// unsupported instead of faking success.
func (m *MessagingController) MarkAllRead(ctx context.Context) error {
	toast(m.pub, levelInfo, "Mark all read is not available yet")
	return ErrNotSupported
}

// DeleteConversation is pending a backend endpoint.
func (m *MessagingController) DeleteConversation(ctx context.Context) error {
	toast(m.pub, levelInfo, "Deleting conversations is not available yet")
	return ErrNotSupported
}
