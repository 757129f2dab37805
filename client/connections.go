package client

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/api"
	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/models"
	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/notify"
	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/protocol"
	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/session"
)

// ConnectionsController handles people search with debounced input, the
// connection request button lifecycle, and the pending-requests badge.
type ConnectionsController struct {
	api      *api.Client
	session  *session.Holder
	pub      Publisher
	notifier *notify.Notifier

	debounce     time.Duration
	minQueryLen  int
	badgeRefresh time.Duration

	// onAccept runs after a request is accepted so the dashboard's
	// connection count can refresh.
	onAccept func(ctx context.Context)

	mu            sync.Mutex
	searchTimer   *time.Timer
	lastQuery     string
	results       []models.SearchedUser
	pollStarted   bool
	stopBadgePoll chan struct{}
	lastBadge     int
}

// NewConnectionsController wires search and connection state.
func NewConnectionsController(apiClient *api.Client, sess *session.Holder, pub Publisher, notifier *notify.Notifier, debounce time.Duration, minQueryLen int, badgeRefresh time.Duration) *ConnectionsController {
	return &ConnectionsController{
		api:           apiClient,
		session:       sess,
		pub:           pub,
		notifier:      notifier,
		debounce:      debounce,
		minQueryLen:   minQueryLen,
		badgeRefresh:  badgeRefresh,
		stopBadgePoll: make(chan struct{}),
	}
}

// OnAccept registers a callback invoked after accepting a request.
func (c *ConnectionsController) OnAccept(fn func(ctx context.Context)) {
	c.onAccept = fn
}

// SearchInput handles each keystroke of the search box. Queries under
// the minimum length hide the results immediately; anything longer is
// debounced so only the final pause triggers a request.
func (c *ConnectionsController) SearchInput(query string) {
	query = strings.TrimSpace(query)

	c.mu.Lock()
	if c.searchTimer != nil {
		c.searchTimer.Stop()
		c.searchTimer = nil
	}
	c.lastQuery = query

	if len(query) < c.minQueryLen {
		c.results = nil
		c.mu.Unlock()
		c.pub.Publish(protocol.TypeSearchResults, protocol.SearchResultsEvent{Query: query, Visible: false})
		return
	}

	c.searchTimer = time.AfterFunc(c.debounce, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		c.performSearch(ctx, query)
	})
	c.mu.Unlock()
}

func (c *ConnectionsController) performSearch(ctx context.Context, query string) {
	c.mu.Lock()
	if query != c.lastQuery {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	users, err := c.api.SearchUsers(ctx, query, "")
	if err != nil {
		log.Printf("Search failed: %v", err)
		c.pub.Publish(protocol.TypeSearchResults, protocol.SearchResultsEvent{Query: query, Visible: false})
		return
	}

	c.mu.Lock()
	c.results = users
	c.mu.Unlock()

	c.pub.Publish(protocol.TypeSearchResults, protocol.SearchResultsEvent{
		Query:   query,
		Users:   users,
		Visible: true,
	})
}

// Results returns the current search results.
func (c *ConnectionsController) Results() []models.SearchedUser {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.SearchedUser, len(c.results))
	copy(out, c.results)
	return out
}

// Connect sends a connection request. The button flips to "sent"
// immediately and rolls back if the request fails.
func (c *ConnectionsController) Connect(ctx context.Context, receiverID int64) error {
	previous := c.setResultStatus(receiverID, models.ConnectionSent)
	c.publishResults()

	if err := c.api.SendConnectionRequest(ctx, receiverID); err != nil {
		c.setResultStatus(receiverID, previous)
		c.publishResults()
		toast(c.pub, levelError, "Failed to send connection request")
		return err
	}

	toast(c.pub, levelSuccess, "Connection request sent!")
	c.RefreshBadge(ctx)
	return nil
}

// Respond accepts or declines a pending connection request. On accept
// the requester's search-result button flips to connected and the
// dashboard refreshes to pick up the new follower count.
func (c *ConnectionsController) Respond(ctx context.Context, connectionID, requesterID int64, action string) error {
	if err := c.api.RespondToConnectionRequest(ctx, connectionID, action); err != nil {
		toast(c.pub, levelError, "Failed to respond to connection request")
		return err
	}

	switch action {
	case "accept":
		toast(c.pub, levelSuccess, "Connection request accepted!")
		c.setResultStatus(requesterID, models.ConnectionConnected)
		c.publishResults()
		if c.onAccept != nil {
			c.onAccept(ctx)
		}
	case "decline":
		toast(c.pub, levelInfo, "Connection request declined")
	}
	c.RefreshBadge(ctx)
	return nil
}

// StartBadgePoll begins the periodic pending-requests refresh. The
// ticker runs for the life of the process; each tick is a no-op while
// logged out, so the poll survives logout and resumes on login.
func (c *ConnectionsController) StartBadgePoll() {
	c.mu.Lock()
	if c.pollStarted {
		c.mu.Unlock()
		return
	}
	c.pollStarted = true
	c.mu.Unlock()

	go func() {
		ticker := time.NewTicker(c.badgeRefresh)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if !c.session.Authenticated() {
					continue
				}
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				c.RefreshBadge(ctx)
				cancel()
			case <-c.stopBadgePoll:
				return
			}
		}
	}()
}

// Close stops the badge poll. Called at process shutdown only.
func (c *ConnectionsController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pollStarted {
		close(c.stopBadgePoll)
		c.pollStarted = false
	}
}

// RefreshBadge fetches pending connection requests and publishes the
// badge count.
func (c *ConnectionsController) RefreshBadge(ctx context.Context) {
	requests, err := c.api.ConnectionRequests(ctx)
	if err != nil {
		log.Printf("Failed to load connection requests: %v", err)
		return
	}

	pending := len(requests.Received)
	c.pub.Publish(protocol.TypeRequestBadge, protocol.RequestBadgeEvent{Pending: pending})

	c.mu.Lock()
	grew := pending > c.lastBadge
	c.lastBadge = pending
	c.mu.Unlock()

	if grew {
		c.notifier.ConnectionRequests(ctx, pending)
	}
}

// setResultStatus updates the stored connection status for one search
// result and returns the previous value for rollback.
func (c *ConnectionsController) setResultStatus(userID int64, status string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.results {
		if c.results[i].ID == userID {
			previous := c.results[i].ConnectionStatus
			c.results[i].ConnectionStatus = status
			return previous
		}
	}
	return models.ConnectionNone
}

func (c *ConnectionsController) publishResults() {
	c.mu.Lock()
	query := c.lastQuery
	users := make([]models.SearchedUser, len(c.results))
	copy(users, c.results)
	c.mu.Unlock()

	c.pub.Publish(protocol.TypeSearchResults, protocol.SearchResultsEvent{
		Query:   query,
		Users:   users,
		Visible: true,
	})
}
