package client

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/api"
	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/protocol"
)

// recorder captures published events for assertions.
type recorder struct {
	mu     sync.Mutex
	events []recordedEvent
}

type recordedEvent struct {
	Type    protocol.MessageType
	Payload interface{}
}

func (r *recorder) Publish(t protocol.MessageType, payload interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recordedEvent{Type: t, Payload: payload})
}

// ofType returns every recorded payload of one event type, in order.
func (r *recorder) ofType(t protocol.MessageType) []interface{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []interface{}
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e.Payload)
		}
	}
	return out
}

// last returns the most recent payload of one event type, nil if none.
func (r *recorder) last(t protocol.MessageType) interface{} {
	events := r.ofType(t)
	if len(events) == 0 {
		return nil
	}
	return events[len(events)-1]
}

// notifications returns every toast message published so far.
func (r *recorder) notifications() []protocol.NotificationEvent {
	var out []protocol.NotificationEvent
	for _, p := range r.ofType(protocol.TypeNotification) {
		out = append(out, p.(protocol.NotificationEvent))
	}
	return out
}

func (r *recorder) hasNotification(message string) bool {
	for _, n := range r.notifications() {
		if n.Message == message {
			return true
		}
	}
	return false
}

// newTestAPI stands up a fake backend and a client pointed at it.
func newTestAPI(t *testing.T, handler http.Handler) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := api.NewClient(srv.URL)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}
