// Package session holds the single process-wide reference to the
// authenticated user. It is replaced wholesale on every refresh and
// cleared on logout or auth failure, so readers always see a consistent
// snapshot.
package session

import (
	"sync"

	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/models"
)

// Holder is the shared session state.
type Holder struct {
	mu   sync.RWMutex
	user *models.User
}

// NewHolder creates an unauthenticated holder.
func NewHolder() *Holder {
	return &Holder{}
}

// Set replaces the current user. A copy is stored so later mutation of
// the argument cannot leak into readers.
func (h *Holder) Set(user *models.User) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if user == nil {
		h.user = nil
		return
	}
	copied := *user
	h.user = &copied
}

// Clear drops the session.
func (h *Holder) Clear() {
	h.Set(nil)
}

// Current returns a snapshot of the user, or nil when unauthenticated.
func (h *Holder) Current() *models.User {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.user == nil {
		return nil
	}
	copied := *h.user
	return &copied
}

// Authenticated reports whether a session is present.
func (h *Holder) Authenticated() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.user != nil
}

// IsAdmin reports whether the current user has the admin role.
func (h *Holder) IsAdmin() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.user.IsAdmin()
}
