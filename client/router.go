package client

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/protocol"
	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/session"
)

// View identifies one top-level panel. Exactly one view is active at a
// time.
type View string

const (
	ViewHome      View = "home"
	ViewListings  View = "listings"
	ViewFeed      View = "feed"
	ViewCosts     View = "costs"
	ViewMessages  View = "messages"
	ViewDashboard View = "dashboard"
	ViewPersonal  View = "personal"
	ViewAdmin     View = "admin"
)

// viewLabels are the user-facing names used in gate refusal messages.
var viewLabels = map[View]string{
	ViewListings:  "Listings",
	ViewFeed:      "Feed",
	ViewCosts:     "Cost Tool",
	ViewMessages:  "Messages",
	ViewDashboard: "Dashboard",
	ViewPersonal:  "My Profile",
	ViewAdmin:     "Admin Panel",
}

var (
	// ErrLoginRequired is returned when an unauthenticated navigation to a
	// gated view is refused. The active view does not change.
	ErrLoginRequired = errors.New("login required")

	// ErrUnknownView is returned for navigation to an unrecognized view.
	ErrUnknownView = errors.New("unknown view")
)

// LoaderFunc loads a view's data when the view is entered. A failed
// loader leaves the view visible with stale or empty content; there is
// no automatic retry.
type LoaderFunc func(ctx context.Context) error

// Router keeps the single active view and runs gate checks before every
// transition.
type Router struct {
	mu       sync.Mutex
	active   View
	session  *session.Holder
	pub      Publisher
	loaders  map[View]LoaderFunc
	onChange func(View)
}

// NewRouter creates a router showing the landing view.
func NewRouter(sess *session.Holder, pub Publisher) *Router {
	return &Router{
		active:  ViewHome,
		session: sess,
		pub:     pub,
		loaders: make(map[View]LoaderFunc),
	}
}

// RegisterLoader sets the loader invoked when view becomes active.
func (r *Router) RegisterLoader(view View, fn LoaderFunc) {
	r.loaders[view] = fn
}

// OnChange registers a callback invoked after every view transition,
// used to remember the last view across restarts.
func (r *Router) OnChange(fn func(View)) {
	r.onChange = fn
}

// Active returns the currently visible view.
func (r *Router) Active() View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

// Navigate switches to the target view. Every view except home is gated
// on an authenticated session: a refused transition produces an error
// notification and leaves the active view untouched.
func (r *Router) Navigate(ctx context.Context, view View) error {
	label, gated := viewLabels[view]
	if view != ViewHome && !gated {
		return fmt.Errorf("%w: %q", ErrUnknownView, view)
	}

	if view != ViewHome && !r.session.Authenticated() {
		toast(r.pub, levelError, "Please login to access "+label)
		return ErrLoginRequired
	}

	r.setActive(view)

	if loader, ok := r.loaders[view]; ok {
		if err := loader(ctx); err != nil {
			// View stays visible; the user can re-trigger the action.
			log.Printf("Loader for view %q failed: %v", view, err)
		}
	}
	return nil
}

// ForceHome reverts to the landing view without gate checks, used when a
// session disappears.
func (r *Router) ForceHome() {
	r.setActive(ViewHome)
}

func (r *Router) setActive(view View) {
	r.mu.Lock()
	r.active = view
	r.mu.Unlock()
	r.pub.Publish(protocol.TypeView, protocol.ViewEvent{View: string(view)})
	if r.onChange != nil {
		r.onChange(view)
	}
}
