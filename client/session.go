package client

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/api"
	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/protocol"
	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/session"
)

// Client-side validation failures. These short-circuit before any
// network call.
var (
	ErrMissingFields    = errors.New("please fill in all fields")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters long")
)

// SessionController owns login, registration, logout and session
// refresh, and enforces the gate side effects on the rest of the UI.
type SessionController struct {
	api     *api.Client
	session *session.Holder
	router  *Router
	pub     Publisher
	landing View
}

// NewSessionController wires the session flow.
func NewSessionController(apiClient *api.Client, sess *session.Holder, router *Router, pub Publisher) *SessionController {
	return &SessionController{
		api:     apiClient,
		session: sess,
		router:  router,
		pub:     pub,
		landing: ViewDashboard,
	}
}

// SetLanding overrides the view an authenticated user lands on,
// restoring the last view from a previous run. Unknown views are
// ignored.
func (s *SessionController) SetLanding(view View) {
	if _, ok := viewLabels[view]; ok {
		s.landing = view
	}
}

// Refresh re-fetches /api/me and replaces the session reference
// wholesale. An authenticated user sitting on the landing view is moved
// to the last remembered view (the dashboard by default); a missing
// session reverts everything to home.
func (s *SessionController) Refresh(ctx context.Context) error {
	user, err := s.api.Me(ctx)
	if err != nil {
		log.Printf("Failed to refresh session: %v", err)
		return err
	}

	if user == nil {
		s.session.Clear()
		s.publishSession()
		s.router.ForceHome()
		return nil
	}

	s.session.Set(user)
	s.publishSession()

	if s.router.Active() == ViewHome {
		return s.router.Navigate(ctx, s.landing)
	}
	return nil
}

// Login validates the form, authenticates, and refreshes the session on
// success.
func (s *SessionController) Login(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return ErrMissingFields
	}

	user, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("login failed, please check your credentials")
	}

	toast(s.pub, levelSuccess, "Login successful!")
	return s.Refresh(ctx)
}

// Register creates an account and then logs in with the same
// credentials. A failed auto-login still reports the account as created.
func (s *SessionController) Register(ctx context.Context, name, email, password, role string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return ErrMissingFields
	}
	if len(password) < 6 {
		return ErrPasswordTooShort
	}

	if err := s.api.Register(ctx, name, email, password, role); err != nil {
		return err
	}

	if _, err := s.api.Login(ctx, email, password); err != nil {
		toast(s.pub, levelSuccess, "Account created successfully! Please log in.")
		return nil
	}
	toast(s.pub, levelSuccess, "Account created and logged in successfully!")
	return s.Refresh(ctx)
}

// Logout drops the server session and reverts the UI to the landing
// view.
func (s *SessionController) Logout(ctx context.Context) error {
	if err := s.api.Logout(ctx); err != nil {
		log.Printf("Logout request failed: %v", err)
	}
	return s.Refresh(ctx)
}

// HandleAuthFailure reverts to the landing view when a call failed with
// an expired or missing session. Other errors are left to the caller.
func (s *SessionController) HandleAuthFailure(err error) {
	if !api.IsAuthError(err) {
		return
	}
	s.session.Clear()
	s.publishSession()
	s.router.ForceHome()
}

func (s *SessionController) publishSession() {
	user := s.session.Current()
	s.pub.Publish(protocol.TypeSession, protocol.SessionEvent{
		User:          user,
		Authenticated: user != nil,
		ShowAdminNav:  user.IsAdmin(),
	})
}
