package client

import (
	"context"
	"log"

	"github.com/Gagannannurichandrashekar/globridge-mvp/config"
	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/api"
	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/db"
	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/models"
	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/notify"
	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/session"
	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/state"
)

const lastViewKey = "last_view"

// App wires the API client, session, router and all controllers into a
// single unit. Every piece of state the UI renders lives here.
type App struct {
	Session     *session.Holder
	Router      *Router
	Sessions    *SessionController
	Feed        *FeedController
	FeedStore   *state.FeedStore
	Messaging   *MessagingController
	Connections *ConnectionsController
	Listings    *ListingsController
	Costs       *CostsController
	Dashboard   *DashboardController
}

// NewApp builds the application graph and registers the view loaders.
func NewApp(cfg *config.Config, apiClient *api.Client, cache *db.ClientDB, notifier *notify.Notifier, pub Publisher) *App {
	sess := session.NewHolder()
	router := NewRouter(sess, pub)
	store := state.NewFeedStore()

	app := &App{
		Session:     sess,
		Router:      router,
		FeedStore:   store,
		Sessions:    NewSessionController(apiClient, sess, router, pub),
		Feed:        NewFeedController(apiClient, store, pub, notifier, cfg.Feed.PageSize, cfg.Feed.PollInterval),
		Messaging:   NewMessagingController(apiClient, cache, pub, notifier, cfg.Messaging.ReconcileDelay, cfg.Messaging.TypingQuiet),
		Connections: NewConnectionsController(apiClient, sess, pub, notifier, cfg.Search.Debounce, cfg.Search.MinQueryLen, cfg.Search.BadgeRefresh),
		Listings:    NewListingsController(apiClient, pub),
		Costs:       NewCostsController(apiClient, cache, pub),
		Dashboard:   NewDashboardController(apiClient, sess, pub),
	}

	app.Feed.OnOpenMessages(func(ctx context.Context) {
		router.Navigate(ctx, ViewMessages)
	})

	// Remember the active view so the next login resumes where the user
	// left off. Home is the logged-out state and is never saved.
	if cache != nil {
		if saved, err := cache.GetPreference(lastViewKey); err == nil && saved != "" {
			app.Sessions.SetLanding(View(saved))
		}
		router.OnChange(func(v View) {
			if v == ViewHome {
				return
			}
			if err := cache.SetPreference(lastViewKey, string(v)); err != nil {
				log.Printf("Failed to save last view: %v", err)
			}
		})
	}

	// Accepting a connection changes the dashboard's follower counts, so
	// reload it even when another view is active.
	app.Connections.OnAccept(func(ctx context.Context) {
		app.Dashboard.LoadPersonal(ctx)
	})

	router.RegisterLoader(ViewListings, func(ctx context.Context) error {
		return app.Listings.Load(ctx, models.RequirementFilter{})
	})
	router.RegisterLoader(ViewFeed, app.Feed.Reload)
	router.RegisterLoader(ViewCosts, app.Costs.LoadCountries)
	router.RegisterLoader(ViewMessages, app.Messaging.LoadConversations)
	router.RegisterLoader(ViewPersonal, app.Dashboard.LoadPersonal)
	router.RegisterLoader(ViewAdmin, app.Dashboard.LoadAdmin)

	return app
}

// Close releases background resources. Called at process shutdown.
func (a *App) Close() {
	a.Feed.Close()
	a.Connections.Close()
}
