package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/Gagannannurichandrashekar/globridge-mvp/client"
	"github.com/Gagannannurichandrashekar/globridge-mvp/config"
	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/api"
	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/db"
	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/notify"
)

func main() {
	cfg := config.Load()

	if err := os.MkdirAll(filepath.Dir(cfg.Cache.Path), 0700); err != nil {
		log.Fatalf("Failed to create cache directory: %v", err)
	}

	database, err := db.NewClientDB(cfg.Cache.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close()

	apiClient, err := api.NewClient(cfg.API.BaseURL)
	if err != nil {
		log.Fatalf("Failed to create API client: %v", err)
	}

	notifier, err := notify.NewTelegram(cfg.Telegram.Token, cfg.Telegram.ChatID)
	if err != nil {
		log.Printf("Telegram notifications disabled: %v", err)
	}

	hub := client.NewHub()
	go hub.Run()

	app := client.NewApp(cfg, apiClient, database, notifier, hub)
	handler := client.NewUIHandler(hub, app)

	// Restore the session from the cookie jar, if the backend still
	// honors it, and start the badge poll.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	app.Sessions.Refresh(ctx)
	app.Connections.StartBadgePoll()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", handler.HandleWebSocket)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("web/ui"))))
	mux.HandleFunc("/", handler.HandleIndex)

	httpServer := &http.Server{
		Addr:    cfg.UI.ListenAddr,
		Handler: mux,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		log.Println("Shutting down...")
		app.Close()
		httpServer.Shutdown(context.Background())
	}()

	log.Printf("Globridge client running at http://%s", cfg.UI.ListenAddr)
	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
