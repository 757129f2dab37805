package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting of the client.
type Config struct {
	API struct {
		BaseURL string
	}
	UI struct {
		ListenAddr string
	}
	Cache struct {
		Path string
	}
	Feed struct {
		PageSize     int
		PollInterval time.Duration
	}
	Messaging struct {
		ReconcileDelay time.Duration
		TypingQuiet    time.Duration
	}
	Search struct {
		Debounce     time.Duration
		MinQueryLen  int
		BadgeRefresh time.Duration
	}
	Telegram struct {
		Token  string
		ChatID string
	}
}

// Load reads configuration from the environment, with a .env file as an
// optional source and sensible defaults for everything else.
func Load() *Config {
	// Missing .env is fine; environment variables still apply.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	cfg := &Config{}

	cfg.API.BaseURL = getEnv("GLOBRIDGE_API_BASE", "http://localhost:8000")
	cfg.UI.ListenAddr = getEnv("GLOBRIDGE_LISTEN", "127.0.0.1:8090")

	cacheDir := getEnv("GLOBRIDGE_CACHE_DIR", defaultCacheDir())
	cfg.Cache.Path = filepath.Join(cacheDir, "client.db")

	cfg.Feed.PageSize = getEnvInt("GLOBRIDGE_FEED_PAGE_SIZE", 10)
	cfg.Feed.PollInterval = getEnvDuration("GLOBRIDGE_FEED_POLL", 30*time.Second)

	cfg.Messaging.ReconcileDelay = getEnvDuration("GLOBRIDGE_RECONCILE_DELAY", 500*time.Millisecond)
	cfg.Messaging.TypingQuiet = getEnvDuration("GLOBRIDGE_TYPING_QUIET", 2*time.Second)

	cfg.Search.Debounce = getEnvDuration("GLOBRIDGE_SEARCH_DEBOUNCE", 300*time.Millisecond)
	cfg.Search.MinQueryLen = getEnvInt("GLOBRIDGE_SEARCH_MIN_CHARS", 2)
	cfg.Search.BadgeRefresh = getEnvDuration("GLOBRIDGE_BADGE_REFRESH", 30*time.Second)

	cfg.Telegram.Token = getEnv("GLOBRIDGE_TG_TOKEN", "")
	cfg.Telegram.ChatID = getEnv("GLOBRIDGE_TG_CHAT", "")

	return cfg
}

func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "globridge")
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("WARNING: invalid %s=%q, using default %d", key, raw, fallback)
		return fallback
	}
	return value
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("WARNING: invalid %s=%q, using default %s", key, raw, fallback)
		return fallback
	}
	return value
}
