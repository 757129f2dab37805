package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/models"
)

func newTestDB(t *testing.T) *ClientDB {
	t.Helper()
	cdb, err := NewClientDB(filepath.Join(t.TempDir(), "client.db"))
	if err != nil {
		t.Fatalf("NewClientDB: %v", err)
	}
	t.Cleanup(func() { cdb.Close() })
	return cdb
}

func TestPreferences(t *testing.T) {
	cdb := newTestDB(t)

	value, err := cdb.GetPreference("missing")
	if err != nil {
		t.Fatalf("GetPreference: %v", err)
	}
	if value != "" {
		t.Errorf("unset preference = %q, want empty", value)
	}

	if err := cdb.SetPreference("theme", "dark"); err != nil {
		t.Fatalf("SetPreference: %v", err)
	}
	// Upsert, not insert-or-fail.
	if err := cdb.SetPreference("theme", "light"); err != nil {
		t.Fatalf("SetPreference update: %v", err)
	}
	value, err = cdb.GetPreference("theme")
	if err != nil {
		t.Fatalf("GetPreference: %v", err)
	}
	if value != "light" {
		t.Errorf("preference = %q, want light", value)
	}
}

func TestCacheThreadRoundTrip(t *testing.T) {
	cdb := newTestDB(t)
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	messages := []models.Message{
		{ID: 1, Content: "hello", IsFromMe: false, IsRead: true, CreatedAt: models.Timestamp{Time: base}},
		{ID: 2, Content: "hi back", IsFromMe: true, IsRead: true, CreatedAt: models.Timestamp{Time: base.Add(time.Minute)}},
		{Content: "in flight", IsFromMe: true, Provisional: true, CreatedAt: models.Timestamp{Time: base.Add(2 * time.Minute)}},
	}
	if err := cdb.CacheThread(7, messages); err != nil {
		t.Fatalf("CacheThread: %v", err)
	}

	got, err := cdb.CachedThread(7)
	if err != nil {
		t.Fatalf("CachedThread: %v", err)
	}
	// The provisional message must not have been persisted.
	if len(got) != 2 {
		t.Fatalf("cached %d messages, want 2", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 2 {
		t.Errorf("thread order = [%d %d], want [1 2]", got[0].ID, got[1].ID)
	}
	if !got[1].IsFromMe || got[1].Content != "hi back" {
		t.Errorf("message 2 = %+v", got[1])
	}

	// Re-caching replaces wholesale.
	if err := cdb.CacheThread(7, messages[:1]); err != nil {
		t.Fatalf("CacheThread replace: %v", err)
	}
	got, err = cdb.CachedThread(7)
	if err != nil {
		t.Fatalf("CachedThread: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("cached %d messages after replace, want 1", len(got))
	}
}

func TestCachedThreadIsolatedByPartner(t *testing.T) {
	cdb := newTestDB(t)
	now := models.Timestamp{Time: time.Now().UTC()}

	cdb.CacheThread(1, []models.Message{{ID: 10, Content: "a", CreatedAt: now}})
	cdb.CacheThread(2, []models.Message{{ID: 20, Content: "b", CreatedAt: now}})

	got, err := cdb.CachedThread(1)
	if err != nil {
		t.Fatalf("CachedThread: %v", err)
	}
	if len(got) != 1 || got[0].ID != 10 {
		t.Errorf("partner 1 thread = %+v", got)
	}
}
