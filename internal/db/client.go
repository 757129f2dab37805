package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/models"
)

// ClientDB is the local cache: UI preferences and the last-known copy of
// each message thread, so a conversation can paint instantly while the
// network reload is in flight.
type ClientDB struct {
	db *sql.DB
}

// NewClientDB opens or creates the client database.
func NewClientDB(path string) (*ClientDB, error) {
	db, err := sql.Open("sqlite3", path+"?_fk=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	cdb := &ClientDB{db: db}
	if err := cdb.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return cdb, nil
}

// Close closes the database connection.
func (c *ClientDB) Close() error {
	return c.db.Close()
}

func (c *ClientDB) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS preferences (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS cached_messages (
			partner_id INTEGER NOT NULL,
			message_id INTEGER NOT NULL,
			content TEXT NOT NULL,
			from_me INTEGER NOT NULL,
			is_read INTEGER NOT NULL,
			created_at DATETIME NOT NULL,
			PRIMARY KEY (partner_id, message_id)
		);

		CREATE INDEX IF NOT EXISTS idx_cached_messages_thread
			ON cached_messages(partner_id, created_at);
	`
	_, err := c.db.Exec(schema)
	return err
}

// GetPreference returns a preference value, or empty string if unset.
func (c *ClientDB) GetPreference(key string) (string, error) {
	var value string
	err := c.db.QueryRow(`SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get preference: %w", err)
	}
	return value, nil
}

// SetPreference stores a preference value.
func (c *ClientDB) SetPreference(key, value string) error {
	_, err := c.db.Exec(`
		INSERT INTO preferences (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set preference: %w", err)
	}
	return nil
}

// CacheThread replaces the cached copy of one partner's thread with the
// server-confirmed messages. Provisional messages are never cached.
func (c *ClientDB) CacheThread(partnerID int64, messages []models.Message) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM cached_messages WHERE partner_id = ?`, partnerID); err != nil {
		return fmt.Errorf("failed to clear cached thread: %w", err)
	}
	for _, m := range messages {
		if m.Provisional {
			continue
		}
		_, err := tx.Exec(`
			INSERT INTO cached_messages (partner_id, message_id, content, from_me, is_read, created_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, partnerID, m.ID, m.Content, m.IsFromMe, m.IsRead, m.CreatedAt.UTC())
		if err != nil {
			return fmt.Errorf("failed to cache message: %w", err)
		}
	}
	return tx.Commit()
}

// CachedThread returns the last-known messages for a partner in thread
// order. An empty slice means nothing is cached.
func (c *ClientDB) CachedThread(partnerID int64) ([]models.Message, error) {
	rows, err := c.db.Query(`
		SELECT message_id, content, from_me, is_read, created_at
		FROM cached_messages
		WHERE partner_id = ?
		ORDER BY created_at ASC
	`, partnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cached thread: %w", err)
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var m models.Message
		var created time.Time
		if err := rows.Scan(&m.ID, &m.Content, &m.IsFromMe, &m.IsRead, &created); err != nil {
			return nil, fmt.Errorf("failed to scan cached message: %w", err)
		}
		m.CreatedAt = models.Timestamp{Time: created}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
