// Package sessioncache persists per-user feed state between page views:
// the last rendered feed page and the scroll offset within it, so returning
// to the feed restores position without waiting for a refetch.
package sessioncache

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite database backing the session cache.
type DB struct {
	db *sql.DB
}

// Open creates or opens the cache database and runs migrations.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}
	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func migrate(db *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS feed_state (
			user_id INTEGER NOT NULL,
			feed_key TEXT NOT NULL,
			page_json TEXT NOT NULL,
			scroll_offset INTEGER NOT NULL DEFAULT 0,
			saved_at INTEGER NOT NULL,
			PRIMARY KEY (user_id, feed_key)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_feed_state_saved_at ON feed_state(saved_at)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("executing migration: %w", err)
		}
	}
	return nil
}
