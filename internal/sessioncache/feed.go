package sessioncache

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/sechive-dev/sechive-web/internal/domain"
)

// FeedState is one user's saved position in one feed.
type FeedState struct {
	Page         domain.PostPage
	ScrollOffset int
	SavedAt      time.Time
}

// SaveFeed stores the rendered feed page and scroll offset for a user.
// feedKey distinguishes feeds ("home", "group:<slug>", "kind:question").
func (d *DB) SaveFeed(userId domain.UserId, feedKey string, page domain.PostPage, scrollOffset int) error {
	pageJSON, err := json.Marshal(page)
	if err != nil {
		return err
	}
	_, err = d.db.Exec(
		`INSERT OR REPLACE INTO feed_state (user_id, feed_key, page_json, scroll_offset, saved_at)
		 VALUES (?, ?, ?, ?, ?)`,
		userId, feedKey, string(pageJSON), scrollOffset, time.Now().Unix())
	return err
}

// SaveScroll updates only the scroll offset of an existing entry. A missing
// entry is not an error; there is just nothing to restore later.
func (d *DB) SaveScroll(userId domain.UserId, feedKey string, scrollOffset int) error {
	_, err := d.db.Exec(
		`UPDATE feed_state SET scroll_offset = ? WHERE user_id = ? AND feed_key = ?`,
		scrollOffset, userId, feedKey)
	return err
}

// GetFeed retrieves a saved feed state. Returns (state, isFresh, error);
// state is nil on cache miss. Stale entries are still returned so callers
// can show them while refetching.
func (d *DB) GetFeed(userId domain.UserId, feedKey string, ttl time.Duration) (*FeedState, bool, error) {
	row := d.db.QueryRow(
		`SELECT page_json, scroll_offset, saved_at FROM feed_state WHERE user_id = ? AND feed_key = ?`,
		userId, feedKey)

	var pageJSON string
	var scrollOffset int
	var savedAt int64
	err := row.Scan(&pageJSON, &scrollOffset, &savedAt)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var page domain.PostPage
	if err := json.Unmarshal([]byte(pageJSON), &page); err != nil {
		return nil, false, err
	}

	state := &FeedState{
		Page:         page,
		ScrollOffset: scrollOffset,
		SavedAt:      time.Unix(savedAt, 0),
	}
	isFresh := time.Since(state.SavedAt) < ttl
	return state, isFresh, nil
}

// Purge removes entries older than maxAge.
func (d *DB) Purge(maxAge time.Duration) error {
	cutoff := time.Now().Add(-maxAge).Unix()
	_, err := d.db.Exec(`DELETE FROM feed_state WHERE saved_at < ?`, cutoff)
	return err
}
