package sessioncache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sechive-dev/sechive-web/internal/domain"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func testPage() domain.PostPage {
	return domain.PostPage{
		Posts: []domain.Post{
			{Id: 1, Kind: domain.KindQuestion, Title: "heap spray in 2026?"},
			{Id: 2, Kind: domain.KindBlog, Title: "fuzzing write-up"},
		},
		NextCursor: "abc",
	}
}

func TestSaveAndGetFeed(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.SaveFeed(7, "home", testPage(), 340))

	state, fresh, err := db.GetFeed(7, "home", time.Minute)
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.True(t, fresh)
	assert.Equal(t, 340, state.ScrollOffset)
	assert.Equal(t, "abc", state.Page.NextCursor)
	require.Len(t, state.Page.Posts, 2)
	assert.Equal(t, "heap spray in 2026?", state.Page.Posts[0].Title)
}

func TestGetFeed_Miss(t *testing.T) {
	db := openTestDB(t)

	state, fresh, err := db.GetFeed(7, "home", time.Minute)
	require.NoError(t, err)
	assert.Nil(t, state)
	assert.False(t, fresh)
}

func TestGetFeed_StaleStillReturned(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.SaveFeed(7, "home", testPage(), 0))

	state, fresh, err := db.GetFeed(7, "home", 0)
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.False(t, fresh)
}

func TestSaveScroll(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.SaveFeed(7, "home", testPage(), 0))

	require.NoError(t, db.SaveScroll(7, "home", 1200))

	state, _, err := db.GetFeed(7, "home", time.Minute)
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, 1200, state.ScrollOffset)

	// Scroll for a user with no saved feed is a no-op, not an error.
	require.NoError(t, db.SaveScroll(8, "home", 50))
}

func TestFeedKeysAreIndependent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.SaveFeed(7, "home", testPage(), 10))
	require.NoError(t, db.SaveFeed(7, "group:redteam", domain.PostPage{}, 20))

	home, _, err := db.GetFeed(7, "home", time.Minute)
	require.NoError(t, err)
	group, _, err := db.GetFeed(7, "group:redteam", time.Minute)
	require.NoError(t, err)

	assert.Equal(t, 10, home.ScrollOffset)
	assert.Equal(t, 20, group.ScrollOffset)
}

func TestPurge(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.SaveFeed(7, "home", testPage(), 0))

	require.NoError(t, db.Purge(-time.Second))

	state, _, err := db.GetFeed(7, "home", time.Minute)
	require.NoError(t, err)
	assert.Nil(t, state)
}
