package sqldb

import (
	"database/sql"
	"testing"
	"time"

	"github.com/cambricorp/elixirstatus-web/core"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestDB returns the stores on a fresh in-memory database. The usr
// table must exist first, the posting statements join it.
func openTestDB(t *testing.T) (*PostingDB, *UserDB) {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})
	userDB := NewUserDB(db)
	return NewPostingDB(db), userDB
}

func testPosting(uid string, ownerID int, publishedAt time.Time) *core.Posting {
	return &core.Posting{
		UID:         uid,
		Permalink:   uid + "-some-title",
		OwnerID:     ownerID,
		Title:       "Some Title",
		Text:        "some text",
		PublishedAt: publishedAt,
		Public:      true,
	}
}

func TestPostingRoundTrip(t *testing.T) {

	postingDB, userDB := openTestDB(t)

	owner, err := userDB.InsertUser("alice@example.com")
	require.NoError(t, err)

	at := time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC)
	p := testPosting("abcdefghij", owner.ID(), time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC))
	p.ScheduledAt = &at

	require.NoError(t, postingDB.InsertPosting(p))
	assert.NotZero(t, p.ID)

	byID, err := postingDB.GetPosting(p.ID)
	require.NoError(t, err)
	byUID, err := postingDB.GetPostingByUID(p.UID)
	require.NoError(t, err)

	for _, got := range []*core.Posting{byID, byUID} {
		assert.Equal(t, p.ID, got.ID)
		assert.Equal(t, p.UID, got.UID)
		assert.Equal(t, p.Permalink, got.Permalink)
		assert.Equal(t, owner.ID(), got.OwnerID)
		assert.Equal(t, "alice@example.com", got.OwnerName) // joined from usr
		assert.Equal(t, p.Title, got.Title)
		assert.Equal(t, p.Text, got.Text)
		require.NotNil(t, got.ScheduledAt)
		assert.True(t, got.ScheduledAt.Equal(at))
		assert.True(t, got.PublishedAt.Equal(p.PublishedAt))
		assert.True(t, got.Public)
	}
}

func TestPostingNotFound(t *testing.T) {

	postingDB, _ := openTestDB(t)

	_, err := postingDB.GetPosting(42)
	assert.ErrorIs(t, err, core.ErrNotFound)

	_, err = postingDB.GetPostingByUID("nosuchuid0")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestPostingOrphanOwner(t *testing.T) {

	// a posting survives its owner, the join just yields an empty name
	postingDB, _ := openTestDB(t)

	p := testPosting("abcdefghij", 99, time.Now())
	require.NoError(t, postingDB.InsertPosting(p))

	got, err := postingDB.GetPosting(p.ID)
	require.NoError(t, err)
	assert.Empty(t, got.OwnerName)
}

func TestPostingUniqueUID(t *testing.T) {

	postingDB, _ := openTestDB(t)

	require.NoError(t, postingDB.InsertPosting(testPosting("abcdefghij", 1, time.Now())))

	dup := testPosting("abcdefghij", 1, time.Now())
	dup.Permalink = "abcdefghij-other"
	assert.Error(t, postingDB.InsertPosting(dup))
}

func TestPublicPostings(t *testing.T) {

	postingDB, _ := openTestDB(t)

	base := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)

	older := testPosting("olderuid00", 1, base)
	newer := testPosting("neweruid00", 1, base.Add(time.Hour))
	newer.Permalink = "neweruid00-some-title"
	hidden := testPosting("hiddenuid0", 1, base.Add(2*time.Hour))
	hidden.Permalink = "hiddenuid0-some-title"
	hidden.Public = false
	older.Permalink = "olderuid00-some-title"

	for _, p := range []*core.Posting{older, newer, hidden} {
		require.NoError(t, postingDB.InsertPosting(p))
	}

	count, err := postingDB.CountPublicPostings()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	list, err := postingDB.GetPublicPostings(10, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "neweruid00", list[0].UID) // newest first
	assert.Equal(t, "olderuid00", list[1].UID)

	list, err = postingDB.GetPublicPostings(1, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "olderuid00", list[0].UID)

	list, err = postingDB.GetPublicPostings(10, 5)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUpdatePostingColumns(t *testing.T) {

	postingDB, _ := openTestDB(t)

	p := testPosting("abcdefghij", 1, time.Now())
	require.NoError(t, postingDB.InsertPosting(p))

	p.Title = "changed"
	p.Text = "changed text"
	p.Public = false
	at := time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC)
	p.ScheduledAt = &at
	require.NoError(t, postingDB.UpdatePosting(p))

	got, err := postingDB.GetPosting(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "changed", got.Title)
	assert.Equal(t, "changed text", got.Text)
	assert.False(t, got.Public)
	require.NotNil(t, got.ScheduledAt)
	assert.True(t, got.ScheduledAt.Equal(at))

	// clearing scheduledAt writes NULL
	p.ScheduledAt = nil
	require.NoError(t, postingDB.UpdatePosting(p))
	got, err = postingDB.GetPosting(p.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ScheduledAt)
}

func TestDeletePostingRow(t *testing.T) {

	postingDB, _ := openTestDB(t)

	p := testPosting("abcdefghij", 1, time.Now())
	require.NoError(t, postingDB.InsertPosting(p))
	require.NoError(t, postingDB.DeletePosting(p.ID))

	_, err := postingDB.GetPosting(p.ID)
	assert.ErrorIs(t, err, core.ErrNotFound)

	// deleting again is a no-op
	assert.NoError(t, postingDB.DeletePosting(p.ID))
}
