package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatedPostingNone(t *testing.T) {
	db, mem, ctx := newTestDB(t)
	assert.Nil(t, db.CreatedPosting(ctx))
	assert.Zero(t, mem.uidCalls) // no session value, no store lookup
}

func TestCreatedPostingStale(t *testing.T) {

	db, mem, ctx := newTestDB(t)

	// posting was deleted in the meantime, the uid resolves to nothing
	db.RecordCreatedPosting(ctx, "gone000000")

	assert.Nil(t, db.CreatedPosting(ctx))
	assert.Equal(t, 1, mem.uidCalls)

	// the stale pointer was removed on first read, the second read
	// doesn't hit the store again
	assert.Nil(t, db.CreatedPosting(ctx))
	assert.Equal(t, 1, mem.uidCalls)
}

func TestCreatedPostingOverwrite(t *testing.T) {

	db, _, ctx := newTestDB(t)
	user := &testUser{id: 1, name: "alice"}

	first, err := db.CreatePosting(ctx, PostingFields{Title: "first"}, user)
	require.NoError(t, err)
	second, err := db.CreatePosting(ctx, PostingFields{Title: "second"}, user)
	require.NoError(t, err)

	// last write wins
	created := db.CreatedPosting(ctx)
	require.NotNil(t, created)
	assert.Equal(t, second.UID, created.UID)
	assert.NotEqual(t, first.UID, created.UID)
}
