package core

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginateEmpty(t *testing.T) {

	db, _, _ := newTestDB(t)

	page, err := db.Paginate("1", 10)
	require.NoError(t, err)
	assert.Empty(t, page.Entries)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 1, page.Total) // an empty listing still has one page
}

func TestPaginate(t *testing.T) {

	db, mem, _ := newTestDB(t)

	base := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		require.NoError(t, mem.InsertPosting(&Posting{
			UID:         fmt.Sprintf("uid%07d", i),
			Permalink:   fmt.Sprintf("uid%07d", i),
			OwnerID:     1,
			Title:       fmt.Sprintf("posting %d", i),
			PublishedAt: base.Add(time.Duration(i) * time.Minute),
			Public:      true,
		}))
	}

	// one hidden posting must not show up anywhere
	require.NoError(t, mem.InsertPosting(&Posting{
		UID:         "hiddenuid0",
		Permalink:   "hiddenuid0",
		OwnerID:     1,
		PublishedAt: base.Add(time.Hour),
		Public:      false,
	}))

	page, err := db.Paginate("1", 10)
	require.NoError(t, err)
	require.Len(t, page.Entries, 10)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, "posting 24", page.Entries[0].Title) // newest first

	page, err = db.Paginate("3", 10)
	require.NoError(t, err)
	assert.Len(t, page.Entries, 5)
	assert.Equal(t, "posting 0", page.Entries[4].Title)

	// beyond the last page is empty, not an error
	page, err = db.Paginate("4", 10)
	require.NoError(t, err)
	assert.Empty(t, page.Entries)
	assert.Equal(t, 4, page.Number)
	assert.Equal(t, 3, page.Total)
}

func TestPaginatePageArg(t *testing.T) {

	db, mem, _ := newTestDB(t)
	require.NoError(t, mem.InsertPosting(&Posting{
		UID:         "someuid123",
		Permalink:   "someuid123",
		OwnerID:     1,
		PublishedAt: time.Now(),
		Public:      true,
	}))

	for _, arg := range []string{"", "abc", "0", "-3", "1.5"} {
		page, err := db.Paginate(arg, 10)
		require.NoError(t, err)
		assert.Equal(t, 1, page.Number, "page arg %q", arg)
		assert.Len(t, page.Entries, 1, "page arg %q", arg)
	}
}
