package core

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

type testUser struct {
	id    int
	name  string
	admin bool
}

func (u *testUser) ID() int      { return u.id }
func (u *testUser) Name() string { return u.name }
func (u *testUser) Admin() bool  { return u.admin }

// memPostingDB is an in-memory PostingDB for tests. It returns copies,
// like a real store would return freshly scanned rows.
type memPostingDB struct {
	nextID   int
	postings map[int]*Posting
	uidCalls int // number of GetPostingByUID lookups
}

func newMemPostingDB() *memPostingDB {
	return &memPostingDB{
		postings: make(map[int]*Posting),
	}
}

func (m *memPostingDB) CountPublicPostings() (int, error) {
	var count int
	for _, p := range m.postings {
		if p.Public {
			count++
		}
	}
	return count, nil
}

func (m *memPostingDB) DeletePosting(id int) error {
	delete(m.postings, id)
	return nil
}

func (m *memPostingDB) GetPosting(id int) (*Posting, error) {
	p, ok := m.postings[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (m *memPostingDB) GetPostingByUID(uid string) (*Posting, error) {
	m.uidCalls++
	for _, p := range m.postings {
		if p.UID == uid {
			clone := *p
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memPostingDB) GetPublicPostings(limit, offset int) ([]*Posting, error) {
	var public []*Posting
	for _, p := range m.postings {
		if p.Public {
			clone := *p
			public = append(public, &clone)
		}
	}
	sort.Slice(public, func(i, j int) bool {
		if !public[i].PublishedAt.Equal(public[j].PublishedAt) {
			return public[i].PublishedAt.After(public[j].PublishedAt)
		}
		return public[i].ID > public[j].ID
	})
	if offset > len(public) {
		offset = len(public)
	}
	public = public[offset:]
	if limit < len(public) {
		public = public[:limit]
	}
	return public, nil
}

func (m *memPostingDB) InsertPosting(p *Posting) error {
	m.nextID++
	p.ID = m.nextID
	clone := *p
	m.postings[p.ID] = &clone
	return nil
}

// UpdatePosting touches content columns only, like the sql statement.
func (m *memPostingDB) UpdatePosting(p *Posting) error {
	stored, ok := m.postings[p.ID]
	if !ok {
		return ErrNotFound
	}
	stored.Title = p.Title
	stored.Text = p.Text
	stored.ScheduledAt = p.ScheduledAt
	stored.Public = p.Public
	return nil
}

// newTestDB returns a CoreDB on an in-memory posting store plus a
// context with a loaded session, as the scs middleware would provide it.
func newTestDB(t *testing.T) (*CoreDB, *memPostingDB, context.Context) {
	t.Helper()
	mem := newMemPostingDB()
	db := &CoreDB{PostingDB: mem}
	db.Init(nil, "")
	ctx, err := db.SessionManager.Load(context.Background(), "")
	require.NoError(t, err)
	return db, mem, ctx
}
