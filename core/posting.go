package core

import (
	"errors"
	"time"
)

// ErrNotFound is returned when an id, uid or permalink does not resolve.
var ErrNotFound = errors.New("not found")

// A Posting is a short user-authored article.
//
// UID is the stable external handle, assigned once at creation and never
// reused. Permalink embeds the uid plus a slug of the creation-time
// title; it is not re-derived when the title changes. OwnerID never
// changes after creation. Public is true from creation until an admin
// unpublishes the posting; there is no way back to public.
type Posting struct {
	ID          int
	UID         string
	Permalink   string
	OwnerID     int
	OwnerName   string // joined from the usr table, read-only
	Title       string
	Text        string
	ScheduledAt *time.Time // optional future-publication hint
	PublishedAt time.Time
	Public      bool
}

type PostingDB interface {
	CountPublicPostings() (int, error)
	DeletePosting(id int) error
	GetPosting(id int) (*Posting, error)
	GetPostingByUID(uid string) (*Posting, error)
	GetPublicPostings(limit, offset int) ([]*Posting, error)
	InsertPosting(p *Posting) error
	UpdatePosting(p *Posting) error
}

// GetPostingByPermalink resolves a permalink via its leading uid segment.
// Trailing slug content is ignored, so a shared link keeps working even
// if its slug part has drifted.
func (c *CoreDB) GetPostingByPermalink(permalink string) (*Posting, error) {
	return c.GetPostingByUID(UIDFromPermalink(permalink))
}
