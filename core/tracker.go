package core

import (
	"context"
)

// session key of the most recently created posting
const createdPostingKey = "created_posting_uid"

// RecordCreatedPosting remembers the posting a user just created, so the
// next page view can highlight it. Concurrent creations in one session
// race on this key; last write wins, the pointer is a UX convenience and
// not correctness-critical.
func (c *CoreDB) RecordCreatedPosting(ctx context.Context, uid string) {
	c.SessionManager.Put(ctx, createdPostingKey, uid)
}

// CreatedPosting resolves the session's created-posting pointer, or nil
// if there is none. A stale pointer (posting deleted, uid unknown) is
// removed on the spot, so the next call returns nil without hitting the
// store again.
//
// TODO expire the pointer after a fixed duration
func (c *CoreDB) CreatedPosting(ctx context.Context) *Posting {
	var uid = c.SessionManager.GetString(ctx, createdPostingKey)
	if uid == "" {
		return nil
	}
	p, err := c.GetPostingByUID(uid)
	if err != nil {
		c.SessionManager.Remove(ctx, createdPostingKey)
		return nil
	}
	return p
}
