package core

import (
	"context"
	"log"
	"time"

	"github.com/cambricorp/elixirstatus-web/auth"
	"github.com/cambricorp/elixirstatus-web/publisher"
)

// CreatePosting runs the create workflow: authorization, uid and
// permalink assignment, validation, insert, post-commit announcement,
// session pointer. When validation rejects the input, the returned error
// is a ValidationErrors and nothing has been persisted.
func (c *CoreDB) CreatePosting(ctx context.Context, fields PostingFields, user auth.User) (*Posting, error) {

	if err := Allowed(ActionCreate, user, nil); err != nil {
		return nil, err
	}

	uid, err := c.generatePostingUID()
	if err != nil {
		return nil, err
	}

	var p = &Posting{
		UID:         uid,
		Permalink:   PermalinkFor(uid, fields.Title),
		OwnerID:     user.ID(),
		OwnerName:   user.Name(),
		Title:       fields.Title,
		Text:        fields.Text,
		PublishedAt: time.Now(),
		Public:      true,
	}
	if fields.HasScheduledAt {
		p.ScheduledAt = fields.ScheduledAt
	}

	if err := validatePosting(p); err != nil {
		return nil, err
	}

	if err := c.InsertPosting(p); err != nil {
		return nil, err
	}

	c.announce(publisher.Created, p)
	c.RecordCreatedPosting(ctx, p.UID)

	return p, nil
}

// UpdatePosting shadows PostingDB.UpdatePosting. It changes content
// only: uid, permalink, owner and publication time are never altered,
// and ScheduledAt only when the payload carried the field.
func (c *CoreDB) UpdatePosting(id int, fields PostingFields, user auth.User) (*Posting, error) {

	p, err := c.GetPosting(id)
	if err != nil {
		return nil, err
	}

	if err := Allowed(ActionUpdate, user, p); err != nil {
		return nil, err
	}

	p.Title = fields.Title
	p.Text = fields.Text
	if fields.HasScheduledAt {
		p.ScheduledAt = fields.ScheduledAt
	}

	if err := validatePosting(p); err != nil {
		return nil, err
	}

	if err := c.PostingDB.UpdatePosting(p); err != nil {
		return nil, err
	}

	c.announce(publisher.Updated, p)

	return p, nil
}

// UnpublishPosting takes a posting off the public listing. Admins only.
// There is no way back to public, and no announcement fires.
func (c *CoreDB) UnpublishPosting(id int, user auth.User) (*Posting, error) {

	p, err := c.GetPosting(id)
	if err != nil {
		return nil, err
	}

	if err := Allowed(ActionUnpublish, user, p); err != nil {
		return nil, err
	}

	p.Public = false

	if err := validatePosting(p); err != nil {
		return nil, err
	}

	if err := c.PostingDB.UpdatePosting(p); err != nil {
		return nil, err
	}

	return p, nil
}

// DeletePosting shadows PostingDB.DeletePosting. Hard delete, there is
// no soft-delete state. A stale created-posting pointer heals itself on
// the next read.
func (c *CoreDB) DeletePosting(id int, user auth.User) error {

	p, err := c.GetPosting(id)
	if err != nil {
		return err
	}

	if err := Allowed(ActionDelete, user, p); err != nil {
		return err
	}

	return c.PostingDB.DeletePosting(p.ID)
}

// announce notifies the publisher hook after a successful commit. Fire
// and forget: a failing announcement never rolls back the posting.
func (c *CoreDB) announce(event publisher.Event, p *Posting) {
	if c.Publisher == nil {
		return
	}
	var a = publisher.Announcement{
		UID:       p.UID,
		Title:     p.Title,
		Permalink: p.Permalink,
		URL:       c.BaseURL + "/p/" + p.Permalink,
	}
	go func() {
		if err := c.Publisher.Announce(event, a); err != nil {
			log.Printf("error announcing posting %s: %v", a.UID, err)
		}
	}()
}
