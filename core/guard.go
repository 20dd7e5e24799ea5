package core

import (
	"errors"

	"github.com/cambricorp/elixirstatus-web/auth"
)

var (
	ErrUnauthenticated = errors.New("not logged in")
	ErrUnauthorized    = errors.New("unauthorized")
)

type Action int

const (
	ActionIndex Action = iota
	ActionShow
	ActionCreate
	ActionEdit
	ActionUpdate
	ActionDelete
	ActionUnpublish
)

func (a Action) String() string {
	switch a {
	case ActionIndex:
		return "index"
	case ActionShow:
		return "show"
	case ActionCreate:
		return "create"
	case ActionEdit:
		return "edit"
	case ActionUpdate:
		return "update"
	case ActionDelete:
		return "delete"
	case ActionUnpublish:
		return "unpublish"
	}
	return "unknown"
}

// A Guard checks one condition of an action. Guards run in order, the
// first failure is terminal.
type Guard func(user auth.User, posting *Posting) error

func authenticated(user auth.User, _ *Posting) error {
	if user == nil {
		return ErrUnauthenticated
	}
	return nil
}

func ownerOrAdmin(user auth.User, posting *Posting) error {
	if posting != nil && posting.OwnerID == user.ID() {
		return nil
	}
	if user.Admin() {
		return nil
	}
	return ErrUnauthorized
}

func admin(user auth.User, _ *Posting) error {
	if user == nil || !user.Admin() {
		return ErrUnauthorized
	}
	return nil
}

var guards = map[Action][]Guard{
	ActionIndex:     nil, // public
	ActionShow:      nil, // public
	ActionCreate:    {authenticated},
	ActionEdit:      {authenticated, ownerOrAdmin},
	ActionUpdate:    {authenticated, ownerOrAdmin},
	ActionDelete:    {authenticated, ownerOrAdmin},
	ActionUnpublish: {admin},
}

// Allowed decides whether user may perform action on posting. It is a
// pure predicate, but callers must treat a non-nil result as terminal.
func Allowed(action Action, user auth.User, posting *Posting) error {
	for _, guard := range guards[action] {
		if err := guard(user, posting); err != nil {
			return err
		}
	}
	return nil
}
