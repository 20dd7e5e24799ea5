package auth

import (
	"errors"
)

// ErrAuth is returned on failed logins. It does not distinguish between
// an unknown name and a wrong password.
var ErrAuth = errors.New("authentication failed")

// A User is an authenticated author. Admins may additionally unpublish
// and modify postings of other users.
type User interface {
	ID() int
	Name() string // email address
	Admin() bool
}

type UserDB interface {
	ChangePassword(u User, old, new string) error
	Delete(u User) error
	GetUser(id int) (User, error)
	GetUserByName(name string) (User, error)
	GetAllUsers(limit, offset int) ([]User, error)
	InsertUser(name string) (User, error)
	LoginUser(name, password string) (User, error)
	SetAdmin(u User, admin bool) error
	SetPassword(u User, password string) error
}
