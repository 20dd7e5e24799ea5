package core

import (
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/cambricorp/elixirstatus-web/auth"
	"github.com/cambricorp/elixirstatus-web/publisher"
)

// CoreDB bundles the storage interfaces, the session manager and the
// external collaborators. Package main assembles it from the sqldb
// implementations.
type CoreDB struct {
	PostingDB
	ImpressionDB
	auth.UserDB
	SessionManager *scs.SessionManager
	Publisher      publisher.Publisher

	SiteName string
	BaseURL  string // public address without trailing slash, used in announcements
	PerPage  int    // postings per listing page
}

func (c *CoreDB) Init(sessionStore scs.Store, cookiePath string) {

	c.SessionManager = scs.New()
	if sessionStore != nil {
		c.SessionManager.Store = sessionStore
	}
	c.SessionManager.Cookie.Path = cookiePath + "/"         // 'The default value is "/". Passing the empty string "" will result in it being set to the path that the cookie was issued from.'
	c.SessionManager.Cookie.Persist = false                 // Don't store cookie across browser sessions. Required for GDPR cookie consent exemption criterion B.
	c.SessionManager.Cookie.SameSite = http.SameSiteLaxMode // good CSRF protection if HTTP GET doesn't modify anything
	c.SessionManager.Cookie.Secure = false                  // else running on localhost or behind a http proxy fails
	c.SessionManager.IdleTimeout = 12 * time.Hour
	c.SessionManager.Lifetime = 720 * time.Hour

	if c.SiteName == "" {
		c.SiteName = "elixirstatus"
	}
	if c.PerPage <= 0 {
		c.PerPage = 20
	}
}
