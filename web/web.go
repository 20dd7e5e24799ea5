// Package web serves the HTML frontend: the public listing, posting
// detail pages, and the authoring workflow (submit, edit, delete,
// unpublish, preview) for logged-in users.
package web

import (
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/cambricorp/elixirstatus-web/core"
	"github.com/cambricorp/elixirstatus-web/util"
	"github.com/julienschmidt/httprouter"
)

// Route is the per-request context handed to every handler.
type Route struct {
	*core.Request
	Prefix string // with trailing slash
	db     *core.CoreDB
}

func (r *Route) SiteName() string {
	return r.db.SiteName
}

// CanEdit reports whether the current user may edit the posting. Used by
// templates to decide which buttons to show; the actual workflow checks
// again.
func (r *Route) CanEdit(p *core.Posting) bool {
	return core.Allowed(core.ActionEdit, r.User, p) == nil
}

func (r *Route) CanDelete(p *core.Posting) bool {
	return core.Allowed(core.ActionDelete, r.User, p) == nil
}

func (r *Route) CanUnpublish(p *core.Posting) bool {
	return p.Public && core.Allowed(core.ActionUnpublish, r.User, p) == nil
}

func middleware(db *core.CoreDB, prefix string, requireLoggedIn bool, f func(http.ResponseWriter, *http.Request, *Route, httprouter.Params) error) httprouter.Handle {
	return func(w http.ResponseWriter, req *http.Request, params httprouter.Params) {

		var request = db.NewRequest(w, req)

		var r = &Route{
			Prefix:  prefix + "/",
			Request: request,
			db:      db,
		}
		defer r.Cleanup()

		if requireLoggedIn && !r.LoggedIn() {
			r.SeeOther("/")
			return
		}

		if err := f(w, req, r, params); err != nil {
			switch {
			case errors.Is(err, core.ErrNotFound):
				r.NotFound()
			case errors.Is(err, core.ErrUnauthenticated), errors.Is(err, core.ErrUnauthorized):
				// no details for the caller, back to the landing view
				r.SeeOther("/")
			default:
				// probably no template has been executed, so execute the error template
				errorTmpl.Execute(w, struct {
					*Route
					Err error
				}{
					Route: r,
					Err:   err,
				})
			}
		}
	}
}

// NewRouter builds the public router. prefix is stripped off by the
// caller and only needed for links.
func NewRouter(db *core.CoreDB, prefix string) http.Handler {

	var router = httprouter.New()

	var GETAndPOST = func(path string, handle httprouter.Handle) {
		router.GET(path, handle)
		router.POST(path, handle)
	}

	// public
	router.GET("/", middleware(db, prefix, false, list))
	router.GET("/page/:page", middleware(db, prefix, false, list))
	router.GET("/p/:permalink", middleware(db, prefix, false, show))
	router.GET("/postings/:id", middleware(db, prefix, false, showByID))
	router.POST("/preview", middleware(db, prefix, false, preview))
	GETAndPOST("/login", middleware(db, prefix, false, login))

	// private
	GETAndPOST("/submit", middleware(db, prefix, true, submit))
	GETAndPOST("/postings/:id/edit", middleware(db, prefix, true, edit))
	GETAndPOST("/postings/:id/delete", middleware(db, prefix, true, del))
	GETAndPOST("/postings/:id/unpublish", middleware(db, prefix, true, unpublish))
	router.GET("/logout", middleware(db, prefix, true, logout))

	return router
}

// loadPosting resolves the :id segment of the current route.
func loadPosting(r *Route, params httprouter.Params) (*core.Posting, error) {
	id, err := strconv.Atoi(params.ByName("id"))
	if err != nil {
		return nil, core.ErrNotFound
	}
	return r.db.GetPosting(id)
}

// postingFields reads the posting form. scheduled_at is only part of the
// result when the form carried the field at all; a present but empty
// value clears the schedule.
func postingFields(req *http.Request) (core.PostingFields, error) {

	req.ParseForm()

	var fields = core.PostingFields{
		Title: strings.TrimSpace(req.PostFormValue("title")),
		Text:  req.PostFormValue("text"),
	}

	if values, ok := req.PostForm["scheduled_at"]; ok {
		fields.HasScheduledAt = true
		if v := strings.TrimSpace(values[0]); v != "" {
			t, err := util.ParseTime(v)
			if err != nil {
				return fields, core.ValidationErrors{"scheduled_at": `must look like "02.01.2006 15:04"`}
			}
			fields.ScheduledAt = &t
		}
	}

	return fields, nil
}

func tmpl(text string) *template.Template {
	t := template.Must(baseTmpl.Clone())
	t = template.Must(t.Parse(`{{ define "content" }}` + text + `{{ end }}`))
	return t
}

var errorTmpl = tmpl(`
	<div class="alert alert-danger" role="alert">
		{{ .Err }}
	</div>`)

var baseTmpl = template.Must(template.New("web").Funcs(template.FuncMap{
	"RenderText": RenderText,
}).Parse(`
<!DOCTYPE html>
<html>
	<head>
		<base href="{{ .Prefix }}">
		<meta charset="utf-8">
		<meta name="viewport" content="width=device-width, initial-scale=1">
		<title>{{ .SiteName }}</title>

		<style>

			body {
				font-family: sans-serif;
				margin: 0 auto;
				max-width: 44rem;
				padding: 0 1rem 2rem;
			}

			header {
				border-bottom: 1px solid #dee2e6;
				display: flex;
				justify-content: space-between;
				padding: 1rem 0;
			}

			.alert {
				border: 1px solid transparent;
				border-radius: .25rem;
				margin: 1rem 0;
				padding: .75rem 1.25rem;
			}

			.alert-danger {
				background-color: #f8d7da;
				color: #721c24;
			}

			.alert-success {
				background-color: #d4edda;
				color: #155724;
			}

			.posting {
				border-bottom: 1px solid #dee2e6;
				padding: 1rem 0;
			}

			.posting-created {
				background-color: #fff3cd;
			}

			.posting-meta {
				color: #6c757d;
				font-size: .875rem;
			}

			.pagelinks {
				padding: 1rem 0;
				text-align: center;
			}

			.pagelinks span {
				font-weight: bold;
			}

			.pagelinks a, .pagelinks span {
				padding: 0 .3rem;
			}

			form div {
				margin-bottom: .75rem;
			}

			input[type=text], input[type=password], input[type=email], textarea {
				box-sizing: border-box;
				padding: .375rem;
				width: 100%;
			}

			textarea {
				min-height: 10rem;
			}

			.btn {
				background-color: #f4f5f6;
				border: 1px solid #6c757d;
				border-radius: .25rem;
				color: inherit;
				display: inline-block;
				padding: .25rem .5rem;
				text-decoration: none;
			}

		</style>
	</head>
	<body>
		<header>
			<a href="/">{{ .SiteName }}</a>
			<nav>
				{{ if .LoggedIn }}
					<a href="/submit">Submit</a>
					<a href="/logout">Logout ({{ .User.Name }})</a>
				{{ else }}
					<a href="/login">Login</a>
				{{ end }}
			</nav>
		</header>
		{{ .RenderNotifications }}
		{{ template "content" . }}
	</body>
</html>`))
