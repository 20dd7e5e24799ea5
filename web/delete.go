package web

import (
	"net/http"

	"github.com/cambricorp/elixirstatus-web/core"
	"github.com/julienschmidt/httprouter"
)

var deleteTmpl = tmpl(`<h1>Delete {{ .Posting.Title }}?</h1>

	<p>This cannot be undone.</p>

	<p>
		<a class="btn" href="/p/{{ .Posting.Permalink }}">Cancel</a>
	</p>

	<form method="post">
		<input type="submit" class="btn" name="delete" value="Delete">
	</form>`)

func del(w http.ResponseWriter, req *http.Request, r *Route, params httprouter.Params) error {

	p, err := loadPosting(r, params)
	if err != nil {
		return err
	}

	if err := core.Allowed(core.ActionDelete, r.User, p); err != nil {
		return err
	}

	if req.PostFormValue("delete") != "" {
		if err := r.db.DeletePosting(p.ID, r.User); err != nil {
			return err
		}
		r.Success("posting has been deleted")
		r.SeeOther("/")
		return nil
	}

	return deleteTmpl.Execute(w, &showData{
		Route:   r,
		Posting: p,
	})
}
