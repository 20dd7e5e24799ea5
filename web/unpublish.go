package web

import (
	"net/http"

	"github.com/cambricorp/elixirstatus-web/core"
	"github.com/julienschmidt/httprouter"
)

var unpublishTmpl = tmpl(`<h1>Unpublish {{ .Posting.Title }}?</h1>

	<p>The posting disappears from the public listing. There is no way to
	re-publish it.</p>

	<p>
		<a class="btn" href="/p/{{ .Posting.Permalink }}">Cancel</a>
	</p>

	<form method="post">
		<input type="submit" class="btn" name="unpublish" value="Unpublish">
	</form>`)

func unpublish(w http.ResponseWriter, req *http.Request, r *Route, params httprouter.Params) error {

	p, err := loadPosting(r, params)
	if err != nil {
		return err
	}

	if err := core.Allowed(core.ActionUnpublish, r.User, p); err != nil {
		return err
	}

	if req.PostFormValue("unpublish") != "" {
		if _, err := r.db.UnpublishPosting(p.ID, r.User); err != nil {
			return err
		}
		r.Success("posting has been unpublished")
		r.SeeOther("/p/%s", p.Permalink)
		return nil
	}

	return unpublishTmpl.Execute(w, &showData{
		Route:   r,
		Posting: p,
	})
}
