package web

import (
	"errors"
	"net/http"

	"github.com/cambricorp/elixirstatus-web/core"
	"github.com/julienschmidt/httprouter"
)

var editTmpl = tmpl(`<h1>Edit posting</h1>

	<p>
		<a class="btn" href="/p/{{ .Posting.Permalink }}">Cancel</a>
	</p>

	<form method="post">` + postingFormTmpl + `
		<div>
			<button type="submit" class="btn" formaction="/preview" formtarget="_blank">Preview</button>
			<button type="submit" class="btn">Save</button>
		</div>
	</form>`)

type editData struct {
	*postingFormData
	Posting *core.Posting
}

func edit(w http.ResponseWriter, req *http.Request, r *Route, params httprouter.Params) error {

	p, err := loadPosting(r, params)
	if err != nil {
		return err
	}

	if err := core.Allowed(core.ActionEdit, r.User, p); err != nil {
		return err
	}

	// prefill from the stored posting
	var fields = core.PostingFields{
		Title:          p.Title,
		Text:           p.Text,
		ScheduledAt:    p.ScheduledAt,
		HasScheduledAt: p.ScheduledAt != nil,
	}

	if req.Method == http.MethodPost {

		fields, err = postingFields(req)
		if err == nil {
			_, err = r.db.UpdatePosting(p.ID, fields, r.User)
		}

		if err == nil {
			r.Success("posting has been saved")
			r.SeeOther("/p/%s", p.Permalink)
			return nil
		}

		var verrs core.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		r.Danger(verrs)
		// keep POST data so the user can correct the input
	}

	return editTmpl.Execute(w, &editData{
		postingFormData: &postingFormData{
			Route:  r,
			Fields: fields,
		},
		Posting: p,
	})
}
