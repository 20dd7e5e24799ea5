package web

import (
	"errors"
	"net/http"

	"github.com/cambricorp/elixirstatus-web/core"
	"github.com/julienschmidt/httprouter"
)

// The form always carries scheduled_at, so update payloads built from it
// include the field. Clearing the input clears the schedule.
var postingFormTmpl = `
	<div>
		<input type="text" name="title" placeholder="Title" value="{{ .Fields.Title }}" autofocus>
	</div>
	<div>
		<textarea name="text" placeholder="What's new? Markdown is fine.">{{ .Fields.Text }}</textarea>
	</div>
	<div>
		<input type="text" name="scheduled_at" placeholder="Scheduled for (02.01.2006 15:04, optional)" value="{{ .ScheduledAtValue }}">
	</div>`

var submitTmpl = tmpl(`<h1>Submit a posting</h1>

	<form method="post">` + postingFormTmpl + `
		<div>
			<button type="submit" class="btn" formaction="/preview" formtarget="_blank">Preview</button>
			<button type="submit" class="btn">Submit</button>
		</div>
	</form>`)

type postingFormData struct {
	*Route
	Fields core.PostingFields
}

func (data *postingFormData) ScheduledAtValue() string {
	if data.Fields.ScheduledAt == nil {
		return ""
	}
	return data.Fields.ScheduledAt.Format("02.01.2006 15:04")
}

func submit(w http.ResponseWriter, req *http.Request, r *Route, params httprouter.Params) error {

	var fields core.PostingFields

	if req.Method == http.MethodPost {

		var err error
		fields, err = postingFields(req)
		if err == nil {
			_, err = r.db.CreatePosting(r.Context(), fields, r.User)
		}

		if err == nil {
			r.SeeOther("/")
			return nil
		}

		var verrs core.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		r.Danger(verrs)
		// keep POST data so the user can correct the input
	}

	return submitTmpl.Execute(w, &postingFormData{
		Route:  r,
		Fields: fields,
	})
}
