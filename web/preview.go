package web

import (
	"net/http"
	"time"

	"github.com/cambricorp/elixirstatus-web/core"
	"github.com/julienschmidt/httprouter"
)

var previewTmpl = tmpl(`
	<div class="alert alert-danger" role="alert">
		This is a preview. Nothing has been saved.
	</div>

	<div class="posting">
		<h2>{{ .Posting.Title }}</h2>
		<div class="posting-meta">
			{{ with .User }}{{ .Name }} &middot; {{ end }}just now
		</div>
		{{ RenderText .Posting.Text }}
	</div>`)

// preview renders an ephemeral posting from the submitted form. It is
// never persisted and works without a logged-in user.
func preview(w http.ResponseWriter, req *http.Request, r *Route, params httprouter.Params) error {

	fields, err := postingFields(req)
	if err != nil {
		r.Danger(err)
	}

	var p = &core.Posting{
		Title:       fields.Title,
		Text:        fields.Text,
		PublishedAt: time.Now(),
		Public:      true,
	}
	if fields.HasScheduledAt {
		p.ScheduledAt = fields.ScheduledAt
	}

	return previewTmpl.Execute(w, &showData{
		Route:   r,
		Posting: p,
	})
}
