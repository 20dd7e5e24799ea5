package web

import (
	"net/http"

	"github.com/cambricorp/elixirstatus-web/core"
	"github.com/julienschmidt/httprouter"
)

var showTmpl = tmpl(`
	<div class="posting">
		<h1>{{ .Posting.Title }}</h1>
		<div class="posting-meta">
			{{ .Posting.OwnerName }} &middot; {{ .FormatDateTime .Posting.PublishedAt }}
			{{ with .FormatScheduledAt .Posting }} &middot; scheduled for {{ . }}{{ end }}
			{{ if not .Posting.Public }} &middot; unpublished{{ end }}
		</div>
		{{ RenderText .Posting.Text }}
		{{ if .CanEdit .Posting }}
			<a class="btn" href="/postings/{{ .Posting.ID }}/edit">Edit</a>
		{{ end }}
		{{ if .CanDelete .Posting }}
			<a class="btn" href="/postings/{{ .Posting.ID }}/delete">Delete</a>
		{{ end }}
		{{ if .CanUnpublish .Posting }}
			<a class="btn" href="/postings/{{ .Posting.ID }}/unpublish">Unpublish</a>
		{{ end }}
	</div>`)

type showData struct {
	*Route
	Posting *core.Posting
}

func show(w http.ResponseWriter, req *http.Request, r *Route, params httprouter.Params) error {

	p, err := r.db.GetPostingByPermalink(params.ByName("permalink"))
	if err != nil {
		return err
	}

	r.db.RecordImpression(p.UID, "show")

	return showTmpl.Execute(w, &showData{
		Route:   r,
		Posting: p,
	})
}

func showByID(w http.ResponseWriter, req *http.Request, r *Route, params httprouter.Params) error {

	p, err := loadPosting(r, params)
	if err != nil {
		return err
	}

	r.db.RecordImpression(p.UID, "show")

	return showTmpl.Execute(w, &showData{
		Route:   r,
		Posting: p,
	})
}
