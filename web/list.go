package web

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/cambricorp/elixirstatus-web/core"
	"github.com/cambricorp/elixirstatus-web/util"
	"github.com/julienschmidt/httprouter"
)

var listTmpl = tmpl(`
	{{ with .Created }}
		<div class="alert alert-success" role="alert">
			Your posting is live: <a href="/p/{{ .Permalink }}">{{ .Title }}</a>
		</div>
	{{ end }}

	{{ range .Page.Entries }}
		<div class="posting{{ if $.IsCreated . }} posting-created{{ end }}">
			<h2><a href="/p/{{ .Permalink }}">{{ .Title }}</a></h2>
			<div class="posting-meta">
				{{ .OwnerName }} &middot; {{ $.Ago .PublishedAt }}
				{{ with $.FormatScheduledAt . }} &middot; scheduled for {{ . }}{{ end }}
			</div>
			{{ RenderText .Text }}
			{{ if $.CanEdit . }}
				<a class="btn" href="/postings/{{ .ID }}/edit">Edit</a>
			{{ end }}
			{{ if $.CanDelete . }}
				<a class="btn" href="/postings/{{ .ID }}/delete">Delete</a>
			{{ end }}
			{{ if $.CanUnpublish . }}
				<a class="btn" href="/postings/{{ .ID }}/unpublish">Unpublish</a>
			{{ end }}
		</div>
	{{ else }}
		<p>No postings yet.</p>
	{{ end }}

	<div class="pagelinks">
		{{ range .PageLinks }}
			{{ . }}
		{{ end }}
	</div>`)

type listData struct {
	*Route
	Page    *core.Page
	Created *core.Posting
}

func (data *listData) PageLinks() []template.HTML {
	return util.PageLinks(
		data.Page.Number,
		data.Page.Total,
		func(page int, name string) string {
			return `<a href="/page/` + strconv.Itoa(page) + `">` + name + `</a>`
		},
		func(page int, name string) string {
			return `<span>` + name + `</span>`
		},
	)
}

// IsCreated reports whether p is the posting this session just created.
func (data *listData) IsCreated(p *core.Posting) bool {
	return data.Created != nil && data.Created.UID == p.UID
}

func list(w http.ResponseWriter, req *http.Request, r *Route, params httprouter.Params) error {

	page, err := r.db.Paginate(params.ByName("page"), r.db.PerPage)
	if err != nil {
		return err
	}

	r.db.RecordImpression("", "index")

	return listTmpl.Execute(w, &listData{
		Route:   r,
		Page:    page,
		Created: r.db.CreatedPosting(r.Context()),
	})
}
