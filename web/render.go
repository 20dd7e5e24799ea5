package web

import (
	"bytes"
	"html/template"

	"github.com/cambricorp/elixirstatus-web/util"
	"gitlab.com/golang-commonmark/markdown"
)

var markdownParser = markdown.New(markdown.HTML(true), markdown.Linkify(true), markdown.Typographer(true), markdown.MaxNesting(10))

// RenderText translates posting text (CommonMark, raw HTML allowed) to
// sanitized HTML.
func RenderText(text string) template.HTML {
	var buf bytes.Buffer
	if err := markdownParser.Render(&buf, []byte(text)); err != nil {
		return template.HTML("<p>" + template.HTMLEscapeString(text) + "</p>")
	}
	return template.HTML(util.SanitizeHTML(buf.String()))
}
