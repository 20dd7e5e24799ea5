package util

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// tags that survive sanitizing, everything else is stripped keeping its text
var allowedTags = map[string]interface{}{
	"a":          struct{}{},
	"blockquote": struct{}{},
	"br":         struct{}{},
	"code":       struct{}{},
	"em":         struct{}{},
	"h1":         struct{}{},
	"h2":         struct{}{},
	"h3":         struct{}{},
	"h4":         struct{}{},
	"li":         struct{}{},
	"ol":         struct{}{},
	"p":          struct{}{},
	"pre":        struct{}{},
	"strong":     struct{}{},
	"ul":         struct{}{},
}

var allowedAttrs = map[string]interface{}{
	"href": struct{}{},
}

// SanitizeHTML keeps whitelisted tags and attributes and strips
// everything else, including comments and doctypes. Posting text is
// rendered from markdown with raw HTML enabled, so the result must not
// reach a page unsanitized.
func SanitizeHTML(input string) string {

	tokenizer := html.NewTokenizerFragment(strings.NewReader(input), "body")

	var out = &bytes.Buffer{}

	for {

		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			break // assuming tokenizer.Err() == io.EOF
		}

		switch tt {

		case html.TextToken:
			out.Write(tokenizer.Raw())

		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:

			var token = tokenizer.Token()
			if _, ok := allowedTags[token.Data]; !ok {
				continue
			}

			var attrs = token.Attr[:0]
			for _, attr := range token.Attr {
				if _, ok := allowedAttrs[attr.Key]; !ok {
					continue
				}
				if strings.HasPrefix(strings.ToLower(strings.TrimSpace(attr.Val)), "javascript:") {
					continue
				}
				attrs = append(attrs, attr)
			}
			token.Attr = attrs

			out.WriteString(token.String())
		}
	}

	return out.String()
}
