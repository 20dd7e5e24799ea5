package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"plain text",
			"hello world",
			"hello world",
		},
		{
			"allowed markup survives",
			"<p>hello <strong>world</strong></p>",
			"<p>hello <strong>world</strong></p>",
		},
		{
			"script tag stripped keeping its text",
			"<p>x</p><script>alert(1)</script>",
			"<p>x</p>alert(1)",
		},
		{
			"img stripped",
			`<p><img src="x" onerror="alert(1)">y</p>`,
			"<p>y</p>",
		},
		{
			"event handler attributes stripped",
			`<p onclick="alert(1)">hello</p>`,
			"<p>hello</p>",
		},
		{
			"href survives",
			`<a href="https://example.com">link</a>`,
			`<a href="https://example.com">link</a>`,
		},
		{
			"javascript href stripped",
			`<a href="javascript:alert(1)">link</a>`,
			"<a>link</a>",
		},
		{
			"javascript href with whitespace stripped",
			`<a href=" JavaScript:alert(1)">link</a>`,
			"<a>link</a>",
		},
		{
			"comments dropped",
			"a<!-- secret -->b",
			"ab",
		},
		{
			"nested lists survive",
			"<ul><li>one</li><li><code>two</code></li></ul>",
			"<ul><li>one</li><li><code>two</code></li></ul>",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, SanitizeHTML(test.input))
		})
	}
}
