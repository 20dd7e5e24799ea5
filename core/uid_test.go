package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		uid, err := NewUID()
		require.NoError(t, err)
		assert.Len(t, uid, 10)
		assert.NotContains(t, uid, "-")
		for _, r := range uid {
			assert.Contains(t, uidAlphabet, string(r))
		}
		assert.False(t, seen[uid], "duplicate uid %s", uid)
		seen[uid] = true
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"Hello World", "hello-world"},
		{"  Phoenix 1.7 released!  ", "phoenix-1-7-released"},
		{"ElixirConf/EU 2015", "elixirconf-eu-2015"},
		{"---", ""},
		{"v1.2.3", "v1-2-3"},
		{"ÄÖÜ", ""},
		{"foo   bar", "foo-bar"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, Slugify(test.input), "Slugify(%q)", test.input)
	}
}

func TestPermalink(t *testing.T) {

	uid, err := NewUID()
	require.NoError(t, err)

	titles := []string{
		"",
		"Hello World",
		"!!!",
		"release 1.0: now with dots. and more dots.",
		strings.Repeat("long ", 50),
	}
	for _, title := range titles {
		permalink := PermalinkFor(uid, title)
		assert.Equal(t, uid, UIDFromPermalink(permalink), "title %q", title)
	}

	// the slug is cosmetic, a drifted or truncated slug still resolves
	assert.Equal(t, uid, UIDFromPermalink(uid+"-some-old-slug"))
	assert.Equal(t, uid, UIDFromPermalink(uid))
}
