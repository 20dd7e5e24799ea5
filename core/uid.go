package core

import (
	"crypto/rand"
	"errors"
	"regexp"
	"strings"
)

const uidLen = 10

// no dash in here, so a uid can always be recovered from the front of a permalink
const uidAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewUID returns a fresh opaque identifier: ten characters of lower-case
// base36, which is a space of about 3.6e15 values.
func NewUID() (string, error) {
	var b = make([]byte, uidLen)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	for i := range b {
		b[i] = uidAlphabet[int(b[i])%len(uidAlphabet)]
	}
	return string(b), nil
}

// generatePostingUID draws uids until one is unused in the posting
// namespace. With the size of the uid space the first draw wins for all
// practical purposes, the loop just makes the uniqueness guarantee
// unconditional.
func (c *CoreDB) generatePostingUID() (string, error) {
	for i := 0; i < 100; i++ {
		uid, err := NewUID()
		if err != nil {
			return "", err
		}
		_, err = c.GetPostingByUID(uid)
		if errors.Is(err, ErrNotFound) {
			return uid, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", errors.New("no free uid")
}

// doesn't contain the dot
var slugRegex = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify normalizes a title for use in a permalink. Especially, dots
// are removed.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugRegex.ReplaceAllString(s, `-`)
	return strings.Trim(s, `-`)
}

// PermalinkFor combines a uid and a title slug. Uniqueness of the result
// follows from the uid alone, the slug is cosmetic.
func PermalinkFor(uid, title string) string {
	if slug := Slugify(title); slug != "" {
		return uid + "-" + slug
	}
	return uid
}

// UIDFromPermalink returns the leading segment of a permalink.
func UIDFromPermalink(permalink string) string {
	if i := strings.IndexByte(permalink, '-'); i >= 0 {
		return permalink[:i]
	}
	return permalink
}
