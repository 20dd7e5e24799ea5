package core

import (
	"sort"
	"strings"
)

// ValidationErrors maps field names to reasons. A record that fails
// validation never reaches the store; the map is handed back to the
// caller so the form can be redisplayed with the rejected input.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	var parts = make([]string, 0, len(v))
	for field, reason := range v {
		parts = append(parts, field+" "+reason)
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}

// validatePosting checks the assembled record before it is persisted.
// Title and text may be empty, only the fields the workflow assigns
// itself are required.
func validatePosting(p *Posting) error {
	var errs = ValidationErrors{}
	if p.UID == "" {
		errs["uid"] = "can't be blank"
	}
	if p.Permalink == "" {
		errs["permalink"] = "can't be blank"
	}
	if p.OwnerID == 0 {
		errs["owner"] = "can't be blank"
	}
	if p.PublishedAt.IsZero() {
		errs["publishedAt"] = "can't be blank"
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
