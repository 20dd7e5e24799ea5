package core

import (
	"math"
	"strconv"
)

// A Page is one slice of the public posting listing.
type Page struct {
	Entries []*Posting
	Number  int // starting with 1
	Total   int // total number of pages, at least 1
}

// Paginate loads one page of public postings, newest first. pageArg
// comes straight from the URL, anything that is not a positive number
// means page one. An empty result set still has one empty page, and
// requesting a page beyond the last yields an empty page rather than an
// error.
func (c *CoreDB) Paginate(pageArg string, perPage int) (*Page, error) {

	page, err := strconv.Atoi(pageArg)
	if err != nil || page < 1 {
		page = 1
	}

	count, err := c.CountPublicPostings()
	if err != nil {
		return nil, err
	}

	var total = int(math.Ceil(float64(count) / float64(perPage)))
	if total < 1 {
		total = 1
	}

	entries, err := c.GetPublicPostings(perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}

	return &Page{
		Entries: entries,
		Number:  page,
		Total:   total,
	}, nil
}
