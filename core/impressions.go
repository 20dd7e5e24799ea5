package core

import (
	"log"

	"github.com/google/uuid"
)

// ImpressionDB records page views for later analytics. Nothing in the
// request path reads it back.
type ImpressionDB interface {
	InsertImpression(eventID, postingUID, kind string) error
}

// RecordImpression notes a listing or detail view. It returns
// immediately; the insert happens in the background and a failure is
// only logged.
func (c *CoreDB) RecordImpression(postingUID, kind string) {
	if c.ImpressionDB == nil {
		return
	}
	var eventID = uuid.NewString()
	go func() {
		if err := c.InsertImpression(eventID, postingUID, kind); err != nil {
			log.Printf("error recording impression: %v", err)
		}
	}()
}
