package core

import (
	"time"
)

// PostingFields is the normalized input of the create and update
// workflows. Title and Text are plain values, absent form fields arrive
// as empty strings.
//
// ScheduledAt carries an explicit presence flag because "the payload did
// not mention scheduling" and "the payload cleared the schedule" mean
// different things: an update without the field leaves the stored value
// alone, one with an empty value removes it.
type PostingFields struct {
	Title          string
	Text           string
	ScheduledAt    *time.Time
	HasScheduledAt bool
}
