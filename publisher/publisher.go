// Package publisher is the post-commit notification hook. It is invoked
// after a posting has been created or updated; its failures are logged
// and never roll back the persisted posting.
package publisher

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cambricorp/elixirstatus-web/util"
)

type Event string

const (
	Created Event = "created"
	Updated Event = "updated"
)

type Announcement struct {
	UID       string `json:"uid"`
	Title     string `json:"title"`
	Permalink string `json:"permalink"`
	URL       string `json:"url"`
}

type Publisher interface {
	Announce(event Event, a Announcement) error
}

// Webhook POSTs announcements as JSON to a configured endpoint, which
// can forward them to a chat or social media account.
type Webhook struct {
	Endpoint string
	Client   *http.Client
}

func NewWebhook(endpoint string) *Webhook {
	return &Webhook{
		Endpoint: endpoint,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (w *Webhook) Announce(event Event, a Announcement) error {

	body, err := json.Marshal(struct {
		Event Event  `json:"event"`
		Text  string `json:"text"`
		Announcement
	}{
		Event: event,
		Text:  announcementText(a),
		Announcement: a,
	})
	if err != nil {
		return err
	}

	resp, err := w.Client.Post(w.Endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned %s", resp.Status)
	}
	return nil
}

// announcementText is the ready-to-share form: a truncated title plus
// the posting link.
func announcementText(a Announcement) string {
	var title = a.Title
	if title == "" {
		title = "New posting"
	}
	return util.Trunc(title, 100) + " " + a.URL
}

// Log writes announcements to the process log. It is used when no
// webhook endpoint is configured.
type Log struct{}

func (Log) Announce(event Event, a Announcement) error {
	log.Printf("posting %s %s: %s", a.UID, event, announcementText(a))
	return nil
}
