package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Webhook delivers reminders by POSTing a JSON payload to a user-configured
// URL, so reminders can land in a chat channel instead of (or as well as) the
// desktop.
type Webhook struct {
	url    string
	client *http.Client
}

// NewWebhook creates a webhook strategy targeting url.
func NewWebhook(url string) *Webhook {
	return &Webhook{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (w *Webhook) Name() string { return "webhook" }

// webhookPayload is the wire format posted to the configured URL.
type webhookPayload struct {
	Title  string    `json:"title"`
	Body   string    `json:"body"`
	SentAt time.Time `json:"sent_at"`
}

// Deliver sends the notification payload and treats any non-2xx response as a
// delivery failure.
func (w *Webhook) Deliver(ctx context.Context, title, body string) error {
	data, err := json.Marshal(webhookPayload{Title: title, Body: body, SentAt: time.Now()})
	if err != nil {
		return failed(w.Name(), fmt.Errorf("failed to marshal payload: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewBuffer(data))
	if err != nil {
		return failed(w.Name(), fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return failed(w.Name(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return failed(w.Name(), fmt.Errorf("webhook returned status %d", resp.StatusCode))
	}
	return nil
}
