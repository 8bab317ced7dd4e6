// Package notify delivers roster change notifications to a webhook endpoint.
//
// Delivery is fire-and-forget: one POST per changed team, short timeout, no
// retries, no acknowledgment wait. A nil sender is a no-op, so callers never
// branch on whether notifications are configured.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const sendTimeout = 5 * time.Second

// WebhookSender posts change messages to a configured URL.
type WebhookSender struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewWebhookSender creates a sender. Returns nil if url is empty
// (notifications disabled).
func NewWebhookSender(url string, logger *slog.Logger) *WebhookSender {
	if url == "" {
		return nil
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &WebhookSender{
		url:        url,
		httpClient: &http.Client{Timeout: sendTimeout},
		logger:     logger,
	}
}

// message is the webhook payload for one team's change set.
type message struct {
	Team    string   `json:"team"`
	Added   []string `json:"added,omitempty"`
	Removed []string `json:"removed,omitempty"`
	Text    string   `json:"text"`
}

// Notify posts one message summarizing a team's adds and drops.
func (s *WebhookSender) Notify(ctx context.Context, team string, added, removed []string) error {
	if s == nil {
		return nil // no-op when not configured
	}

	payload, err := json.Marshal(message{
		Team:    team,
		Added:   added,
		Removed: removed,
		Text:    buildText(team, added, removed),
	})
	if err != nil {
		return fmt.Errorf("encode webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned %d", resp.StatusCode)
	}

	s.logger.Info("roster change notification sent",
		"team", team, "added", len(added), "removed", len(removed))
	return nil
}

func buildText(team string, added, removed []string) string {
	text := fmt.Sprintf("Roster change for %s:", team)
	for _, name := range added {
		text += fmt.Sprintf(" +%s", name)
	}
	for _, name := range removed {
		text += fmt.Sprintf(" -%s", name)
	}
	return text
}
