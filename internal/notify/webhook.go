package notify

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/hobbiton-games/quiz-admin/internal/config"
	"github.com/hobbiton-games/quiz-admin/internal/domain/events"
	"github.com/hobbiton-games/quiz-admin/internal/metrics"
	"github.com/rs/zerolog"
)

// Notifier posts mutation notifications to the configured workflow webhooks.
// Dispatch is best effort: one attempt, failures logged and swallowed, never
// surfaced to the caller of Notify*.
type Notifier struct {
	client     *http.Client
	updatedURL string
	deletedURL string
	logger     zerolog.Logger
}

func NewNotifier(cfg config.WebhookConfig, logger zerolog.Logger) *Notifier {
	return &Notifier{
		client:     &http.Client{},
		updatedURL: cfg.EventUpdatedURL,
		deletedURL: cfg.EventDeletedURL,
		logger:     logger,
	}
}

type eventUpdatedPayload struct {
	Type           string    `json:"type"`
	ID             int64     `json:"id"`
	PlayerID       string    `json:"playerId"`
	HobbitName     string    `json:"hobbitName"`
	EventType      string    `json:"eventType"`
	EventTimestamp time.Time `json:"eventTimestamp"`
	CreatedAt      time.Time `json:"createdAt"`
}

type eventDeletedPayload struct {
	Type string `json:"type"`
	ID   int64  `json:"id"`
}

// EventUpdated dispatches an event.updated notification in a detached
// goroutine. It returns immediately; the caller never observes the outcome.
// A nil receiver or an unconfigured URL skips the dispatch entirely.
func (n *Notifier) EventUpdated(event events.Event) {
	if n == nil || n.updatedURL == "" {
		return
	}
	payload := eventUpdatedPayload{
		Type:           "event.updated",
		ID:             event.ID,
		PlayerID:       event.PlayerID,
		HobbitName:     event.HobbitName,
		EventType:      event.EventType,
		EventTimestamp: event.EventTimestamp,
		CreatedAt:      event.CreatedAt,
	}
	go n.post(n.updatedURL, "event.updated", payload)
}

// EventDeleted dispatches an event.deleted notification carrying only the id
// of the removed row.
func (n *Notifier) EventDeleted(id int64) {
	if n == nil || n.deletedURL == "" {
		return
	}
	go n.post(n.deletedURL, "event.deleted", eventDeletedPayload{Type: "event.deleted", ID: id})
}

func (n *Notifier) post(url, kind string, payload any) {
	// The goroutine boundary: nothing raised here may reach the caller.
	defer func() {
		if r := recover(); r != nil {
			n.logger.Error().Interface("panic", r).Str("kind", kind).Msg("webhook dispatch panicked")
		}
	}()

	body, err := json.Marshal(payload)
	if err != nil {
		n.logger.Error().Err(err).Str("kind", kind).Msg("webhook payload marshal failed")
		metrics.WebhookDispatchesTotal.WithLabelValues(kind, "error").Inc()
		return
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		n.logger.Error().Err(err).Str("kind", kind).Msg("webhook request build failed")
		metrics.WebhookDispatchesTotal.WithLabelValues(kind, "error").Inc()
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		n.logger.Warn().Err(err).Str("kind", kind).Msg("webhook dispatch failed")
		metrics.WebhookDispatchesTotal.WithLabelValues(kind, "error").Inc()
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		n.logger.Warn().Int("status", resp.StatusCode).Str("kind", kind).Msg("webhook rejected notification")
		metrics.WebhookDispatchesTotal.WithLabelValues(kind, "rejected").Inc()
		return
	}
	metrics.WebhookDispatchesTotal.WithLabelValues(kind, "ok").Inc()
}
