package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"mecanica_workflow/internal/domain/entities"
	"mecanica_workflow/internal/usecase/interfaces"
)

var ErrMissingWebhookURL = errors.New("missing NOTIFICATION_WEBHOOK_URL")

const dispatchTimeout = 5 * time.Second

// WebhookDispatcher delivers transition events to the notification service
// as JSON POSTs. Delivery is fire-and-forget: a failed POST is logged and
// dropped, never propagated, so the state transition that produced the
// event always stands.
type WebhookDispatcher struct {
	client     *http.Client
	webhookURL string
	authToken  string
	mockMode   bool
	log        *slog.Logger
}

var _ interfaces.ITransitionNotifier = (*WebhookDispatcher)(nil)

func NewWebhookDispatcher(webhookURL string) (*WebhookDispatcher, error) {
	log := slog.Default().With("component", "notification_dispatcher")

	if isNotificationMockEnabled() {
		log.Info("mock mode enabled")
		return &WebhookDispatcher{mockMode: true, log: log}, nil
	}

	if strings.TrimSpace(webhookURL) == "" {
		log.Warn("missing NOTIFICATION_WEBHOOK_URL")
		return nil, ErrMissingWebhookURL
	}

	return &WebhookDispatcher{
		client:     &http.Client{Timeout: dispatchTimeout},
		webhookURL: webhookURL,
		authToken:  os.Getenv("NOTIFICATION_WEBHOOK_TOKEN"),
		log:        log,
	}, nil
}

func (d *WebhookDispatcher) NotifyTransition(ctx context.Context, ev entities.TransitionEvent) {
	if d.mockMode {
		d.log.Info("mock dispatch",
			"entity_type", ev.EntityType, "entity_id", ev.EntityID,
			"from", ev.FromStatus, "to", ev.ToStatus)
		return
	}

	body, err := json.Marshal(ev)
	if err != nil {
		d.log.Error("event marshal failed", "entity_id", ev.EntityID, "err", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL, bytes.NewReader(body))
	if err != nil {
		d.log.Error("request build failed", "entity_id", ev.EntityID, "err", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	if d.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+d.authToken)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		d.log.Warn("dispatch failed", "entity_id", ev.EntityID, "err", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		d.log.Warn("dispatch rejected",
			"entity_id", ev.EntityID, "status", resp.StatusCode)
		return
	}
	d.log.Debug("dispatched",
		"entity_type", ev.EntityType, "entity_id", ev.EntityID, "to", ev.ToStatus)
}

func isNotificationMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("NOTIFICATION_WEBHOOK_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
