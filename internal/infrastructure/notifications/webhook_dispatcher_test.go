package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mecanica_workflow/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWebhookDispatcher(t *testing.T) {
	t.Run("missing url", func(t *testing.T) {
		_, err := NewWebhookDispatcher("   ")
		require.ErrorIs(t, err, ErrMissingWebhookURL)
	})

	t.Run("mock mode skips url validation", func(t *testing.T) {
		t.Setenv("NOTIFICATION_WEBHOOK_MOCK", "true")
		d, err := NewWebhookDispatcher("")
		require.NoError(t, err)
		assert.True(t, d.mockMode)
	})
}

func TestWebhookDispatcher_NotifyTransition(t *testing.T) {
	t.Run("posts the event as json", func(t *testing.T) {
		var got entities.TransitionEvent
		var auth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusAccepted)
		}))
		defer srv.Close()

		t.Setenv("NOTIFICATION_WEBHOOK_TOKEN", "tok-123")
		d, err := NewWebhookDispatcher(srv.URL)
		require.NoError(t, err)

		ev := entities.TransitionEvent{
			EntityType: entities.EntityTypeWorkAuthorization,
			EntityID:   "wa-1",
			FromStatus: "authorized",
			ToStatus:   "in_progress",
			ActorID:    "mech-1",
			Timestamp:  time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		}
		d.NotifyTransition(context.Background(), ev)

		assert.Equal(t, ev, got)
		assert.Equal(t, "Bearer tok-123", auth)
	})

	t.Run("unreachable receiver is swallowed", func(t *testing.T) {
		d, err := NewWebhookDispatcher("http://127.0.0.1:1/webhook")
		require.NoError(t, err)

		// Must not panic or block the caller beyond the client timeout.
		d.NotifyTransition(context.Background(), entities.TransitionEvent{EntityID: "wa-1"})
	})

	t.Run("mock mode never dials", func(t *testing.T) {
		t.Setenv("NOTIFICATION_WEBHOOK_MOCK", "on")
		d, err := NewWebhookDispatcher("")
		require.NoError(t, err)

		d.NotifyTransition(context.Background(), entities.TransitionEvent{EntityID: "est-1"})
	})
}
