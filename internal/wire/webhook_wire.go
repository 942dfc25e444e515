package wire

import (
	"room-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// The webhook authenticates by signature, not by session.
func wireWebhook(r chi.Router, webhookHandler *adaptor.WebhookHandler) {
	r.Post("/update_server", webhookHandler.UpdateServer)
}
