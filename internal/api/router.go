package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/ashmarin/vinbot/internal/middleware"
)

// NewRouter wires the HTTP endpoints. webhookSecret guards the Telegram
// webhook route; an empty secret disables the check.
func NewRouter(h *Handler, webhookSecret string) http.Handler {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)

	r.Get("/healthz", h.Healthz)
	r.Post("/admin/cache/clear", h.ClearCache)

	r.Group(func(r chi.Router) {
		r.Use(middleware.WebhookSecret(webhookSecret))
		r.Post("/telegram/webhook", h.Webhook)
	})

	return r
}
