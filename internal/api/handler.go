// Package api provides the bot's HTTP surface: health, cache
// administration and the optional Telegram webhook receiver.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ashmarin/vinbot/internal/vincache"
)

// maxWebhookBodySize caps the accepted webhook payload (1MB).
const maxWebhookBodySize = 1 << 20

// Handler provides the HTTP endpoints around the bot process.
type Handler struct {
	cache   *vincache.ShownVins
	updates chan<- tgbotapi.Update
}

// NewHandler creates a new Handler. updates may be nil when the bot runs
// in long-polling mode; the webhook endpoint then answers 404.
func NewHandler(cache *vincache.ShownVins, updates chan<- tgbotapi.Update) *Handler {
	return &Handler{
		cache:   cache,
		updates: updates,
	}
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// Healthz reports process liveness and the current cache size.
func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	JSON(w, http.StatusOK, map[string]interface{}{
		"status":     "ok",
		"cache_size": h.cache.Len(),
	})
}

// ClearCache empties the shown-VIN cache and reports how many entries
// were dropped.
func (h *Handler) ClearCache(w http.ResponseWriter, _ *http.Request) {
	dropped := h.cache.Clear()
	slog.Info("Shown-VIN cache cleared", "dropped", dropped)
	JSON(w, http.StatusOK, map[string]interface{}{
		"cleared": dropped,
	})
}

// Webhook receives Telegram update deliveries and feeds them to the
// bot's update loop.
func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	if h.updates == nil {
		Error(w, http.StatusNotFound, "webhook mode disabled")
		return
	}

	var update tgbotapi.Update
	body := http.MaxBytesReader(w, r.Body, maxWebhookBodySize)
	if err := json.NewDecoder(body).Decode(&update); err != nil {
		slog.Warn("Failed to decode webhook update", "error", err)
		Error(w, http.StatusBadRequest, "malformed update")
		return
	}

	select {
	case h.updates <- update:
		w.WriteHeader(http.StatusOK)
	case <-r.Context().Done():
		Error(w, http.StatusServiceUnavailable, "shutting down")
	}
}
