package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWebhookSecret(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name     string
		secret   string
		header   string
		wantCode int
	}{
		{"no secret configured", "", "", http.StatusOK},
		{"no secret configured ignores header", "", "anything", http.StatusOK},
		{"matching secret", "s3cret", "s3cret", http.StatusOK},
		{"missing header", "s3cret", "", http.StatusForbidden},
		{"wrong header", "s3cret", "nope", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := WebhookSecret(tt.secret)(next)

			req := httptest.NewRequest(http.MethodPost, "/telegram/webhook", nil)
			if tt.header != "" {
				req.Header.Set("X-Telegram-Bot-Api-Secret-Token", tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Errorf("Expected status %d, got %d", tt.wantCode, w.Code)
			}
		})
	}
}
