// Package middleware provides HTTP middleware for the bot's API.
package middleware

import (
	"crypto/subtle"
	"net/http"
)

// secretTokenHeader is set by Telegram on every webhook delivery when a
// secret token was supplied at registration time.
const secretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

// WebhookSecret returns middleware that rejects webhook deliveries whose
// secret token header does not match. An empty secret disables the check.
func WebhookSecret(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret != "" {
				got := r.Header.Get(secretTokenHeader)
				if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
					http.Error(w, "forbidden", http.StatusForbidden)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
