package middleware

import (
	"context"
	"mohini-backend/config"
	"mohini-backend/internal/domain"
	"net/http"

	"github.com/google/uuid"
)

// NewSessionMiddleware ensures every request carries a session cookie.
// The session ID scopes the visitor's cart and wishlist.
func NewSessionMiddleware(cfg *config.Config) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sid := ""
			if c, err := r.Cookie(cfg.SessionCookieName); err == nil && c.Value != "" {
				sid = c.Value
			}

			if sid == "" {
				sid = uuid.New().String()
				http.SetCookie(w, &http.Cookie{
					Name:     cfg.SessionCookieName,
					Value:    sid,
					Path:     "/",
					MaxAge:   int(cfg.SessionCookieTTL.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), domain.SessionContextKey, sid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
