package http

import (
	"context"
	"net/http"

	"github.com/DavidBen48/connect-sao-bento/internal/session"
)

// SessionCookie carries the shopping session id between requests. The cart
// lives only in memory, so losing the cookie simply starts an empty session.
const SessionCookie = "cart_session"

// SessionMiddleware resolves the session id from the cookie, minting a new
// one for first-time visitors, and puts it on the request context.
func SessionMiddleware(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sessionID string
			if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
				sessionID = c.Value
			}

			if sessionID == "" {
				sessionID = store.NewSession()
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookie,
					Value:    sessionID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), "session_id", sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func getSessionID(ctx context.Context) string {
	if sessionID, ok := ctx.Value("session_id").(string); ok {
		return sessionID
	}
	return ""
}
