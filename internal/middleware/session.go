package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type sessionKey struct{}

// sessionCookieName is the cookie carrying the browser's session id (default: "widget_session").
var sessionCookieName = "widget_session"

// SetSessionCookieName sets the session cookie name. Used at startup and in tests.
func SetSessionCookieName(name string) {
	if name != "" {
		sessionCookieName = name
	}
}

// Session makes sure every request carries a session id. The id identifies
// the browser to the location store, standing in for client-side storage.
// A missing or malformed cookie is replaced by a fresh random id.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if c, err := r.Cookie(sessionCookieName); err == nil {
			if parsed, err := uuid.Parse(c.Value); err == nil {
				id = parsed.String()
			}
		}
		if id == "" {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookieName,
				Value:    id,
				Path:     "/",
				MaxAge:   400 * 24 * 60 * 60,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), id)))
	})
}

// WithSessionID returns a copy of ctx carrying id.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionKey{}, id)
}

// SessionID returns the session id stored by Session, or "" if there is none.
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}
