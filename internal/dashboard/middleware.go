package dashboard

import (
	"context"
	"net/http"

	"github.com/me/shopadmin/internal/api"
	"github.com/me/shopadmin/pkg/model"
)

// Context keys for session data.
type contextKey string

const (
	sessionContextKey contextKey = "session"
)

// SessionFromContext retrieves the session from the request context.
func SessionFromContext(ctx context.Context) *model.Session {
	sess, _ := ctx.Value(sessionContextKey).(*model.Session)
	return sess
}

// tokenFromContext returns the bearer token source for the current
// session. Handlers pass this to every API call.
func tokenFromContext(ctx context.Context) api.TokenSource {
	sess := SessionFromContext(ctx)
	if sess == nil {
		return nil
	}
	return api.StaticToken(sess.Token)
}

// AuthMiddleware validates the session and adds it to the request
// context. Every protected route goes through this single guard; no
// page reaches its handler without a valid token in the session.
func (ui *UI) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := ui.sessions.GetSessionFromRequest(r)
		if err != nil {
			ui.logger.Error("session lookup failed", "error", err)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		if sess == nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminMiddleware ensures the user has admin role.
// Must be used after AuthMiddleware.
func (ui *UI) AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFromContext(r.Context())
		if sess == nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		if !sess.IsAdmin() {
			http.Error(w, "Forbidden: Admin access required", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
