package http

import (
	"context"
	"net/http"

	"github.com/coursepilot/coursepilot/internal/server/domain"
	"github.com/coursepilot/coursepilot/internal/server/service"
	"github.com/coursepilot/coursepilot/pkg/httpx"
	"github.com/coursepilot/coursepilot/pkg/slogx"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "user_sid"

type principalKey struct{}

// PrincipalFromContext returns the authenticated principal attached by
// RequireSession.
func PrincipalFromContext(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(domain.Principal)
	return p, ok
}

// RequireSession is the session gate. It resolves the session cookie and
// attaches the principal to the request context; any failure (missing
// cookie, unknown token, expired session) is rejected with 401 before the
// wrapped handler runs.
func RequireSession(sessions *service.SessionService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				httpx.WriteMessage(w, http.StatusUnauthorized, "User not logged in")
				return
			}

			sess, err := sessions.Validate(r.Context(), cookie.Value)
			if err != nil {
				httpx.WriteMessage(w, http.StatusUnauthorized, "User not logged in")
				return
			}

			ctx := context.WithValue(r.Context(), principalKey{}, sess.Principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects non-admin principals. Must run after
// RequireSession.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := PrincipalFromContext(r.Context())
		if !ok || !p.IsAdmin() {
			slogx.FromContext(r.Context()).Warn("admin route rejected",
				"account_id", p.AccountID)
			httpx.WriteMessage(w, http.StatusUnauthorized, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
