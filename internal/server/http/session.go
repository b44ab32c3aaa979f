package http

import (
	"net/http"

	"github.com/coursepilot/coursepilot/internal/server/service"
	"github.com/coursepilot/coursepilot/pkg/httpx"
)

type GetSessionHandler struct {
	SessionService *service.SessionService
}

// ServeHTTP returns the current principal. A missing or expired session
// answers 404, not 401; the frontend probes this endpoint to decide
// whether a login screen is needed.
//
//	@Summary	Read the current session
//	@Tags		Session
//	@Produce	json
//	@Success	200	{object}	domain.Principal
//	@Failure	404	{object}	httpx.Message	"No session found"
//	@Router		/get-session [post].
func (h *GetSessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		httpx.WriteMessage(w, http.StatusNotFound, "No session found")
		return
	}

	sess, err := h.SessionService.Validate(r.Context(), cookie.Value)
	if err != nil {
		httpx.WriteMessage(w, http.StatusNotFound, "No session found")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sess.Principal)
}

type LogoutHandler struct {
	SessionService *service.SessionService
	CookieSecure   bool
}

// ServeHTTP destroys the session and clears the cookie. Idempotent.
//
//	@Summary	Log out
//	@Tags		Session
//	@Produce	json
//	@Success	200	{object}	httpx.Message
//	@Failure	500	{object}	httpx.Message
//	@Router		/component/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		if err := h.SessionService.Destroy(r.Context(), cookie.Value); err != nil {
			writeServiceError(w, r, err)
			return
		}
	}

	clearSessionCookie(w, h.CookieSecure)
	httpx.WriteMessage(w, http.StatusOK, "Logged out successfully")
}

// SidebarHandler confirms the caller holds a valid session; the gate has
// already done the work by the time it runs.
//
//	@Summary	Probe session validity
//	@Tags		Session
//	@Produce	json
//	@Success	200	{object}	httpx.Message
//	@Failure	401	{object}	httpx.Message
//	@Router		/component/sidebar [post].
func SidebarHandler(w http.ResponseWriter, r *http.Request) {
	httpx.WriteMessage(w, http.StatusOK, "Authorized")
}
