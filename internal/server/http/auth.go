package http

import (
	"encoding/json"
	"net/http"

	"github.com/coursepilot/coursepilot/internal/server/service"
	"github.com/coursepilot/coursepilot/pkg/httpx"
	"github.com/coursepilot/coursepilot/pkg/slogx"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginHandler struct {
	AuthService    *service.AuthService
	SessionService *service.SessionService
	CookieSecure   bool
}

// ServeHTTP handles login.
//
//	@Summary		Log in
//	@Description	Verifies credentials and issues an opaque session cookie.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Credentials"
//	@Success		200		{object}	httpx.Message
//	@Failure		400		{object}	httpx.Message	"Malformed payload"
//	@Failure		401		{object}	httpx.Message	"Invalid email or password"
//	@Failure		500		{object}	httpx.Message
//	@Router			/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Malformed request body")
		return
	}

	account, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	sess, err := h.SessionService.Create(ctx, account)
	if err != nil {
		slogx.FromContext(ctx).Error("session creation failed", "error", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	setSessionCookie(w, sess.Token, h.CookieSecure, int(h.SessionService.TTL.Seconds()))
	httpx.WriteMessage(w, http.StatusOK, "Welcome "+account.Username)
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type RegisterHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles registration.
//
//	@Summary		Register a new account
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RegisterRequest	true	"New account"
//	@Success		200		{object}	httpx.Message
//	@Failure		400		{object}	httpx.Message	"Validation error or duplicate email"
//	@Failure		500		{object}	httpx.Message
//	@Router			/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Malformed request body")
		return
	}

	if _, err := h.AuthService.Register(r.Context(), req.Username, req.Email, req.Password); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteMessage(w, http.StatusOK, "User registered successfully")
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

type ChangePasswordHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles password changes for the logged-in account.
//
//	@Summary	Change password
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		ChangePasswordRequest	true	"Current and new password"
//	@Success	200		{object}	httpx.Message
//	@Failure	400		{object}	httpx.Message	"Current password is incorrect"
//	@Failure	401		{object}	httpx.Message
//	@Failure	500		{object}	httpx.Message
//	@Router		/api/change-password [post].
func (h *ChangePasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFromContext(r.Context())

	var req ChangePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Malformed request body")
		return
	}

	if err := h.AuthService.ChangePassword(r.Context(), p.AccountID, req.CurrentPassword, req.NewPassword); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteMessage(w, http.StatusOK, "Password updated successfully")
}

// decodeJSON decodes and validates a JSON request body.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return validate.Struct(v)
}

func setSessionCookie(w http.ResponseWriter, token string, secure bool, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
