package http

import (
	"errors"
	"net/http"

	"github.com/coursepilot/coursepilot/internal/server/service"
	"github.com/coursepilot/coursepilot/pkg/httpx"
	"github.com/coursepilot/coursepilot/pkg/slogx"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// writeServiceError maps service sentinels onto the public status
// contract. Storage errors stay generic; the detail is only logged.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, "No data found")
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteMessage(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, service.ErrUnauthorized):
		httpx.WriteMessage(w, http.StatusUnauthorized, "User not logged in")
	case errors.Is(err, service.ErrDuplicateEmail):
		httpx.WriteMessage(w, http.StatusBadRequest, "Email already exists")
	case errors.Is(err, service.ErrWrongPassword):
		httpx.WriteMessage(w, http.StatusBadRequest, "Current password is incorrect")
	case errors.Is(err, service.ErrInvalidTransition):
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid payment status")
	default:
		slogx.FromContext(r.Context()).Error("request failed", "error", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Server error")
	}
}
