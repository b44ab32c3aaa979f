package http

import (
	"net/http"

	"github.com/coursepilot/coursepilot/internal/server/domain"
	"github.com/coursepilot/coursepilot/internal/server/service"
	"github.com/coursepilot/coursepilot/pkg/httpx"
)

// UpdateProfileRequest carries the settings-page fields.
type UpdateProfileRequest struct {
	Name        string `json:"name" validate:"required"`
	PhoneNumber string `json:"phoneNumber"`
	Country     string `json:"country"`
	Province    string `json:"province"`
	City        string `json:"city"`
	Street      string `json:"street"`
}

// ProfileResponse is the stored profile plus the account email.
type ProfileResponse struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Country     string `json:"country"`
	Province    string `json:"province"`
	City        string `json:"city"`
	Street      string `json:"street"`
	Email       string `json:"email"`
}

type UpdateProfileHandler struct {
	ProfileService *service.ProfileService
}

// ServeHTTP upserts the caller's profile and echoes the stored state.
//
//	@Summary	Update profile settings
//	@Tags		Profile
//	@Accept		json
//	@Produce	json
//	@Param		request	body		UpdateProfileRequest	true	"Profile fields"
//	@Success	200		{object}	ProfileResponse
//	@Failure	400		{object}	httpx.Message
//	@Failure	401		{object}	httpx.Message
//	@Failure	500		{object}	httpx.Message
//	@Router		/component/setting [post].
func (h *UpdateProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFromContext(r.Context())

	var req UpdateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Malformed request body")
		return
	}

	profile := domain.Profile{
		AccountID: p.AccountID,
		Name:      req.Name,
		Phone:     req.PhoneNumber,
		Country:   req.Country,
		Province:  req.Province,
		City:      req.City,
		Street:    req.Street,
	}
	if err := h.ProfileService.Upsert(r.Context(), profile); err != nil {
		writeServiceError(w, r, err)
		return
	}

	view, err := h.ProfileService.Get(r.Context(), p.AccountID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProfileResponse(view))
}

type GetProfileHandler struct {
	ProfileService *service.ProfileService
}

// ServeHTTP returns the caller's profile joined with the account email.
//
//	@Summary	Read profile settings
//	@Tags		Profile
//	@Produce	json
//	@Success	200	{object}	ProfileResponse
//	@Failure	401	{object}	httpx.Message
//	@Failure	404	{object}	httpx.Message	"No profile saved yet"
//	@Failure	500	{object}	httpx.Message
//	@Router		/component/Updating_user [post].
func (h *GetProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFromContext(r.Context())

	view, err := h.ProfileService.Get(r.Context(), p.AccountID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if view.Profile.Name == "" && view.Profile.Phone == "" {
		httpx.WriteMessage(w, http.StatusNotFound, "No user data found")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProfileResponse(view))
}

func toProfileResponse(view service.ProfileView) ProfileResponse {
	return ProfileResponse{
		Name:        view.Profile.Name,
		PhoneNumber: view.Profile.Phone,
		Country:     view.Profile.Country,
		Province:    view.Profile.Province,
		City:        view.Profile.City,
		Street:      view.Profile.Street,
		Email:       view.Email,
	}
}
