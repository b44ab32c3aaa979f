package http

import (
	"net/http"

	"github.com/coursepilot/coursepilot/internal/server/service"
	"github.com/coursepilot/coursepilot/pkg/httpx"
)

// UpdatePaymentStatusRequest names a payment and its next state.
type UpdatePaymentStatusRequest struct {
	ID     string `json:"id" validate:"required"`
	Status string `json:"status" validate:"required"`
}

type UpdatePaymentStatusHandler struct {
	PaymentService *service.PaymentService
}

// ServeHTTP approves or rejects a submitted payment.
//
//	@Summary	Update payment status
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		request	body		UpdatePaymentStatusRequest	true	"Payment id and target status"
//	@Success	200		{object}	httpx.Message
//	@Failure	400		{object}	httpx.Message	"Unknown status or terminal payment"
//	@Failure	401		{object}	httpx.Message
//	@Failure	404		{object}	httpx.Message
//	@Failure	500		{object}	httpx.Message
//	@Router		/AdminComponent/UpdatePaymentStatus [post].
func (h *UpdatePaymentStatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req UpdatePaymentStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Missing fields")
		return
	}

	if err := h.PaymentService.SetStatus(r.Context(), req.ID, req.Status); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteMessage(w, http.StatusOK, "Status updated")
}

type CourseManagementHandler struct {
	AdminService *service.AdminService
}

// ServeHTTP lists every stored course suggestion across all accounts.
//
//	@Summary	List all course suggestions
//	@Tags		Admin
//	@Produce	json
//	@Success	200	{array}		domain.CourseSuggestion
//	@Failure	401	{object}	httpx.Message
//	@Failure	404	{object}	httpx.Message
//	@Failure	500	{object}	httpx.Message
//	@Router		/AdminComponent/CourseManagment [post].
func (h *CourseManagementHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	suggestions, err := h.AdminService.ListAllSuggestions(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if len(suggestions) == 0 {
		httpx.WriteMessage(w, http.StatusNotFound, "No record found")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, suggestions)
}

type AdminBillingHandler struct {
	PaymentService *service.PaymentService
}

// ServeHTTP lists every payment submission for review.
//
//	@Summary	List all payments
//	@Tags		Admin
//	@Produce	json
//	@Success	200	{array}		PaymentResponse
//	@Failure	401	{object}	httpx.Message
//	@Failure	404	{object}	httpx.Message
//	@Failure	500	{object}	httpx.Message
//	@Router		/AdminComponent/BillingPayment [post].
func (h *AdminBillingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	payments, err := h.PaymentService.ListAll(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if len(payments) == 0 {
		httpx.WriteMessage(w, http.StatusNotFound, "No data found")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPaymentResponses(payments))
}

type TotalUsersHandler struct {
	AdminService *service.AdminService
}

// ServeHTTP returns the registered account count.
//
//	@Summary	Count registered users
//	@Tags		Admin
//	@Produce	json
//	@Success	200	{integer}	int64
//	@Failure	401	{object}	httpx.Message
//	@Failure	500	{object}	httpx.Message
//	@Router		/AdminComponent/totalUsers [post].
func (h *TotalUsersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	count, err := h.AdminService.TotalUsers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, count)
}

type TotalAmountHandler struct {
	AdminService *service.AdminService
}

// ServeHTTP returns the revenue rollup.
//
//	@Summary	Total course revenue
//	@Tags		Admin
//	@Produce	json
//	@Success	200	{number}	float64
//	@Failure	401	{object}	httpx.Message
//	@Failure	500	{object}	httpx.Message
//	@Router		/AdminComponent/totalamount [post].
func (h *TotalAmountHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	amount, err := h.AdminService.TotalAmount(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, amount)
}

type TotalCoursesHandler struct {
	AdminService *service.AdminService
}

// ServeHTTP returns the stored result count.
//
//	@Summary	Count stored results
//	@Tags		Admin
//	@Produce	json
//	@Success	200	{integer}	int64
//	@Failure	401	{object}	httpx.Message
//	@Failure	500	{object}	httpx.Message
//	@Router		/AdminComponent/totalcourses [post].
func (h *TotalCoursesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	count, err := h.AdminService.TotalCourses(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, count)
}

type UserManagementHandler struct {
	AdminService *service.AdminService
}

// ServeHTTP lists every account without credential material.
//
//	@Summary	List accounts
//	@Tags		Admin
//	@Produce	json
//	@Success	200	{array}		service.AccountSummary
//	@Failure	401	{object}	httpx.Message
//	@Failure	500	{object}	httpx.Message
//	@Router		/AdminComponent/UserManagment [post].
func (h *UserManagementHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.AdminService.ListAccounts(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, accounts)
}
