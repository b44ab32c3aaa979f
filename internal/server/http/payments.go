package http

import (
	"net/http"

	"github.com/coursepilot/coursepilot/internal/server/domain"
	"github.com/coursepilot/coursepilot/internal/server/service"
	"github.com/coursepilot/coursepilot/pkg/httpx"
)

// maxEvidenceSize caps payment evidence uploads at 10 MiB.
const maxEvidenceSize = 10 << 20

type SubmitPaymentHandler struct {
	PaymentService *service.PaymentService
}

// ServeHTTP accepts a multipart payment submission with an evidence file
// under the "receipt" field.
//
//	@Summary	Submit payment evidence
//	@Tags		Payments
//	@Accept		mpfd
//	@Produce	json
//	@Param		name			formData	string	true	"Payer name"
//	@Param		subject			formData	string	true	"Course subject"
//	@Param		paymentMethod	formData	string	true	"Payment method"
//	@Param		receipt			formData	file	true	"Evidence file"
//	@Success	200				{object}	httpx.Message
//	@Failure	400				{object}	httpx.Message	"Missing required fields"
//	@Failure	401				{object}	httpx.Message
//	@Failure	500				{object}	httpx.Message
//	@Router		/component/submitPayment [post].
func (h *SubmitPaymentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFromContext(r.Context())

	if err := r.ParseMultipartForm(maxEvidenceSize); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Malformed multipart form")
		return
	}

	name := r.FormValue("name")
	subject := r.FormValue("subject")
	method := r.FormValue("paymentMethod")

	file, header, err := r.FormFile("receipt")
	if name == "" || subject == "" || method == "" || err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	defer file.Close()

	_, err = h.PaymentService.Submit(r.Context(), p.AccountID, service.SubmitPaymentInput{
		Name:     name,
		Subject:  subject,
		Method:   method,
		FileName: header.Filename,
		File:     file,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteMessage(w, http.StatusOK, "Payment submitted successfully")
}

// PaymentResponse is one payment submission.
type PaymentResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Method  string `json:"method"`
	Status  string `json:"status"`
	Image   string `json:"image"`
}

type BillingHandler struct {
	PaymentService *service.PaymentService
}

// ServeHTTP lists the caller's own payment submissions.
//
//	@Summary	List own payments
//	@Tags		Payments
//	@Produce	json
//	@Success	200	{array}		PaymentResponse
//	@Failure	401	{object}	httpx.Message
//	@Failure	404	{object}	httpx.Message	"No submissions yet"
//	@Failure	500	{object}	httpx.Message
//	@Router		/component/billing [post].
func (h *BillingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFromContext(r.Context())

	payments, err := h.PaymentService.ListMine(r.Context(), p.AccountID)
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

// PurchasedSubject is one approved course purchase.
type PurchasedSubject struct {
	Subject string `json:"subject"`
}

type PurchasedHandler struct {
	PaymentService *service.PaymentService
}

// ServeHTTP lists the subjects of the caller's approved payments.
//
//	@Summary	List purchased courses
//	@Tags		Payments
//	@Produce	json
//	@Success	200	{array}		PurchasedSubject
//	@Failure	401	{object}	httpx.Message
//	@Failure	404	{object}	httpx.Message	"Nothing approved yet"
//	@Failure	500	{object}	httpx.Message
//	@Router		/component/Purchased [post].
func (h *PurchasedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFromContext(r.Context())

	subjects, err := h.PaymentService.ListPurchased(r.Context(), p.AccountID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if len(subjects) == 0 {
		httpx.WriteMessage(w, http.StatusNotFound, "No data found")
		return
	}

	response := make([]PurchasedSubject, 0, len(subjects))
	for _, s := range subjects {
		response = append(response, PurchasedSubject{Subject: s})
	}
	httpx.WriteJSON(w, http.StatusOK, response)
}

func toPaymentResponses(payments []domain.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, PaymentResponse{
			ID:      p.ID,
			Name:    p.Name,
			Subject: p.Subject,
			Method:  p.Method,
			Status:  p.Status,
			Image:   "uploads/" + p.EvidencePath,
		})
	}
	return out
}
