package domain

import "time"

// Payment submission states. Submitted is the only non-terminal state;
// approved and rejected are terminal.
const (
	PaymentSubmitted = "submitted"
	PaymentApproved  = "approved"
	PaymentRejected  = "rejected"
)

// Payment is one payment-evidence submission for a course purchase. The
// evidence file lives in the file store; EvidencePath is its reference.
type Payment struct {
	ID           string
	AccountID    string
	Name         string
	Subject      string
	Method       string
	EvidencePath string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidPaymentStatus reports whether s is a known payment state.
func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentSubmitted, PaymentApproved, PaymentRejected:
		return true
	}
	return false
}

// TerminalPaymentStatus reports whether s permits no further transitions.
func TerminalPaymentStatus(s string) bool {
	return s == PaymentApproved || s == PaymentRejected
}
