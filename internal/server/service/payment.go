package service

import (
	"context"
	"errors"
	"io"

	"github.com/coursepilot/coursepilot/internal/server/domain"
	"github.com/coursepilot/coursepilot/internal/server/filestore"
	"github.com/coursepilot/coursepilot/internal/server/store"
	"github.com/coursepilot/coursepilot/pkg/idx"
	"github.com/coursepilot/coursepilot/pkg/slogx"
)

// PaymentService runs the payment-evidence workflow: users submit a file
// plus purchase details, admins approve or reject. Approved and rejected
// are terminal.
type PaymentService struct {
	Store store.Store
	Files *filestore.Store
}

// SubmitPaymentInput is one payment submission.
type SubmitPaymentInput struct {
	Name     string
	Subject  string
	Method   string
	FileName string
	File     io.Reader
}

// Submit stores the evidence file first, then the payment row. If the row
// insert fails the stored file is removed again.
func (s *PaymentService) Submit(ctx context.Context, accountID string, in SubmitPaymentInput) (domain.Payment, error) {
	stored, err := s.Files.Save(in.FileName, in.File)
	if err != nil {
		return domain.Payment{}, err
	}

	p := domain.Payment{
		ID:           idx.New().String(),
		AccountID:    accountID,
		Name:         in.Name,
		Subject:      in.Subject,
		Method:       in.Method,
		EvidencePath: stored,
		Status:       domain.PaymentSubmitted,
	}
	if err := s.Store.Payments().CreatePayment(ctx, p); err != nil {
		_ = s.Files.Remove(stored)
		return domain.Payment{}, err
	}

	slogx.FromContext(ctx).Info("payment submitted",
		"payment_id", p.ID, "account_id", accountID, "subject", p.Subject)
	return p, nil
}

// SetStatus moves a payment to a new state. Only submitted payments may
// transition; terminal payments reject further updates.
func (s *PaymentService) SetStatus(ctx context.Context, paymentID, status string) error {
	if !domain.ValidPaymentStatus(status) || status == domain.PaymentSubmitted {
		return ErrInvalidTransition
	}

	p, err := s.Store.Payments().GetPaymentByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if domain.TerminalPaymentStatus(p.Status) {
		return ErrInvalidTransition
	}

	if err := s.Store.Payments().UpdatePaymentStatus(ctx, paymentID, status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	slogx.FromContext(ctx).Info("payment status updated",
		"payment_id", paymentID, "status", status)
	return nil
}

// ListMine returns the account's own submissions, newest first.
func (s *PaymentService) ListMine(ctx context.Context, accountID string) ([]domain.Payment, error) {
	return s.Store.Payments().ListPaymentsByAccount(ctx, accountID)
}

// ListPurchased returns the subjects of the account's approved payments.
func (s *PaymentService) ListPurchased(ctx context.Context, accountID string) ([]string, error) {
	return s.Store.Payments().ListPurchasedSubjects(ctx, accountID)
}

// ListAll returns every submission for the admin billing view.
func (s *PaymentService) ListAll(ctx context.Context) ([]domain.Payment, error) {
	return s.Store.Payments().ListAllPayments(ctx)
}
