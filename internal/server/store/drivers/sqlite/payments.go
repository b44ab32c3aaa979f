package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/coursepilot/coursepilot/internal/server/domain"
	"github.com/coursepilot/coursepilot/internal/server/store"
)

type paymentsRepo struct {
	db dbtx
}

const paymentColumns = `id, account_id, name, subject, method, evidence_path, status, created_at, updated_at`

func (r *paymentsRepo) CreatePayment(ctx context.Context, p domain.Payment) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO payments (id, account_id, name, subject, method,
		                       evidence_path, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.AccountID, p.Name, p.Subject, p.Method, p.EvidencePath, p.Status, now, now)
	return err
}

func (r *paymentsRepo) GetPaymentByID(ctx context.Context, id string) (domain.Payment, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE id = ?`, id)
	return scanPayment(row)
}

func (r *paymentsRepo) UpdatePaymentStatus(ctx context.Context, id, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE payments SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *paymentsRepo) ListPaymentsByAccount(ctx context.Context, accountID string) ([]domain.Payment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+paymentColumns+` FROM payments
		 WHERE account_id = ? ORDER BY created_at DESC, id DESC`, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPayments(rows)
}

func (r *paymentsRepo) ListPurchasedSubjects(ctx context.Context, accountID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT subject FROM payments
		 WHERE account_id = ? AND status = ? ORDER BY created_at, id`,
		accountID, domain.PaymentApproved)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStrings(rows)
}

func (r *paymentsRepo) ListAllPayments(ctx context.Context) ([]domain.Payment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+paymentColumns+` FROM payments ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPayments(rows)
}

func scanPayment(row rowScanner) (domain.Payment, error) {
	var p domain.Payment
	err := row.Scan(&p.ID, &p.AccountID, &p.Name, &p.Subject, &p.Method,
		&p.EvidencePath, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Payment{}, mapNotFound(err)
	}
	return p, nil
}

func scanPayments(rows *sql.Rows) ([]domain.Payment, error) {
	var payments []domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
