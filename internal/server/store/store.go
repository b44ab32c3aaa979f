// Package store defines the data access contracts. Concrete drivers live
// under drivers/; the rest of the application only sees these interfaces.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/coursepilot/coursepilot/internal/server/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. It exposes sub-repositories per
// entity to keep concerns separate and testable.
type Store interface {
	Accounts() Accounts
	Sessions() Sessions
	Results() Results
	Payments() Payments
	Profiles() Profiles

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing when fn returns
	// nil and rolling back otherwise. Preferred over Tx for multi-step
	// writes that must be atomic (result + question rows).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transaction-scoped store with explicit Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Accounts interface {
	// GetAccountByID returns an account by id.
	GetAccountByID(ctx context.Context, id string) (domain.Account, error)

	// GetAccountByEmail is used during login. Email lookups are exact.
	GetAccountByEmail(ctx context.Context, email string) (domain.Account, error)

	// CreateAccount inserts a new account (id provided by the app via ULID).
	// Returns ErrAlreadyExists when the email violates the unique
	// constraint; callers rely on the constraint, not a prior existence
	// check, for duplicate detection.
	CreateAccount(ctx context.Context, a domain.Account) error

	// UpdatePasswordHash sets the password hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, accountID, newHash string) error

	// ListAccounts returns all accounts, newest first.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// CountAccounts returns the number of registered accounts.
	CountAccounts(ctx context.Context) (int64, error)
}

type Sessions interface {
	// CreateSession stores a new session row.
	CreateSession(ctx context.Context, s domain.Session) error

	// GetSessionByToken returns the session for an opaque token,
	// expired or not; expiry policy belongs to the service layer.
	GetSessionByToken(ctx context.Context, token string) (domain.Session, error)

	// DeleteSession removes one session (logout).
	DeleteSession(ctx context.Context, token string) error

	// DeleteExpiredSessions removes every session past its expiry.
	// Housekeeping calls this periodically.
	DeleteExpiredSessions(ctx context.Context, now time.Time) error
}

type Results interface {
	// CreateResult inserts one assessment result row.
	CreateResult(ctx context.Context, r domain.Result) error

	// CreateQuestion inserts one answered-question row referencing a result.
	CreateQuestion(ctx context.Context, q domain.Question) error

	// ListResultsByAccount returns the account's results in insertion order.
	ListResultsByAccount(ctx context.Context, accountID string) ([]domain.Result, error)

	// ListQuestionsByResult returns the questions belonging to a result.
	ListQuestionsByResult(ctx context.Context, resultID string) ([]domain.Question, error)

	// CountQuestionsByResult returns how many question rows reference a result.
	CountQuestionsByResult(ctx context.Context, resultID string) (int64, error)

	// ListSuggestionPayloadsByAccount returns the raw course_suggestions
	// column of the account's results in insertion order. The service layer
	// decodes them and drops entries that fail to decode.
	ListSuggestionPayloadsByAccount(ctx context.Context, accountID string) ([]string, error)

	// ListAllSuggestionPayloads returns the raw course_suggestions column
	// of every result (admin course management view).
	ListAllSuggestionPayloads(ctx context.Context) ([]string, error)

	// CountResults returns the number of stored results.
	CountResults(ctx context.Context) (int64, error)
}

type Payments interface {
	// CreatePayment inserts a payment submission.
	CreatePayment(ctx context.Context, p domain.Payment) error

	// GetPaymentByID returns one payment row.
	GetPaymentByID(ctx context.Context, id string) (domain.Payment, error)

	// UpdatePaymentStatus sets the status and bumps updated_at.
	UpdatePaymentStatus(ctx context.Context, id, status string) error

	// ListPaymentsByAccount returns the account's submissions, newest first.
	ListPaymentsByAccount(ctx context.Context, accountID string) ([]domain.Payment, error)

	// ListPurchasedSubjects returns the subject of every approved payment
	// owned by the account.
	ListPurchasedSubjects(ctx context.Context, accountID string) ([]string, error)

	// ListAllPayments returns every submission, newest first (admin view).
	ListAllPayments(ctx context.Context) ([]domain.Payment, error)
}

type Profiles interface {
	// UpsertProfile inserts or fully overwrites the profile keyed by
	// account id. No partial-field merge.
	UpsertProfile(ctx context.Context, p domain.Profile) error

	// GetProfile returns the profile for an account.
	GetProfile(ctx context.Context, accountID string) (domain.Profile, error)
}
