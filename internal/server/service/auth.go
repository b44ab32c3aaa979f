package service

import (
	"context"
	"errors"
	"strings"

	"github.com/coursepilot/coursepilot/internal/server/domain"
	"github.com/coursepilot/coursepilot/internal/server/store"
	"github.com/coursepilot/coursepilot/pkg/cryptox"
	"github.com/coursepilot/coursepilot/pkg/idx"
	"github.com/coursepilot/coursepilot/pkg/slogx"
)

// AuthService handles registration, login and password changes. Password
// hashing is delegated to cryptox (argon2id).
type AuthService struct {
	Store store.Store
}

// Login verifies the credentials and returns the matching account.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Account, error) {
	a, err := s.Store.Accounts().GetAccountByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, ErrInvalidCredentials
		}
		return domain.Account{}, err
	}

	if err := cryptox.VerifyPassword(password, a.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return domain.Account{}, ErrInvalidCredentials
		}
		return domain.Account{}, err
	}
	return a, nil
}

// Register creates a new user account. The email unique constraint is the
// sole duplicate check; ErrDuplicateEmail surfaces a violation.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (domain.Account, error) {
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.Account{}, err
	}

	a := domain.Account{
		ID:           idx.New().String(),
		Username:     username,
		Email:        normalizeEmail(email),
		PasswordHash: hash,
		Role:         domain.RoleUser,
	}
	if err := s.Store.Accounts().CreateAccount(ctx, a); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Account{}, ErrDuplicateEmail
		}
		return domain.Account{}, err
	}

	slogx.FromContext(ctx).Info("account registered", "account_id", a.ID)
	return a, nil
}

// ChangePassword verifies the current password and stores a fresh hash.
func (s *AuthService) ChangePassword(ctx context.Context, accountID, current, next string) error {
	a, err := s.Store.Accounts().GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := cryptox.VerifyPassword(current, a.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return ErrWrongPassword
		}
		return err
	}

	hash, err := cryptox.HashPassword(next)
	if err != nil {
		return err
	}
	return s.Store.Accounts().UpdatePasswordHash(ctx, accountID, hash)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
