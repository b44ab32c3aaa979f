package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/coursepilot/coursepilot/internal/server/domain"
	"github.com/coursepilot/coursepilot/internal/server/store"
	"github.com/coursepilot/coursepilot/pkg/cryptox"
	"github.com/coursepilot/coursepilot/pkg/idx"
)

// SeedAdmin ensures a configuration-seeded admin account exists. Called
// once at startup; a second run against the same database is a no-op.
// Seeding is skipped entirely when the email is empty.
func SeedAdmin(ctx context.Context, st store.Store, logger *slog.Logger, username, email, password string) error {
	if email == "" {
		logger.Warn("admin seeding skipped, no admin email configured")
		return nil
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return err
	}

	a := domain.Account{
		ID:           idx.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	}
	if err := st.Accounts().CreateAccount(ctx, a); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			logger.Debug("admin account already present", "email", email)
			return nil
		}
		return err
	}

	logger.Info("admin account seeded", "account_id", a.ID, "email", email)
	return nil
}
