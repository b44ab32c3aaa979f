package service

import (
	"context"
	"errors"
	"time"

	"github.com/coursepilot/coursepilot/internal/server/domain"
	"github.com/coursepilot/coursepilot/internal/server/store"
	"github.com/coursepilot/coursepilot/pkg/cryptox"
)

// SessionService issues and validates opaque session tokens. Sessions
// carry a fixed TTL from creation and are never refreshed on use.
type SessionService struct {
	Store store.Store
	TTL   time.Duration
}

// Create issues a new session for the account and returns it. The
// principal is a snapshot of the account at login time.
func (s *SessionService) Create(ctx context.Context, a domain.Account) (domain.Session, error) {
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return domain.Session{}, err
	}

	now := time.Now().UTC()
	sess := domain.Session{
		Token: token,
		Principal: domain.Principal{
			AccountID: a.ID,
			Username:  a.Username,
			Role:      a.Role,
		},
		CreatedAt: now,
		ExpiresAt: now.Add(s.TTL),
	}
	if err := s.Store.Sessions().CreateSession(ctx, sess); err != nil {
		return domain.Session{}, err
	}
	return sess, nil
}

// Validate resolves a token to its session. Unknown tokens and expired
// sessions both return ErrUnauthorized; expired rows are deleted on the
// spot so a stale cookie cannot be replayed after housekeeping lags.
func (s *SessionService) Validate(ctx context.Context, token string) (domain.Session, error) {
	sess, err := s.Store.Sessions().GetSessionByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Session{}, ErrUnauthorized
		}
		return domain.Session{}, err
	}

	if sess.Expired(time.Now().UTC()) {
		_ = s.Store.Sessions().DeleteSession(ctx, token)
		return domain.Session{}, ErrUnauthorized
	}
	return sess, nil
}

// Destroy removes a session (logout). Unknown tokens are not an error so
// logout is idempotent.
func (s *SessionService) Destroy(ctx context.Context, token string) error {
	err := s.Store.Sessions().DeleteSession(ctx, token)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	return nil
}

// PurgeExpired removes every session past its expiry.
func (s *SessionService) PurgeExpired(ctx context.Context) error {
	return s.Store.Sessions().DeleteExpiredSessions(ctx, time.Now().UTC())
}
