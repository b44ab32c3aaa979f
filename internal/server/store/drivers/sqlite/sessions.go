package sqlite

import (
	"context"
	"time"

	"github.com/coursepilot/coursepilot/internal/server/domain"
)

type sessionsRepo struct {
	db dbtx
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (token, account_id, username, role, created_at, expires_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		s.Token, s.Principal.AccountID, s.Principal.Username, s.Principal.Role,
		s.CreatedAt, s.ExpiresAt)
	return mapConstraint(err)
}

func (r *sessionsRepo) GetSessionByToken(ctx context.Context, token string) (domain.Session, error) {
	var s domain.Session
	err := r.db.QueryRowContext(ctx,
		`SELECT token, account_id, username, role, created_at, expires_at
		 FROM sessions WHERE token = ?`, token).
		Scan(&s.Token, &s.Principal.AccountID, &s.Principal.Username, &s.Principal.Role,
			&s.CreatedAt, &s.ExpiresAt)
	if err != nil {
		return domain.Session{}, mapNotFound(err)
	}
	return s, nil
}

func (r *sessionsRepo) DeleteSession(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = ?`, token)
	return err
}

func (r *sessionsRepo) DeleteExpiredSessions(ctx context.Context, now time.Time) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at < ?`, now)
	return err
}
