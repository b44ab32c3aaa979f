package sqlite

import (
	"context"
	"time"

	"github.com/coursepilot/coursepilot/internal/server/domain"
)

type profilesRepo struct {
	db dbtx
}

func (r *profilesRepo) UpsertProfile(ctx context.Context, p domain.Profile) error {
	// Full overwrite on conflict; no partial-field merge.
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO profiles (account_id, name, phone, country, province, city, street, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(account_id) DO UPDATE SET
		   name = excluded.name,
		   phone = excluded.phone,
		   country = excluded.country,
		   province = excluded.province,
		   city = excluded.city,
		   street = excluded.street,
		   updated_at = excluded.updated_at`,
		p.AccountID, p.Name, p.Phone, p.Country, p.Province, p.City, p.Street,
		time.Now().UTC())
	return err
}

func (r *profilesRepo) GetProfile(ctx context.Context, accountID string) (domain.Profile, error) {
	var p domain.Profile
	err := r.db.QueryRowContext(ctx,
		`SELECT account_id, name, phone, country, province, city, street, updated_at
		 FROM profiles WHERE account_id = ?`, accountID).
		Scan(&p.AccountID, &p.Name, &p.Phone, &p.Country, &p.Province, &p.City,
			&p.Street, &p.UpdatedAt)
	if err != nil {
		return domain.Profile{}, mapNotFound(err)
	}
	return p, nil
}
