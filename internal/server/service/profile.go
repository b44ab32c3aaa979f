package service

import (
	"context"
	"errors"

	"github.com/coursepilot/coursepilot/internal/server/domain"
	"github.com/coursepilot/coursepilot/internal/server/store"
)

// ProfileService manages the contact details a user edits on the settings
// page.
type ProfileService struct {
	Store store.Store
}

// Upsert inserts or fully overwrites the account's profile.
func (s *ProfileService) Upsert(ctx context.Context, p domain.Profile) error {
	return s.Store.Profiles().UpsertProfile(ctx, p)
}

// ProfileView is a profile joined with the account's email for display.
type ProfileView struct {
	Profile domain.Profile
	Email   string
}

// Get returns the account's profile together with its email. An account
// without a saved profile yields an empty profile, not an error.
func (s *ProfileService) Get(ctx context.Context, accountID string) (ProfileView, error) {
	a, err := s.Store.Accounts().GetAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ProfileView{}, ErrNotFound
		}
		return ProfileView{}, err
	}

	p, err := s.Store.Profiles().GetProfile(ctx, accountID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return ProfileView{}, err
	}
	p.AccountID = accountID
	return ProfileView{Profile: p, Email: a.Email}, nil
}
