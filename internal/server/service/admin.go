package service

import (
	"context"

	"github.com/coursepilot/coursepilot/internal/server/domain"
	"github.com/coursepilot/coursepilot/internal/server/store"
)

// AdminService serves the read-only rollups behind the admin dashboard.
type AdminService struct {
	Store store.Store

	// CoursePrice is the flat per-course price used for the revenue
	// rollup.
	CoursePrice float64
}

// TotalUsers returns the number of registered accounts.
func (s *AdminService) TotalUsers(ctx context.Context) (int64, error) {
	return s.Store.Accounts().CountAccounts(ctx)
}

// TotalCourses returns the number of stored assessment results.
func (s *AdminService) TotalCourses(ctx context.Context) (int64, error) {
	return s.Store.Results().CountResults(ctx)
}

// TotalAmount returns result count times the configured course price.
func (s *AdminService) TotalAmount(ctx context.Context) (float64, error) {
	count, err := s.Store.Results().CountResults(ctx)
	if err != nil {
		return 0, err
	}
	return float64(count) * s.CoursePrice, nil
}

// AccountSummary is an account stripped of credential material.
type AccountSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// ListAccounts returns every account without password hashes.
func (s *AdminService) ListAccounts(ctx context.Context) ([]AccountSummary, error) {
	accounts, err := s.Store.Accounts().ListAccounts(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]AccountSummary, 0, len(accounts))
	for _, a := range accounts {
		summaries = append(summaries, AccountSummary{
			ID:       a.ID,
			Username: a.Username,
			Email:    a.Email,
			Role:     a.Role,
		})
	}
	return summaries, nil
}

// ListAllSuggestions flattens every stored course suggestion across all
// accounts for the course management view.
func (s *AdminService) ListAllSuggestions(ctx context.Context) ([]domain.CourseSuggestion, error) {
	payloads, err := s.Store.Results().ListAllSuggestionPayloads(ctx)
	if err != nil {
		return nil, err
	}
	return decodeSuggestionPayloads(ctx, payloads), nil
}
