package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/coursepilot/coursepilot/internal/server/domain"
	"github.com/coursepilot/coursepilot/internal/server/store"
	"github.com/coursepilot/coursepilot/pkg/idx"
	"github.com/coursepilot/coursepilot/pkg/slogx"
)

// ResultService stores finished assessment attempts and serves the
// dashboard, suggestion and progress reads built on them.
type ResultService struct {
	Store store.Store
}

// AnsweredQuestion is one question of a submitted attempt.
type AnsweredQuestion struct {
	Question       string
	Option1        string
	Option2        string
	Option3        string
	Option4        string
	CorrectOption  string
	SelectedOption string
}

// SubmitInput is a finished attempt plus its answered questions.
type SubmitInput struct {
	Name              string
	Subject           string
	Level             string
	Percent           float64
	StartTime         string
	EndTime           string
	Strengths         []string
	Improvements      []string
	CourseSuggestions []domain.CourseSuggestion
	Questions         []AnsweredQuestion
}

// Submit writes the result and all its question rows in one transaction,
// so a failure partway leaves no orphaned rows behind.
func (s *ResultService) Submit(ctx context.Context, accountID string, in SubmitInput) (domain.Result, error) {
	res := domain.Result{
		ID:                idx.New().String(),
		AccountID:         accountID,
		Name:              in.Name,
		Subject:           in.Subject,
		Level:             in.Level,
		Percent:           in.Percent,
		StartTime:         in.StartTime,
		EndTime:           in.EndTime,
		Strengths:         in.Strengths,
		Improvements:      in.Improvements,
		CourseSuggestions: in.CourseSuggestions,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Results().CreateResult(ctx, res); err != nil {
			return err
		}
		for _, q := range in.Questions {
			question := domain.Question{
				ID:             idx.New().String(),
				ResultID:       res.ID,
				Question:       q.Question,
				Option1:        q.Option1,
				Option2:        q.Option2,
				Option3:        q.Option3,
				Option4:        q.Option4,
				CorrectOption:  q.CorrectOption,
				SelectedOption: q.SelectedOption,
			}
			if err := tx.Results().CreateQuestion(ctx, question); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// The rollback already removed any rows written before the
		// failure.
		return domain.Result{}, errors.Join(ErrPartialWrite, err)
	}

	slogx.FromContext(ctx).Info("assessment result stored",
		"result_id", res.ID, "account_id", accountID, "questions", len(in.Questions))
	return res, nil
}

// ListResults returns the account's results in insertion order.
func (s *ResultService) ListResults(ctx context.Context, accountID string) ([]domain.Result, error) {
	return s.Store.Results().ListResultsByAccount(ctx, accountID)
}

// ListSuggestions flattens the course suggestions of every result the
// account owns. ErrNotFound when the account has no results at all.
// Payloads that fail to decode are dropped with a warning rather than
// failing the whole read.
func (s *ResultService) ListSuggestions(ctx context.Context, accountID string) ([]domain.CourseSuggestion, error) {
	payloads, err := s.Store.Results().ListSuggestionPayloadsByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if len(payloads) == 0 {
		return nil, ErrNotFound
	}
	return decodeSuggestionPayloads(ctx, payloads), nil
}

// ResultProgress is a result joined with its answered questions.
type ResultProgress struct {
	Result    domain.Result
	Questions []domain.Question
}

// Progress returns every result of the account with its question rows.
func (s *ResultService) Progress(ctx context.Context, accountID string) ([]ResultProgress, error) {
	results, err := s.Store.Results().ListResultsByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	progress := make([]ResultProgress, 0, len(results))
	for _, res := range results {
		questions, err := s.Store.Results().ListQuestionsByResult(ctx, res.ID)
		if err != nil {
			return nil, err
		}
		progress = append(progress, ResultProgress{Result: res, Questions: questions})
	}
	return progress, nil
}

// decodeSuggestionPayloads flattens stored suggestion JSON, skipping
// payloads that no longer decode.
func decodeSuggestionPayloads(ctx context.Context, payloads []string) []domain.CourseSuggestion {
	suggestions := make([]domain.CourseSuggestion, 0, len(payloads))
	for _, raw := range payloads {
		var batch []domain.CourseSuggestion
		if err := json.Unmarshal([]byte(raw), &batch); err != nil {
			slogx.FromContext(ctx).Warn("dropping undecodable suggestion payload", "error", err)
			continue
		}
		suggestions = append(suggestions, batch...)
	}
	return suggestions
}
