package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/coursepilot/coursepilot/internal/server/domain"
)

type resultsRepo struct {
	db dbtx
}

func (r *resultsRepo) CreateResult(ctx context.Context, res domain.Result) error {
	strengths, err := marshalJSONColumn(res.Strengths)
	if err != nil {
		return err
	}
	improvements, err := marshalJSONColumn(res.Improvements)
	if err != nil {
		return err
	}
	suggestions, err := marshalJSONColumn(res.CourseSuggestions)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO results (id, account_id, name, subject, level, percent,
		                      start_time, end_time, strengths, improvements,
		                      course_suggestions, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.ID, res.AccountID, res.Name, res.Subject, res.Level, res.Percent,
		res.StartTime, res.EndTime, strengths, improvements, suggestions,
		time.Now().UTC())
	return err
}

func (r *resultsRepo) CreateQuestion(ctx context.Context, q domain.Question) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO questions (id, result_id, question, option1, option2,
		                        option3, option4, correct_option, selected_option)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		q.ID, q.ResultID, q.Question, q.Option1, q.Option2, q.Option3, q.Option4,
		q.CorrectOption, q.SelectedOption)
	return err
}

func (r *resultsRepo) ListResultsByAccount(ctx context.Context, accountID string) ([]domain.Result, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, account_id, name, subject, level, percent, start_time,
		        end_time, strengths, improvements, course_suggestions, created_at
		 FROM results WHERE account_id = ? ORDER BY created_at, id`, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Result
	for rows.Next() {
		var res domain.Result
		var strengths, improvements, suggestions string
		err := rows.Scan(&res.ID, &res.AccountID, &res.Name, &res.Subject, &res.Level,
			&res.Percent, &res.StartTime, &res.EndTime, &strengths, &improvements,
			&suggestions, &res.CreatedAt)
		if err != nil {
			return nil, err
		}

		if err := json.Unmarshal([]byte(strengths), &res.Strengths); err != nil {
			return nil, fmt.Errorf("decode strengths for result %s: %w", res.ID, err)
		}
		if err := json.Unmarshal([]byte(improvements), &res.Improvements); err != nil {
			return nil, fmt.Errorf("decode improvements for result %s: %w", res.ID, err)
		}
		if err := json.Unmarshal([]byte(suggestions), &res.CourseSuggestions); err != nil {
			return nil, fmt.Errorf("decode suggestions for result %s: %w", res.ID, err)
		}
		results = append(results, res)
	}
	return results, rows.Err()
}

func (r *resultsRepo) ListQuestionsByResult(ctx context.Context, resultID string) ([]domain.Question, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, result_id, question, option1, option2, option3, option4,
		        correct_option, selected_option
		 FROM questions WHERE result_id = ? ORDER BY id`, resultID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []domain.Question
	for rows.Next() {
		var q domain.Question
		err := rows.Scan(&q.ID, &q.ResultID, &q.Question, &q.Option1, &q.Option2,
			&q.Option3, &q.Option4, &q.CorrectOption, &q.SelectedOption)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func (r *resultsRepo) CountQuestionsByResult(ctx context.Context, resultID string) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM questions WHERE result_id = ?`, resultID).Scan(&count)
	return count, err
}

func (r *resultsRepo) ListSuggestionPayloadsByAccount(ctx context.Context, accountID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT course_suggestions FROM results
		 WHERE account_id = ? ORDER BY created_at, id`, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStrings(rows)
}

func (r *resultsRepo) ListAllSuggestionPayloads(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT course_suggestions FROM results ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStrings(rows)
}

func (r *resultsRepo) CountResults(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM results`).Scan(&count)
	return count, err
}

// marshalJSONColumn encodes a slice column, normalising nil to "[]" so the
// stored text always decodes back into a slice.
func marshalJSONColumn(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	if string(raw) == "null" {
		return "[]", nil
	}
	return string(raw), nil
}
