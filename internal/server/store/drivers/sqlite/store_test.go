package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/coursepilot/coursepilot/internal/server/domain"
	"github.com/coursepilot/coursepilot/internal/server/store"
	"github.com/coursepilot/coursepilot/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func testAccount() domain.Account {
	return domain.Account{
		ID:           idx.New().String(),
		Username:     "alice",
		Email:        idx.New().String() + "@example.com",
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		Role:         domain.RoleUser,
	}
}

func TestCreateAccountEnforcesUniqueEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := testAccount()
	require.NoError(t, s.Accounts().CreateAccount(ctx, a))

	dup := testAccount()
	dup.Email = a.Email
	err := s.Accounts().CreateAccount(ctx, dup)
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	count, err := s.Accounts().CountAccounts(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestGetAccountByEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := testAccount()
	require.NoError(t, s.Accounts().CreateAccount(ctx, a))

	got, err := s.Accounts().GetAccountByEmail(ctx, a.Email)
	require.NoError(t, err)
	require.Equal(t, a.ID, got.ID)
	require.Equal(t, a.PasswordHash, got.PasswordHash)

	_, err = s.Accounts().GetAccountByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdatePasswordHash(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := testAccount()
	require.NoError(t, s.Accounts().CreateAccount(ctx, a))
	require.NoError(t, s.Accounts().UpdatePasswordHash(ctx, a.ID, "newhash"))

	got, err := s.Accounts().GetAccountByID(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, "newhash", got.PasswordHash)
}

func TestSessionLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	sess := domain.Session{
		Token:     "opaque-token",
		Principal: domain.Principal{AccountID: idx.New().String(), Username: "alice", Role: domain.RoleUser},
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
	require.NoError(t, s.Sessions().CreateSession(ctx, sess))

	got, err := s.Sessions().GetSessionByToken(ctx, "opaque-token")
	require.NoError(t, err)
	require.Equal(t, sess.Principal, got.Principal)

	require.NoError(t, s.Sessions().DeleteSession(ctx, "opaque-token"))
	_, err = s.Sessions().GetSessionByToken(ctx, "opaque-token")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteExpiredSessions(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	expired := domain.Session{
		Token:     "expired",
		Principal: domain.Principal{AccountID: "a", Username: "u", Role: domain.RoleUser},
		CreatedAt: now.Add(-2 * time.Hour),
		ExpiresAt: now.Add(-time.Hour),
	}
	live := domain.Session{
		Token:     "live",
		Principal: domain.Principal{AccountID: "b", Username: "v", Role: domain.RoleUser},
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
	require.NoError(t, s.Sessions().CreateSession(ctx, expired))
	require.NoError(t, s.Sessions().CreateSession(ctx, live))

	require.NoError(t, s.Sessions().DeleteExpiredSessions(ctx, now))

	_, err := s.Sessions().GetSessionByToken(ctx, "expired")
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Sessions().GetSessionByToken(ctx, "live")
	require.NoError(t, err)
}

func TestResultRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := testAccount()
	require.NoError(t, s.Accounts().CreateAccount(ctx, a))

	res := domain.Result{
		ID:           idx.New().String(),
		AccountID:    a.ID,
		Name:         "Alice",
		Subject:      "Math",
		Level:        "intermediate",
		Percent:      82.5,
		StartTime:    "2025-03-01T10:00:00Z",
		EndTime:      "2025-03-01T10:30:00Z",
		Strengths:    []string{"algebra"},
		Improvements: []string{"geometry"},
		CourseSuggestions: []domain.CourseSuggestion{
			{Title: "Geometry Basics", Level: "beginner"},
		},
	}
	require.NoError(t, s.Results().CreateResult(ctx, res))

	q := domain.Question{
		ID:             idx.New().String(),
		ResultID:       res.ID,
		Question:       "2+2?",
		Option1:        "3",
		Option2:        "4",
		Option3:        "5",
		Option4:        "6",
		CorrectOption:  "4",
		SelectedOption: "4",
	}
	require.NoError(t, s.Results().CreateQuestion(ctx, q))

	results, err := s.Results().ListResultsByAccount(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, res.Strengths, results[0].Strengths)
	require.Equal(t, res.CourseSuggestions, results[0].CourseSuggestions)

	questions, err := s.Results().ListQuestionsByResult(ctx, res.ID)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	require.Equal(t, q.Question, questions[0].Question)

	count, err := s.Results().CountQuestionsByResult(ctx, res.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := testAccount()
	require.NoError(t, s.Accounts().CreateAccount(ctx, a))

	resultID := idx.New().String()
	err := s.WithTx(ctx, func(tx store.Tx) error {
		res := domain.Result{
			ID: resultID, AccountID: a.ID, Name: "Alice", Subject: "Math",
			Level: "basic", Percent: 50,
			StartTime: "2025-03-01T10:00:00Z", EndTime: "2025-03-01T10:10:00Z",
		}
		if err := tx.Results().CreateResult(ctx, res); err != nil {
			return err
		}
		return context.Canceled // force rollback
	})
	require.Error(t, err)

	results, err := s.Results().ListResultsByAccount(ctx, a.ID)
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestPaymentStatusTransitions(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := testAccount()
	require.NoError(t, s.Accounts().CreateAccount(ctx, a))

	p := domain.Payment{
		ID:           idx.New().String(),
		AccountID:    a.ID,
		Name:         "Alice",
		Subject:      "Math",
		Method:       "bank-transfer",
		EvidencePath: "uploads/receipt.png",
		Status:       domain.PaymentSubmitted,
	}
	require.NoError(t, s.Payments().CreatePayment(ctx, p))

	subjects, err := s.Payments().ListPurchasedSubjects(ctx, a.ID)
	require.NoError(t, err)
	require.Empty(t, subjects)

	require.NoError(t, s.Payments().UpdatePaymentStatus(ctx, p.ID, domain.PaymentApproved))

	subjects, err = s.Payments().ListPurchasedSubjects(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"Math"}, subjects)

	err = s.Payments().UpdatePaymentStatus(ctx, "missing-id", domain.PaymentApproved)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestProfileUpsertOverwritesEveryField(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := testAccount()
	require.NoError(t, s.Accounts().CreateAccount(ctx, a))

	first := domain.Profile{
		AccountID: a.ID, Name: "Alice", Phone: "123", Country: "NZ",
		Province: "Otago", City: "Dunedin", Street: "1 George St",
	}
	require.NoError(t, s.Profiles().UpsertProfile(ctx, first))

	second := domain.Profile{AccountID: a.ID, Name: "Alice B", Phone: "456"}
	require.NoError(t, s.Profiles().UpsertProfile(ctx, second))

	got, err := s.Profiles().GetProfile(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, "Alice B", got.Name)
	require.Equal(t, "456", got.Phone)
	require.Empty(t, got.Country, "upsert must overwrite, not merge")
}
