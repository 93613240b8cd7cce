package services

import (
	"strings"
	"time"
)

type AttemptStore interface {
	GetTest(id string) (*Test, error)
	InsertAttempt(a *Attempt) (*Attempt, error)
	ListAttemptsByUser(userID string) ([]*Attempt, error)
}

// AttemptService persists finished quiz runs and serves a user's history.
type AttemptService struct {
	store AttemptStore
	now   func() time.Time
	idGen func(n int) string
}

func NewAttemptService(store AttemptStore) *AttemptService {
	return &AttemptService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
		idGen: shortID,
	}
}

func (s *AttemptService) RecordAttempt(userID, testID string, score, totalQuestions int) (*Attempt, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(testID) == "" {
		return nil, NewInvalidError("missing required fields")
	}
	if totalQuestions <= 0 {
		return nil, NewInvalidError("totalQuestions must be positive")
	}
	if score < 0 || score > totalQuestions {
		return nil, NewInvalidError("score must be between 0 and totalQuestions")
	}
	t, err := s.store.GetTest(testID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, NewNotFoundError("test not found")
	}
	a := &Attempt{
		ID:             s.idGen(8),
		UserID:         userID,
		TestID:         testID,
		Title:          t.Title,
		Score:          score,
		TotalQuestions: totalQuestions,
		Date:           s.now(),
	}
	created, err := s.store.InsertAttempt(a)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return a, nil
	}
	return created, nil
}

// ListAttempts returns the user's attempts, most recent first.
func (s *AttemptService) ListAttempts(userID string) ([]*Attempt, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, NewInvalidError("user id required")
	}
	return s.store.ListAttemptsByUser(userID)
}
