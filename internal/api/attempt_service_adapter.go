package api

import (
	"github.com/mateuszng/quizdeck/internal/services"
)

type attemptStoreAdapter struct {
	store Store
}

func newAttemptStoreAdapter(store Store) services.AttemptStore {
	return &attemptStoreAdapter{store: store}
}

func (a *attemptStoreAdapter) GetTest(id string) (*services.Test, error) {
	t := a.store.GetTest(id)
	if t == nil {
		return nil, nil
	}
	return &services.Test{ID: t.ID, Title: t.Title, Description: t.Description}, nil
}

func (a *attemptStoreAdapter) InsertAttempt(att *services.Attempt) (*services.Attempt, error) {
	if att == nil {
		return nil, services.NewInvalidError("attempt required")
	}
	a.store.AddAttempt(&Attempt{
		ID:             att.ID,
		UserID:         att.UserID,
		TestID:         att.TestID,
		Title:          att.Title,
		Score:          att.Score,
		TotalQuestions: att.TotalQuestions,
		Date:           att.Date,
	})
	return att, nil
}

func (a *attemptStoreAdapter) ListAttemptsByUser(userID string) ([]*services.Attempt, error) {
	attempts := a.store.ListAttemptsByUser(userID)
	out := make([]*services.Attempt, 0, len(attempts))
	for _, att := range attempts {
		out = append(out, &services.Attempt{
			ID:             att.ID,
			UserID:         att.UserID,
			TestID:         att.TestID,
			Title:          att.Title,
			Score:          att.Score,
			TotalQuestions: att.TotalQuestions,
			Date:           att.Date,
		})
	}
	return out, nil
}

var _ services.AttemptStore = (*attemptStoreAdapter)(nil)
