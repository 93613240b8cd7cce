package api

import (
	"github.com/mateuszng/quizdeck/internal/services"
)

type registryStoreAdapter struct {
	store Store
}

func newRegistryStoreAdapter(store Store) services.RegistryStore {
	return &registryStoreAdapter{store: store}
}

func (a *registryStoreAdapter) InsertTest(t *services.Test) (*services.Test, error) {
	if t == nil {
		return nil, services.NewInvalidError("test required")
	}
	a.store.AddTest(&Test{ID: t.ID, Title: t.Title, Description: t.Description})
	return t, nil
}

func (a *registryStoreAdapter) GetTest(id string) (*services.Test, error) {
	t := a.store.GetTest(id)
	if t == nil {
		return nil, nil
	}
	return a.convertTest(t), nil
}

func (a *registryStoreAdapter) DeleteTest(id string) (bool, error) {
	return a.store.DeleteTest(id), nil
}

func (a *registryStoreAdapter) ListTests() ([]*services.Test, error) {
	tests := a.store.ListTests()
	out := make([]*services.Test, 0, len(tests))
	for _, t := range tests {
		out = append(out, a.convertTest(t))
	}
	return out, nil
}

func (a *registryStoreAdapter) InsertQuestion(q *services.Question) (*services.Question, error) {
	if q == nil {
		return nil, services.NewInvalidError("question required")
	}
	a.store.AddQuestion(&Question{
		ID:            q.ID,
		TestID:        q.TestID,
		Text:          q.Text,
		Options:       append([]string(nil), q.Options...),
		CorrectAnswer: q.CorrectAnswer,
		Difficulty:    q.Difficulty,
	})
	return q, nil
}

func (a *registryStoreAdapter) DeleteQuestion(testID, questionID string) (bool, error) {
	return a.store.DeleteQuestion(testID, questionID), nil
}

func (a *registryStoreAdapter) ListQuestions(testID string) ([]*services.Question, error) {
	return convertQuestions(a.store.ListQuestions(testID)), nil
}

func (a *registryStoreAdapter) convertTest(t *Test) *services.Test {
	return &services.Test{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Questions:   convertQuestions(a.store.ListQuestions(t.ID)),
	}
}

func convertQuestions(qs []*Question) []*services.Question {
	out := make([]*services.Question, 0, len(qs))
	for _, q := range qs {
		out = append(out, &services.Question{
			ID:            q.ID,
			TestID:        q.TestID,
			Text:          q.Text,
			Options:       append([]string(nil), q.Options...),
			CorrectAnswer: q.CorrectAnswer,
			Difficulty:    q.Difficulty,
		})
	}
	return out
}

var _ services.RegistryStore = (*registryStoreAdapter)(nil)
