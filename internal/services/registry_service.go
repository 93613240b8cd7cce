package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

type ErrorCode string

const (
	ErrorInvalid      ErrorCode = "invalid"
	ErrorForbidden    ErrorCode = "forbidden"
	ErrorNotFound     ErrorCode = "not_found"
	ErrorConflict     ErrorCode = "conflict"
	ErrorUnauthorized ErrorCode = "unauthorized"
)

type ServiceError struct {
	Code    ErrorCode
	Message string
}

func (e *ServiceError) Error() string { return e.Message }

func NewInvalidError(msg string) error   { return &ServiceError{Code: ErrorInvalid, Message: msg} }
func NewForbiddenError(msg string) error { return &ServiceError{Code: ErrorForbidden, Message: msg} }
func NewNotFoundError(msg string) error  { return &ServiceError{Code: ErrorNotFound, Message: msg} }
func NewConflictError(msg string) error  { return &ServiceError{Code: ErrorConflict, Message: msg} }
func NewUnauthorizedError(msg string) error {
	return &ServiceError{Code: ErrorUnauthorized, Message: msg}
}

func AsServiceError(err error) (*ServiceError, bool) {
	var se *ServiceError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

const optionsPerQuestion = 4

type RegistryStore interface {
	InsertTest(t *Test) (*Test, error)
	GetTest(id string) (*Test, error)
	DeleteTest(id string) (bool, error)
	ListTests() ([]*Test, error)
	InsertQuestion(q *Question) (*Question, error)
	DeleteQuestion(testID, questionID string) (bool, error)
	ListQuestions(testID string) ([]*Question, error)
}

// RegistryService owns the test/question collections. All mutating
// operations are admin-gated at the HTTP layer.
type RegistryService struct {
	store RegistryStore
	idGen func(n int) string
}

func NewRegistryService(store RegistryStore) *RegistryService {
	return &RegistryService{store: store, idGen: shortID}
}

func (s *RegistryService) ListTests() ([]*Test, error) {
	return s.store.ListTests()
}

func (s *RegistryService) ListTestSummaries() ([]TestSummary, error) {
	tests, err := s.store.ListTests()
	if err != nil {
		return nil, err
	}
	out := make([]TestSummary, 0, len(tests))
	for _, t := range tests {
		out = append(out, TestSummary{ID: t.ID, Title: t.Title, Description: t.Description})
	}
	return out, nil
}

func (s *RegistryService) CreateTest(title, description string) (*Test, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, NewInvalidError("title is required")
	}
	t := &Test{
		ID:          s.idGen(8),
		Title:       title,
		Description: strings.TrimSpace(description),
		Questions:   []*Question{},
	}
	created, err := s.store.InsertTest(t)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return t, nil
	}
	return created, nil
}

// DeleteTest removes the test and, through the store, its questions.
func (s *RegistryService) DeleteTest(id string) error {
	ok, err := s.store.DeleteTest(id)
	if err != nil {
		return err
	}
	if !ok {
		return NewNotFoundError("test not found")
	}
	return nil
}

func (s *RegistryService) ListQuestions(testID string) ([]*Question, error) {
	t, err := s.store.GetTest(testID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, NewNotFoundError("test not found")
	}
	return s.store.ListQuestions(testID)
}

func (s *RegistryService) AddQuestion(testID string, q *Question) (*Question, error) {
	if q == nil {
		return nil, NewInvalidError("question required")
	}
	t, err := s.store.GetTest(testID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, NewNotFoundError("test not found")
	}
	q.Text = strings.TrimSpace(q.Text)
	if q.Text == "" {
		return nil, NewInvalidError("question text is required")
	}
	if len(q.Options) != optionsPerQuestion {
		return nil, NewInvalidError("exactly 4 options are required")
	}
	for _, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return nil, NewInvalidError("options must not be empty")
		}
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return nil, NewInvalidError("correctAnswer must index an option")
	}
	if strings.TrimSpace(q.Difficulty) == "" {
		q.Difficulty = "easy"
	}
	q.TestID = testID
	if q.ID == "" {
		q.ID = s.idGen(8)
	}
	created, err := s.store.InsertQuestion(q)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return q, nil
	}
	return created, nil
}

func (s *RegistryService) DeleteQuestion(testID, questionID string) error {
	t, err := s.store.GetTest(testID)
	if err != nil {
		return err
	}
	if t == nil {
		return NewNotFoundError("test not found")
	}
	ok, err := s.store.DeleteQuestion(testID, questionID)
	if err != nil {
		return err
	}
	if !ok {
		return NewNotFoundError("question not found")
	}
	return nil
}

// GetQuiz returns the combined fetch used to start a run. The payload
// carries each question's correct index so the flow controller can score
// locally.
func (s *RegistryService) GetQuiz(testID string) (*Quiz, error) {
	t, err := s.store.GetTest(testID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, NewNotFoundError("test not found")
	}
	questions, err := s.store.ListQuestions(testID)
	if err != nil {
		return nil, err
	}
	return &Quiz{
		Test:      TestSummary{ID: t.ID, Title: t.Title, Description: t.Description},
		Questions: questions,
	}, nil
}

func shortID(n int) string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:n]
}
