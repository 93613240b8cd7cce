package api

import (
	"strings"
	"sync"
	"time"
)

type User struct {
	ID        string
	Username  string
	PassHash  []byte
	Role      string
	CreatedAt time.Time
}

type Test struct {
	ID          string
	Title       string
	Description string
}

type Question struct {
	ID            string
	TestID        string
	Text          string
	Options       []string
	CorrectAnswer int
	Difficulty    string
}

type Attempt struct {
	ID             string
	UserID         string
	TestID         string
	Title          string
	Score          int
	TotalQuestions int
	Date           time.Time
}

type memoryStore struct {
	mu              sync.RWMutex
	usersByName     map[string]*User
	tests           []*Test
	questionsByTest map[string][]*Question
	attempts        []*Attempt
}

// NewMemoryStore returns an in-process store; contents reset on restart.
func NewMemoryStore() Store {
	return &memoryStore{
		usersByName:     map[string]*User{},
		questionsByTest: map[string][]*Question{},
	}
}

func (s *memoryStore) AddUser(u *User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.usersByName[strings.ToLower(u.Username)] = u
}

func (s *memoryStore) FindUserByUsername(username string) *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.usersByName[strings.ToLower(username)]
}

func (s *memoryStore) AddTest(t *Test) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tests = append(s.tests, t)
}

func (s *memoryStore) GetTest(id string) *Test {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tests {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// DeleteTest removes the test and its questions.
func (s *memoryStore) DeleteTest(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tests {
		if t.ID == id {
			s.tests = append(s.tests[:i], s.tests[i+1:]...)
			delete(s.questionsByTest, id)
			return true
		}
	}
	return false
}

func (s *memoryStore) ListTests() []*Test {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*Test(nil), s.tests...)
}

func (s *memoryStore) AddQuestion(q *Question) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questionsByTest[q.TestID] = append(s.questionsByTest[q.TestID], q)
}

func (s *memoryStore) DeleteQuestion(testID, questionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	qs := s.questionsByTest[testID]
	for i, q := range qs {
		if q.ID == questionID {
			s.questionsByTest[testID] = append(qs[:i], qs[i+1:]...)
			return true
		}
	}
	return false
}

func (s *memoryStore) ListQuestions(testID string) []*Question {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*Question(nil), s.questionsByTest[testID]...)
}

func (s *memoryStore) AddAttempt(a *Attempt) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts = append(s.attempts, a)
}

// ListAttemptsByUser returns the user's attempts, most recent first.
func (s *memoryStore) ListAttemptsByUser(userID string) []*Attempt {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []*Attempt{}
	for i := len(s.attempts) - 1; i >= 0; i-- {
		if s.attempts[i].UserID == userID {
			out = append(out, s.attempts[i])
		}
	}
	return out
}
