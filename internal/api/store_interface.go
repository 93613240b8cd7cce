package api

// Store is the persistence boundary for the four collections. Backends:
// the in-process memory store and the sqlite store in internal/db.
type Store interface {
	AddUser(u *User)
	FindUserByUsername(username string) *User

	AddTest(t *Test)
	GetTest(id string) *Test
	DeleteTest(id string) bool
	ListTests() []*Test

	AddQuestion(q *Question)
	DeleteQuestion(testID, questionID string) bool
	ListQuestions(testID string) []*Question

	AddAttempt(a *Attempt)
	ListAttemptsByUser(userID string) []*Attempt
}

var _ Store = (*memoryStore)(nil)
