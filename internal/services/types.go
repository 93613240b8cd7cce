package services

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	PassHash  []byte    `json:"-"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"-"`
}

type Test struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Questions   []*Question `json:"questions"`
}

// TestSummary is the user-facing view of a test, without question bodies.
type TestSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Question struct {
	ID            string   `json:"id"`
	TestID        string   `json:"test_id,omitempty"`
	Text          string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Difficulty    string   `json:"difficulty"`
}

// Quiz is the combined payload a client fetches to start a run.
type Quiz struct {
	Test      TestSummary `json:"test"`
	Questions []*Question `json:"questions"`
}

type Attempt struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	TestID         string    `json:"testId"`
	Title          string    `json:"title"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions"`
	Date           time.Time `json:"date"`
}
