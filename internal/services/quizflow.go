package services

// Quiz-flow state machine: walks a user through a quiz question by
// question, tallies the score, and records the finished attempt. One run
// per quiz; a fresh attempt starts a fresh run.

type QuizState string

const (
	StateLoading    QuizState = "loading"
	StateInProgress QuizState = "in_progress"
	StateSubmitting QuizState = "submitting"
	StateCompleted  QuizState = "completed"
)

type QuestionResponse struct {
	QuestionID     string `json:"questionId"`
	SelectedAnswer string `json:"selectedAnswer"`
	IsCorrect      bool   `json:"isCorrect"`
}

// AttemptRecorder is what a run needs to persist its result.
// *AttemptService satisfies it.
type AttemptRecorder interface {
	RecordAttempt(userID, testID string, score, totalQuestions int) (*Attempt, error)
}

const noSelection = -1

type QuizRun struct {
	userID    string
	quiz      *Quiz
	state     QuizState
	index     int
	selected  int
	score     int
	responses []QuestionResponse
	attempt   *Attempt
}

// NewQuizRun starts a run in the loading state; Begin hands it the fetched
// quiz payload.
func NewQuizRun(userID string) *QuizRun {
	return &QuizRun{userID: userID, state: StateLoading, selected: noSelection}
}

func (r *QuizRun) Begin(quiz *Quiz) error {
	if r.state != StateLoading {
		return NewInvalidError("run already started")
	}
	if quiz == nil || len(quiz.Questions) == 0 {
		return NewInvalidError("quiz has no questions")
	}
	r.quiz = quiz
	r.state = StateInProgress
	r.index = 0
	r.score = 0
	r.selected = noSelection
	return nil
}

func (r *QuizRun) State() QuizState { return r.state }

func (r *QuizRun) CurrentQuestion() *Question {
	if r.state != StateInProgress {
		return nil
	}
	return r.quiz.Questions[r.index]
}

// Progress reports the 1-based position and the question count.
func (r *QuizRun) Progress() (int, int) {
	if r.quiz == nil {
		return 0, 0
	}
	return r.index + 1, len(r.quiz.Questions)
}

func (r *QuizRun) SelectAnswer(option int) error {
	if r.state != StateInProgress {
		return NewInvalidError("no question in progress")
	}
	q := r.quiz.Questions[r.index]
	if option < 0 || option >= len(q.Options) {
		return NewInvalidError("selected option out of range")
	}
	r.selected = option
	return nil
}

// Next scores the current selection and advances. After the last question
// the run moves to submitting; the position is kept when no answer is
// selected.
func (r *QuizRun) Next() error {
	if r.state != StateInProgress {
		return NewInvalidError("no question in progress")
	}
	if r.selected == noSelection {
		return NewInvalidError("please select an answer")
	}
	q := r.quiz.Questions[r.index]
	correct := r.selected == q.CorrectAnswer
	r.responses = append(r.responses, QuestionResponse{
		QuestionID:     q.ID,
		SelectedAnswer: q.Options[r.selected],
		IsCorrect:      correct,
	})
	if correct {
		r.score++
	}
	r.selected = noSelection
	if r.index < len(r.quiz.Questions)-1 {
		r.index++
		return nil
	}
	r.state = StateSubmitting
	return nil
}

// Submit records the finished attempt. On failure the run stays in
// submitting so the caller can resubmit; there is no automatic retry.
func (r *QuizRun) Submit(rec AttemptRecorder) (*Attempt, error) {
	if r.state != StateSubmitting {
		return nil, NewInvalidError("quiz is not finished")
	}
	a, err := rec.RecordAttempt(r.userID, r.quiz.Test.ID, r.score, len(r.quiz.Questions))
	if err != nil {
		return nil, err
	}
	r.attempt = a
	r.state = StateCompleted
	return a, nil
}

func (r *QuizRun) Score() int { return r.score }

func (r *QuizRun) Responses() []QuestionResponse {
	out := make([]QuestionResponse, len(r.responses))
	copy(out, r.responses)
	return out
}

// Percentage is the final score as a percentage; zero until completed.
func (r *QuizRun) Percentage() float64 {
	if r.state != StateCompleted || r.attempt == nil || r.attempt.TotalQuestions == 0 {
		return 0
	}
	return float64(r.attempt.Score) / float64(r.attempt.TotalQuestions) * 100
}

func (r *QuizRun) Attempt() *Attempt { return r.attempt }
