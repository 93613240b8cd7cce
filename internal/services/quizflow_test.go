package services

import (
	"testing"
)

type stubRecorder struct {
	fail     error
	recorded []*Attempt
}

func (r *stubRecorder) RecordAttempt(userID, testID string, score, total int) (*Attempt, error) {
	if r.fail != nil {
		return nil, r.fail
	}
	a := &Attempt{ID: "a1", UserID: userID, TestID: testID, Score: score, TotalQuestions: total}
	r.recorded = append(r.recorded, a)
	return a, nil
}

func twoQuestionQuiz() *Quiz {
	return &Quiz{
		Test: TestSummary{ID: "t1", Title: "General Knowledge Quiz"},
		Questions: []*Question{
			{
				ID:            "q1",
				Text:          "What is the capital of France?",
				Options:       []string{"London", "Berlin", "Paris", "Madrid"},
				CorrectAnswer: 2,
			},
			{
				ID:            "q2",
				Text:          "Which planet is known as the Red Planet?",
				Options:       []string{"Venus", "Mars", "Jupiter", "Saturn"},
				CorrectAnswer: 1,
			},
		},
	}
}

func TestQuizRunFullWalk(t *testing.T) {
	run := NewQuizRun("u1")
	if run.State() != StateLoading {
		t.Fatalf("new run should be loading, got %s", run.State())
	}
	if err := run.Begin(twoQuestionQuiz()); err != nil {
		t.Fatalf("Begin returned error: %v", err)
	}
	if run.State() != StateInProgress {
		t.Fatalf("expected in_progress, got %s", run.State())
	}
	pos, total := run.Progress()
	if pos != 1 || total != 2 {
		t.Fatalf("unexpected progress %d/%d", pos, total)
	}

	// correct answer on the first question
	if err := run.SelectAnswer(2); err != nil {
		t.Fatalf("SelectAnswer returned error: %v", err)
	}
	if err := run.Next(); err != nil {
		t.Fatalf("Next returned error: %v", err)
	}
	if run.Score() != 1 {
		t.Fatalf("expected score 1, got %d", run.Score())
	}
	if q := run.CurrentQuestion(); q == nil || q.ID != "q2" {
		t.Fatalf("expected q2 current, got %+v", q)
	}

	// wrong answer on the second; score must not change
	if err := run.SelectAnswer(0); err != nil {
		t.Fatalf("SelectAnswer returned error: %v", err)
	}
	if err := run.Next(); err != nil {
		t.Fatalf("Next returned error: %v", err)
	}
	if run.Score() != 1 {
		t.Fatalf("wrong answer must not raise score, got %d", run.Score())
	}
	if run.State() != StateSubmitting {
		t.Fatalf("expected submitting after last question, got %s", run.State())
	}

	responses := run.Responses()
	if len(responses) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(responses))
	}
	if responses[0].SelectedAnswer != "Paris" || !responses[0].IsCorrect {
		t.Fatalf("unexpected first response: %+v", responses[0])
	}
	if responses[1].SelectedAnswer != "Venus" || responses[1].IsCorrect {
		t.Fatalf("unexpected second response: %+v", responses[1])
	}

	rec := &stubRecorder{}
	a, err := run.Submit(rec)
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if run.State() != StateCompleted {
		t.Fatalf("expected completed, got %s", run.State())
	}
	if a.Score != 1 || a.TotalQuestions != 2 {
		t.Fatalf("unexpected attempt: %+v", a)
	}
	if pct := run.Percentage(); pct != 50 {
		t.Fatalf("expected 50%%, got %v", pct)
	}
}

func TestQuizRunRequiresSelection(t *testing.T) {
	run := NewQuizRun("u1")
	if err := run.Begin(twoQuestionQuiz()); err != nil {
		t.Fatalf("Begin returned error: %v", err)
	}

	if err := run.Next(); err == nil {
		t.Fatalf("Next without selection must fail")
	}
	pos, _ := run.Progress()
	if pos != 1 {
		t.Fatalf("run must stay in place after validation error, at %d", pos)
	}

	if err := run.SelectAnswer(9); err == nil {
		t.Fatalf("out-of-range selection must fail")
	}
	if err := run.SelectAnswer(1); err != nil {
		t.Fatalf("SelectAnswer returned error: %v", err)
	}
	if err := run.Next(); err != nil {
		t.Fatalf("Next returned error: %v", err)
	}
}

func TestQuizRunBeginValidation(t *testing.T) {
	run := NewQuizRun("u1")
	if err := run.Begin(&Quiz{Test: TestSummary{ID: "t1"}}); err == nil {
		t.Fatalf("expected error for quiz with no questions")
	}
	if run.State() != StateLoading {
		t.Fatalf("failed Begin must leave run loading, got %s", run.State())
	}

	if err := run.Begin(twoQuestionQuiz()); err != nil {
		t.Fatalf("Begin returned error: %v", err)
	}
	if err := run.Begin(twoQuestionQuiz()); err == nil {
		t.Fatalf("expected error beginning twice")
	}
}

func TestQuizRunSubmitFailureKeepsState(t *testing.T) {
	run := NewQuizRun("u1")
	if err := run.Begin(twoQuestionQuiz()); err != nil {
		t.Fatalf("Begin returned error: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := run.SelectAnswer(0); err != nil {
			t.Fatalf("SelectAnswer returned error: %v", err)
		}
		if err := run.Next(); err != nil {
			t.Fatalf("Next returned error: %v", err)
		}
	}

	rec := &stubRecorder{fail: NewNotFoundError("test not found")}
	if _, err := run.Submit(rec); err == nil {
		t.Fatalf("expected submit failure")
	}
	if run.State() != StateSubmitting {
		t.Fatalf("failed submit must stay submitting, got %s", run.State())
	}

	// resubmit succeeds once the recorder recovers
	rec.fail = nil
	if _, err := run.Submit(rec); err != nil {
		t.Fatalf("resubmit returned error: %v", err)
	}
	if run.State() != StateCompleted {
		t.Fatalf("expected completed, got %s", run.State())
	}

	// completed is terminal for this run
	if _, err := run.Submit(rec); err == nil {
		t.Fatalf("submit after completion must fail")
	}
	if len(rec.recorded) != 1 {
		t.Fatalf("attempt must be recorded exactly once, got %d", len(rec.recorded))
	}
}
