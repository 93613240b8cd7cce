package services

import (
	"testing"
	"time"
)

type attemptStubStore struct {
	tests    map[string]*Test
	attempts []*Attempt
}

func newAttemptStubStore() *attemptStubStore {
	return &attemptStubStore{tests: map[string]*Test{}}
}

func (s *attemptStubStore) GetTest(id string) (*Test, error) {
	return s.tests[id], nil
}

func (s *attemptStubStore) InsertAttempt(a *Attempt) (*Attempt, error) {
	s.attempts = append(s.attempts, a)
	return a, nil
}

func (s *attemptStubStore) ListAttemptsByUser(userID string) ([]*Attempt, error) {
	out := []*Attempt{}
	for i := len(s.attempts) - 1; i >= 0; i-- {
		if s.attempts[i].UserID == userID {
			out = append(out, s.attempts[i])
		}
	}
	return out, nil
}

func TestRecordAttempt(t *testing.T) {
	store := newAttemptStubStore()
	store.tests["t1"] = &Test{ID: "t1", Title: "General Knowledge Quiz"}
	svc := NewAttemptService(store)
	svc.now = func() time.Time { return time.Unix(1000, 0).UTC() }
	svc.idGen = func(n int) string { return "a1" }

	a, err := svc.RecordAttempt("u1", "t1", 1, 1)
	if err != nil {
		t.Fatalf("RecordAttempt returned error: %v", err)
	}
	if a.ID != "a1" || a.UserID != "u1" || a.TestID != "t1" {
		t.Fatalf("unexpected attempt: %+v", a)
	}
	if a.Title != "General Knowledge Quiz" {
		t.Fatalf("attempt must carry the test title, got %q", a.Title)
	}
	if !a.Date.Equal(time.Unix(1000, 0).UTC()) {
		t.Fatalf("unexpected date %v", a.Date)
	}
}

func TestRecordAttemptValidation(t *testing.T) {
	store := newAttemptStubStore()
	store.tests["t1"] = &Test{ID: "t1", Title: "Quiz"}
	svc := NewAttemptService(store)

	cases := []struct {
		name         string
		userID       string
		testID       string
		score, total int
		code         ErrorCode
	}{
		{"missing user", "", "t1", 0, 1, ErrorInvalid},
		{"missing test", "u1", "", 0, 1, ErrorInvalid},
		{"zero total", "u1", "t1", 0, 0, ErrorInvalid},
		{"negative score", "u1", "t1", -1, 3, ErrorInvalid},
		{"score above total", "u1", "t1", 4, 3, ErrorInvalid},
		{"unknown test", "u1", "missing", 1, 3, ErrorNotFound},
	}
	for _, tc := range cases {
		_, err := svc.RecordAttempt(tc.userID, tc.testID, tc.score, tc.total)
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		se, ok := AsServiceError(err)
		if !ok || se.Code != tc.code {
			t.Fatalf("%s: expected code %s, got %v", tc.name, tc.code, err)
		}
	}
	if len(store.attempts) != 0 {
		t.Fatalf("invalid attempts must not be stored")
	}
}

func TestListAttemptsFiltersAndOrders(t *testing.T) {
	store := newAttemptStubStore()
	store.tests["t1"] = &Test{ID: "t1", Title: "Quiz"}
	svc := NewAttemptService(store)

	ts := time.Unix(0, 0).UTC()
	svc.now = func() time.Time { ts = ts.Add(time.Minute); return ts }
	if _, err := svc.RecordAttempt("u1", "t1", 0, 2); err != nil {
		t.Fatalf("RecordAttempt returned error: %v", err)
	}
	if _, err := svc.RecordAttempt("u2", "t1", 1, 2); err != nil {
		t.Fatalf("RecordAttempt returned error: %v", err)
	}
	if _, err := svc.RecordAttempt("u1", "t1", 2, 2); err != nil {
		t.Fatalf("RecordAttempt returned error: %v", err)
	}

	got, err := svc.ListAttempts("u1")
	if err != nil {
		t.Fatalf("ListAttempts returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 attempts for u1, got %d", len(got))
	}
	if got[0].Score != 2 || got[1].Score != 0 {
		t.Fatalf("attempts must be newest first: %+v", got)
	}

	if _, err := svc.ListAttempts(""); err == nil {
		t.Fatalf("expected error for empty user id")
	}
}
