package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/mateuszng/quizdeck/internal/api"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("nil db")
	}
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, stmt := range pragmas {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("apply sqlite pragma %q: %w", stmt, err)
		}
	}
	return &SQLiteStore{db: db}, nil
}

func NewStore(db *sql.DB) (api.Store, error) {
	return NewSQLiteStore(db)
}

func (s *SQLiteStore) logErr(prefix string, err error) {
	if err != nil {
		log.Printf("sqlite store: %s: %v", prefix, err)
	}
}

func encodeOptions(options []string) string {
	b, err := json.Marshal(options)
	if err != nil {
		log.Printf("sqlite store: encode options: %v", err)
		return "[]"
	}
	return string(b)
}

func decodeOptions(raw string) []string {
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		log.Printf("sqlite store: decode options: %v", err)
		return nil
	}
	return out
}

func (s *SQLiteStore) AddUser(u *api.User) {
	_, err := s.db.Exec(`INSERT INTO users (id, username, pass_hash, role, created_at) VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.PassHash, u.Role, u.CreatedAt)
	s.logErr("AddUser", err)
}

func (s *SQLiteStore) FindUserByUsername(username string) *api.User {
	row := s.db.QueryRow(`SELECT id, username, pass_hash, role, created_at FROM users WHERE username = ?`, username)
	var u api.User
	if err := row.Scan(&u.ID, &u.Username, &u.PassHash, &u.Role, &u.CreatedAt); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logErr("FindUserByUsername", err)
		}
		return nil
	}
	return &u
}

func (s *SQLiteStore) AddTest(t *api.Test) {
	_, err := s.db.Exec(`INSERT INTO tests (id, title, description) VALUES (?, ?, ?)`,
		t.ID, t.Title, t.Description)
	s.logErr("AddTest", err)
}

func (s *SQLiteStore) GetTest(id string) *api.Test {
	row := s.db.QueryRow(`SELECT id, title, description FROM tests WHERE id = ?`, id)
	var t api.Test
	if err := row.Scan(&t.ID, &t.Title, &t.Description); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logErr("GetTest", err)
		}
		return nil
	}
	return &t
}

// DeleteTest cascades to questions via the schema's foreign key.
func (s *SQLiteStore) DeleteTest(id string) bool {
	res, err := s.db.Exec(`DELETE FROM tests WHERE id = ?`, id)
	if err != nil {
		s.logErr("DeleteTest", err)
		return false
	}
	n, err := res.RowsAffected()
	s.logErr("DeleteTest rows", err)
	return n > 0
}

func (s *SQLiteStore) ListTests() []*api.Test {
	rows, err := s.db.Query(`SELECT id, title, description FROM tests ORDER BY rowid`)
	if err != nil {
		s.logErr("ListTests", err)
		return nil
	}
	defer rows.Close()
	out := []*api.Test{}
	for rows.Next() {
		var t api.Test
		if err := rows.Scan(&t.ID, &t.Title, &t.Description); err != nil {
			s.logErr("ListTests scan", err)
			continue
		}
		out = append(out, &t)
	}
	s.logErr("ListTests rows", rows.Err())
	return out
}

func (s *SQLiteStore) AddQuestion(q *api.Question) {
	_, err := s.db.Exec(`INSERT INTO questions (id, test_id, question, options, correct_answer, difficulty) VALUES (?, ?, ?, ?, ?, ?)`,
		q.ID, q.TestID, q.Text, encodeOptions(q.Options), q.CorrectAnswer, q.Difficulty)
	s.logErr("AddQuestion", err)
}

func (s *SQLiteStore) DeleteQuestion(testID, questionID string) bool {
	res, err := s.db.Exec(`DELETE FROM questions WHERE id = ? AND test_id = ?`, questionID, testID)
	if err != nil {
		s.logErr("DeleteQuestion", err)
		return false
	}
	n, err := res.RowsAffected()
	s.logErr("DeleteQuestion rows", err)
	return n > 0
}

func (s *SQLiteStore) ListQuestions(testID string) []*api.Question {
	rows, err := s.db.Query(`SELECT id, test_id, question, options, correct_answer, difficulty FROM questions WHERE test_id = ? ORDER BY rowid`, testID)
	if err != nil {
		s.logErr("ListQuestions", err)
		return nil
	}
	defer rows.Close()
	out := []*api.Question{}
	for rows.Next() {
		var q api.Question
		var options string
		if err := rows.Scan(&q.ID, &q.TestID, &q.Text, &options, &q.CorrectAnswer, &q.Difficulty); err != nil {
			s.logErr("ListQuestions scan", err)
			continue
		}
		q.Options = decodeOptions(options)
		out = append(out, &q)
	}
	s.logErr("ListQuestions rows", rows.Err())
	return out
}

func (s *SQLiteStore) AddAttempt(a *api.Attempt) {
	_, err := s.db.Exec(`INSERT INTO test_attempts (id, user_id, test_id, title, score, total_questions, date) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.UserID, a.TestID, a.Title, a.Score, a.TotalQuestions, a.Date)
	s.logErr("AddAttempt", err)
}

func (s *SQLiteStore) ListAttemptsByUser(userID string) []*api.Attempt {
	rows, err := s.db.Query(`SELECT id, user_id, test_id, title, score, total_questions, date FROM test_attempts WHERE user_id = ? ORDER BY date DESC, rowid DESC`, userID)
	if err != nil {
		s.logErr("ListAttemptsByUser", err)
		return nil
	}
	defer rows.Close()
	out := []*api.Attempt{}
	for rows.Next() {
		var a api.Attempt
		if err := rows.Scan(&a.ID, &a.UserID, &a.TestID, &a.Title, &a.Score, &a.TotalQuestions, &a.Date); err != nil {
			s.logErr("ListAttemptsByUser scan", err)
			continue
		}
		out = append(out, &a)
	}
	s.logErr("ListAttemptsByUser rows", rows.Err())
	return out
}

var _ api.Store = (*SQLiteStore)(nil)
