package api

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func newID(n int) string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:n]
}

// EnsureAdmin creates the admin account if it does not exist yet. Admin
// accounts are only ever seeded; registration cannot produce one.
func EnsureAdmin(store Store, username, password string) error {
	if store.FindUserByUsername(username) != nil {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	store.AddUser(&User{
		ID:        newID(8),
		Username:  username,
		PassHash:  hash,
		Role:      "admin",
		CreatedAt: time.Now().UTC(),
	})
	return nil
}

// SeedSampleTests loads the demo fixtures: two tests with five questions.
func SeedSampleTests(store Store) {
	general := &Test{ID: newID(8), Title: "General Knowledge Quiz", Description: "Test your knowledge with these general questions"}
	store.AddTest(general)
	for _, q := range []*Question{
		{Text: "What is the capital of France?", Options: []string{"London", "Berlin", "Paris", "Madrid"}, CorrectAnswer: 2, Difficulty: "easy"},
		{Text: "Which planet is known as the Red Planet?", Options: []string{"Venus", "Mars", "Jupiter", "Saturn"}, CorrectAnswer: 1, Difficulty: "easy"},
		{Text: "What is the largest mammal in the world?", Options: []string{"African Elephant", "Blue Whale", "Giraffe", "Hippopotamus"}, CorrectAnswer: 1, Difficulty: "medium"},
	} {
		q.ID = newID(8)
		q.TestID = general.ID
		store.AddQuestion(q)
	}

	science := &Test{ID: newID(8), Title: "Science Quiz", Description: "Test your knowledge of scientific concepts"}
	store.AddTest(science)
	for _, q := range []*Question{
		{Text: "What is the chemical symbol for water?", Options: []string{"H2O", "CO2", "O2", "H2"}, CorrectAnswer: 0, Difficulty: "easy"},
		{Text: "What is the hardest natural substance on Earth?", Options: []string{"Gold", "Iron", "Diamond", "Platinum"}, CorrectAnswer: 2, Difficulty: "medium"},
	} {
		q.ID = newID(8)
		q.TestID = science.ID
		store.AddQuestion(q)
	}
}
