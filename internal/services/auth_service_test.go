package services

import (
	"errors"
	"strings"
	"testing"
	"time"
)

type authStubStore struct {
	users map[string]*User
}

func newAuthStubStore() *authStubStore {
	return &authStubStore{users: map[string]*User{}}
}

func (s *authStubStore) FindUserByUsername(username string) (*User, error) {
	if u, ok := s.users[strings.ToLower(username)]; ok {
		copy := *u
		return &copy, nil
	}
	return nil, nil
}

func (s *authStubStore) AddUser(u *User) error {
	key := strings.ToLower(u.Username)
	if _, ok := s.users[key]; ok {
		return errors.New("duplicate user")
	}
	copy := *u
	s.users[key] = &copy
	return nil
}

func TestAuthRegisterAndLogin(t *testing.T) {
	store := newAuthStubStore()
	svc := NewAuthService(store, func(uid, username, role string, ttl time.Duration) (string, error) {
		return "token:" + uid + ":" + role, nil
	})
	svc.now = func() time.Time { return time.Unix(0, 0) }
	svc.idGen = func(n int) string { return "u1234567" }

	res, err := svc.Register("alice", "Secret123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if res.User == nil || res.User.ID == "" {
		t.Fatalf("expected user in result: %+v", res)
	}
	if res.User.Role != RoleUser {
		t.Fatalf("self-registered account must have role user, got %q", res.User.Role)
	}
	if res.Token != "token:"+res.User.ID+":"+RoleUser {
		t.Fatalf("unexpected token %q", res.Token)
	}

	if _, err = svc.Register("alice", "Secret123"); err == nil {
		t.Fatalf("expected conflict error on duplicate registration")
	}
	if se, ok := AsServiceError(err); !ok || se.Code != ErrorConflict {
		t.Fatalf("expected conflict code, got %v", err)
	}

	loginRes, err := svc.Login("alice", "Secret123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if loginRes.Token == "" {
		t.Fatalf("expected token in login response")
	}
	if loginRes.User.Role != RoleUser {
		t.Fatalf("decoded role must match stored role, got %q", loginRes.User.Role)
	}

	if _, err := svc.Login("alice", "wrong"); err == nil {
		t.Fatalf("expected error for wrong password")
	}
	if _, err := svc.Login("missing", "Secret123"); err == nil {
		t.Fatalf("expected error for unknown user")
	}
}

func TestAuthStoresHashedPassword(t *testing.T) {
	store := newAuthStubStore()
	svc := NewAuthService(store, func(uid, username, role string, ttl time.Duration) (string, error) {
		return "tok", nil
	})

	if _, err := svc.Register("bob", "hunter2"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	u := store.users["bob"]
	if u == nil {
		t.Fatalf("user not stored")
	}
	if string(u.PassHash) == "hunter2" {
		t.Fatalf("password stored in plaintext")
	}
}

func TestAuthValidation(t *testing.T) {
	store := newAuthStubStore()
	svc := NewAuthService(store, func(uid, username, role string, ttl time.Duration) (string, error) {
		return "tok", nil
	})

	if _, err := svc.Register("", ""); err == nil {
		t.Fatalf("expected validation error")
	}
	if _, err := svc.Register("   ", "pw"); err == nil {
		t.Fatalf("expected validation error for blank username")
	}
	if _, err := svc.Login("", ""); err == nil {
		t.Fatalf("expected validation error on login")
	}
}
