package api

import (
	"github.com/mateuszng/quizdeck/internal/services"
)

type authStoreAdapter struct {
	store Store
}

func newAuthStoreAdapter(store Store) services.AuthStore {
	return &authStoreAdapter{store: store}
}

func (a *authStoreAdapter) FindUserByUsername(username string) (*services.User, error) {
	u := a.store.FindUserByUsername(username)
	if u == nil {
		return nil, nil
	}
	return &services.User{ID: u.ID, Username: u.Username, PassHash: u.PassHash, Role: u.Role, CreatedAt: u.CreatedAt}, nil
}

func (a *authStoreAdapter) AddUser(u *services.User) error {
	if u == nil {
		return services.NewInvalidError("user required")
	}
	a.store.AddUser(&User{ID: u.ID, Username: u.Username, PassHash: u.PassHash, Role: u.Role, CreatedAt: u.CreatedAt})
	return nil
}

var _ services.AuthStore = (*authStoreAdapter)(nil)
