package memory

import (
	"context"
	"sync"

	"github.com/dwikikusuma/tuslibros/internal/user/app"
	"github.com/dwikikusuma/tuslibros/internal/user/domain"
)

type UserRepo struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

func NewUserRepo(users ...domain.User) *UserRepo {
	r := &UserRepo{users: make(map[string]domain.User, len(users))}
	for _, u := range users {
		r.users[u.Username] = u
	}
	return r
}

func (r *UserRepo) Get(ctx context.Context, username string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[username]
	if !ok {
		return domain.User{}, app.ErrNotFound
	}
	return u, nil
}

func (r *UserRepo) Put(u domain.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.Username] = u
}
