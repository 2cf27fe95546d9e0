package app

import (
	"context"
	"crypto/subtle"
	"errors"
)

var (
	ErrAuthentication = errors.New("invalid username or password")
	ErrNotFound       = errors.New("user not found")
)

type Service struct {
	repo UserRepo
}

func NewService(repo UserRepo) *Service {
	return &Service{repo: repo}
}

// Authenticate returns ErrAuthentication for unknown users as well as wrong
// passwords so callers cannot tell which usernames exist.
func (s *Service) Authenticate(ctx context.Context, username, password string) error {
	u, err := s.repo.Get(ctx, username)
	if errors.Is(err, ErrNotFound) {
		return ErrAuthentication
	}
	if err != nil {
		return err
	}

	if subtle.ConstantTimeCompare([]byte(u.Password), []byte(password)) != 1 {
		return ErrAuthentication
	}
	return nil
}
