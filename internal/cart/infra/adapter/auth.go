package adapter

import (
	"context"
	"errors"

	cartapp "github.com/dwikikusuma/tuslibros/internal/cart/app"
	userapp "github.com/dwikikusuma/tuslibros/internal/user/app"
)

type UserAuthenticator struct {
	svc *userapp.Service
}

func NewUserAuthenticator(svc *userapp.Service) *UserAuthenticator {
	return &UserAuthenticator{svc: svc}
}

func (a *UserAuthenticator) Authenticate(ctx context.Context, username, password string) error {
	err := a.svc.Authenticate(ctx, username, password)
	if errors.Is(err, userapp.ErrAuthentication) {
		return cartapp.ErrAuthentication
	}
	return err
}
