package adapter

import (
	"context"
	"errors"

	salesapp "github.com/dwikikusuma/tuslibros/internal/sales/app"
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
		return salesapp.ErrAuthentication
	}
	return err
}
