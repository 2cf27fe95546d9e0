package app

import (
	"context"

	"github.com/dwikikusuma/tuslibros/internal/user/domain"
)

type UserRepo interface {
	Get(ctx context.Context, username string) (domain.User, error)
}
