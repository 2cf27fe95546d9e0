package app

import (
	"context"

	"github.com/dwikikusuma/tuslibros/internal/cart/domain"
)

// CartRepo returns ErrInvalidCart for ids it does not hold.
type CartRepo interface {
	Create(ctx context.Context, cart domain.Cart) (domain.Cart, error)
	Get(ctx context.Context, cartID string) (domain.Cart, error)
	AddItem(ctx context.Context, cartID string, item domain.CartItem) error
	Delete(ctx context.Context, cartID string) error
}

// Authenticator returns ErrAuthentication on a username/password mismatch.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) error
}

type Catalog interface {
	Contains(ctx context.Context, productID string) (bool, error)
}
