package app

import (
	"context"
	"time"

	"github.com/dwikikusuma/tuslibros/internal/checkout/domain"
)

// CartReader returns ErrInvalidCart for unknown or already checked-out carts.
// LockCart shuts out additions to the cart until unlock is called; it is the
// same lock the cart context takes when adding items.
type CartReader interface {
	GetCart(ctx context.Context, cartID string) (Cart, error)
	DeleteCart(ctx context.Context, cartID string) error
	LockCart(cartID string) (unlock func())
}

type Cart struct {
	ID    string
	Owner string
	Items []CartItem
}

type CartItem struct {
	ProductID string
	Quantity  int64
}

type CatalogReader interface {
	GetProduct(ctx context.Context, productID string) (Product, error)
}

type Product struct {
	ID       string
	Name     string
	Currency string
	Amount   int64
}

// PaymentProcessor charges amount to card and returns a transaction id.
type PaymentProcessor interface {
	Debit(ctx context.Context, amount domain.Money, card domain.Card) (string, error)
}

type SaleRecorder interface {
	RecordSale(ctx context.Context, sale domain.CompletedSale) error
}

type Clock interface {
	Now() time.Time
}
