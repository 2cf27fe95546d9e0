package adapter

import (
	"context"
	"errors"

	cartapp "github.com/dwikikusuma/tuslibros/internal/cart/app"
	checkoutapp "github.com/dwikikusuma/tuslibros/internal/checkout/app"
)

type CartServiceReader struct {
	svc *cartapp.Service
}

func NewCartServiceReader(svc *cartapp.Service) *CartServiceReader {
	return &CartServiceReader{svc: svc}
}

func (r *CartServiceReader) GetCart(ctx context.Context, cartID string) (checkoutapp.Cart, error) {
	cart, err := r.svc.GetCart(ctx, cartID)
	if err != nil {
		return checkoutapp.Cart{}, mapCartErr(err)
	}

	items := make([]checkoutapp.CartItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, checkoutapp.CartItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}
	return checkoutapp.Cart{ID: cart.ID, Owner: cart.Owner, Items: items}, nil
}

func (r *CartServiceReader) DeleteCart(ctx context.Context, cartID string) error {
	return mapCartErr(r.svc.DeleteCart(ctx, cartID))
}

func (r *CartServiceReader) LockCart(cartID string) func() {
	return r.svc.LockCart(cartID)
}

func mapCartErr(err error) error {
	if errors.Is(err, cartapp.ErrInvalidCart) {
		return checkoutapp.ErrInvalidCart
	}
	return err
}
