package adapter

import (
	"context"

	catalogapp "github.com/dwikikusuma/tuslibros/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/tuslibros/internal/checkout/app"
)

// CatalogServiceReader prices cart lines from the book catalog.
type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) GetProduct(ctx context.Context, productID string) (checkoutapp.Product, error) {
	b, err := r.svc.Book(ctx, productID)
	if err != nil {
		return checkoutapp.Product{}, err
	}

	return checkoutapp.Product{
		ID:       b.ISBN,
		Name:     b.Title,
		Currency: b.Price.Currency,
		Amount:   b.Price.Amount,
	}, nil
}
