package adapter

import (
	"context"
	"errors"

	catalogapp "github.com/dwikikusuma/tuslibros/internal/catalog/app"
)

// CatalogChecker answers whether an ISBN is on sale.
type CatalogChecker struct {
	svc *catalogapp.Service
}

func NewCatalogChecker(svc *catalogapp.Service) *CatalogChecker {
	return &CatalogChecker{svc: svc}
}

func (c *CatalogChecker) Contains(ctx context.Context, productID string) (bool, error) {
	_, err := c.svc.Book(ctx, productID)
	switch {
	case errors.Is(err, catalogapp.ErrBookNotFound):
		return false, nil
	case err != nil:
		return false, err
	}
	return true, nil
}
