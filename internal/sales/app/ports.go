package app

import (
	"context"

	"github.com/dwikikusuma/tuslibros/internal/sales/domain"
)

// SaleBook is append-only.
type SaleBook interface {
	Append(ctx context.Context, sale domain.Sale) (domain.Sale, error)
	ListByUser(ctx context.Context, username string) ([]domain.Sale, error)
}

type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) error
}
