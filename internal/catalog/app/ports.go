package app

import (
	"context"

	"github.com/dwikikusuma/tuslibros/internal/catalog/domain"
)

// BookRepo stores the catalog. FindByISBN returns ErrBookNotFound for
// unknown titles.
type BookRepo interface {
	Upsert(ctx context.Context, b domain.Book) (domain.Book, error)
	FindByISBN(ctx context.Context, isbn string) (domain.Book, error)
	Search(ctx context.Context, f Filter) (Page, error)
}

// Filter narrows a catalog listing. After is the last ISBN of the previous
// page.
type Filter struct {
	Term  string
	Limit int
	After string
}

type Page struct {
	Books []domain.Book
	// Next is empty on the last page.
	Next string
}
