package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dwikikusuma/tuslibros/internal/catalog/domain"
)

var (
	ErrInvalidBook  = errors.New("invalid book")
	ErrBookNotFound = errors.New("book not found")
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type Service struct {
	repo BookRepo
}

func NewService(repo BookRepo) *Service {
	return &Service{repo: repo}
}

type NewBook struct {
	ISBN     string
	Title    string
	Author   string
	Currency string
	Amount   int64
}

// AddBook lists a title, or re-prices it when the ISBN is already known.
func (s *Service) AddBook(ctx context.Context, in NewBook) (domain.Book, error) {
	book := domain.Book{
		ISBN:   strings.TrimSpace(in.ISBN),
		Title:  strings.TrimSpace(in.Title),
		Author: strings.TrimSpace(in.Author),
		Price: domain.Money{
			Currency: strings.ToUpper(strings.TrimSpace(in.Currency)),
			Amount:   in.Amount,
		},
	}

	switch {
	case book.ISBN == "":
		return domain.Book{}, fmt.Errorf("%w: isbn is required", ErrInvalidBook)
	case book.Title == "":
		return domain.Book{}, fmt.Errorf("%w: title is required", ErrInvalidBook)
	case book.Price.Currency == "":
		return domain.Book{}, fmt.Errorf("%w: currency is required", ErrInvalidBook)
	case book.Price.Amount <= 0:
		return domain.Book{}, fmt.Errorf("%w: price must be positive, got %d", ErrInvalidBook, book.Price.Amount)
	}

	return s.repo.Upsert(ctx, book)
}

func (s *Service) Book(ctx context.Context, isbn string) (domain.Book, error) {
	isbn = strings.TrimSpace(isbn)
	if isbn == "" {
		return domain.Book{}, ErrBookNotFound
	}
	return s.repo.FindByISBN(ctx, isbn)
}

// Search lists books ordered by ISBN, optionally filtered by a title or
// author term.
func (s *Service) Search(ctx context.Context, f Filter) (Page, error) {
	f.Term = strings.ToLower(strings.TrimSpace(f.Term))
	f.After = strings.TrimSpace(f.After)
	switch {
	case f.Limit <= 0:
		f.Limit = defaultPageSize
	case f.Limit > maxPageSize:
		f.Limit = maxPageSize
	}
	return s.repo.Search(ctx, f)
}
