package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dwikikusuma/tuslibros/internal/catalog/app"
	"github.com/dwikikusuma/tuslibros/internal/catalog/domain"
	"github.com/dwikikusuma/tuslibros/pkg/postgres"
)

const Schema = `
CREATE TABLE IF NOT EXISTS books (
    isbn        TEXT PRIMARY KEY,
    title       TEXT NOT NULL,
    author      TEXT NOT NULL DEFAULT '',
    price_minor BIGINT NOT NULL CHECK (price_minor > 0),
    currency    TEXT NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

const bookColumns = `isbn, title, author, price_minor, currency, created_at, updated_at`

type BookRepo struct {
	db *sql.DB
}

func NewBookRepo(db *sql.DB) *BookRepo {
	return &BookRepo{db: db}
}

func (r *BookRepo) Migrate(ctx context.Context) error {
	return postgres.ApplySchema(ctx, r.db, Schema)
}

func (r *BookRepo) Upsert(ctx context.Context, b domain.Book) (domain.Book, error) {
	row := r.db.QueryRowContext(ctx, `
INSERT INTO books (isbn, title, author, price_minor, currency)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (isbn) DO UPDATE
SET title       = EXCLUDED.title,
    author      = EXCLUDED.author,
    price_minor = EXCLUDED.price_minor,
    currency    = EXCLUDED.currency,
    updated_at  = now()
RETURNING `+bookColumns,
		b.ISBN, b.Title, b.Author, b.Price.Amount, b.Price.Currency)

	return scanBook(row)
}

func (r *BookRepo) FindByISBN(ctx context.Context, isbn string) (domain.Book, error) {
	b, err := scanBook(r.db.QueryRowContext(ctx, `SELECT `+bookColumns+` FROM books WHERE isbn = $1`, isbn))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Book{}, app.ErrBookNotFound
	}
	return b, err
}

// Search fetches one row past the limit to learn whether a next page exists.
func (r *BookRepo) Search(ctx context.Context, f app.Filter) (app.Page, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT `+bookColumns+`
FROM books
WHERE ($1 = '' OR title ILIKE '%' || $1 || '%' OR author ILIKE '%' || $1 || '%')
  AND ($2 = '' OR isbn > $2)
ORDER BY isbn
LIMIT $3`,
		f.Term, f.After, f.Limit+1)
	if err != nil {
		return app.Page{}, err
	}
	defer rows.Close()

	books := make([]domain.Book, 0, f.Limit+1)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return app.Page{}, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return app.Page{}, err
	}

	if len(books) <= f.Limit {
		return app.Page{Books: books}, nil
	}
	books = books[:f.Limit]
	return app.Page{Books: books, Next: books[len(books)-1].ISBN}, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBook(s scanner) (domain.Book, error) {
	var b domain.Book
	if err := s.Scan(&b.ISBN, &b.Title, &b.Author, &b.Price.Amount, &b.Price.Currency, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return domain.Book{}, err
	}
	return b, nil
}
