package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dwikikusuma/tuslibros/internal/catalog/app"
	"github.com/dwikikusuma/tuslibros/internal/catalog/domain"
)

type BookRepo struct {
	mu    sync.RWMutex
	books map[string]domain.Book
	now   func() time.Time
}

func NewBookRepo() *BookRepo {
	return &BookRepo{
		books: make(map[string]domain.Book),
		now:   time.Now,
	}
}

func (r *BookRepo) Upsert(ctx context.Context, b domain.Book) (domain.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b.UpdatedAt = r.now()
	b.CreatedAt = b.UpdatedAt
	if prev, ok := r.books[b.ISBN]; ok {
		b.CreatedAt = prev.CreatedAt
	}
	r.books[b.ISBN] = b
	return b, nil
}

func (r *BookRepo) FindByISBN(ctx context.Context, isbn string) (domain.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.books[isbn]
	if !ok {
		return domain.Book{}, app.ErrBookNotFound
	}
	return b, nil
}

func (r *BookRepo) Search(ctx context.Context, f app.Filter) (app.Page, error) {
	r.mu.RLock()
	hits := make([]domain.Book, 0, len(r.books))
	for isbn, b := range r.books {
		if f.After != "" && isbn <= f.After {
			continue
		}
		if b.Matches(f.Term) {
			hits = append(hits, b)
		}
	}
	r.mu.RUnlock()

	sort.Slice(hits, func(i, j int) bool { return hits[i].ISBN < hits[j].ISBN })

	if len(hits) <= f.Limit {
		return app.Page{Books: hits}, nil
	}
	hits = hits[:f.Limit]
	return app.Page{Books: hits, Next: hits[len(hits)-1].ISBN}, nil
}
