package memory

import (
	"context"
	"sync"
	"time"

	"github.com/dwikikusuma/tuslibros/internal/sales/domain"
	"github.com/google/uuid"
)

type SaleBook struct {
	mu     sync.RWMutex
	byUser map[string][]domain.Sale

	now func() time.Time
}

func NewSaleBook() *SaleBook {
	return &SaleBook{
		byUser: make(map[string][]domain.Sale),
		now:    time.Now,
	}
}

func (b *SaleBook) Append(ctx context.Context, sale domain.Sale) (domain.Sale, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sale = sale.Clone()
	sale.ID = uuid.NewString()
	sale.CreatedAt = b.now()
	b.byUser[sale.Username] = append(b.byUser[sale.Username], sale)

	return sale.Clone(), nil
}

func (b *SaleBook) ListByUser(ctx context.Context, username string) ([]domain.Sale, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	sales := b.byUser[username]
	out := make([]domain.Sale, 0, len(sales))
	for _, s := range sales {
		out = append(out, s.Clone())
	}
	return out, nil
}
