package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dwikikusuma/tuslibros/internal/cart/app"
	"github.com/dwikikusuma/tuslibros/internal/cart/domain"
	"github.com/google/uuid"
)

// CartRepo keeps active carts in memory. Deleted ids are remembered so they
// are never handed out again.
type CartRepo struct {
	mu      sync.Mutex
	carts   map[string]domain.Cart
	retired map[string]struct{}

	newID func() string
	now   func() time.Time
}

func NewCartRepo() *CartRepo {
	return &CartRepo{
		carts:   make(map[string]domain.Cart),
		retired: make(map[string]struct{}),
		newID:   uuid.NewString,
		now:     time.Now,
	}
}

func (r *CartRepo) Create(ctx context.Context, cart domain.Cart) (domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.newID()
	for r.issued(id) {
		id = r.newID()
	}

	now := r.now()
	cart = cart.Clone()
	cart.ID = id
	cart.CreatedAt = now
	cart.UpdatedAt = now
	r.carts[id] = cart

	return cart.Clone(), nil
}

func (r *CartRepo) issued(id string) bool {
	if _, ok := r.carts[id]; ok {
		return true
	}
	_, ok := r.retired[id]
	return ok
}

func (r *CartRepo) Get(ctx context.Context, cartID string) (domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart, ok := r.carts[cartID]
	if !ok {
		return domain.Cart{}, app.ErrInvalidCart
	}
	return cart.Clone(), nil
}

func (r *CartRepo) AddItem(ctx context.Context, cartID string, item domain.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart, ok := r.carts[cartID]
	if !ok {
		return app.ErrInvalidCart
	}
	cart = cart.Clone()
	if err := cart.Add(item.ProductID, item.Quantity); err != nil {
		return fmt.Errorf("%w: %w", app.ErrInvalidQuantity, err)
	}
	cart.UpdatedAt = r.now()
	r.carts[cartID] = cart

	return nil
}

func (r *CartRepo) Delete(ctx context.Context, cartID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.carts[cartID]; !ok {
		return app.ErrInvalidCart
	}
	delete(r.carts, cartID)
	r.retired[cartID] = struct{}{}

	return nil
}
