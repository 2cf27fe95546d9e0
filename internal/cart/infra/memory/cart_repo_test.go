package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/dwikikusuma/tuslibros/internal/cart/app"
	"github.com/dwikikusuma/tuslibros/internal/cart/domain"
	"golang.org/x/sync/errgroup"
)

func TestCartRepo_NeverReissuesIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepo()

	ids := []string{"a", "a", "b", "b", "c"}
	repo.newID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}

	first, err := repo.Create(ctx, domain.Cart{Owner: "alice"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Delete(ctx, first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	second, err := repo.Create(ctx, domain.Cart{Owner: "alice"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if second.ID == first.ID {
		t.Fatalf("retired id %q was reissued", first.ID)
	}

	third, err := repo.Create(ctx, domain.Cart{Owner: "alice"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if third.ID == second.ID {
		t.Fatalf("active id %q was reissued", second.ID)
	}
}

func TestCartRepo_UnknownCart(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepo()

	if _, err := repo.Get(ctx, "nope"); !errors.Is(err, app.ErrInvalidCart) {
		t.Fatalf("get: expected ErrInvalidCart, got %v", err)
	}
	if err := repo.AddItem(ctx, "nope", domain.CartItem{ProductID: "p", Quantity: 1}); !errors.Is(err, app.ErrInvalidCart) {
		t.Fatalf("add: expected ErrInvalidCart, got %v", err)
	}
	if err := repo.Delete(ctx, "nope"); !errors.Is(err, app.ErrInvalidCart) {
		t.Fatalf("delete: expected ErrInvalidCart, got %v", err)
	}
}

func TestCartRepo_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepo()

	cart, _ := repo.Create(ctx, domain.Cart{Owner: "alice"})
	_ = repo.AddItem(ctx, cart.ID, domain.CartItem{ProductID: "p", Quantity: 1})

	got, _ := repo.Get(ctx, cart.ID)
	got.Items[0].Quantity = 99

	again, _ := repo.Get(ctx, cart.ID)
	if again.Units("p") != 1 {
		t.Fatalf("stored cart was mutated through a returned copy: %d", again.Units("p"))
	}
}

func TestCartRepo_ConcurrentAddItemIncrement(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepo()

	cart, err := repo.Create(ctx, domain.Cart{Owner: "alice"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	const N = 100
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < N; i++ {
		g.Go(func() error {
			return repo.AddItem(gctx, cart.ID, domain.CartItem{ProductID: "p", Quantity: 1})
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent AddItem failed: %v", err)
	}

	updated, _ := repo.Get(ctx, cart.ID)
	if got := updated.Units("p"); got != N {
		t.Fatalf("expected quantity=%d, got=%d", N, got)
	}
}

func TestCartRepo_ConcurrentCreateUniqueIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepo()

	const N = 50
	ids := make(map[string]struct{})
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < N; i++ {
		g.Go(func() error {
			cart, err := repo.Create(gctx, domain.Cart{Owner: "alice"})
			if err != nil {
				return err
			}
			mu.Lock()
			ids[cart.ID] = struct{}{}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent Create failed: %v", err)
	}
	if len(ids) != N {
		t.Fatalf("expected %d distinct ids, got %d", N, len(ids))
	}
}
