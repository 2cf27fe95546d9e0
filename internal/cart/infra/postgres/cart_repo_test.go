package postgres

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/dwikikusuma/tuslibros/internal/cart/app"
	"github.com/dwikikusuma/tuslibros/internal/cart/domain"
	"github.com/dwikikusuma/tuslibros/pkg/postgres/postgrestest"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func newTestRepo(t *testing.T) *CartRepo {
	t.Helper()
	return NewCartRepo(postgrestest.Open(t, Schema))
}

func TestCartRepo_NeverReissuesIDs(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	a, b, c := uuid.New(), uuid.New(), uuid.New()
	ids := []uuid.UUID{a, a, b, b, c}
	repo.newID = func() uuid.UUID {
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
	if third.ID == second.ID || third.ID != c.String() {
		t.Fatalf("expected fresh id %s, got %s", c, third.ID)
	}
}

func TestCartRepo_UnknownCart(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	for _, id := range []string{uuid.NewString(), "not-a-uuid"} {
		if _, err := repo.Get(ctx, id); !errors.Is(err, app.ErrInvalidCart) {
			t.Fatalf("get %s: expected ErrInvalidCart, got %v", id, err)
		}
		if err := repo.AddItem(ctx, id, domain.CartItem{ProductID: "p", Quantity: 1}); !errors.Is(err, app.ErrInvalidCart) {
			t.Fatalf("add %s: expected ErrInvalidCart, got %v", id, err)
		}
		if err := repo.Delete(ctx, id); !errors.Is(err, app.ErrInvalidCart) {
			t.Fatalf("delete %s: expected ErrInvalidCart, got %v", id, err)
		}
	}
}

func TestCartRepo_AddItemAccumulates(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	cart, err := repo.Create(ctx, domain.Cart{Owner: "alice"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	for _, it := range []domain.CartItem{{ProductID: "b", Quantity: 2}, {ProductID: "a", Quantity: 1}, {ProductID: "b", Quantity: 3}} {
		if err := repo.AddItem(ctx, cart.ID, it); err != nil {
			t.Fatalf("add %+v: %v", it, err)
		}
	}

	got, err := repo.Get(ctx, cart.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	want := []domain.CartItem{{ProductID: "b", Quantity: 5}, {ProductID: "a", Quantity: 1}}
	if diff := cmp.Diff(want, got.Items); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}

	if err := repo.AddItem(ctx, cart.ID, domain.CartItem{ProductID: "a", Quantity: math.MaxInt64}); !errors.Is(err, app.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity on overflow, got %v", err)
	}
	again, _ := repo.Get(ctx, cart.ID)
	if diff := cmp.Diff(want, again.Items); diff != "" {
		t.Fatalf("overflow changed the cart (-want +got):\n%s", diff)
	}
}
