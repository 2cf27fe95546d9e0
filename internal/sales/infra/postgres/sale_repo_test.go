package postgres

import (
	"context"
	"testing"

	"github.com/dwikikusuma/tuslibros/internal/sales/domain"
	"github.com/dwikikusuma/tuslibros/pkg/postgres/postgrestest"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func sale(username string, lines ...domain.SaleLine) domain.Sale {
	var total int64
	for _, ln := range lines {
		total += ln.LineTotalAmount
	}
	return domain.Sale{
		Username:      username,
		TransactionID: uuid.NewString(),
		Currency:      "ARS",
		TotalAmount:   total,
		Lines:         lines,
	}
}

func TestSaleRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewSaleRepo(postgrestest.Open(t, Schema))

	t.Run("appends and lists per user in order", func(t *testing.T) {
		user := "user-" + uuid.NewString()
		first := sale(user,
			domain.SaleLine{ProductID: "a", Name: "A", UnitAmount: 100, Quantity: 2, LineTotalAmount: 200},
			domain.SaleLine{ProductID: "b", Name: "B", UnitAmount: 50, Quantity: 1, LineTotalAmount: 50},
		)
		second := sale(user, domain.SaleLine{ProductID: "a", Name: "A", UnitAmount: 100, Quantity: 1, LineTotalAmount: 100})

		for _, s := range []domain.Sale{first, second} {
			if _, err := repo.Append(ctx, s); err != nil {
				t.Fatalf("append: %v", err)
			}
		}
		if _, err := repo.Append(ctx, sale("other-"+uuid.NewString(),
			domain.SaleLine{ProductID: "z", Name: "Z", UnitAmount: 1, Quantity: 1, LineTotalAmount: 1})); err != nil {
			t.Fatalf("append: %v", err)
		}

		got, err := repo.ListByUser(ctx, user)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 sales, got %d", len(got))
		}
		if diff := cmp.Diff(first.Lines, got[0].Lines); diff != "" {
			t.Fatalf("first sale lines (-want +got):\n%s", diff)
		}
		if got[0].TotalAmount != 250 || got[1].TotalAmount != 100 || got[0].Username != user {
			t.Fatalf("unexpected sales %+v", got)
		}
	})

	t.Run("rejects inconsistent totals", func(t *testing.T) {
		bad := sale("user-"+uuid.NewString(), domain.SaleLine{ProductID: "a", UnitAmount: 100, Quantity: 2, LineTotalAmount: 150})
		if _, err := repo.Append(ctx, bad); err == nil {
			t.Fatal("expected line total mismatch")
		}
		bad = sale("user-"+uuid.NewString(), domain.SaleLine{ProductID: "a", UnitAmount: 100, Quantity: 2, LineTotalAmount: 200})
		bad.TotalAmount = 1
		if _, err := repo.Append(ctx, bad); err == nil {
			t.Fatal("expected sale total mismatch")
		}
	})

	t.Run("transaction ids are unique", func(t *testing.T) {
		s := sale("user-"+uuid.NewString(), domain.SaleLine{ProductID: "a", UnitAmount: 1, Quantity: 1, LineTotalAmount: 1})
		if _, err := repo.Append(ctx, s); err != nil {
			t.Fatalf("append: %v", err)
		}
		if _, err := repo.Append(ctx, s); err == nil {
			t.Fatal("expected duplicate transaction id to fail")
		}
	})
}
