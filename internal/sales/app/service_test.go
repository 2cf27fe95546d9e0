package app_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/dwikikusuma/tuslibros/internal/sales/app"
	"github.com/dwikikusuma/tuslibros/internal/sales/domain"
	"github.com/dwikikusuma/tuslibros/internal/sales/infra/memory"
	"github.com/dwikikusuma/tuslibros/pkg/logger"
	"github.com/dwikikusuma/tuslibros/pkg/safemath"
	"github.com/google/go-cmp/cmp"
)

type fakeAuth map[string]string

func (f fakeAuth) Authenticate(ctx context.Context, username, password string) error {
	if pw, ok := f[username]; !ok || pw != password {
		return app.ErrAuthentication
	}
	return nil
}

func newTestService() *app.Service {
	return app.NewService(memory.NewSaleBook(), fakeAuth{"alice": "secret", "bob": "pw"}, "ARS", logger.Discard())
}

func TestRecord(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	t.Run("computes line and sale totals", func(t *testing.T) {
		sale, err := svc.Record(ctx, domain.RecordSaleRequest{
			Username:      "alice",
			TransactionID: "tx-1",
			Items: []domain.SaleLineRequest{
				{ProductID: "a", UnitAmount: 100, Quantity: 2},
				{ProductID: "b", UnitAmount: 50, Quantity: 3},
			},
		})
		if err != nil {
			t.Fatalf("record: %v", err)
		}
		if sale.ID == "" || sale.Currency != "ARS" {
			t.Fatalf("unexpected sale header: %+v", sale)
		}
		if sale.Lines[0].LineTotalAmount != 200 || sale.Lines[1].LineTotalAmount != 150 {
			t.Fatalf("unexpected line totals: %+v", sale.Lines)
		}
		if sale.TotalAmount != 350 {
			t.Fatalf("expected total 350, got %d", sale.TotalAmount)
		}
	})

	t.Run("rejects invalid requests", func(t *testing.T) {
		cases := map[string]domain.RecordSaleRequest{
			"no items":       {Username: "alice", TransactionID: "tx"},
			"no user":        {TransactionID: "tx", Items: []domain.SaleLineRequest{{ProductID: "a", Quantity: 1}}},
			"no transaction": {Username: "alice", Items: []domain.SaleLineRequest{{ProductID: "a", Quantity: 1}}},
			"zero quantity":  {Username: "alice", TransactionID: "tx", Items: []domain.SaleLineRequest{{ProductID: "a"}}},
			"negative price": {Username: "alice", TransactionID: "tx", Items: []domain.SaleLineRequest{{ProductID: "a", Quantity: 1, UnitAmount: -1}}},
		}
		for name, req := range cases {
			t.Run(name, func(t *testing.T) {
				if _, err := svc.Record(ctx, req); !errors.Is(err, app.ErrInvalidSale) {
					t.Fatalf("expected ErrInvalidSale, got %v", err)
				}
			})
		}
	})

	t.Run("totals past int64 are rejected", func(t *testing.T) {
		lines := map[string][]domain.SaleLineRequest{
			"line": {{ProductID: "a", Quantity: math.MaxInt64 / 50, UnitAmount: 100}},
			"sale": {
				{ProductID: "a", Quantity: math.MaxInt64 / 100, UnitAmount: 100},
				{ProductID: "b", Quantity: math.MaxInt64 / 100, UnitAmount: 100},
			},
		}
		for name, items := range lines {
			_, err := svc.Record(ctx, domain.RecordSaleRequest{Username: "alice", TransactionID: "tx-" + name, Items: items})
			if !errors.Is(err, app.ErrInvalidSale) || !errors.Is(err, safemath.ErrOverflow) {
				t.Fatalf("%s: expected ErrInvalidSale wrapping ErrOverflow, got %v", name, err)
			}
		}
	})
}

func TestListPurchases(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	t.Run("bad credentials -> ErrAuthentication", func(t *testing.T) {
		if _, err := svc.ListPurchases(ctx, "alice", "nope"); !errors.Is(err, app.ErrAuthentication) {
			t.Fatalf("expected ErrAuthentication, got %v", err)
		}
	})

	t.Run("no sales -> empty summary", func(t *testing.T) {
		summary, err := svc.ListPurchases(ctx, "alice", "secret")
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(summary.Items) != 0 || summary.TotalAmount != 0 {
			t.Fatalf("expected empty summary, got %+v", summary)
		}
	})

	t.Run("aggregates across sales of the same user only", func(t *testing.T) {
		record := func(user, tx string, items ...domain.SaleLineRequest) {
			t.Helper()
			if _, err := svc.Record(ctx, domain.RecordSaleRequest{Username: user, TransactionID: tx, Items: items}); err != nil {
				t.Fatalf("record: %v", err)
			}
		}
		record("alice", "tx-1",
			domain.SaleLineRequest{ProductID: "b", UnitAmount: 10, Quantity: 1},
			domain.SaleLineRequest{ProductID: "a", UnitAmount: 20, Quantity: 2})
		record("alice", "tx-2",
			domain.SaleLineRequest{ProductID: "a", UnitAmount: 20, Quantity: 3})
		record("bob", "tx-3",
			domain.SaleLineRequest{ProductID: "a", UnitAmount: 20, Quantity: 100})

		summary, err := svc.ListPurchases(ctx, "alice", "secret")
		if err != nil {
			t.Fatalf("list: %v", err)
		}

		want := []domain.PurchaseItem{{ProductID: "a", Quantity: 5}, {ProductID: "b", Quantity: 1}}
		if diff := cmp.Diff(want, summary.Items); diff != "" {
			t.Fatalf("purchases mismatch (-want +got):\n%s", diff)
		}
		if summary.TotalAmount != 10+40+60 {
			t.Fatalf("expected total 110, got %d", summary.TotalAmount)
		}
	})
}
