package adapter

import (
	"context"

	"github.com/dwikikusuma/tuslibros/internal/checkout/domain"
	salesapp "github.com/dwikikusuma/tuslibros/internal/sales/app"
	salesdomain "github.com/dwikikusuma/tuslibros/internal/sales/domain"
)

type SalesServiceRecorder struct {
	svc *salesapp.Service
}

func NewSalesServiceRecorder(svc *salesapp.Service) *SalesServiceRecorder {
	return &SalesServiceRecorder{svc: svc}
}

func (r *SalesServiceRecorder) RecordSale(ctx context.Context, sale domain.CompletedSale) error {
	items := make([]salesdomain.SaleLineRequest, 0, len(sale.Quote.Lines))
	for _, ln := range sale.Quote.Lines {
		items = append(items, salesdomain.SaleLineRequest{
			ProductID:  ln.ProductID,
			Name:       ln.Name,
			UnitAmount: ln.UnitPrice.Amount,
			Quantity:   ln.Quantity,
		})
	}

	_, err := r.svc.Record(ctx, salesdomain.RecordSaleRequest{
		Username:      sale.Username,
		TransactionID: sale.TransactionID,
		Currency:      sale.Quote.Total.Currency,
		Items:         items,
	})
	return err
}
