package domain

import "time"

// Sale is the immutable record of a completed checkout.
type Sale struct {
	ID            string
	Username      string
	TransactionID string
	Currency      string
	TotalAmount   int64
	Lines         []SaleLine
	CreatedAt     time.Time
}

type SaleLine struct {
	ProductID       string
	Name            string
	UnitAmount      int64
	Quantity        int64
	LineTotalAmount int64
}

// Clone returns a copy that shares no backing array with s.
func (s Sale) Clone() Sale {
	out := s
	out.Lines = append([]SaleLine(nil), s.Lines...)
	return out
}

type RecordSaleRequest struct {
	Username      string
	TransactionID string
	Currency      string
	Items         []SaleLineRequest
}

type SaleLineRequest struct {
	ProductID  string
	Name       string
	UnitAmount int64
	Quantity   int64
}

// PurchaseSummary aggregates every sale of one user.
type PurchaseSummary struct {
	Items       []PurchaseItem
	Currency    string
	TotalAmount int64
}

type PurchaseItem struct {
	ProductID string
	Quantity  int64
}
