package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/dwikikusuma/tuslibros/internal/sales/domain"
	"github.com/dwikikusuma/tuslibros/pkg/safemath"
)

var (
	ErrAuthentication = errors.New("invalid username or password")
	ErrInvalidSale    = errors.New("invalid sale")
)

type Service struct {
	book     SaleBook
	auth     Authenticator
	currency string
	log      *slog.Logger
}

func NewService(book SaleBook, auth Authenticator, currency string, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{book: book, auth: auth, currency: currency, log: log}
}

// Record validates the request, derives line and sale totals and appends
// the sale to the user's history.
func (s *Service) Record(ctx context.Context, req domain.RecordSaleRequest) (domain.Sale, error) {
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.TransactionID) == "" {
		return domain.Sale{}, fmt.Errorf("%w: username and transaction id are required", ErrInvalidSale)
	}
	if len(req.Items) == 0 {
		return domain.Sale{}, fmt.Errorf("%w: no items", ErrInvalidSale)
	}

	lines := make([]domain.SaleLine, 0, len(req.Items))
	var totalAmount int64

	for i, item := range req.Items {
		if item.Quantity <= 0 {
			return domain.Sale{}, fmt.Errorf("%w: item %d: quantity must be positive, got %d", ErrInvalidSale, i, item.Quantity)
		}
		if item.UnitAmount < 0 {
			return domain.Sale{}, fmt.Errorf("%w: item %d: unit amount cannot be negative, got %d", ErrInvalidSale, i, item.UnitAmount)
		}

		lineTotal, err := safemath.Mul(item.UnitAmount, item.Quantity)
		if err != nil {
			return domain.Sale{}, fmt.Errorf("%w: item %d: line total: %w", ErrInvalidSale, i, err)
		}
		if totalAmount, err = safemath.Add(totalAmount, lineTotal); err != nil {
			return domain.Sale{}, fmt.Errorf("%w: sale total: %w", ErrInvalidSale, err)
		}
		lines = append(lines, domain.SaleLine{
			ProductID:       item.ProductID,
			Name:            item.Name,
			UnitAmount:      item.UnitAmount,
			Quantity:        item.Quantity,
			LineTotalAmount: lineTotal,
		})
	}

	currency := req.Currency
	if currency == "" {
		currency = s.currency
	}

	sale, err := s.book.Append(ctx, domain.Sale{
		Username:      req.Username,
		TransactionID: req.TransactionID,
		Currency:      currency,
		TotalAmount:   totalAmount,
		Lines:         lines,
	})
	if err != nil {
		return domain.Sale{}, err
	}

	s.log.InfoContext(ctx, "sale recorded",
		slog.String("sale_id", sale.ID),
		slog.String("username", sale.Username),
		slog.String("transaction_id", sale.TransactionID),
		slog.Int64("total", sale.TotalAmount))
	return sale, nil
}

// ListPurchases sums quantities per product over all of the user's sales,
// sorted by product id, together with the grand total spent.
func (s *Service) ListPurchases(ctx context.Context, username, password string) (domain.PurchaseSummary, error) {
	if err := s.auth.Authenticate(ctx, username, password); err != nil {
		if errors.Is(err, ErrAuthentication) {
			s.log.WarnContext(ctx, "purchase listing refused", slog.String("username", username))
		}
		return domain.PurchaseSummary{}, err
	}

	sales, err := s.book.ListByUser(ctx, username)
	if err != nil {
		return domain.PurchaseSummary{}, err
	}

	summary := domain.PurchaseSummary{Currency: s.currency}
	counts := make(map[string]int64)
	for _, sale := range sales {
		for _, ln := range sale.Lines {
			if counts[ln.ProductID], err = safemath.Add(counts[ln.ProductID], ln.Quantity); err != nil {
				return domain.PurchaseSummary{}, fmt.Errorf("purchases of %s: %w", username, err)
			}
		}
		if summary.TotalAmount, err = safemath.Add(summary.TotalAmount, sale.TotalAmount); err != nil {
			return domain.PurchaseSummary{}, fmt.Errorf("purchases of %s: %w", username, err)
		}
		summary.Currency = sale.Currency
	}

	summary.Items = make([]domain.PurchaseItem, 0, len(counts))
	for id, qty := range counts {
		summary.Items = append(summary.Items, domain.PurchaseItem{ProductID: id, Quantity: qty})
	}
	sort.Slice(summary.Items, func(i, j int) bool {
		return summary.Items[i].ProductID < summary.Items[j].ProductID
	})

	return summary, nil
}
