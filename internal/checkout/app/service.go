package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dwikikusuma/tuslibros/internal/checkout/domain"
	"github.com/dwikikusuma/tuslibros/pkg/safemath"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidCart       = errors.New("invalid cart")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidExpiration = errors.New("invalid expiration date")
	ErrInvalidCard       = errors.New("invalid credit card")
	ErrExpiredCard       = errors.New("credit card is expired")
	ErrPaymentRejected   = errors.New("payment rejected")
	ErrCurrencyMismatch  = errors.New("cart mixes currencies")
	ErrAmountOverflow    = errors.New("amount out of range")
)

type Service struct {
	Cart     CartReader
	Catalog  CatalogReader
	Payments PaymentProcessor
	Sales    SaleRecorder
	Clock    Clock

	log           *slog.Logger
	maxConcurrent int
}

type Deps struct {
	Cart     CartReader
	Catalog  CatalogReader
	Payments PaymentProcessor
	Sales    SaleRecorder
	Clock    Clock
	Log      *slog.Logger
}

func NewService(deps Deps, maxConcurrent int) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}
	log := deps.Log
	if log == nil {
		log = slog.Default()
	}

	return &Service{
		Cart:          deps.Cart,
		Catalog:       deps.Catalog,
		Payments:      deps.Payments,
		Sales:         deps.Sales,
		Clock:         deps.Clock,
		log:           log,
		maxConcurrent: maxConcurrent,
	}
}

// Checkout turns a cart into a sale. Every validation runs before the
// processor is charged, and the cart is only deleted once the sale has been
// recorded, so a failed attempt leaves both cart and history as they were.
// The cart lock is held from the read to the delete, so the charged items
// are exactly the ones removed.
func (s *Service) Checkout(ctx context.Context, req domain.CheckoutRequest) (string, error) {
	month, year, err := parseExpiration(req.Expiration)
	if err != nil {
		return "", err
	}

	unlock := s.Cart.LockCart(req.CartID)
	defer unlock()

	cart, err := s.Cart.GetCart(ctx, req.CartID)
	if err != nil {
		return "", err
	}
	if len(cart.Items) == 0 {
		return "", ErrEmptyCart
	}

	card := domain.Card{
		Number:          req.CardNumber,
		ExpirationMonth: month,
		ExpirationYear:  year,
		Holder:          req.Holder,
	}
	if err := validateCard(card); err != nil {
		return "", err
	}
	if card.ExpiredAt(s.Clock.Now()) {
		return "", ErrExpiredCard
	}

	quote, err := s.price(ctx, cart.Items)
	if err != nil {
		return "", err
	}

	transactionID, err := s.Payments.Debit(ctx, quote.Total, card)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPaymentRejected, err)
	}

	err = s.Sales.RecordSale(ctx, domain.CompletedSale{
		Username:      cart.Owner,
		TransactionID: transactionID,
		Quote:         quote,
	})
	if err != nil {
		s.log.ErrorContext(ctx, "sale not recorded after debit",
			slog.String("cart_id", req.CartID),
			slog.String("transaction_id", transactionID),
			slog.Any("err", err))
		return "", fmt.Errorf("record sale: %w", err)
	}

	if err := s.Cart.DeleteCart(ctx, req.CartID); err != nil {
		return "", fmt.Errorf("delete cart: %w", err)
	}

	s.log.InfoContext(ctx, "checkout completed",
		slog.String("cart_id", req.CartID),
		slog.String("owner", cart.Owner),
		slog.String("card", card.Masked()),
		slog.String("transaction_id", transactionID),
		slog.Int64("total", quote.Total.Amount))

	return transactionID, nil
}

// Quote prices a cart without charging anything.
func (s *Service) Quote(ctx context.Context, cartID string) (domain.Quote, error) {
	cart, err := s.Cart.GetCart(ctx, cartID)
	if err != nil {
		return domain.Quote{}, err
	}

	if len(cart.Items) == 0 {
		return domain.Quote{}, ErrEmptyCart
	}

	return s.price(ctx, cart.Items)
}

func (s *Service) price(ctx context.Context, items []CartItem) (domain.Quote, error) {
	lines := make([]domain.QuoteLine, len(items))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range items {
		g.Go(func() error {
			it := items[idx]
			if it.Quantity <= 0 {
				return fmt.Errorf("quantity must be greater than zero: %d", it.Quantity)
			}

			product, err := s.Catalog.GetProduct(ctx, it.ProductID)
			if err != nil {
				return fmt.Errorf("failed to get product %s: %w", it.ProductID, err)
			}

			lineTotal, err := safemath.Mul(product.Amount, it.Quantity)
			if err != nil {
				return fmt.Errorf("%w: %s x %d", ErrAmountOverflow, it.ProductID, it.Quantity)
			}
			lines[idx] = domain.QuoteLine{
				ProductID: product.ID,
				Name:      product.Name,
				Quantity:  it.Quantity,
				UnitPrice: domain.Money{
					Currency: product.Currency,
					Amount:   product.Amount,
				},
				LineTotal: domain.Money{
					Currency: product.Currency,
					Amount:   lineTotal,
				},
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Quote{}, err
	}

	var totalAmount int64
	currency := lines[0].LineTotal.Currency
	for _, line := range lines {
		if line.LineTotal.Currency != currency {
			return domain.Quote{}, ErrCurrencyMismatch
		}
		sum, err := safemath.Add(totalAmount, line.LineTotal.Amount)
		if err != nil {
			return domain.Quote{}, ErrAmountOverflow
		}
		totalAmount = sum
	}

	quote := domain.Quote{
		Lines: lines,
		Total: domain.Money{
			Currency: currency,
			Amount:   totalAmount,
		},
	}

	return quote, nil
}
