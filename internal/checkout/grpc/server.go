package grpc

import (
	"context"
	"errors"

	checkoutv1 "github.com/dwikikusuma/tuslibros/api/checkout/v1"
	"github.com/dwikikusuma/tuslibros/internal/checkout/app"
	"github.com/dwikikusuma/tuslibros/internal/checkout/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	svc *app.Service
}

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) Checkout(ctx context.Context, req *checkoutv1.CheckoutRequest) (*checkoutv1.CheckoutResponse, error) {
	txID, err := s.svc.Checkout(ctx, domain.CheckoutRequest{
		CartID:     req.CartID,
		CardNumber: req.CardNumber,
		Expiration: req.Expiration,
		Holder:     req.Holder,
	})
	if err != nil {
		return nil, mapErr(err)
	}
	return &checkoutv1.CheckoutResponse{TransactionID: txID}, nil
}

func (s *Server) Quote(ctx context.Context, req *checkoutv1.QuoteRequest) (*checkoutv1.QuoteResponse, error) {
	if req.CartID == "" {
		return nil, status.Error(codes.InvalidArgument, "cart_id is required")
	}

	q, err := s.svc.Quote(ctx, req.CartID)
	if err != nil {
		return nil, mapErr(err)
	}

	return toResponse(q), nil
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, app.ErrInvalidCart):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, app.ErrEmptyCart),
		errors.Is(err, app.ErrInvalidExpiration),
		errors.Is(err, app.ErrInvalidCard),
		errors.Is(err, app.ErrAmountOverflow):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, app.ErrExpiredCard), errors.Is(err, app.ErrPaymentRejected):
		return status.Error(codes.FailedPrecondition, err.Error())
	}
	return status.Errorf(codes.Internal, "checkout: %v", err)
}

func toResponse(q domain.Quote) *checkoutv1.QuoteResponse {
	lines := make([]*checkoutv1.QuoteLine, 0, len(q.Lines))
	for _, ln := range q.Lines {
		lines = append(lines, &checkoutv1.QuoteLine{
			ProductID: ln.ProductID,
			Name:      ln.Name,
			Quantity:  ln.Quantity,
			UnitPrice: &checkoutv1.Money{Currency: ln.UnitPrice.Currency, Amount: ln.UnitPrice.Amount},
			LineTotal: &checkoutv1.Money{Currency: ln.LineTotal.Currency, Amount: ln.LineTotal.Amount},
		})
	}

	return &checkoutv1.QuoteResponse{
		Lines: lines,
		Total: &checkoutv1.Money{Currency: q.Total.Currency, Amount: q.Total.Amount},
	}
}
