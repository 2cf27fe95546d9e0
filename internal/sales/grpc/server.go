package grpc

import (
	"context"
	"errors"

	salesv1 "github.com/dwikikusuma/tuslibros/api/sales/v1"
	"github.com/dwikikusuma/tuslibros/internal/sales/app"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	svc *app.Service
}

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) ListPurchases(ctx context.Context, req *salesv1.ListPurchasesRequest) (*salesv1.ListPurchasesResponse, error) {
	summary, err := s.svc.ListPurchases(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, app.ErrAuthentication) {
			return nil, status.Error(codes.Unauthenticated, err.Error())
		}
		return nil, status.Errorf(codes.Internal, "list purchases failed: %v", err)
	}

	items := make([]salesv1.PurchaseItem, 0, len(summary.Items))
	for _, it := range summary.Items {
		items = append(items, salesv1.PurchaseItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	return &salesv1.ListPurchasesResponse{
		Items: items,
		Total: &salesv1.Money{Currency: summary.Currency, Amount: summary.TotalAmount},
	}, nil
}
