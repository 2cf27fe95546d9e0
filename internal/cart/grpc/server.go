package grpc

import (
	"context"
	"errors"

	cartv1 "github.com/dwikikusuma/tuslibros/api/cart/v1"
	"github.com/dwikikusuma/tuslibros/internal/cart/app"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	svc *app.Service
}

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) CreateCart(ctx context.Context, req *cartv1.CreateCartRequest) (*cartv1.CreateCartResponse, error) {
	id, err := s.svc.CreateCart(ctx, req.Username, req.Password)
	if err != nil {
		return nil, mapErr(err)
	}
	return &cartv1.CreateCartResponse{CartID: id}, nil
}

func (s *Server) AddToCart(ctx context.Context, req *cartv1.AddToCartRequest) (*cartv1.AddToCartResponse, error) {
	if req.CartID == "" {
		return nil, status.Error(codes.InvalidArgument, "cart_id is required")
	}
	if err := s.svc.AddToCart(ctx, req.CartID, req.ProductID, req.Quantity); err != nil {
		return nil, mapErr(err)
	}
	return &cartv1.AddToCartResponse{}, nil
}

func (s *Server) ListCart(ctx context.Context, req *cartv1.ListCartRequest) (*cartv1.ListCartResponse, error) {
	items, err := s.svc.ListCart(ctx, req.CartID)
	if err != nil {
		return nil, mapErr(err)
	}

	out := make([]cartv1.CartItem, 0, len(items))
	for _, it := range items {
		out = append(out, cartv1.CartItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return &cartv1.ListCartResponse{Items: out}, nil
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, app.ErrAuthentication):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, app.ErrInvalidCart):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, app.ErrInvalidQuantity), errors.Is(err, app.ErrProductNotInCatalog):
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return status.Errorf(codes.Internal, "cart: %v", err)
}
