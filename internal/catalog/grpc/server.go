package grpc

import (
	"context"
	"errors"

	catalogv1 "github.com/dwikikusuma/tuslibros/api/catalog/v1"
	"github.com/dwikikusuma/tuslibros/internal/catalog/app"
	"github.com/dwikikusuma/tuslibros/internal/catalog/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	svc *app.Service
}

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) AddBook(ctx context.Context, req *catalogv1.AddBookRequest) (*catalogv1.AddBookResponse, error) {
	if req.Price == nil {
		return nil, status.Error(codes.InvalidArgument, "price is required")
	}

	b, err := s.svc.AddBook(ctx, app.NewBook{
		ISBN:     req.ISBN,
		Title:    req.Title,
		Author:   req.Author,
		Currency: req.Price.Currency,
		Amount:   req.Price.Amount,
	})
	if err != nil {
		return nil, mapErr(err)
	}
	return &catalogv1.AddBookResponse{Book: toWire(b)}, nil
}

func (s *Server) GetBook(ctx context.Context, req *catalogv1.GetBookRequest) (*catalogv1.GetBookResponse, error) {
	b, err := s.svc.Book(ctx, req.ISBN)
	if err != nil {
		return nil, mapErr(err)
	}
	return &catalogv1.GetBookResponse{Book: toWire(b)}, nil
}

func (s *Server) SearchBooks(ctx context.Context, req *catalogv1.SearchBooksRequest) (*catalogv1.SearchBooksResponse, error) {
	page, err := s.svc.Search(ctx, app.Filter{Term: req.Term, Limit: int(req.PageSize), After: req.After})
	if err != nil {
		return nil, mapErr(err)
	}

	books := make([]*catalogv1.Book, 0, len(page.Books))
	for _, b := range page.Books {
		books = append(books, toWire(b))
	}
	return &catalogv1.SearchBooksResponse{Books: books, Next: page.Next}, nil
}

func toWire(b domain.Book) *catalogv1.Book {
	return &catalogv1.Book{
		ISBN:          b.ISBN,
		Title:         b.Title,
		Author:        b.Author,
		Price:         &catalogv1.Money{Currency: b.Price.Currency, Amount: b.Price.Amount},
		CreatedAtUnix: b.CreatedAt.Unix(),
		UpdatedAtUnix: b.UpdatedAt.Unix(),
	}
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, app.ErrInvalidBook):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, app.ErrBookNotFound):
		return status.Error(codes.NotFound, err.Error())
	}
	return status.Errorf(codes.Internal, "catalog: %v", err)
}
