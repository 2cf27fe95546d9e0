// Package catalogv1 declares the CatalogService wire contract.
package catalogv1

import (
	"context"

	"github.com/dwikikusuma/tuslibros/pkg/grpcjson"
	"google.golang.org/grpc"
)

const (
	ServiceName = "tuslibros.catalog.v1.CatalogService"

	AddBookMethod     = "/" + ServiceName + "/AddBook"
	GetBookMethod     = "/" + ServiceName + "/GetBook"
	SearchBooksMethod = "/" + ServiceName + "/SearchBooks"
)

type Money struct {
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
}

type Book struct {
	ISBN          string `json:"isbn"`
	Title         string `json:"title"`
	Author        string `json:"author,omitempty"`
	Price         *Money `json:"price"`
	CreatedAtUnix int64  `json:"created_at_unix"`
	UpdatedAtUnix int64  `json:"updated_at_unix"`
}

type AddBookRequest struct {
	ISBN   string `json:"isbn"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Price  *Money `json:"price"`
}

type AddBookResponse struct {
	Book *Book `json:"book"`
}

type GetBookRequest struct {
	ISBN string `json:"isbn"`
}

type GetBookResponse struct {
	Book *Book `json:"book"`
}

type SearchBooksRequest struct {
	Term     string `json:"term"`
	PageSize int32  `json:"page_size"`
	After    string `json:"after"`
}

type SearchBooksResponse struct {
	Books []*Book `json:"books"`
	Next  string  `json:"next"`
}

type CatalogServiceServer interface {
	AddBook(context.Context, *AddBookRequest) (*AddBookResponse, error)
	GetBook(context.Context, *GetBookRequest) (*GetBookResponse, error)
	SearchBooks(context.Context, *SearchBooksRequest) (*SearchBooksResponse, error)
}

var CatalogServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "AddBook", Handler: grpcjson.Unary(AddBookMethod, CatalogServiceServer.AddBook)},
		{MethodName: "GetBook", Handler: grpcjson.Unary(GetBookMethod, CatalogServiceServer.GetBook)},
		{MethodName: "SearchBooks", Handler: grpcjson.Unary(SearchBooksMethod, CatalogServiceServer.SearchBooks)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "tuslibros/catalog/v1",
}

func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&CatalogServiceDesc, srv)
}

type CatalogServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCatalogServiceClient(cc grpc.ClientConnInterface) *CatalogServiceClient {
	return &CatalogServiceClient{cc: cc}
}

func (c *CatalogServiceClient) AddBook(ctx context.Context, in *AddBookRequest, opts ...grpc.CallOption) (*AddBookResponse, error) {
	return grpcjson.Invoke[AddBookResponse](ctx, c.cc, AddBookMethod, in, opts...)
}

func (c *CatalogServiceClient) GetBook(ctx context.Context, in *GetBookRequest, opts ...grpc.CallOption) (*GetBookResponse, error) {
	return grpcjson.Invoke[GetBookResponse](ctx, c.cc, GetBookMethod, in, opts...)
}

func (c *CatalogServiceClient) SearchBooks(ctx context.Context, in *SearchBooksRequest, opts ...grpc.CallOption) (*SearchBooksResponse, error) {
	return grpcjson.Invoke[SearchBooksResponse](ctx, c.cc, SearchBooksMethod, in, opts...)
}
