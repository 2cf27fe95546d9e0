// Package cartv1 declares the CartService wire contract.
package cartv1

import (
	"context"

	"github.com/dwikikusuma/tuslibros/pkg/grpcjson"
	"google.golang.org/grpc"
)

const (
	ServiceName = "tuslibros.cart.v1.CartService"

	CreateCartMethod = "/" + ServiceName + "/CreateCart"
	AddToCartMethod  = "/" + ServiceName + "/AddToCart"
	ListCartMethod   = "/" + ServiceName + "/ListCart"
)

type CreateCartRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateCartResponse struct {
	CartID string `json:"cart_id"`
}

type AddToCartRequest struct {
	CartID    string `json:"cart_id"`
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

type AddToCartResponse struct{}

type ListCartRequest struct {
	CartID string `json:"cart_id"`
}

type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

type ListCartResponse struct {
	Items []CartItem `json:"items"`
}

type CartServiceServer interface {
	CreateCart(context.Context, *CreateCartRequest) (*CreateCartResponse, error)
	AddToCart(context.Context, *AddToCartRequest) (*AddToCartResponse, error)
	ListCart(context.Context, *ListCartRequest) (*ListCartResponse, error)
}

var CartServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CartServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateCart", Handler: grpcjson.Unary(CreateCartMethod, CartServiceServer.CreateCart)},
		{MethodName: "AddToCart", Handler: grpcjson.Unary(AddToCartMethod, CartServiceServer.AddToCart)},
		{MethodName: "ListCart", Handler: grpcjson.Unary(ListCartMethod, CartServiceServer.ListCart)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "tuslibros/cart/v1",
}

func RegisterCartServiceServer(s grpc.ServiceRegistrar, srv CartServiceServer) {
	s.RegisterService(&CartServiceDesc, srv)
}

type CartServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCartServiceClient(cc grpc.ClientConnInterface) *CartServiceClient {
	return &CartServiceClient{cc: cc}
}

func (c *CartServiceClient) CreateCart(ctx context.Context, in *CreateCartRequest, opts ...grpc.CallOption) (*CreateCartResponse, error) {
	return grpcjson.Invoke[CreateCartResponse](ctx, c.cc, CreateCartMethod, in, opts...)
}

func (c *CartServiceClient) AddToCart(ctx context.Context, in *AddToCartRequest, opts ...grpc.CallOption) (*AddToCartResponse, error) {
	return grpcjson.Invoke[AddToCartResponse](ctx, c.cc, AddToCartMethod, in, opts...)
}

func (c *CartServiceClient) ListCart(ctx context.Context, in *ListCartRequest, opts ...grpc.CallOption) (*ListCartResponse, error) {
	return grpcjson.Invoke[ListCartResponse](ctx, c.cc, ListCartMethod, in, opts...)
}
