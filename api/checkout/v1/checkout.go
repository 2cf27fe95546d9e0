// Package checkoutv1 declares the CheckoutService wire contract.
package checkoutv1

import (
	"context"

	"github.com/dwikikusuma/tuslibros/pkg/grpcjson"
	"google.golang.org/grpc"
)

const (
	ServiceName = "tuslibros.checkout.v1.CheckoutService"

	CheckoutMethod = "/" + ServiceName + "/Checkout"
	QuoteMethod    = "/" + ServiceName + "/Quote"
)

type Money struct {
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
}

type CheckoutRequest struct {
	CartID     string `json:"cart_id"`
	CardNumber string `json:"card_number"`
	// Expiration is MMYYYY.
	Expiration string `json:"expiration"`
	Holder     string `json:"holder"`
}

type CheckoutResponse struct {
	TransactionID string `json:"transaction_id"`
}

type QuoteRequest struct {
	CartID string `json:"cart_id"`
}

type QuoteLine struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	UnitPrice *Money `json:"unit_price"`
	LineTotal *Money `json:"line_total"`
}

type QuoteResponse struct {
	Lines []*QuoteLine `json:"lines"`
	Total *Money       `json:"total"`
}

type CheckoutServiceServer interface {
	Checkout(context.Context, *CheckoutRequest) (*CheckoutResponse, error)
	Quote(context.Context, *QuoteRequest) (*QuoteResponse, error)
}

var CheckoutServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CheckoutServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Checkout", Handler: grpcjson.Unary(CheckoutMethod, CheckoutServiceServer.Checkout)},
		{MethodName: "Quote", Handler: grpcjson.Unary(QuoteMethod, CheckoutServiceServer.Quote)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "tuslibros/checkout/v1",
}

func RegisterCheckoutServiceServer(s grpc.ServiceRegistrar, srv CheckoutServiceServer) {
	s.RegisterService(&CheckoutServiceDesc, srv)
}

type CheckoutServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCheckoutServiceClient(cc grpc.ClientConnInterface) *CheckoutServiceClient {
	return &CheckoutServiceClient{cc: cc}
}

func (c *CheckoutServiceClient) Checkout(ctx context.Context, in *CheckoutRequest, opts ...grpc.CallOption) (*CheckoutResponse, error) {
	return grpcjson.Invoke[CheckoutResponse](ctx, c.cc, CheckoutMethod, in, opts...)
}

func (c *CheckoutServiceClient) Quote(ctx context.Context, in *QuoteRequest, opts ...grpc.CallOption) (*QuoteResponse, error) {
	return grpcjson.Invoke[QuoteResponse](ctx, c.cc, QuoteMethod, in, opts...)
}
