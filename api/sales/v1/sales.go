// Package salesv1 declares the SalesService wire contract.
package salesv1

import (
	"context"

	"github.com/dwikikusuma/tuslibros/pkg/grpcjson"
	"google.golang.org/grpc"
)

const (
	ServiceName = "tuslibros.sales.v1.SalesService"

	ListPurchasesMethod = "/" + ServiceName + "/ListPurchases"
)

type Money struct {
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
}

type ListPurchasesRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type PurchaseItem struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

type ListPurchasesResponse struct {
	Items []PurchaseItem `json:"items"`
	Total *Money         `json:"total"`
}

type SalesServiceServer interface {
	ListPurchases(context.Context, *ListPurchasesRequest) (*ListPurchasesResponse, error)
}

var SalesServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SalesServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListPurchases", Handler: grpcjson.Unary(ListPurchasesMethod, SalesServiceServer.ListPurchases)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "tuslibros/sales/v1",
}

func RegisterSalesServiceServer(s grpc.ServiceRegistrar, srv SalesServiceServer) {
	s.RegisterService(&SalesServiceDesc, srv)
}

type SalesServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSalesServiceClient(cc grpc.ClientConnInterface) *SalesServiceClient {
	return &SalesServiceClient{cc: cc}
}

func (c *SalesServiceClient) ListPurchases(ctx context.Context, in *ListPurchasesRequest, opts ...grpc.CallOption) (*ListPurchasesResponse, error) {
	return grpcjson.Invoke[ListPurchasesResponse](ctx, c.cc, ListPurchasesMethod, in, opts...)
}
