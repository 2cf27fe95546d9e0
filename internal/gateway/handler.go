// Package gateway exposes the bookstore gRPC API as the classic REST
// interface: query/form parameters in, JSON out.
package gateway

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	cartv1 "github.com/dwikikusuma/tuslibros/api/cart/v1"
	checkoutv1 "github.com/dwikikusuma/tuslibros/api/checkout/v1"
	salesv1 "github.com/dwikikusuma/tuslibros/api/sales/v1"
	"github.com/gorilla/mux"
	"google.golang.org/grpc"
)

type CartAPI interface {
	CreateCart(ctx context.Context, in *cartv1.CreateCartRequest, opts ...grpc.CallOption) (*cartv1.CreateCartResponse, error)
	AddToCart(ctx context.Context, in *cartv1.AddToCartRequest, opts ...grpc.CallOption) (*cartv1.AddToCartResponse, error)
	ListCart(ctx context.Context, in *cartv1.ListCartRequest, opts ...grpc.CallOption) (*cartv1.ListCartResponse, error)
}

type CheckoutAPI interface {
	Checkout(ctx context.Context, in *checkoutv1.CheckoutRequest, opts ...grpc.CallOption) (*checkoutv1.CheckoutResponse, error)
}

type SalesAPI interface {
	ListPurchases(ctx context.Context, in *salesv1.ListPurchasesRequest, opts ...grpc.CallOption) (*salesv1.ListPurchasesResponse, error)
}

// ReadyFunc reports whether the backend can take traffic.
type ReadyFunc func(ctx context.Context) error

type Handler struct {
	cart     CartAPI
	checkout CheckoutAPI
	sales    SalesAPI
	ready    ReadyFunc
	timeout  time.Duration
	log      *slog.Logger
}

type Options struct {
	Cart     CartAPI
	Checkout CheckoutAPI
	Sales    SalesAPI
	Ready    ReadyFunc

	// Timeout bounds each upstream call. Zero means 5s.
	Timeout time.Duration
	Log     *slog.Logger
}

func NewHandler(opts Options) *Handler {
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}
	if opts.Log == nil {
		opts.Log = slog.Default()
	}
	return &Handler{
		cart:     opts.Cart,
		checkout: opts.Checkout,
		sales:    opts.Sales,
		ready:    opts.Ready,
		timeout:  opts.Timeout,
		log:      opts.Log,
	}
}

func (h *Handler) Routes() http.Handler {
	r := mux.NewRouter()
	r.Use(tracing)

	r.HandleFunc("/createCart", h.createCart).Methods(http.MethodPost)
	r.HandleFunc("/addToCart", h.addToCart).Methods(http.MethodPost)
	r.HandleFunc("/listCart", h.listCart).Methods(http.MethodGet)
	r.HandleFunc("/checkOut", h.checkOut).Methods(http.MethodPost)
	r.HandleFunc("/listPurchases", h.listPurchases).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.HandleFunc("/readyz", h.readyz)
	return r
}

type createCartResponse struct {
	CartID string `json:"cartId"`
}

type cartLine struct {
	BookIsbn string `json:"bookIsbn"`
	Quantity int64  `json:"quantity"`
}

type checkOutResponse struct {
	TransactionID string `json:"transactionId"`
}

type purchasesResponse struct {
	Items    []cartLine `json:"items"`
	Currency string     `json:"currency"`
	Total    int64      `json:"total"`
}

func (h *Handler) createCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	resp, err := h.cart.CreateCart(ctx, &cartv1.CreateCartRequest{
		Username: r.FormValue("clientId"),
		Password: r.FormValue("password"),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, createCartResponse{CartID: resp.CartID})
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	qty, err := strconv.ParseInt(r.FormValue("bookQuantity"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "bookQuantity must be an integer")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	_, err = h.cart.AddToCart(ctx, &cartv1.AddToCartRequest{
		CartID:    r.FormValue("cartId"),
		ProductID: r.FormValue("bookIsbn"),
		Quantity:  qty,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	resp, err := h.cart.ListCart(ctx, &cartv1.ListCartRequest{CartID: r.FormValue("cartId")})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	lines := make([]cartLine, 0, len(resp.Items))
	for _, it := range resp.Items {
		lines = append(lines, cartLine{BookIsbn: it.ProductID, Quantity: it.Quantity})
	}
	writeJSON(w, http.StatusOK, lines)
}

func (h *Handler) checkOut(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	resp, err := h.checkout.Checkout(ctx, &checkoutv1.CheckoutRequest{
		CartID:     r.FormValue("cartId"),
		CardNumber: r.FormValue("ccn"),
		Expiration: r.FormValue("cced"),
		Holder:     r.FormValue("cco"),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, checkOutResponse{TransactionID: resp.TransactionID})
}

func (h *Handler) listPurchases(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	resp, err := h.sales.ListPurchases(ctx, &salesv1.ListPurchasesRequest{
		Username: r.FormValue("clientId"),
		Password: r.FormValue("password"),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	out := purchasesResponse{Items: make([]cartLine, 0, len(resp.Items))}
	for _, it := range resp.Items {
		out.Items = append(out.Items, cartLine{BookIsbn: it.ProductID, Quantity: it.Quantity})
	}
	if resp.Total != nil {
		out.Currency = resp.Total.Currency
		out.Total = resp.Total.Amount
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) readyz(w http.ResponseWriter, r *http.Request) {
	if h.ready == nil {
		w.WriteHeader(http.StatusOK)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.ready(ctx); err != nil {
		writeError(w, http.StatusServiceUnavailable, "UNAVAILABLE", err.Error())
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	code, errCode, msg := httpStatusFromGRPC(err)
	if code >= http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "upstream call failed",
			slog.String("path", r.URL.Path),
			slog.Any("err", err))
	}
	writeError(w, code, errCode, msg)
}
