package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dwikikusuma/tuslibros/internal/cart/domain"
	"github.com/dwikikusuma/tuslibros/pkg/safemath"
)

var (
	ErrAuthentication      = errors.New("invalid username or password")
	ErrInvalidCart         = errors.New("invalid cart")
	ErrInvalidQuantity     = errors.New("quantity must be a non-negative integer")
	ErrProductNotInCatalog = errors.New("product is not in the catalog")
)

type Service struct {
	repo    CartRepo
	auth    Authenticator
	catalog Catalog
	locks   *keyedMutex
	log     *slog.Logger
}

func NewService(repo CartRepo, auth Authenticator, catalog Catalog, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		repo:    repo,
		auth:    auth,
		catalog: catalog,
		locks:   newKeyedMutex(),
		log:     log,
	}
}

// CreateCart opens a new empty cart for an authenticated user and returns
// its id. Ids are never reissued.
func (s *Service) CreateCart(ctx context.Context, username, password string) (string, error) {
	if err := s.auth.Authenticate(ctx, username, password); err != nil {
		return "", err
	}

	cart, err := s.repo.Create(ctx, domain.Cart{Owner: username})
	if err != nil {
		return "", fmt.Errorf("create cart: %w", err)
	}

	s.log.InfoContext(ctx, "cart created", slog.String("cart_id", cart.ID), slog.String("owner", username))
	return cart.ID, nil
}

// AddToCart waits while the cart is held by LockCart, so an addition either
// lands before a checkout reads the cart or fails once the cart is gone.
func (s *Service) AddToCart(ctx context.Context, cartID, productID string, quantity int64) error {
	unlock := s.locks.Lock(cartID)
	defer unlock()

	cart, err := s.repo.Get(ctx, cartID)
	if err != nil {
		return err
	}

	if quantity < 0 {
		return ErrInvalidQuantity
	}

	productID = strings.TrimSpace(productID)
	ok, err := s.catalog.Contains(ctx, productID)
	if err != nil {
		return fmt.Errorf("catalog lookup %s: %w", productID, err)
	}
	if !ok {
		return ErrProductNotInCatalog
	}

	if quantity == 0 {
		return nil
	}
	if _, err := safemath.Add(cart.Units(productID), quantity); err != nil {
		s.log.WarnContext(ctx, "cart quantity overflow",
			slog.String("cart_id", cartID),
			slog.String("product_id", productID),
			slog.Int64("quantity", quantity))
		return fmt.Errorf("%w: %w", ErrInvalidQuantity, domain.ErrQuantityOverflow)
	}

	return s.repo.AddItem(ctx, cartID, domain.CartItem{ProductID: productID, Quantity: quantity})
}

// ListCart returns (product, units) pairs in first-insertion order.
func (s *Service) ListCart(ctx context.Context, cartID string) ([]domain.CartItem, error) {
	cart, err := s.repo.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return cart.Items, nil
}

func (s *Service) GetCart(ctx context.Context, cartID string) (domain.Cart, error) {
	return s.repo.Get(ctx, cartID)
}

// LockCart keeps additions to cartID out until unlock is called.
func (s *Service) LockCart(cartID string) (unlock func()) {
	return s.locks.Lock(cartID)
}

// DeleteCart does not take the cart lock; checkout calls it while holding
// LockCart.
func (s *Service) DeleteCart(ctx context.Context, cartID string) error {
	return s.repo.Delete(ctx, cartID)
}
