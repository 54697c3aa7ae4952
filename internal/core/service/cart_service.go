package service

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/core/domain"
	"storefront/internal/port"
)

var (
	ErrCartLoad        = errors.New("failed to load or create cart")
	ErrCartCreate      = errors.New("failed to create cart")
	ErrInvalidQuantity = errors.New("quantity must be positive")

	ErrAddItem        = errors.New("failed to add item")
	ErrUpdateQuantity = errors.New("failed to update quantity")
	ErrRemoveItem     = errors.New("failed to remove item")
	ErrCheckout       = errors.New("failed to checkout")
)

// CartService mediates between callers and the remote cart store. The remote
// endpoint only supports create-or-replace of the full document, so every
// mutation resolves the current cart, transforms the item list in memory and
// writes the whole list back. That is last-write-wins at the document level;
// a concurrent writer for the same user between read and write is silently
// overwritten.
type CartService struct {
	backend port.CartBackend
	cache   port.CartCache
}

func NewCartService(backend port.CartBackend, cache port.CartCache) *CartService {
	return &CartService{
		backend: backend,
		cache:   cache,
	}
}

// ResolveCart returns the user's cart, serving from the cache when it already
// holds this user's cart. On a miss it lists all carts from the remote store,
// scans for the owner and caches the result. A user with no cart yet gets an
// empty one created on the spot.
func (s *CartService) ResolveCart(ctx context.Context, userID int64) (*domain.Cart, error) {
	if cart, ok := s.cache.Get(userID); ok {
		return cart, nil
	}

	carts, err := s.backend.ListCarts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCartLoad, err)
	}

	for i := range carts {
		if carts[i].User.ID == userID {
			cart := carts[i]
			s.cache.Put(&cart)
			return &cart, nil
		}
	}

	return s.CreateEmptyCart(ctx, userID)
}

// CreateEmptyCart asks the remote store for a fresh cart with no items. The
// server owns the generated id and computed totals.
func (s *CartService) CreateEmptyCart(ctx context.Context, userID int64) (*domain.Cart, error) {
	cart, err := s.backend.SaveCart(ctx, domain.NewCartPayload(userID, nil))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCartCreate, err)
	}
	s.cache.Put(cart)
	return cart, nil
}

func (s *CartService) AddItem(ctx context.Context, userID, productID int64, quantity int) (*domain.Cart, error) {
	return s.applyMutation(ctx, userID, ErrAddItem, func(items []domain.CartItem) []domain.CartItem {
		return domain.AddItem(items, productID, quantity)
	})
}

// SetQuantity replaces the quantity of an existing item. A non-positive
// quantity is a caller error and is rejected before any network call; a
// product not in the cart leaves the list unchanged.
func (s *CartService) SetQuantity(ctx context.Context, userID, productID int64, quantity int) (*domain.Cart, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	return s.applyMutation(ctx, userID, ErrUpdateQuantity, func(items []domain.CartItem) []domain.CartItem {
		return domain.SetItemQuantity(items, productID, quantity)
	})
}

func (s *CartService) RemoveItem(ctx context.Context, userID, productID int64) (*domain.Cart, error) {
	return s.applyMutation(ctx, userID, ErrRemoveItem, func(items []domain.CartItem) []domain.CartItem {
		return domain.RemoveItem(items, productID)
	})
}

// Checkout replaces the user's cart with an empty one. It skips the resolve
// step and posts the empty list directly; the emptied cart stays the user's
// cart going forward. No order record is written by this layer.
func (s *CartService) Checkout(ctx context.Context, userID int64) (*domain.Cart, error) {
	cart, err := s.backend.SaveCart(ctx, domain.NewCartPayload(userID, nil))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCheckout, err)
	}
	s.cache.Put(cart)
	return cart, nil
}

// applyMutation is the shared read-transform-write path. The transform runs
// on a copy of the item list, so a failed write leaves the cached cart
// exactly as it was; only a successful server response replaces the cache.
func (s *CartService) applyMutation(ctx context.Context, userID int64, opErr error, transform func([]domain.CartItem) []domain.CartItem) (*domain.Cart, error) {
	cart, err := s.ResolveCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	payload := domain.NewCartPayload(userID, transform(cart.Items))

	updated, err := s.backend.SaveCart(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", opErr, err)
	}

	s.cache.Put(updated)
	return updated, nil
}
