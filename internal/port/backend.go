package port

import (
	"context"
	"errors"

	"storefront/internal/core/domain"
)

// ErrNotFound is returned by backends when the remote store has no document
// for the requested id.
var ErrNotFound = errors.New("not found")

type CartBackend interface {
	// ListCarts returns every cart in the remote store. The store has no
	// filter-by-user endpoint; callers scan for the owner client-side.
	ListCarts(ctx context.Context) ([]domain.Cart, error)

	// SaveCart creates or fully replaces the owner's cart and returns the
	// persisted document with server-computed ids and totals.
	SaveCart(ctx context.Context, payload domain.CartPayload) (*domain.Cart, error)
}

type UserBackend interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	CreateUser(ctx context.Context, user domain.User) (*domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) (*domain.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type CatalogBackend interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	CreateProduct(ctx context.Context, product domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	ListBeerStyles(ctx context.Context) ([]domain.BeerStyle, error)
	CreateBeerStyle(ctx context.Context, style domain.BeerStyle) (*domain.BeerStyle, error)
}
