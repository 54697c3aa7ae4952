package service

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/core/domain"
	"storefront/internal/port"
)

var ErrInvalidProduct = errors.New("invalid product")

// CatalogService passes product and beer-style CRUD through to the remote
// store. Reads are public; the handler layer gates writes behind the admin
// role.
type CatalogService struct {
	backend port.CatalogBackend
}

func NewCatalogService(backend port.CatalogBackend) *CatalogService {
	return &CatalogService{backend: backend}
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.backend.ListProducts(ctx)
}

func (s *CatalogService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return s.backend.GetProduct(ctx, id)
}

func (s *CatalogService) CreateProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	return s.backend.CreateProduct(ctx, product)
}

func (s *CatalogService) UpdateProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	return s.backend.UpdateProduct(ctx, product)
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id int64) error {
	return s.backend.DeleteProduct(ctx, id)
}

func (s *CatalogService) ListBeerStyles(ctx context.Context) ([]domain.BeerStyle, error) {
	return s.backend.ListBeerStyles(ctx)
}

func (s *CatalogService) CreateBeerStyle(ctx context.Context, style domain.BeerStyle) (*domain.BeerStyle, error) {
	if style.Name == "" {
		return nil, fmt.Errorf("%w: beer style name is required", ErrInvalidProduct)
	}
	return s.backend.CreateBeerStyle(ctx, style)
}

func validateProduct(product domain.Product) error {
	if product.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}
	if product.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidProduct)
	}
	return nil
}
