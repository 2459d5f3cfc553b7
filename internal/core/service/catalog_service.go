package service

import (
	"context"
	"time"

	"github.com/99minutos/storefront/internal/core/domain"
	"github.com/99minutos/storefront/internal/core/ports"
)

const (
	defaultProductLimit = 100
	maxProductLimit     = 100
)

type catalogService struct {
	repo ports.CatalogRepository
}

// NewCatalogService returns a CatalogService implementation.
func NewCatalogService(repo ports.CatalogRepository) ports.CatalogService {
	return &catalogService{repo: repo}
}

// ListProducts only ever returns active products. Limit is capped at 100.
func (s *catalogService) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultProductLimit
	}
	if filter.Limit > maxProductLimit {
		filter.Limit = maxProductLimit
	}
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	return s.repo.ListProducts(ctx, filter)
}

func (s *catalogService) ProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	p, err := s.repo.FindProductBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !p.IsActive {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *catalogService) CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
	p := &domain.Product{
		Name:           in.Name,
		Slug:           in.Slug,
		Description:    in.Description,
		Price:          in.Price,
		CompareAtPrice: in.CompareAtPrice,
		StockQuantity:  in.StockQuantity,
		SKU:            in.SKU,
		ImageURL:       in.ImageURL,
		IsActive:       in.IsActive,
		IsFeatured:     in.IsFeatured,
		CategoryID:     in.CategoryID,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.repo.CreateProduct(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
