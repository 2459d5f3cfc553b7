package store

import (
	"context"
	"net/url"
	"strconv"

	"github.com/99minutos/storefront/internal/core/domain"
	"github.com/99minutos/storefront/internal/core/ports"
	"github.com/99minutos/storefront/internal/pkg/validation"
)

const (
	pathProducts   = "/api/products"
	pathCategories = "/api/categories"
)

// Catalog reads products and categories. It holds no state.
type Catalog struct {
	api ports.Backend
}

func NewCatalog(api ports.Backend) *Catalog {
	return &Catalog{api: api}
}

func (c *Catalog) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	path := pathProducts
	if q := productQuery(filter); q != "" {
		path += "?" + q
	}
	var products []domain.Product
	if err := c.api.Get(ctx, path, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Catalog) ProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	if slug == "" {
		return nil, &domain.ValidationError{Message: "slug is required"}
	}
	var p domain.Product
	if err := c.api.Get(ctx, pathProducts+"/slug/"+url.PathEscape(slug), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Catalog) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.api.Get(ctx, pathCategories, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateProduct requires an admin session.
func (c *Catalog) CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	var p domain.Product
	if err := c.api.Post(ctx, pathProducts, in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func productQuery(f domain.ProductFilter) string {
	q := url.Values{}
	if f.Skip > 0 {
		q.Set("skip", strconv.Itoa(f.Skip))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.CategoryID > 0 {
		q.Set("category_id", strconv.FormatInt(f.CategoryID, 10))
	}
	if f.Featured != nil {
		q.Set("is_featured", strconv.FormatBool(*f.Featured))
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	return q.Encode()
}
