package ports

import (
	"context"

	"github.com/99minutos/storefront/internal/core/domain"
)

type CatalogService interface {
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	ProductBySlug(ctx context.Context, slug string) (*domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.Product, error)
}

type CartService interface {
	Items(ctx context.Context, userID int64) ([]domain.CartItem, error)
	Add(ctx context.Context, userID, productID int64, quantity int) (*domain.CartItem, error)
	Update(ctx context.Context, userID, itemID int64, quantity int) (*domain.CartItem, error)
	Remove(ctx context.Context, userID, itemID int64) error
	Clear(ctx context.Context, userID int64) error
}

type OrderService interface {
	Create(ctx context.Context, user *domain.User, req domain.CreateOrderRequest) (*domain.Order, error)
	List(ctx context.Context, user *domain.User, skip, limit int) ([]domain.Order, error)
	Get(ctx context.Context, user *domain.User, id int64) (*domain.Order, error)
}
