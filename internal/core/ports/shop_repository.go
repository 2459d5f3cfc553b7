package ports

import (
	"context"

	"github.com/99minutos/storefront/internal/core/domain"
)

// CatalogRepository stores products and categories.
type CatalogRepository interface {
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	FindProduct(ctx context.Context, id int64) (*domain.Product, error)
	FindProductBySlug(ctx context.Context, slug string) (*domain.Product, error)
	// CreateProduct assigns the id and returns domain.ErrSlugTaken on a
	// duplicate slug.
	CreateProduct(ctx context.Context, p *domain.Product) error
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// CartRepository stores cart lines per user. Returned items embed the current
// product record.
type CartRepository interface {
	Items(ctx context.Context, userID int64) ([]domain.CartItem, error)
	FindItem(ctx context.Context, userID, itemID int64) (*domain.CartItem, error)
	// AddItem merges quantity into the user's line for the product, creating it
	// when absent. The stock check on the merged quantity is atomic with the write.
	AddItem(ctx context.Context, userID, productID int64, quantity int) (*domain.CartItem, error)
	SetQuantity(ctx context.Context, userID, itemID int64, quantity int) (*domain.CartItem, error)
	RemoveItem(ctx context.Context, userID, itemID int64) error
	Clear(ctx context.Context, userID int64) error
}

// OrderRepository stores orders.
type OrderRepository interface {
	// PlaceOrder atomically re-checks and decrements stock for every line,
	// stores the order and empties the owner's cart.
	PlaceOrder(ctx context.Context, order *domain.Order) error
	// ListOrders returns orders newest first; userID 0 lists every order.
	ListOrders(ctx context.Context, userID int64, skip, limit int) ([]domain.Order, error)
	FindOrder(ctx context.Context, id int64) (*domain.Order, error)
}
