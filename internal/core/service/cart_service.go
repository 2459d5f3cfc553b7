package service

import (
	"context"

	"github.com/99minutos/storefront/internal/core/domain"
	"github.com/99minutos/storefront/internal/core/ports"
)

type cartService struct {
	carts   ports.CartRepository
	catalog ports.CatalogRepository
}

// NewCartService returns a CartService implementation.
func NewCartService(carts ports.CartRepository, catalog ports.CatalogRepository) ports.CartService {
	return &cartService{carts: carts, catalog: catalog}
}

func (s *cartService) Items(ctx context.Context, userID int64) ([]domain.CartItem, error) {
	return s.carts.Items(ctx, userID)
}

// Add puts quantity units of a product in the cart. Adding a product that is
// already present increments the existing line.
func (s *cartService) Add(ctx context.Context, userID, productID int64, quantity int) (*domain.CartItem, error) {
	product, err := s.catalog.FindProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, domain.ErrProductInactive
	}
	if product.StockQuantity < quantity {
		return nil, domain.ErrInsufficientStock
	}
	return s.carts.AddItem(ctx, userID, productID, quantity)
}

func (s *cartService) Update(ctx context.Context, userID, itemID int64, quantity int) (*domain.CartItem, error) {
	item, err := s.carts.FindItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	if !item.Product.IsActive {
		return nil, domain.ErrProductInactive
	}
	if item.Product.StockQuantity < quantity {
		return nil, domain.ErrInsufficientStock
	}
	return s.carts.SetQuantity(ctx, userID, itemID, quantity)
}

func (s *cartService) Remove(ctx context.Context, userID, itemID int64) error {
	return s.carts.RemoveItem(ctx, userID, itemID)
}

func (s *cartService) Clear(ctx context.Context, userID int64) error {
	return s.carts.Clear(ctx, userID)
}
