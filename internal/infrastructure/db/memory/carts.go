package memory

import (
	"context"
	"sort"
	"time"

	"github.com/99minutos/storefront/internal/core/domain"
)

// Items returns the user's cart lines in insertion order.
func (s *Store) Items(_ context.Context, userID int64) ([]domain.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.CartItem, 0)
	for _, l := range s.cart {
		if l.userID == userID {
			items = append(items, s.cartItem(l))
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (s *Store) FindItem(_ context.Context, userID, itemID int64) (*domain.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.cart[itemID]
	if !ok || l.userID != userID {
		return nil, domain.ErrCartItemNotFound
	}
	it := s.cartItem(l)
	return &it, nil
}

// AddItem adds quantity units of a product to the user's cart, merging into
// the existing line for that product. Stock and availability are checked
// against the merged quantity under the same lock as the write.
func (s *Store) AddItem(_ context.Context, userID, productID int64, quantity int) (*domain.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[productID]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	if !p.IsActive {
		return nil, domain.ErrProductInactive
	}

	var line *cartLine
	for _, l := range s.cart {
		if l.userID == userID && l.productID == productID {
			line = l
			break
		}
	}
	total := quantity
	if line != nil {
		total += line.quantity
	}
	if p.StockQuantity < total {
		return nil, domain.ErrInsufficientStock
	}

	if line == nil {
		s.nextCartLine++
		line = &cartLine{
			id:        s.nextCartLine,
			userID:    userID,
			productID: productID,
			createdAt: time.Now().UTC(),
		}
		s.cart[line.id] = line
	}
	line.quantity = total
	it := s.cartItem(line)
	return &it, nil
}

func (s *Store) SetQuantity(_ context.Context, userID, itemID int64, quantity int) (*domain.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.cart[itemID]
	if !ok || l.userID != userID {
		return nil, domain.ErrCartItemNotFound
	}
	l.quantity = quantity
	it := s.cartItem(l)
	return &it, nil
}

func (s *Store) RemoveItem(_ context.Context, userID, itemID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.cart[itemID]
	if !ok || l.userID != userID {
		return domain.ErrCartItemNotFound
	}
	delete(s.cart, itemID)
	return nil
}

func (s *Store) Clear(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearCart(userID)
	return nil
}

func (s *Store) clearCart(userID int64) {
	for id, l := range s.cart {
		if l.userID == userID {
			delete(s.cart, id)
		}
	}
}

func (s *Store) cartItem(l *cartLine) domain.CartItem {
	it := domain.CartItem{ID: l.id, Quantity: l.quantity, CreatedAt: l.createdAt}
	if p, ok := s.products[l.productID]; ok {
		it.Product = *s.withCategory(p)
	}
	return it
}
