package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/99minutos/storefront/internal/core/domain"
)

func (s *Store) PlaceOrder(_ context.Context, order *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Check every line before touching stock so a failure leaves no trace.
	need := make(map[int64]int, len(order.OrderItems))
	for _, it := range order.OrderItems {
		need[it.Product.ID] += it.Quantity
	}
	for id, qty := range need {
		p, ok := s.products[id]
		if !ok {
			return fmt.Errorf("%w: id %d", domain.ErrProductNotFound, id)
		}
		if p.StockQuantity < qty {
			return fmt.Errorf("%w for product %s", domain.ErrInsufficientStock, p.Name)
		}
	}
	for id, qty := range need {
		s.products[id].StockQuantity -= qty
	}

	s.nextOrder++
	order.ID = s.nextOrder
	for i := range order.OrderItems {
		s.nextOrderItem++
		order.OrderItems[i].ID = s.nextOrderItem
	}
	s.orders[order.ID] = cloneOrder(order)
	s.clearCart(order.UserID)
	return nil
}

func (s *Store) ListOrders(_ context.Context, userID int64, skip, limit int) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Order, 0)
	for _, o := range s.orders {
		if userID == 0 || o.UserID == userID {
			out = append(out, *cloneOrder(o))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if skip >= len(out) {
		return []domain.Order{}, nil
	}
	out = out[skip:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) FindOrder(_ context.Context, id int64) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if o, ok := s.orders[id]; ok {
		return cloneOrder(o), nil
	}
	return nil, domain.ErrOrderNotFound
}
