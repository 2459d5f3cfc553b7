package store

import (
	"context"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/99minutos/storefront/internal/core/domain"
	"github.com/99minutos/storefront/internal/core/ports"
	"github.com/99minutos/storefront/internal/pkg/validation"
)

const pathOrders = "/api/orders"

// OrderStore places orders from a cart and keeps the user's order history.
type OrderStore struct {
	api ports.Backend
	log zerolog.Logger

	ops sync.Mutex

	mu     sync.RWMutex
	orders []domain.Order
}

func NewOrderStore(api ports.Backend, log zerolog.Logger) *OrderStore {
	return &OrderStore{
		api:    api,
		log:    log.With().Str("component", "order_store").Logger(),
		orders: []domain.Order{},
	}
}

// Checkout places an order for the current contents of cart and then clears
// it. The server empties the cart as part of order creation; the explicit
// clear keeps the local copy in step. A failed clear is logged and the order
// is still returned.
func (s *OrderStore) Checkout(ctx context.Context, cart *CartStore, shipping domain.ShippingDetails) (*domain.Order, error) {
	items := cart.Items()
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	req := domain.CreateOrderRequest{
		ShippingDetails: shipping,
		Items:           make([]domain.OrderLine, 0, len(items)),
	}
	for _, it := range items {
		req.Items = append(req.Items, domain.OrderLine{ProductID: it.Product.ID, Quantity: it.Quantity})
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	s.ops.Lock()
	defer s.ops.Unlock()

	var order domain.Order
	if err := s.api.Post(ctx, pathOrders, req, &order); err != nil {
		return nil, err
	}

	if err := cart.ClearCart(ctx); err != nil {
		s.log.Warn().Err(err).Str("order_number", order.OrderNumber).Msg("order placed but cart clear failed")
	}

	s.mu.Lock()
	s.orders = append([]domain.Order{order}, s.orders...)
	s.mu.Unlock()

	s.log.Info().
		Str("order_number", order.OrderNumber).
		Float64("total", order.TotalAmount).
		Int("lines", len(order.OrderItems)).
		Msg("order placed")
	return &order, nil
}

// FetchOrders replaces the order history with the server's list.
func (s *OrderStore) FetchOrders(ctx context.Context) error {
	s.ops.Lock()
	defer s.ops.Unlock()

	var orders []domain.Order
	if err := s.api.Get(ctx, pathOrders, &orders); err != nil {
		return err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	s.mu.Lock()
	s.orders = orders
	s.mu.Unlock()
	return nil
}

// Orders returns a copy of the order history, newest first.
func (s *OrderStore) Orders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// FetchOrder reads a single order. It does not touch the history.
func (s *OrderStore) FetchOrder(ctx context.Context, id int64) (*domain.Order, error) {
	var order domain.Order
	if err := s.api.Get(ctx, pathOrders+"/"+strconv.FormatInt(id, 10), &order); err != nil {
		return nil, err
	}
	return &order, nil
}
