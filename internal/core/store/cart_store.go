package store

import (
	"context"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/99minutos/storefront/internal/core/domain"
	"github.com/99minutos/storefront/internal/core/ports"
	"github.com/99minutos/storefront/internal/infrastructure/metrics"
	"github.com/99minutos/storefront/internal/pkg/validation"
)

const pathCart = "/api/cart"

type addToCartRequest struct {
	ProductID int64 `json:"product_id" validate:"gt=0"`
	Quantity  int   `json:"quantity"   validate:"gt=0"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"gt=0"`
}

// CartStore mirrors the server-side cart of the logged-in user. Every
// mutation is followed by a full re-fetch; the server is the source of truth.
//
// Operations are serialized: a mutate-then-refetch sequence completes before
// the next operation starts, so the items always reflect the latest
// operation. Readers never wait on the network.
type CartStore struct {
	api ports.Backend
	log zerolog.Logger

	ops sync.Mutex

	mu      sync.RWMutex
	items   []domain.CartItem
	loading bool
}

func NewCartStore(api ports.Backend, log zerolog.Logger) *CartStore {
	return &CartStore{
		api:   api,
		log:   log.With().Str("component", "cart_store").Logger(),
		items: []domain.CartItem{},
	}
}

// FetchCart replaces the items wholesale with the server's cart. A response
// that breaks the cart invariants is rejected and the previous items kept.
func (s *CartStore) FetchCart(ctx context.Context) error {
	s.ops.Lock()
	defer s.ops.Unlock()

	err := s.fetch(ctx)
	observeCart("fetch", err)
	return err
}

// AddToCart adds quantity units of a product and re-fetches the cart.
func (s *CartStore) AddToCart(ctx context.Context, productID int64, quantity int) error {
	req := addToCartRequest{ProductID: productID, Quantity: quantity}
	if err := validation.Struct(req); err != nil {
		observeCart("add", err)
		return err
	}

	s.ops.Lock()
	defer s.ops.Unlock()

	err := s.mutate(ctx, func() error {
		return s.api.Post(ctx, pathCart, req, nil)
	})
	observeCart("add", err)
	return err
}

// UpdateCartItem sets the quantity of a line. Zero is rejected, not treated as
// removal; use RemoveFromCart for that.
func (s *CartStore) UpdateCartItem(ctx context.Context, itemID int64, quantity int) error {
	req := updateCartItemRequest{Quantity: quantity}
	if err := validation.Struct(req); err != nil {
		observeCart("update", err)
		return err
	}

	s.ops.Lock()
	defer s.ops.Unlock()

	err := s.mutate(ctx, func() error {
		return s.api.Put(ctx, itemPath(itemID), req, nil)
	})
	observeCart("update", err)
	return err
}

// RemoveFromCart deletes a line and re-fetches the cart.
func (s *CartStore) RemoveFromCart(ctx context.Context, itemID int64) error {
	s.ops.Lock()
	defer s.ops.Unlock()

	err := s.mutate(ctx, func() error {
		return s.api.Delete(ctx, itemPath(itemID), nil)
	})
	observeCart("remove", err)
	return err
}

// ClearCart empties the server cart and then the local items, without a
// re-fetch.
func (s *CartStore) ClearCart(ctx context.Context) error {
	s.ops.Lock()
	defer s.ops.Unlock()

	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.api.Delete(ctx, pathCart, nil); err != nil {
		observeCart("clear", err)
		return err
	}
	s.mu.Lock()
	s.items = []domain.CartItem{}
	s.mu.Unlock()
	observeCart("clear", nil)
	return nil
}

// Items returns a copy of the current cart lines.
func (s *CartStore) Items() []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Total is recomputed from the current items on every call.
func (s *CartStore) Total() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CartTotal(s.items)
}

// Count is the number of units in the cart.
func (s *CartStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CartCount(s.items)
}

func (s *CartStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Reset drops the local items without touching the server, e.g. on logout.
func (s *CartStore) Reset() {
	s.mu.Lock()
	s.items = []domain.CartItem{}
	s.loading = false
	s.mu.Unlock()
}

// mutate runs call and, when it succeeds, re-fetches the cart. The caller
// holds s.ops.
func (s *CartStore) mutate(ctx context.Context, call func() error) error {
	s.setLoading(true)
	defer s.setLoading(false)

	if err := call(); err != nil {
		return err
	}
	return s.fetchItems(ctx)
}

// fetch is FetchCart without the operation lock.
func (s *CartStore) fetch(ctx context.Context) error {
	s.setLoading(true)
	defer s.setLoading(false)
	return s.fetchItems(ctx)
}

func (s *CartStore) fetchItems(ctx context.Context) error {
	var items []domain.CartItem
	if err := s.api.Get(ctx, pathCart, &items); err != nil {
		return err
	}
	if err := domain.ValidateCart(items); err != nil {
		s.log.Warn().Err(err).Msg("rejected cart response")
		return err
	}
	if items == nil {
		items = []domain.CartItem{}
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

func (s *CartStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func itemPath(id int64) string {
	return pathCart + "/" + strconv.FormatInt(id, 10)
}

func observeCart(op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.CartOperationsTotal.WithLabelValues(op, result).Inc()
}
