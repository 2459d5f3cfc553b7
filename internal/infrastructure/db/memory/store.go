// Package memory is a process-local implementation of the reference API
// repositories. All collections share one lock so multi-collection writes
// such as placing an order are atomic.
package memory

import (
	"sync"
	"time"

	"github.com/99minutos/storefront/internal/core/domain"
	"github.com/99minutos/storefront/internal/core/ports"
)

type cartLine struct {
	id        int64
	userID    int64
	productID int64
	quantity  int
	createdAt time.Time
}

type Store struct {
	mu sync.RWMutex

	users      map[int64]*domain.Account
	products   map[int64]*domain.Product
	categories map[int64]*domain.Category
	cart       map[int64]*cartLine
	orders     map[int64]*domain.Order

	nextUser, nextProduct, nextCategory, nextCartLine, nextOrder, nextOrderItem int64
}

var (
	_ ports.UserRepository    = (*Store)(nil)
	_ ports.CatalogRepository = (*Store)(nil)
	_ ports.CartRepository    = (*Store)(nil)
	_ ports.OrderRepository   = (*Store)(nil)
)

func New() *Store {
	return &Store{
		users:      make(map[int64]*domain.Account),
		products:   make(map[int64]*domain.Product),
		categories: make(map[int64]*domain.Category),
		cart:       make(map[int64]*cartLine),
		orders:     make(map[int64]*domain.Order),
	}
}

func cloneAccount(a *domain.Account) *domain.Account {
	c := *a
	return &c
}

func cloneProduct(p *domain.Product) *domain.Product {
	c := *p
	if p.Category != nil {
		cat := *p.Category
		c.Category = &cat
	}
	return &c
}

func cloneOrder(o *domain.Order) *domain.Order {
	c := *o
	c.OrderItems = make([]domain.OrderItem, len(o.OrderItems))
	copy(c.OrderItems, o.OrderItems)
	return &c
}
