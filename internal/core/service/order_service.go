package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/99minutos/storefront/internal/core/domain"
	"github.com/99minutos/storefront/internal/core/ports"
)

const (
	defaultOrderLimit = 100
	orderNumberLen    = 10
)

type orderService struct {
	orders  ports.OrderRepository
	catalog ports.CatalogRepository
	outbox  ports.MailOutbox
	log     zerolog.Logger
}

// NewOrderService returns an OrderService implementation.
func NewOrderService(
	orders ports.OrderRepository,
	catalog ports.CatalogRepository,
	outbox ports.MailOutbox,
	log zerolog.Logger,
) ports.OrderService {
	return &orderService{orders: orders, catalog: catalog, outbox: outbox, log: log}
}

// Create prices every line at the current product price and places the order.
// Stock is decremented and the user's cart emptied by the repository in the
// same step.
func (s *orderService) Create(ctx context.Context, user *domain.User, req domain.CreateOrderRequest) (*domain.Order, error) {
	if len(req.Items) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	// 1. Validate every line against the catalog.
	order := &domain.Order{
		UserID:             user.ID,
		Status:             domain.OrderPending,
		ShippingAddress:    req.ShippingAddress,
		ShippingCity:       req.ShippingCity,
		ShippingPostalCode: req.ShippingPostalCode,
		ShippingCountry:    req.ShippingCountry,
		CustomerName:       req.CustomerName,
		CustomerEmail:      req.CustomerEmail,
		CustomerPhone:      req.CustomerPhone,
		Notes:              req.Notes,
		OrderItems:         make([]domain.OrderItem, 0, len(req.Items)),
	}
	for _, line := range req.Items {
		p, err := s.catalog.FindProduct(ctx, line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("%w: id %d", err, line.ProductID)
		}
		if !p.IsActive {
			return nil, fmt.Errorf("%w: %s", domain.ErrProductInactive, p.Name)
		}
		if p.StockQuantity < line.Quantity {
			return nil, fmt.Errorf("%w for product %s", domain.ErrInsufficientStock, p.Name)
		}
		order.OrderItems = append(order.OrderItems, domain.OrderItem{
			Product:  *p,
			Quantity: line.Quantity,
			Price:    p.Price,
		})
		order.TotalAmount += p.Price * float64(line.Quantity)
	}

	// 2. Persist atomically.
	order.OrderNumber = newOrderNumber()
	order.CreatedAt = time.Now().UTC()
	if err := s.orders.PlaceOrder(ctx, order); err != nil {
		return nil, err
	}

	// 3. Confirmation mail is best effort.
	s.outbox.Enqueue(domain.Mail{
		Kind:        domain.MailOrderConfirmation,
		To:          order.CustomerEmail,
		Subject:     "Order Confirmation - " + order.OrderNumber,
		OrderNumber: order.OrderNumber,
		Total:       order.TotalAmount,
	})
	s.log.Info().
		Str("order_number", order.OrderNumber).
		Int64("user_id", user.ID).
		Float64("total", order.TotalAmount).
		Msg("order placed")
	return order, nil
}

// List returns the caller's orders; admins see every order.
func (s *orderService) List(ctx context.Context, user *domain.User, skip, limit int) ([]domain.Order, error) {
	if limit <= 0 || limit > defaultOrderLimit {
		limit = defaultOrderLimit
	}
	if skip < 0 {
		skip = 0
	}
	var owner int64
	if !user.IsAdmin() {
		owner = user.ID
	}
	return s.orders.ListOrders(ctx, owner, skip, limit)
}

func (s *orderService) Get(ctx context.Context, user *domain.User, id int64) (*domain.Order, error) {
	order, err := s.orders.FindOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin() && order.UserID != user.ID {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

func newOrderNumber() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:orderNumberLen])
}
