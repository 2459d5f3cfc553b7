package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/storefront/internal/core/domain"
	"github.com/99minutos/storefront/internal/core/ports"
)

type OrderHandler struct {
	orderService ports.OrderService
}

func NewOrderHandler(orderService ports.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Create places an order from the submitted lines.
//
// @Summary   Create order
// @Tags      orders
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body  body      domain.CreateOrderRequest  true  "Shipping details and lines"
// @Success   201   {object}  domain.Order
// @Failure   400   {object}  errorDetail
// @Failure   422   {object}  errorDetail
// @Router    /api/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req domain.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.orderService.Create(c.Request().Context(), user, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, order)
}

// List returns the caller's orders, newest first.
//
// @Summary   List orders
// @Tags      orders
// @Produce   json
// @Security  BearerAuth
// @Param     skip   query     int  false  "Offset"
// @Param     limit  query     int  false  "Page size"
// @Success   200    {array}   domain.Order
// @Router    /api/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	skip, err := queryInt(c, "skip")
	if err != nil {
		return err
	}
	limit, err := queryInt(c, "limit")
	if err != nil {
		return err
	}

	orders, err := h.orderService.List(c.Request().Context(), user, skip, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Get returns one order.
//
// @Summary   Get order
// @Tags      orders
// @Produce   json
// @Security  BearerAuth
// @Param     id   path      int  true  "Order ID"
// @Success   200  {object}  domain.Order
// @Failure   403  {object}  errorDetail
// @Failure   404  {object}  errorDetail
// @Router    /api/orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	order, err := h.orderService.Get(c.Request().Context(), user, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}
