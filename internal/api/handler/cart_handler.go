package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/storefront/internal/core/ports"
)

type CartHandler struct {
	cartService ports.CartService
}

func NewCartHandler(cartService ports.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

type addToCartRequest struct {
	ProductID int64 `json:"product_id" validate:"gt=0"`
	Quantity  int   `json:"quantity"   validate:"gt=0"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"gt=0"`
}

// List returns the caller's cart lines.
//
// @Summary   Get cart
// @Tags      cart
// @Produce   json
// @Security  BearerAuth
// @Success   200  {array}   domain.CartItem
// @Failure   401  {object}  errorDetail
// @Router    /api/cart [get]
func (h *CartHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	items, err := h.cartService.Items(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Add puts a product in the cart.
//
// @Summary   Add to cart
// @Tags      cart
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body  body      addToCartRequest  true  "Product and quantity"
// @Success   201   {object}  domain.CartItem
// @Failure   400   {object}  errorDetail
// @Failure   404   {object}  errorDetail
// @Router    /api/cart [post]
func (h *CartHandler) Add(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.cartService.Add(c.Request().Context(), user.ID, req.ProductID, req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// Update sets the quantity of one cart line.
//
// @Summary   Update cart item
// @Tags      cart
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     id    path      int                    true  "Cart item ID"
// @Param     body  body      updateCartItemRequest  true  "New quantity"
// @Success   200   {object}  domain.CartItem
// @Failure   400   {object}  errorDetail
// @Failure   404   {object}  errorDetail
// @Router    /api/cart/{id} [put]
func (h *CartHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req updateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.cartService.Update(c.Request().Context(), user.ID, id, req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Remove deletes one cart line.
//
// @Summary   Remove cart item
// @Tags      cart
// @Security  BearerAuth
// @Param     id  path  int  true  "Cart item ID"
// @Success   204
// @Failure   404  {object}  errorDetail
// @Router    /api/cart/{id} [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.cartService.Remove(c.Request().Context(), user.ID, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Clear empties the cart.
//
// @Summary   Clear cart
// @Tags      cart
// @Security  BearerAuth
// @Success   204
// @Router    /api/cart [delete]
func (h *CartHandler) Clear(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	if err := h.cartService.Clear(c.Request().Context(), user.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
