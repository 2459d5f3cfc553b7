package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/storefront/internal/core/domain"
	"github.com/99minutos/storefront/internal/core/ports"
)

type ProductHandler struct {
	catalogService ports.CatalogService
}

func NewProductHandler(catalogService ports.CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

// List returns active products matching the query filters.
//
// @Summary  List products
// @Tags     products
// @Produce  json
// @Param    skip         query     int     false  "Offset"
// @Param    limit        query     int     false  "Page size"
// @Param    category_id  query     int     false  "Category filter"
// @Param    is_featured  query     bool    false  "Featured filter"
// @Param    search       query     string  false  "Name search"
// @Success  200          {array}   domain.Product
// @Router   /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	filter, err := productFilter(c)
	if err != nil {
		return err
	}
	products, err := h.catalogService.ListProducts(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// BySlug returns one active product.
//
// @Summary  Get product by slug
// @Tags     products
// @Produce  json
// @Param    slug  path      string  true  "Product slug"
// @Success  200   {object}  domain.Product
// @Failure  404   {object}  errorDetail
// @Router   /api/products/slug/{slug} [get]
func (h *ProductHandler) BySlug(c echo.Context) error {
	product, err := h.catalogService.ProductBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create adds a product to the catalog. Admin only.
//
// @Summary   Create product
// @Tags      products
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body  body      domain.ProductInput  true  "Product"
// @Success   201   {object}  domain.Product
// @Failure   400   {object}  errorDetail
// @Failure   403   {object}  errorDetail
// @Router    /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var in domain.ProductInput
	if err := c.Bind(&in); err != nil {
		return err
	}
	if err := c.Validate(&in); err != nil {
		return err
	}
	product, err := h.catalogService.CreateProduct(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// Categories lists every category.
//
// @Summary  List categories
// @Tags     products
// @Produce  json
// @Success  200  {array}  domain.Category
// @Router   /api/categories [get]
func (h *ProductHandler) Categories(c echo.Context) error {
	categories, err := h.catalogService.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

func productFilter(c echo.Context) (domain.ProductFilter, error) {
	var f domain.ProductFilter
	var err error
	if f.Skip, err = queryInt(c, "skip"); err != nil {
		return f, err
	}
	if f.Limit, err = queryInt(c, "limit"); err != nil {
		return f, err
	}
	category, err := queryInt(c, "category_id")
	if err != nil {
		return f, err
	}
	f.CategoryID = int64(category)
	if raw := c.QueryParam("is_featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			return f, &domain.ValidationError{
				Message: "is_featured must be a boolean",
				Issues:  []domain.FieldIssue{{Field: "is_featured", Message: "must be a boolean"}},
			}
		}
		f.Featured = &featured
	}
	f.Search = c.QueryParam("search")
	return f, nil
}
