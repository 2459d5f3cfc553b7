package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/99minutos/storefront/internal/core/domain"
)

type stubCatalogService struct {
	listFn   func(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	slugFn   func(ctx context.Context, slug string) (*domain.Product, error)
	createFn func(ctx context.Context, in domain.ProductInput) (*domain.Product, error)
}

func (s *stubCatalogService) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	return s.listFn(ctx, filter)
}

func (s *stubCatalogService) ProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return s.slugFn(ctx, slug)
}

func (s *stubCatalogService) ListCategories(context.Context) ([]domain.Category, error) {
	return []domain.Category{{ID: 1, Name: "Kitchen", Slug: "kitchen"}}, nil
}

func (s *stubCatalogService) CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
	return s.createFn(ctx, in)
}

type stubCartService struct {
	items    []domain.CartItem
	addFn    func(ctx context.Context, userID, productID int64, quantity int) (*domain.CartItem, error)
	removed  []int64
	cleared  bool
	updateFn func(ctx context.Context, userID, itemID int64, quantity int) (*domain.CartItem, error)
}

func (s *stubCartService) Items(context.Context, int64) ([]domain.CartItem, error) {
	return s.items, nil
}

func (s *stubCartService) Add(ctx context.Context, userID, productID int64, quantity int) (*domain.CartItem, error) {
	return s.addFn(ctx, userID, productID, quantity)
}

func (s *stubCartService) Update(ctx context.Context, userID, itemID int64, quantity int) (*domain.CartItem, error) {
	return s.updateFn(ctx, userID, itemID, quantity)
}

func (s *stubCartService) Remove(_ context.Context, _ int64, itemID int64) error {
	s.removed = append(s.removed, itemID)
	return nil
}

func (s *stubCartService) Clear(context.Context, int64) error {
	s.cleared = true
	return nil
}

type stubOrderService struct {
	createFn func(ctx context.Context, user *domain.User, req domain.CreateOrderRequest) (*domain.Order, error)
	listFn   func(ctx context.Context, user *domain.User, skip, limit int) ([]domain.Order, error)
	getFn    func(ctx context.Context, user *domain.User, id int64) (*domain.Order, error)
}

func (s *stubOrderService) Create(ctx context.Context, user *domain.User, req domain.CreateOrderRequest) (*domain.Order, error) {
	return s.createFn(ctx, user, req)
}

func (s *stubOrderService) List(ctx context.Context, user *domain.User, skip, limit int) ([]domain.Order, error) {
	return s.listFn(ctx, user, skip, limit)
}

func (s *stubOrderService) Get(ctx context.Context, user *domain.User, id int64) (*domain.Order, error) {
	return s.getFn(ctx, user, id)
}

func TestProductHandler_List_Filters(t *testing.T) {
	var got domain.ProductFilter
	handler := NewProductHandler(&stubCatalogService{
		listFn: func(_ context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
			got = filter
			return []domain.Product{{ID: 1, Slug: "mug"}}, nil
		},
	})

	c, rec := newJSONContext(http.MethodGet, "/api/products?skip=5&limit=10&category_id=2&is_featured=true&search=mug", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got.Skip != 5 || got.Limit != 10 || got.CategoryID != 2 || got.Featured == nil || !*got.Featured || got.Search != "mug" {
		t.Fatalf("unexpected filter: %+v", got)
	}
	var products []domain.Product
	decode(t, rec, &products)
	if len(products) != 1 {
		t.Fatalf("unexpected products: %+v", products)
	}

	c, _ = newJSONContext(http.MethodGet, "/api/products?is_featured=maybe", "")
	if err := handler.List(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestProductHandler_BySlug_NotFound(t *testing.T) {
	handler := NewProductHandler(&stubCatalogService{
		slugFn: func(context.Context, string) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	})

	c, _ := newJSONContext(http.MethodGet, "/api/products/slug/ghost", "")
	c.SetParamNames("slug")
	c.SetParamValues("ghost")
	if err := handler.BySlug(c); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductHandler_Create_Validates(t *testing.T) {
	handler := NewProductHandler(&stubCatalogService{
		createFn: func(context.Context, domain.ProductInput) (*domain.Product, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	})

	c, _ := newJSONContext(http.MethodPost, "/api/products", `{"name":"Mug","slug":"mug","price":0}`)
	if err := handler.Create(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCartHandler_Add(t *testing.T) {
	handler := NewCartHandler(&stubCartService{
		addFn: func(_ context.Context, userID, productID int64, quantity int) (*domain.CartItem, error) {
			if userID != alice.ID || productID != 3 || quantity != 2 {
				t.Fatalf("unexpected args: %d %d %d", userID, productID, quantity)
			}
			return &domain.CartItem{ID: 11, Product: domain.Product{ID: 3}, Quantity: 2}, nil
		},
	})

	c, rec := newJSONContext(http.MethodPost, "/api/cart", `{"product_id":3,"quantity":2}`)
	if err := handler.Add(withUser(c, alice)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	c, _ = newJSONContext(http.MethodPost, "/api/cart", `{"product_id":3,"quantity":0}`)
	if err := handler.Add(withUser(c, alice)); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("zero quantity must fail validation, got %v", err)
	}
}

func TestCartHandler_Update_BadID(t *testing.T) {
	handler := NewCartHandler(&stubCartService{})

	c, _ := newJSONContext(http.MethodPut, "/api/cart/abc", `{"quantity":1}`)
	c.SetParamNames("id")
	c.SetParamValues("abc")
	if err := handler.Update(withUser(c, alice)); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCartHandler_RemoveAndClear(t *testing.T) {
	stub := &stubCartService{}
	handler := NewCartHandler(stub)

	c, rec := newJSONContext(http.MethodDelete, "/api/cart/4", "")
	c.SetParamNames("id")
	c.SetParamValues("4")
	if err := handler.Remove(withUser(c, alice)); err != nil || rec.Code != http.StatusNoContent {
		t.Fatalf("remove: %v / %d", err, rec.Code)
	}
	if len(stub.removed) != 1 || stub.removed[0] != 4 {
		t.Fatalf("unexpected removals: %v", stub.removed)
	}

	c, rec = newJSONContext(http.MethodDelete, "/api/cart", "")
	if err := handler.Clear(withUser(c, alice)); err != nil || rec.Code != http.StatusNoContent || !stub.cleared {
		t.Fatalf("clear: %v / %d", err, rec.Code)
	}
}

func TestOrderHandler_Create(t *testing.T) {
	handler := NewOrderHandler(&stubOrderService{
		createFn: func(_ context.Context, user *domain.User, req domain.CreateOrderRequest) (*domain.Order, error) {
			return &domain.Order{ID: 1, OrderNumber: "ABCDEF0123", UserID: user.ID, Status: domain.OrderPending}, nil
		},
	})

	body := `{"shipping_address":"1 Main St","shipping_city":"Lima","shipping_postal_code":"15001","shipping_country":"PE",` +
		`"customer_name":"Alice","customer_email":"alice@example.com","items":[{"product_id":1,"quantity":2}]}`
	c, rec := newJSONContext(http.MethodPost, "/api/orders", body)
	if err := handler.Create(withUser(c, alice)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var order domain.Order
	decode(t, rec, &order)
	if rec.Code != http.StatusCreated || order.OrderNumber != "ABCDEF0123" {
		t.Fatalf("unexpected response %d: %+v", rec.Code, order)
	}

	c, _ = newJSONContext(http.MethodPost, "/api/orders", `{"items":[]}`)
	if err := handler.Create(withUser(c, alice)); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestOrderHandler_ListAndGet(t *testing.T) {
	handler := NewOrderHandler(&stubOrderService{
		listFn: func(_ context.Context, _ *domain.User, skip, limit int) ([]domain.Order, error) {
			if skip != 2 || limit != 3 {
				t.Fatalf("unexpected paging: %d %d", skip, limit)
			}
			return []domain.Order{{ID: 1}}, nil
		},
		getFn: func(context.Context, *domain.User, int64) (*domain.Order, error) {
			return nil, domain.ErrForbidden
		},
	})

	c, _ := newJSONContext(http.MethodGet, "/api/orders?skip=2&limit=3", "")
	if err := handler.List(withUser(c, alice)); err != nil {
		t.Fatalf("list: %v", err)
	}

	c, _ = newJSONContext(http.MethodGet, "/api/orders/9", "")
	c.SetParamNames("id")
	c.SetParamValues("9")
	if err := handler.Get(withUser(c, alice)); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
