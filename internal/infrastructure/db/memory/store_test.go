package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/99minutos/storefront/internal/core/domain"
)

func seeded(t *testing.T) *Store {
	t.Helper()
	s := New()
	if err := s.Seed(context.Background(), SeedAccount{Email: "ada@example.com", FullName: "Ada", Password: "longenough"}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return s
}

func TestStore_ListProducts_Filters(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	all, _ := s.ListProducts(ctx, domain.ProductFilter{})
	if len(all) != 4 {
		t.Fatalf("expected 4 active products, got %d", len(all))
	}

	featured := true
	got, _ := s.ListProducts(ctx, domain.ProductFilter{Featured: &featured})
	if len(got) != 2 {
		t.Fatalf("expected 2 featured products, got %d", len(got))
	}

	got, _ = s.ListProducts(ctx, domain.ProductFilter{Search: "MUG"})
	if len(got) != 1 || got[0].Slug != "speckled-mug" {
		t.Fatalf("unexpected search result %+v", got)
	}
	if got[0].Category == nil || got[0].Category.Slug != "ceramics" {
		t.Fatalf("category not resolved: %+v", got[0].Category)
	}

	got, _ = s.ListProducts(ctx, domain.ProductFilter{Skip: 1, Limit: 2})
	if len(got) != 2 || got[0].ID != all[1].ID {
		t.Fatalf("unexpected page %+v", got)
	}
}

func TestStore_CreateProduct_DuplicateSlug(t *testing.T) {
	s := seeded(t)
	err := s.CreateProduct(context.Background(), &domain.Product{Name: "Again", Slug: "speckled-mug", Price: 1})
	if !errors.Is(err, domain.ErrSlugTaken) {
		t.Fatalf("expected ErrSlugTaken, got %v", err)
	}
}

func TestStore_Users(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	a, err := s.FindByEmail(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if _, err := s.Create(ctx, &domain.Account{User: domain.User{Email: a.Email}}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	a.ResetToken = "reset-1"
	if err := s.Update(ctx, a); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got, err := s.FindByResetToken(ctx, "reset-1"); err != nil || got.ID != a.ID {
		t.Fatalf("find by reset token: %+v, %v", got, err)
	}
	if _, err := s.FindByVerificationToken(ctx, ""); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("empty token must not match, got %v", err)
	}
}

func TestStore_CartIsolation(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	it, err := s.AddItem(ctx, 1, 1, 2)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if it.Product.Slug != "speckled-mug" {
		t.Fatalf("product not embedded: %+v", it.Product)
	}
	if _, err := s.FindItem(ctx, 2, it.ID); !errors.Is(err, domain.ErrCartItemNotFound) {
		t.Fatalf("other users must not see the line, got %v", err)
	}
	if err := s.RemoveItem(ctx, 2, it.ID); !errors.Is(err, domain.ErrCartItemNotFound) {
		t.Fatalf("other users must not remove the line, got %v", err)
	}
	items, _ := s.Items(ctx, 1)
	if len(items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(items))
	}
}

func TestStore_AddItem_MergesAndChecksStock(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	// Serving Bowl has 8 units.
	first, err := s.AddItem(ctx, 1, 2, 5)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.AddItem(ctx, 1, 2, 4); !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("merged quantity past stock must fail, got %v", err)
	}
	merged, err := s.AddItem(ctx, 1, 2, 3)
	if err != nil {
		t.Fatalf("add again: %v", err)
	}
	if merged.ID != first.ID || merged.Quantity != 8 {
		t.Fatalf("expected line %d with quantity 8, got %+v", first.ID, merged)
	}
	if _, err := s.AddItem(ctx, 1, 5, 1); !errors.Is(err, domain.ErrProductInactive) {
		t.Fatalf("expected ErrProductInactive, got %v", err)
	}
	if _, err := s.AddItem(ctx, 1, 999, 1); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestStore_PlaceOrder(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()
	mug, _ := s.FindProduct(ctx, 1)
	_, _ = s.AddItem(ctx, 1, mug.ID, 2)

	order := &domain.Order{UserID: 1, OrderItems: []domain.OrderItem{{Product: *mug, Quantity: 2, Price: mug.Price}}}
	if err := s.PlaceOrder(ctx, order); err != nil {
		t.Fatalf("place: %v", err)
	}
	if order.ID == 0 || order.OrderItems[0].ID == 0 {
		t.Fatalf("ids not assigned: %+v", order)
	}

	after, _ := s.FindProduct(ctx, mug.ID)
	if after.StockQuantity != mug.StockQuantity-2 {
		t.Fatalf("stock not decremented: %d", after.StockQuantity)
	}
	if items, _ := s.Items(ctx, 1); len(items) != 0 {
		t.Fatalf("cart must be emptied, got %d lines", len(items))
	}

	greedy := &domain.Order{UserID: 1, OrderItems: []domain.OrderItem{
		{Product: *mug, Quantity: 1},
		{Product: *mug, Quantity: 1000},
	}}
	if err := s.PlaceOrder(ctx, greedy); !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if again, _ := s.FindProduct(ctx, mug.ID); again.StockQuantity != after.StockQuantity {
		t.Fatalf("failed order must not touch stock")
	}

	orders, _ := s.ListOrders(ctx, 1, 0, 10)
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	if none, _ := s.ListOrders(ctx, 2, 0, 10); len(none) != 0 {
		t.Fatalf("other users must not see orders")
	}
}
