package memory

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/99minutos/storefront/internal/core/domain"
)

// SeedAccount is a verified account created by Seed.
type SeedAccount struct {
	Email    string
	FullName string
	Password string
	Role     domain.Role
}

// Seed loads a small demo catalog and the given verified accounts.
func (s *Store) Seed(ctx context.Context, accounts ...SeedAccount) error {
	now := time.Now().UTC()

	ceramics := &domain.Category{Name: "Ceramics", Slug: "ceramics", Description: "Hand-thrown mugs and bowls", CreatedAt: now}
	textiles := &domain.Category{Name: "Textiles", Slug: "textiles", Description: "Woven and embroidered pieces", CreatedAt: now}
	s.AddCategory(ceramics)
	s.AddCategory(textiles)

	compareAt := 32.0
	products := []*domain.Product{
		{Name: "Speckled Mug", Slug: "speckled-mug", Price: 24.00, CompareAtPrice: &compareAt, StockQuantity: 25, IsActive: true, IsFeatured: true, CategoryID: &ceramics.ID},
		{Name: "Serving Bowl", Slug: "serving-bowl", Price: 48.50, StockQuantity: 8, IsActive: true, CategoryID: &ceramics.ID},
		{Name: "Linen Table Runner", Slug: "linen-table-runner", Price: 36.00, StockQuantity: 12, IsActive: true, IsFeatured: true, CategoryID: &textiles.ID},
		{Name: "Embroidered Cushion", Slug: "embroidered-cushion", Price: 55.00, StockQuantity: 0, IsActive: true, CategoryID: &textiles.ID},
		{Name: "Archived Vase", Slug: "archived-vase", Price: 80.00, StockQuantity: 3, IsActive: false, CategoryID: &ceramics.ID},
	}
	for _, p := range products {
		p.CreatedAt = now
		if err := s.CreateProduct(ctx, p); err != nil {
			return err
		}
	}

	for _, a := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		role := a.Role
		if role == "" {
			role = domain.RoleCustomer
		}
		_, err = s.Create(ctx, &domain.Account{
			User: domain.User{
				Email:      a.Email,
				FullName:   a.FullName,
				Role:       role,
				IsActive:   true,
				IsVerified: true,
				CreatedAt:  now,
			},
			PasswordHash: string(hash),
		})
		if err != nil {
			return err
		}
	}
	return nil
}
