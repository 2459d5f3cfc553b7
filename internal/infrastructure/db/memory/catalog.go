package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/99minutos/storefront/internal/core/domain"
)

// ListProducts returns active products ordered by id.
func (s *Store) ListProducts(_ context.Context, f domain.ProductFilter) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(f.Search))
	matched := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if !p.IsActive {
			continue
		}
		if f.CategoryID > 0 && (p.CategoryID == nil || *p.CategoryID != f.CategoryID) {
			continue
		}
		if f.Featured != nil && p.IsFeatured != *f.Featured {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		matched = append(matched, *s.withCategory(p))
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	if f.Skip >= len(matched) {
		return []domain.Product{}, nil
	}
	matched = matched[f.Skip:]
	if f.Limit > 0 && f.Limit < len(matched) {
		matched = matched[:f.Limit]
	}
	return matched, nil
}

func (s *Store) FindProduct(_ context.Context, id int64) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.products[id]; ok {
		return s.withCategory(p), nil
	}
	return nil, domain.ErrProductNotFound
}

func (s *Store) FindProductBySlug(_ context.Context, slug string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.Slug == slug {
			return s.withCategory(p), nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (s *Store) CreateProduct(_ context.Context, p *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.products {
		if existing.Slug == p.Slug {
			return domain.ErrSlugTaken
		}
	}
	s.nextProduct++
	p.ID = s.nextProduct
	stored := cloneProduct(p)
	stored.Category = nil
	s.products[p.ID] = stored
	return nil
}

func (s *Store) ListCategories(_ context.Context) ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// AddCategory stores c and assigns its id.
func (s *Store) AddCategory(c *domain.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextCategory++
	c.ID = s.nextCategory
	stored := *c
	s.categories[c.ID] = &stored
}

// withCategory returns a copy of p with its category resolved. Callers hold
// at least the read lock.
func (s *Store) withCategory(p *domain.Product) *domain.Product {
	c := cloneProduct(p)
	if p.CategoryID != nil {
		if cat, ok := s.categories[*p.CategoryID]; ok {
			cp := *cat
			c.Category = &cp
		}
	}
	return c
}
