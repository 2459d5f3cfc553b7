package domain

import "time"

// Category groups products in the catalog.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Product is the read model of a catalog entry. Cart and order lines embed a
// copy of it as it was when the server answered.
type Product struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Slug           string     `json:"slug"`
	Description    string     `json:"description,omitempty"`
	Price          float64    `json:"price"`
	CompareAtPrice *float64   `json:"compare_at_price,omitempty"`
	CostPerItem    *float64   `json:"cost_per_item,omitempty"`
	StockQuantity  int        `json:"stock_quantity"`
	SKU            string     `json:"sku,omitempty"`
	ImageURL       string     `json:"image_url,omitempty"`
	Images         string     `json:"images,omitempty"`
	IsActive       bool       `json:"is_active"`
	IsFeatured     bool       `json:"is_featured"`
	CategoryID     *int64     `json:"category_id,omitempty"`
	Category       *Category  `json:"category,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

// InStock reports whether quantity units can currently be bought. The server
// remains authoritative; this is only for pre-validation in a UI.
func (p Product) InStock(quantity int) bool {
	return p.IsActive && quantity <= p.StockQuantity
}

// ProductFilter holds the query parameters of GET /api/products.
type ProductFilter struct {
	CategoryID int64
	Featured   *bool
	Search     string
	Skip       int
	Limit      int
}

// ProductInput is the admin payload for POST /api/products.
type ProductInput struct {
	Name           string   `json:"name"             validate:"required"`
	Slug           string   `json:"slug"             validate:"required"`
	Description    string   `json:"description,omitempty"`
	Price          float64  `json:"price"            validate:"gt=0"`
	CompareAtPrice *float64 `json:"compare_at_price,omitempty"`
	StockQuantity  int      `json:"stock_quantity"   validate:"min=0"`
	SKU            string   `json:"sku,omitempty"`
	ImageURL       string   `json:"image_url,omitempty"`
	IsActive       bool     `json:"is_active"`
	IsFeatured     bool     `json:"is_featured"`
	CategoryID     *int64   `json:"category_id,omitempty"`
}
