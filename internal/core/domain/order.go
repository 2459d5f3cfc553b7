package domain

import "time"

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// OrderItem is a purchased line; Price is the unit price charged.
type OrderItem struct {
	ID       int64   `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order is a placed order as returned by /api/orders.
type Order struct {
	ID                 int64       `json:"id"`
	OrderNumber        string      `json:"order_number"`
	UserID             int64       `json:"user_id"`
	Status             OrderStatus `json:"status"`
	TotalAmount        float64     `json:"total_amount"`
	ShippingAddress    string      `json:"shipping_address"`
	ShippingCity       string      `json:"shipping_city"`
	ShippingPostalCode string      `json:"shipping_postal_code"`
	ShippingCountry    string      `json:"shipping_country"`
	CustomerName       string      `json:"customer_name"`
	CustomerEmail      string      `json:"customer_email"`
	CustomerPhone      string      `json:"customer_phone,omitempty"`
	Notes              string      `json:"notes,omitempty"`
	OrderItems         []OrderItem `json:"order_items"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          *time.Time  `json:"updated_at,omitempty"`
}

// ShippingDetails is the checkout form.
type ShippingDetails struct {
	ShippingAddress    string `json:"shipping_address"     validate:"required"`
	ShippingCity       string `json:"shipping_city"        validate:"required"`
	ShippingPostalCode string `json:"shipping_postal_code" validate:"required"`
	ShippingCountry    string `json:"shipping_country"     validate:"required"`
	CustomerName       string `json:"customer_name"        validate:"required"`
	CustomerEmail      string `json:"customer_email"       validate:"required,email"`
	CustomerPhone      string `json:"customer_phone,omitempty"`
	Notes              string `json:"notes,omitempty"`
}

// OrderLine is one {product_id, quantity} entry of a checkout request.
type OrderLine struct {
	ProductID int64 `json:"product_id" validate:"gt=0"`
	Quantity  int   `json:"quantity"   validate:"gt=0"`
}

// CreateOrderRequest is the body of POST /api/orders.
type CreateOrderRequest struct {
	ShippingDetails
	Items []OrderLine `json:"items" validate:"required,min=1,dive"`
}
