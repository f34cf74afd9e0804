package domain

import (
	"context"
	"time"
)

// --- Cart Entities ---

// CartItem pairs a product snapshot (not a live reference) with a quantity.
// At most one CartItem exists per distinct product ID.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// --- Order Entities ---

type Order struct {
	ID              string      `json:"id"`
	UserID          string      `json:"user_id"`
	User            *User       `json:"user,omitempty"`
	TotalAmount     float64     `json:"total_amount"`
	Status          string      `json:"status"` // pending, confirmed, shipped, delivered
	ShippingAddress string      `json:"shipping_address"`
	PaymentMethod   string      `json:"payment_method"`
	Items           []OrderItem `json:"order_items,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID        string   `json:"id"`
	OrderID   string   `json:"order_id"`
	ProductID string   `json:"product_id"`
	Product   *Product `json:"product,omitempty"` // Snapshot for admin views
	Quantity  int      `json:"quantity"`
	Price     float64  `json:"price"` // Unit price at time of purchase
	CreatedAt time.Time `json:"created_at"`
}

// --- Interfaces ---

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *Order) error
	CreateOrderItems(ctx context.Context, items []OrderItem) error
	GetByID(ctx context.Context, id string) (*Order, error)

	// GetAll returns every order, newest first, with nested line items and
	// their product snapshots. Admin use.
	GetAll(ctx context.Context) ([]Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
