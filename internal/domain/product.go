package domain

import (
	"context"
	"time"
)

type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	Category      string    `json:"category"`
	Size          string    `json:"size"`
	Color         string    `json:"color"`
	ImageURL      string    `json:"image_url"`
	StockQuantity int       `json:"stock_quantity"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// StockDecrement pairs a product with the quantity to deduct after checkout.
type StockDecrement struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// --- Interfaces ---

type ProductRepository interface {
	// Storefront (active products only, newest first)
	GetActiveProducts(ctx context.Context) ([]Product, error)
	GetProductByID(ctx context.Context, id string) (*Product, error)

	// Admin Management
	GetAllProducts(ctx context.Context) ([]Product, error)
	CreateProduct(ctx context.Context, product *Product) error
	UpdateProduct(ctx context.Context, product *Product) error
	UpdateProductStatus(ctx context.Context, id string, isActive bool) error
	DeleteProduct(ctx context.Context, id string) error

	// DecrementStock deducts quantity from a single product. Each call is an
	// independent statement; checkout issues one per line item with no
	// surrounding transaction.
	DecrementStock(ctx context.Context, productID string, quantity int) error
}
