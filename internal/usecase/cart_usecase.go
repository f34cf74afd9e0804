package usecase

import (
	"context"
	"fmt"

	"mohini-backend/internal/domain"
	"mohini-backend/internal/store"
)

// CartView is the cart as the storefront renders it: the entries plus the
// aggregates driving the totals row and the badge.
type CartView struct {
	Items     []domain.CartItem `json:"items"`
	Total     float64           `json:"total"`
	ItemCount int               `json:"item_count"`
}

// CartUsecase binds a session's cart store to the catalog: adding an item
// looks the product up and stores a snapshot of it, never a live reference.
type CartUsecase struct {
	stores      *store.Manager
	productRepo domain.ProductRepository
}

func NewCartUsecase(stores *store.Manager, productRepo domain.ProductRepository) *CartUsecase {
	return &CartUsecase{
		stores:      stores,
		productRepo: productRepo,
	}
}

func (u *CartUsecase) GetCart(ctx context.Context, sessionID string) *CartView {
	cart := u.stores.Cart(ctx, sessionID)
	return &CartView{
		Items:     cart.Items(),
		Total:     cart.Total(),
		ItemCount: cart.ItemCount(),
	}
}

func (u *CartUsecase) AddToCart(ctx context.Context, sessionID, productID string) (*CartView, error) {
	product, err := u.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("product not found: %w", err)
	}

	cart := u.stores.Cart(ctx, sessionID)
	cart.Add(ctx, *product)
	return u.GetCart(ctx, sessionID), nil
}

func (u *CartUsecase) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) *CartView {
	cart := u.stores.Cart(ctx, sessionID)
	cart.UpdateQuantity(ctx, productID, quantity)
	return u.GetCart(ctx, sessionID)
}

func (u *CartUsecase) RemoveFromCart(ctx context.Context, sessionID, productID string) *CartView {
	cart := u.stores.Cart(ctx, sessionID)
	cart.Remove(ctx, productID)
	return u.GetCart(ctx, sessionID)
}

func (u *CartUsecase) ClearCart(ctx context.Context, sessionID string) {
	u.stores.Cart(ctx, sessionID).Clear(ctx)
}
