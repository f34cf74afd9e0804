package usecase

import (
	"context"
	"fmt"

	"mohini-backend/internal/domain"
	"mohini-backend/internal/store"
)

type WishlistUsecase struct {
	stores      *store.Manager
	productRepo domain.ProductRepository
}

func NewWishlistUsecase(stores *store.Manager, productRepo domain.ProductRepository) *WishlistUsecase {
	return &WishlistUsecase{
		stores:      stores,
		productRepo: productRepo,
	}
}

func (u *WishlistUsecase) GetWishlist(ctx context.Context, sessionID string) []domain.Product {
	return u.stores.Wishlist(ctx, sessionID).Items()
}

// AddToWishlist stores a snapshot of the product. Adding a product that is
// already present is a no-op, not an error.
func (u *WishlistUsecase) AddToWishlist(ctx context.Context, sessionID, productID string) error {
	product, err := u.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("product not found: %w", err)
	}

	u.stores.Wishlist(ctx, sessionID).Add(ctx, *product)
	return nil
}

func (u *WishlistUsecase) RemoveFromWishlist(ctx context.Context, sessionID, productID string) {
	u.stores.Wishlist(ctx, sessionID).Remove(ctx, productID)
}

// IsInWishlist is the membership predicate behind the wishlist icon toggle.
func (u *WishlistUsecase) IsInWishlist(ctx context.Context, sessionID, productID string) bool {
	return u.stores.Wishlist(ctx, sessionID).Contains(productID)
}
