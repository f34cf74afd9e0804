package usecase

import (
	"context"
	"fmt"

	"mohini-backend/config"
	"mohini-backend/internal/domain"
	"mohini-backend/pkg/cache"
)

const activeProductsCacheKey = "products:active"

type CatalogUsecase struct {
	repo  domain.ProductRepository
	cache cache.CacheService
	cfg   *config.Config
}

func NewCatalogUsecase(repo domain.ProductRepository, cache cache.CacheService, cfg *config.Config) *CatalogUsecase {
	return &CatalogUsecase{
		repo:  repo,
		cache: cache,
		cfg:   cfg,
	}
}

// --- Storefront ---

func (uc *CatalogUsecase) GetActiveProducts(ctx context.Context) ([]domain.Product, error) {
	if val, found := uc.cache.Get(activeProductsCacheKey); found {
		return val.([]domain.Product), nil
	}

	products, err := uc.repo.GetActiveProducts(ctx)
	if err != nil {
		return nil, err
	}

	uc.cache.Set(activeProductsCacheKey, products, uc.cfg.CacheProductTTL)
	return products, nil
}

func (uc *CatalogUsecase) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	return uc.repo.GetProductByID(ctx, id)
}

// --- Admin ---

func (uc *CatalogUsecase) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	return uc.repo.GetAllProducts(ctx)
}

func (uc *CatalogUsecase) CreateProduct(ctx context.Context, product *domain.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	product.IsActive = true

	uc.cache.Delete(activeProductsCacheKey)
	return uc.repo.CreateProduct(ctx, product)
}

func (uc *CatalogUsecase) UpdateProduct(ctx context.Context, product *domain.Product) error {
	if product.ID == "" {
		return fmt.Errorf("product id is required")
	}
	if err := validateProduct(product); err != nil {
		return err
	}

	uc.cache.Delete(activeProductsCacheKey)
	return uc.repo.UpdateProduct(ctx, product)
}

func (uc *CatalogUsecase) UpdateProductStatus(ctx context.Context, id string, isActive bool) error {
	uc.cache.Delete(activeProductsCacheKey)
	return uc.repo.UpdateProductStatus(ctx, id, isActive)
}

func (uc *CatalogUsecase) DeleteProduct(ctx context.Context, id string) error {
	uc.cache.Delete(activeProductsCacheKey)
	return uc.repo.DeleteProduct(ctx, id)
}

// validateProduct enforces the admin form rules: required name and category,
// positive price, non-negative stock.
func validateProduct(p *domain.Product) error {
	if p.Name == "" {
		return fmt.Errorf("product name is required")
	}
	if p.Category == "" {
		return fmt.Errorf("product category is required")
	}
	if p.Price <= 0 {
		return fmt.Errorf("product price must be positive")
	}
	if p.StockQuantity < 0 {
		return fmt.Errorf("stock quantity must not be negative")
	}
	return nil
}
