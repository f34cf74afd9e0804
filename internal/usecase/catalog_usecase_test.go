package usecase

import (
	"context"
	"testing"
	"time"

	"mohini-backend/config"
	"mohini-backend/internal/domain"
	"mohini-backend/internal/infrastructure/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogFixture() (*CatalogUsecase, *fakeProductRepo) {
	productRepo := newFakeProductRepo(activeProduct("p1", 500, 10))
	memCache := cache.NewMemoryCache(time.Minute, time.Minute)
	cfg := &config.Config{CacheProductTTL: time.Minute}
	return NewCatalogUsecase(productRepo, memCache, cfg), productRepo
}

func TestGetActiveProductsIsCached(t *testing.T) {
	ctx := context.Background()
	uc, productRepo := catalogFixture()

	first, err := uc.GetActiveProducts(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Mutating the repo behind the cache is not visible until invalidation
	productRepo.products["p2"] = activeProduct("p2", 300, 5)

	second, err := uc.GetActiveProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, second, 1)
}

func TestCreateProductInvalidatesCache(t *testing.T) {
	ctx := context.Background()
	uc, _ := catalogFixture()

	_, err := uc.GetActiveProducts(ctx)
	require.NoError(t, err)

	p := activeProduct("p2", 300, 5)
	require.NoError(t, uc.CreateProduct(ctx, &p))

	products, err := uc.GetActiveProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestCreateProductForcesActive(t *testing.T) {
	ctx := context.Background()
	uc, productRepo := catalogFixture()

	p := domain.Product{ID: "p3", Name: "Silk Robe", Category: "robes", Price: 1200}
	require.NoError(t, uc.CreateProduct(ctx, &p))
	assert.True(t, productRepo.products["p3"].IsActive)
}

func TestCreateProductValidation(t *testing.T) {
	ctx := context.Background()
	uc, _ := catalogFixture()

	for _, tc := range []struct {
		name    string
		product domain.Product
		wantErr string
	}{
		{"missing name", domain.Product{Category: "bras", Price: 100}, "name is required"},
		{"missing category", domain.Product{Name: "X", Price: 100}, "category is required"},
		{"zero price", domain.Product{Name: "X", Category: "bras"}, "price must be positive"},
		{"negative stock", domain.Product{Name: "X", Category: "bras", Price: 100, StockQuantity: -1}, "must not be negative"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.product
			err := uc.CreateProduct(ctx, &p)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestUpdateProductRequiresID(t *testing.T) {
	ctx := context.Background()
	uc, _ := catalogFixture()

	p := activeProduct("", 100, 1)
	err := uc.UpdateProduct(ctx, &p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "id is required")
}

func TestUpdateProductStatusInvalidatesCache(t *testing.T) {
	ctx := context.Background()
	uc, _ := catalogFixture()

	_, err := uc.GetActiveProducts(ctx)
	require.NoError(t, err)

	require.NoError(t, uc.UpdateProductStatus(ctx, "p1", false))

	products, err := uc.GetActiveProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()
	uc, productRepo := catalogFixture()

	require.NoError(t, uc.DeleteProduct(ctx, "p1"))
	assert.Empty(t, productRepo.products)
}
