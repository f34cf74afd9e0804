package v1

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"mohini-backend/internal/domain"
	"mohini-backend/internal/store"
	"mohini-backend/internal/usecase"
	"mohini-backend/pkg/logger"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init("test", "error")
	os.Exit(m.Run())
}

// stubProductRepo serves a fixed catalog; only lookup paths are exercised here.
type stubProductRepo struct {
	products map[string]domain.Product
}

func (r *stubProductRepo) GetActiveProducts(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *stubProductRepo) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, errors.New("no rows in result set")
	}
	return &p, nil
}

func (r *stubProductRepo) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	return r.GetActiveProducts(ctx)
}

func (r *stubProductRepo) CreateProduct(ctx context.Context, product *domain.Product) error { return nil }
func (r *stubProductRepo) UpdateProduct(ctx context.Context, product *domain.Product) error { return nil }
func (r *stubProductRepo) UpdateProductStatus(ctx context.Context, id string, isActive bool) error {
	return nil
}
func (r *stubProductRepo) DeleteProduct(ctx context.Context, id string) error { return nil }
func (r *stubProductRepo) DecrementStock(ctx context.Context, productID string, quantity int) error {
	return nil
}

func cartTestMux(t *testing.T) *http.ServeMux {
	t.Helper()

	repo := &stubProductRepo{products: map[string]domain.Product{
		"p1": {ID: "p1", Name: "Lace Bralette", Price: 450, Category: "bras", IsActive: true},
		"p2": {ID: "p2", Name: "Satin Slip", Price: 900, Category: "nightwear", IsActive: true},
	}}
	stores := store.NewManager(store.NewMemorySnapshots())
	cartUC := usecase.NewCartUsecase(stores, repo)
	orderUC := usecase.NewOrderUsecase(nil, repo, nil, stores)
	wlUC := usecase.NewWishlistUsecase(stores, repo)

	cartHandler := NewCartHandler(cartUC, orderUC)
	wlHandler := NewWishlistHandler(wlUC)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart)
	mux.HandleFunc("POST /api/v1/cart", cartHandler.AddItem)
	mux.HandleFunc("PUT /api/v1/cart/{productId}", cartHandler.UpdateItem)
	mux.HandleFunc("DELETE /api/v1/cart/{productId}", cartHandler.RemoveItem)
	mux.HandleFunc("GET /api/v1/wishlist", wlHandler.GetWishlist)
	mux.HandleFunc("POST /api/v1/wishlist", wlHandler.AddItem)
	mux.HandleFunc("GET /api/v1/wishlist/{productId}", wlHandler.CheckItem)
	return mux
}

// doSession issues a request carrying a fixed session ID, mirroring what the
// session middleware injects in production.
func doSession(mux *http.ServeMux, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req = req.WithContext(context.WithValue(req.Context(), domain.SessionContextKey, "sess-1"))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestCartEndpointsRoundTrip(t *testing.T) {
	mux := cartTestMux(t)

	rec := doSession(mux, http.MethodPost, "/api/v1/cart", `{"product_id":"p1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doSession(mux, http.MethodPost, "/api/v1/cart", `{"product_id":"p1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doSession(mux, http.MethodPost, "/api/v1/cart", `{"product_id":"p2"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doSession(mux, http.MethodGet, "/api/v1/cart", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var view usecase.CartView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, float64(1800), view.Total)
	assert.Equal(t, 3, view.ItemCount)
	require.Len(t, view.Items, 2)
	assert.Equal(t, "p1", view.Items[0].Product.ID)

	rec = doSession(mux, http.MethodPut, "/api/v1/cart/p1", `{"quantity":0}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doSession(mux, http.MethodDelete, "/api/v1/cart/p2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Empty(t, view.Items)
}

func TestCartAddUnknownProductReturns404(t *testing.T) {
	mux := cartTestMux(t)

	rec := doSession(mux, http.MethodPost, "/api/v1/cart", `{"product_id":"ghost"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartAddRejectsMissingProductID(t *testing.T) {
	mux := cartTestMux(t)

	rec := doSession(mux, http.MethodPost, "/api/v1/cart", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWishlistEndpoints(t *testing.T) {
	mux := cartTestMux(t)

	rec := doSession(mux, http.MethodGet, "/api/v1/wishlist/p1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"in_wishlist":false}`, rec.Body.String())

	rec = doSession(mux, http.MethodPost, "/api/v1/wishlist", `{"product_id":"p1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doSession(mux, http.MethodGet, "/api/v1/wishlist/p1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"in_wishlist":true}`, rec.Body.String())

	rec = doSession(mux, http.MethodGet, "/api/v1/wishlist", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var products []domain.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Lace Bralette", products[0].Name)
}
