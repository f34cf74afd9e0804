package usecase

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"mohini-backend/internal/domain"
	"mohini-backend/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init("test", "error")
	os.Exit(m.Run())
}

var errRepoDown = errors.New("repository unavailable")

// fakeProductRepo serves products from a map and records stock decrements.
type fakeProductRepo struct {
	products map[string]domain.Product

	failDecrementFor string
	decrements       []domain.StockDecrement
}

func newFakeProductRepo(products ...domain.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]domain.Product)}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) GetActiveProducts(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range r.products {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, errors.New("no rows in result set")
	}
	return &p, nil
}

func (r *fakeProductRepo) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) CreateProduct(ctx context.Context, product *domain.Product) error {
	r.products[product.ID] = *product
	return nil
}

func (r *fakeProductRepo) UpdateProduct(ctx context.Context, product *domain.Product) error {
	r.products[product.ID] = *product
	return nil
}

func (r *fakeProductRepo) UpdateProductStatus(ctx context.Context, id string, isActive bool) error {
	p := r.products[id]
	p.IsActive = isActive
	r.products[id] = p
	return nil
}

func (r *fakeProductRepo) DeleteProduct(ctx context.Context, id string) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) DecrementStock(ctx context.Context, productID string, quantity int) error {
	if productID == r.failDecrementFor {
		return errRepoDown
	}
	r.decrements = append(r.decrements, domain.StockDecrement{ProductID: productID, Quantity: quantity})
	return nil
}

// fakeOrderRepo keeps created orders in memory.
type fakeOrderRepo struct {
	orders map[string]*domain.Order
	items  []domain.OrderItem

	failCreateOrder bool
	failCreateItems bool
	statusUpdates   map[string]string
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:        make(map[string]*domain.Order),
		statusUpdates: make(map[string]string),
	}
}

func (r *fakeOrderRepo) CreateOrder(ctx context.Context, order *domain.Order) error {
	if r.failCreateOrder {
		return errRepoDown
	}
	order.ID = "order-1"
	order.CreatedAt = time.Now()
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) CreateOrderItems(ctx context.Context, items []domain.OrderItem) error {
	if r.failCreateItems {
		return errRepoDown
	}
	r.items = append(r.items, items...)
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, errors.New("order not found")
	}
	return o, nil
}

func (r *fakeOrderRepo) GetAll(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	r.statusUpdates[id] = status
	return nil
}

// fakeUserRepo finds or creates users by email.
type fakeUserRepo struct {
	users map[string]*domain.User

	failFindOrCreate bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.users[email], nil
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	user.ID = "user-" + user.Email
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) FindOrCreate(ctx context.Context, user *domain.User) (*domain.User, error) {
	if r.failFindOrCreate {
		return nil, errRepoDown
	}
	if existing, ok := r.users[user.Email]; ok {
		return existing, nil
	}
	if err := r.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func activeProduct(id string, price float64, stock int) domain.Product {
	return domain.Product{
		ID:            id,
		Name:          "Product " + id,
		Price:         price,
		Category:      "nightwear",
		StockQuantity: stock,
		IsActive:      true,
	}
}
