package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"mohini-backend/internal/domain"
	"mohini-backend/internal/store"
)

type OrderUsecase struct {
	orderRepo   domain.OrderRepository
	productRepo domain.ProductRepository
	userRepo    domain.UserRepository
	stores      *store.Manager
}

func NewOrderUsecase(orderRepo domain.OrderRepository, productRepo domain.ProductRepository, userRepo domain.UserRepository, stores *store.Manager) *OrderUsecase {
	return &OrderUsecase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		stores:      stores,
	}
}

type CheckoutReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Checkout places a cash-on-delivery order from the session's cart. The
// backend calls run as a sequential chain of independent statements:
// find-or-create user, create order, create order items, decrement stock per
// item. There is no surrounding transaction and no compensating rollback; if
// a later step fails the order stays pending with whatever was written so
// far, the shopper sees one error, and the cart is left untouched. The cart
// is cleared only after the whole chain succeeds.
func (u *OrderUsecase) Checkout(ctx context.Context, sessionID string, req CheckoutReq) (*domain.Order, error) {
	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Address == "" {
		return nil, fmt.Errorf("name, email, phone and address are required")
	}

	cart := u.stores.Cart(ctx, sessionID)
	items := cart.Items()
	if len(items) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	user, err := u.userRepo.FindOrCreate(ctx, &domain.User{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		slog.Error("Usecase: Checkout - FindOrCreate user failed", "email", req.Email, "error", err)
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	order := &domain.Order{
		UserID:          user.ID,
		TotalAmount:     cart.Total(),
		Status:          domain.OrderStatusPending,
		ShippingAddress: req.Address,
		PaymentMethod:   domain.PaymentMethodCOD,
	}
	if err := u.orderRepo.CreateOrder(ctx, order); err != nil {
		slog.Error("Usecase: Checkout - CreateOrder failed", "user_id", user.ID, "error", err)
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	orderItems := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, domain.OrderItem{
			OrderID:   order.ID,
			ProductID: item.Product.ID,
			Quantity:  item.Quantity,
			Price:     item.Product.Price,
		})
	}
	if err := u.orderRepo.CreateOrderItems(ctx, orderItems); err != nil {
		slog.Error("Usecase: Checkout - CreateOrderItems failed", "order_id", order.ID, "error", err)
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	for _, item := range orderItems {
		if err := u.productRepo.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			slog.Error("Usecase: Checkout - DecrementStock failed", "order_id", order.ID, "product_id", item.ProductID, "error", err)
			return nil, fmt.Errorf("failed to place order: %w", err)
		}
	}

	order.Items = orderItems
	cart.Clear(ctx)

	slog.Info("Usecase: Checkout - Order placed", "order_id", order.ID, "user_id", user.ID, "total", order.TotalAmount)
	return order, nil
}

// --- Admin ---

func (u *OrderUsecase) GetAllOrders(ctx context.Context) ([]domain.Order, error) {
	return u.orderRepo.GetAll(ctx)
}

func (u *OrderUsecase) UpdateOrderStatus(ctx context.Context, orderID, newStatus string) error {
	if !domain.IsValidOrderStatus(newStatus) {
		return fmt.Errorf("invalid order status: %s", newStatus)
	}

	// Verify the order exists before updating so the caller gets a clear
	// not-found error instead of a silent zero-row update.
	if _, err := u.orderRepo.GetByID(ctx, orderID); err != nil {
		return err
	}

	return u.orderRepo.UpdateStatus(ctx, orderID, newStatus)
}
