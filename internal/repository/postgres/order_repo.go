package pgrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mohini-backend/internal/domain"
	"mohini-backend/pkg/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type orderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) domain.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	if order.ID == "" {
		order.ID = utils.GenerateUUID()
	}
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	_, err := r.db.Exec(ctx, `
		INSERT INTO orders (id, user_id, total_amount, status, shipping_address, payment_method, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		order.ID,
		order.UserID,
		order.TotalAmount,
		order.Status,
		order.ShippingAddress,
		order.PaymentMethod,
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// CreateOrderItems inserts line items one by one. Like the stock decrements,
// these are independent statements; checkout does not wrap them in a
// transaction.
func (r *orderRepository) CreateOrderItems(ctx context.Context, items []domain.OrderItem) error {
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = utils.GenerateUUID()
		}
		items[i].CreatedAt = time.Now()

		_, err := r.db.Exec(ctx, `
			INSERT INTO order_items (id, order_id, product_id, quantity, price, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			items[i].ID,
			items[i].OrderID,
			items[i].ProductID,
			items[i].Quantity,
			items[i].Price,
			items[i].CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	var o domain.Order
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, total_amount, status, shipping_address, payment_method, created_at, updated_at
		FROM orders
		WHERE id = $1`, id).
		Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.ShippingAddress, &o.PaymentMethod, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("order %s not found", id)
		}
		return nil, fmt.Errorf("query order: %w", err)
	}

	items, err := r.getItems(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

// GetAll returns every order, newest first, with nested line items and their
// product snapshots.
func (r *orderRepository) GetAll(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT o.id, o.user_id, o.total_amount, o.status, o.shipping_address, o.payment_method,
		       o.created_at, o.updated_at,
		       u.email, u.name, u.phone
		FROM orders o
		LEFT JOIN users u ON u.id = o.user_id
		ORDER BY o.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	index := make(map[string]int)
	for rows.Next() {
		var o domain.Order
		var email, name, phone *string
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.ShippingAddress, &o.PaymentMethod,
			&o.CreatedAt, &o.UpdatedAt,
			&email, &name, &phone,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if email != nil {
			user := domain.User{ID: o.UserID, Email: *email}
			if name != nil {
				user.Name = *name
			}
			if phone != nil {
				user.Phone = *phone
			}
			o.User = &user
		}
		o.Items = []domain.OrderItem{}
		index[o.ID] = len(orders)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	itemRows, err := r.db.Query(ctx, `
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price, oi.created_at,
		       p.id, p.name, p.description, p.price, p.category, p.size, p.color,
		       p.image_url, p.stock_quantity, p.is_active, p.created_at, p.updated_at
		FROM order_items oi
		LEFT JOIN products p ON p.id = oi.product_id
		ORDER BY oi.created_at`)
	if err != nil {
		return nil, fmt.Errorf("query order items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item domain.OrderItem
		// Product columns are nullable: the product may have been deleted
		// since the order was placed.
		var p struct {
			ID            *string
			Name          *string
			Description   *string
			Price         *float64
			Category      *string
			Size          *string
			Color         *string
			ImageURL      *string
			StockQuantity *int
			IsActive      *bool
			CreatedAt     *time.Time
			UpdatedAt     *time.Time
		}
		if err := itemRows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Price, &item.CreatedAt,
			&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Size, &p.Color,
			&p.ImageURL, &p.StockQuantity, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		if p.ID != nil {
			item.Product = &domain.Product{
				ID:            *p.ID,
				Name:          *p.Name,
				Description:   *p.Description,
				Price:         *p.Price,
				Category:      *p.Category,
				Size:          *p.Size,
				Color:         *p.Color,
				ImageURL:      *p.ImageURL,
				StockQuantity: *p.StockQuantity,
				IsActive:      *p.IsActive,
				CreatedAt:     *p.CreatedAt,
				UpdatedAt:     *p.UpdatedAt,
			}
		}
		if i, ok := index[item.OrderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE orders SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, time.Now())
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %s not found", id)
	}
	return nil
}

func (r *orderRepository) getItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, order_id, product_id, quantity, price, created_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY created_at`, orderID)
	if err != nil {
		return nil, fmt.Errorf("query order items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.OrderItem, 0)
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Price, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
