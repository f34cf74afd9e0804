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

type userRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(ctx, `
		SELECT id, email, name, phone, address, created_at
		FROM users
		WHERE email = $1`, email).
		Scan(&u.ID, &u.Email, &u.Name, &u.Phone, &u.Address, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by email: %w", err)
	}
	return &u, nil
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = utils.GenerateUUID()
	}
	user.CreatedAt = time.Now()

	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, email, name, phone, address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Name, user.Phone, user.Address, user.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// FindOrCreate returns the existing user with the given email or creates a
// new one. Repeated checkouts with the same email reuse one user record.
func (r *userRepository) FindOrCreate(ctx context.Context, user *domain.User) (*domain.User, error) {
	existing, err := r.GetByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	if err := r.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
