package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"qr-dine/internal/domain"
)

// Credentials is the login projection of a restaurant row; the password
// hash never leaves this package otherwise.
type Credentials struct {
	RestaurantID int64
	Username     string
	PasswordHash string
}

type RestaurantRepositoryInterface interface {
	Create(ctx context.Context, r domain.Restaurant, username, passwordHash string) (domain.Restaurant, error)
	Update(ctx context.Context, id int64, req domain.UpdateRestaurantRequest) (domain.Restaurant, error)
	GetByID(ctx context.Context, id int64) (domain.Restaurant, error)
	GetCredentials(ctx context.Context, username string) (Credentials, error)
}

type RestaurantRepository struct {
	pool *pgxpool.Pool
}

func NewRestaurantRepository(pool *pgxpool.Pool) RestaurantRepositoryInterface {
	return &RestaurantRepository{pool: pool}
}

func (r *RestaurantRepository) Create(ctx context.Context, rest domain.Restaurant, username, passwordHash string) (domain.Restaurant, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO restaurants (name, address, description, image, username, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, rest.Name, rest.Address, rest.Description, rest.Image, username, passwordHash).Scan(&rest.ID)
	if err != nil {
		return domain.Restaurant{}, fmt.Errorf("failed to insert restaurant: %w", err)
	}
	return rest, nil
}

func (r *RestaurantRepository) Update(ctx context.Context, id int64, req domain.UpdateRestaurantRequest) (domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.pool.QueryRow(ctx, `
		UPDATE restaurants SET
			name        = COALESCE($2, name),
			address     = COALESCE($3, address),
			description = COALESCE($4, description),
			image       = COALESCE($5, image)
		WHERE id = $1
		RETURNING id, name, address, description, image
	`, id, req.Name, req.Address, req.Description, req.Image).
		Scan(&rest.ID, &rest.Name, &rest.Address, &rest.Description, &rest.Image)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Restaurant{}, ErrNotFound
	}
	if err != nil {
		return domain.Restaurant{}, fmt.Errorf("failed to update restaurant: %w", err)
	}
	return rest, nil
}

func (r *RestaurantRepository) GetByID(ctx context.Context, id int64) (domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, address, description, image FROM restaurants WHERE id = $1
	`, id).Scan(&rest.ID, &rest.Name, &rest.Address, &rest.Description, &rest.Image)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Restaurant{}, ErrNotFound
	}
	if err != nil {
		return domain.Restaurant{}, fmt.Errorf("failed to get restaurant: %w", err)
	}
	return rest, nil
}

func (r *RestaurantRepository) GetCredentials(ctx context.Context, username string) (Credentials, error) {
	var c Credentials
	err := r.pool.QueryRow(ctx, `
		SELECT id, username, password_hash FROM restaurants WHERE username = $1
	`, username).Scan(&c.RestaurantID, &c.Username, &c.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return Credentials{}, ErrNotFound
	}
	if err != nil {
		return Credentials{}, fmt.Errorf("failed to get credentials: %w", err)
	}
	return c, nil
}
