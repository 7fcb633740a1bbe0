package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"qr-dine/internal/domain"
)

type ItemRepositoryInterface interface {
	Create(ctx context.Context, item domain.MenuItem) (domain.MenuItem, error)
	Update(ctx context.Context, id int64, req domain.UpdateItemRequest) (domain.MenuItem, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (domain.MenuItem, error)
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]domain.MenuItem, error)
}

type ItemRepository struct {
	pool *pgxpool.Pool
}

func NewItemRepository(pool *pgxpool.Pool) ItemRepositoryInterface {
	return &ItemRepository{pool: pool}
}

const itemColumns = `id, restaurant_id, category, name, price, image, created_at`

func (r *ItemRepository) Create(ctx context.Context, item domain.MenuItem) (domain.MenuItem, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO menu_items (restaurant_id, category, name, price, image, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING `+itemColumns,
		item.RestaurantID, item.Category, item.Name, item.Price, item.Image,
	).Scan(&item.ID, &item.RestaurantID, &item.Category, &item.Name, &item.Price, &item.Image, &item.CreatedAt)
	if err != nil {
		return domain.MenuItem{}, fmt.Errorf("failed to insert menu item: %w", err)
	}
	return item, nil
}

// Update applies only the fields present in the request; nil pointers
// keep the stored value.
func (r *ItemRepository) Update(ctx context.Context, id int64, req domain.UpdateItemRequest) (domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.pool.QueryRow(ctx, `
		UPDATE menu_items SET
			category = COALESCE($2, category),
			name     = COALESCE($3, name),
			price    = COALESCE($4, price),
			image    = COALESCE($5, image)
		WHERE id = $1
		RETURNING `+itemColumns,
		id, req.Category, req.Name, req.Price, req.Image,
	).Scan(&item.ID, &item.RestaurantID, &item.Category, &item.Name, &item.Price, &item.Image, &item.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.MenuItem{}, ErrNotFound
	}
	if err != nil {
		return domain.MenuItem{}, fmt.Errorf("failed to update menu item: %w", err)
	}
	return item, nil
}

func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id int64) (domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.pool.QueryRow(ctx, `SELECT `+itemColumns+` FROM menu_items WHERE id = $1`, id).
		Scan(&item.ID, &item.RestaurantID, &item.Category, &item.Name, &item.Price, &item.Image, &item.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.MenuItem{}, ErrNotFound
	}
	if err != nil {
		return domain.MenuItem{}, fmt.Errorf("failed to get menu item: %w", err)
	}
	return item, nil
}

func (r *ItemRepository) ListByRestaurant(ctx context.Context, restaurantID int64) ([]domain.MenuItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+itemColumns+` FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY category, name
	`, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.RestaurantID, &item.Category, &item.Name, &item.Price, &item.Image, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
