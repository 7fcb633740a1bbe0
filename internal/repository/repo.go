package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when the requested row does not exist.
var ErrNotFound = errors.New("not found")

type Repository struct {
	Restaurants RestaurantRepositoryInterface
	Items       ItemRepositoryInterface
	Orders      OrderRepositoryInterface
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		Restaurants: NewRestaurantRepository(pool),
		Items:       NewItemRepository(pool),
		Orders:      NewOrderRepository(pool),
	}
}
