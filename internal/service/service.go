package service

import (
	"errors"

	"go.uber.org/zap"

	"qr-dine/internal/repository"
)

// ErrInvalid marks request validation failures so handlers can answer
// with a 400 instead of a generic 500. Wrap it with the specific reason.
var ErrInvalid = errors.New("invalid request")

// ErrBadCredentials is returned on login failure; it deliberately does
// not distinguish an unknown username from a wrong password.
var ErrBadCredentials = errors.New("invalid credentials")

type Service struct {
	Orders      OrderServiceInterface
	Items       ItemServiceInterface
	Restaurants RestaurantServiceInterface
	Auth        AuthServiceInterface
}

type Deps struct {
	Repo      *repository.Repository
	Publisher OrderPublisher
	Logger    *zap.Logger
	JWTSecret string
}

func New(d Deps) *Service {
	return &Service{
		Orders:      NewOrderService(d.Repo.Orders, d.Publisher, d.Logger),
		Items:       NewItemService(d.Repo.Items),
		Restaurants: NewRestaurantService(d.Repo.Restaurants),
		Auth:        NewAuthService(d.Repo.Restaurants, d.JWTSecret),
	}
}
