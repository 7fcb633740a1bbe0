package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"qr-dine/internal/domain"
	"qr-dine/internal/repository"
)

type RestaurantServiceInterface interface {
	CreateRestaurant(ctx context.Context, req domain.CreateRestaurantRequest) (domain.Restaurant, error)
	UpdateRestaurant(ctx context.Context, id int64, req domain.UpdateRestaurantRequest) (domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id int64) (domain.Restaurant, error)
}

type RestaurantService struct {
	repo repository.RestaurantRepositoryInterface
}

func NewRestaurantService(repo repository.RestaurantRepositoryInterface) RestaurantServiceInterface {
	return &RestaurantService{repo: repo}
}

func (s *RestaurantService) CreateRestaurant(ctx context.Context, req domain.CreateRestaurantRequest) (domain.Restaurant, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Address) == "" {
		return domain.Restaurant{}, fmt.Errorf("%w: restaurant name and address are required", ErrInvalid)
	}
	if strings.TrimSpace(req.Username) == "" || len(req.Password) < 8 {
		return domain.Restaurant{}, fmt.Errorf("%w: username and a password of at least 8 characters are required", ErrInvalid)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Restaurant{}, fmt.Errorf("failed to hash password: %w", err)
	}

	return s.repo.Create(ctx, domain.Restaurant{
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
		Image:       req.Image,
	}, req.Username, string(hash))
}

func (s *RestaurantService) UpdateRestaurant(ctx context.Context, id int64, req domain.UpdateRestaurantRequest) (domain.Restaurant, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return domain.Restaurant{}, fmt.Errorf("%w: restaurant name cannot be empty", ErrInvalid)
	}
	if req.Address != nil && strings.TrimSpace(*req.Address) == "" {
		return domain.Restaurant{}, fmt.Errorf("%w: address cannot be empty", ErrInvalid)
	}
	return s.repo.Update(ctx, id, req)
}

func (s *RestaurantService) GetRestaurant(ctx context.Context, id int64) (domain.Restaurant, error) {
	return s.repo.GetByID(ctx, id)
}
