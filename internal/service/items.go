package service

import (
	"context"
	"fmt"
	"strings"

	"qr-dine/internal/domain"
	"qr-dine/internal/repository"
)

type ItemServiceInterface interface {
	AddItem(ctx context.Context, req domain.CreateItemRequest) (domain.MenuItem, error)
	UpdateItem(ctx context.Context, id int64, req domain.UpdateItemRequest) (domain.MenuItem, error)
	DeleteItem(ctx context.Context, id int64) error
	GetItem(ctx context.Context, id int64) (domain.MenuItem, error)
	ListItems(ctx context.Context, restaurantID int64) ([]domain.MenuItem, error)
}

type ItemService struct {
	repo repository.ItemRepositoryInterface
}

func NewItemService(repo repository.ItemRepositoryInterface) ItemServiceInterface {
	return &ItemService{repo: repo}
}

func (s *ItemService) AddItem(ctx context.Context, req domain.CreateItemRequest) (domain.MenuItem, error) {
	if req.RestaurantID <= 0 {
		return domain.MenuItem{}, fmt.Errorf("%w: restaurant id is required", ErrInvalid)
	}
	if strings.TrimSpace(req.Category) == "" || strings.TrimSpace(req.Name) == "" {
		return domain.MenuItem{}, fmt.Errorf("%w: category and item name are required", ErrInvalid)
	}
	if req.Price <= 0 {
		return domain.MenuItem{}, fmt.Errorf("%w: price must be positive", ErrInvalid)
	}
	return s.repo.Create(ctx, domain.MenuItem{
		RestaurantID: req.RestaurantID,
		Category:     req.Category,
		Name:         req.Name,
		Price:        req.Price,
		Image:        req.Image,
	})
}

func (s *ItemService) UpdateItem(ctx context.Context, id int64, req domain.UpdateItemRequest) (domain.MenuItem, error) {
	if req.Price != nil && *req.Price <= 0 {
		return domain.MenuItem{}, fmt.Errorf("%w: price must be positive", ErrInvalid)
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return domain.MenuItem{}, fmt.Errorf("%w: item name cannot be empty", ErrInvalid)
	}
	return s.repo.Update(ctx, id, req)
}

func (s *ItemService) DeleteItem(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *ItemService) GetItem(ctx context.Context, id int64) (domain.MenuItem, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ItemService) ListItems(ctx context.Context, restaurantID int64) ([]domain.MenuItem, error) {
	return s.repo.ListByRestaurant(ctx, restaurantID)
}
