package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"qr-dine/internal/domain"
	"qr-dine/internal/report"
	"qr-dine/internal/repository"
)

// OrderPublisher fans persisted orders out to the kitchen. A nil
// publisher disables the fan-out entirely.
type OrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, msg domain.OrderPlacedMessage) error
}

type OrderServiceInterface interface {
	PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest) (domain.Order, error)
	CompleteOrder(ctx context.Context, orderID int64) (domain.Order, error)
	ListOrders(ctx context.Context, restaurantID int64) ([]domain.Order, error)
	Earnings(ctx context.Context, restaurantID int64) (report.Earnings, error)
}

type OrderService struct {
	repo      repository.OrderRepositoryInterface
	publisher OrderPublisher
	logger    *zap.Logger
}

func NewOrderService(repo repository.OrderRepositoryInterface, publisher OrderPublisher, logger *zap.Logger) OrderServiceInterface {
	return &OrderService{repo: repo, publisher: publisher, logger: logger}
}

func (s *OrderService) PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest) (domain.Order, error) {
	if req.RestaurantID <= 0 {
		return domain.Order{}, fmt.Errorf("%w: restaurant id is required", ErrInvalid)
	}
	if strings.TrimSpace(req.TableNo) == "" {
		return domain.Order{}, fmt.Errorf("%w: table number is required", ErrInvalid)
	}
	if len(req.Items) == 0 {
		return domain.Order{}, fmt.Errorf("%w: at least one item is required", ErrInvalid)
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	var computed float64
	for _, in := range req.Items {
		if in.Quantity < 1 {
			return domain.Order{}, fmt.Errorf("%w: invalid quantity for item %s", ErrInvalid, in.Name)
		}
		if in.Price <= 0 {
			return domain.Order{}, fmt.Errorf("%w: invalid price for item %s", ErrInvalid, in.Name)
		}
		items = append(items, domain.OrderItem{Name: in.Name, Price: in.Price, Quantity: in.Quantity})
		computed += in.Price * float64(in.Quantity)
	}

	subtotal := computed
	if req.Subtotal != nil {
		subtotal = *req.Subtotal
	}

	number, err := s.nextOrderNumber(ctx)
	if err != nil {
		return domain.Order{}, err
	}

	order, err := s.repo.Create(ctx, domain.Order{
		Number:       number,
		RestaurantID: req.RestaurantID,
		TableNo:      req.TableNo,
		Items:        items,
		Subtotal:     subtotal,
		Status:       domain.StatusPending,
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("failed to save order: %w", err)
	}

	s.publishOrderPlaced(ctx, order)
	return order, nil
}

// Order numbers are ORD_YYYYMMDD_NNN; the sequence is the lifetime
// order count, which is good enough at this volume.
func (s *OrderService) nextOrderNumber(ctx context.Context) (string, error) {
	sequence, err := s.repo.Count(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get order count: %w", err)
	}
	return fmt.Sprintf("ORD_%s_%03d", time.Now().UTC().Format("20060102"), sequence+1), nil
}

// Kitchen fan-out is best effort: the customer already has a saved
// order, so a broker hiccup is logged, not surfaced.
func (s *OrderService) publishOrderPlaced(ctx context.Context, order domain.Order) {
	if s.publisher == nil {
		return
	}
	msg := domain.OrderPlacedMessage{
		OrderNumber:  order.Number,
		RestaurantID: order.RestaurantID,
		TableNo:      order.TableNo,
		Items:        make([]domain.OrderItemMsg, 0, len(order.Items)),
		Subtotal:     order.Subtotal,
		PlacedAt:     order.CreatedAt,
	}
	for _, it := range order.Items {
		msg.Items = append(msg.Items, domain.OrderItemMsg{Name: it.Name, Price: it.Price, Quantity: it.Quantity})
	}
	if err := s.publisher.PublishOrderPlaced(ctx, msg); err != nil {
		s.logger.Error("order publish failed",
			zap.String("order_number", order.Number),
			zap.Error(err))
	}
}

// CompleteOrder sets the status to completed without checking the prior
// state, so repeating the call is harmless.
func (s *OrderService) CompleteOrder(ctx context.Context, orderID int64) (domain.Order, error) {
	return s.repo.SetStatus(ctx, orderID, domain.StatusCompleted)
}

func (s *OrderService) ListOrders(ctx context.Context, restaurantID int64) ([]domain.Order, error) {
	return s.repo.ListByRestaurant(ctx, restaurantID)
}

func (s *OrderService) Earnings(ctx context.Context, restaurantID int64) (report.Earnings, error) {
	orders, err := s.repo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return report.Earnings{}, fmt.Errorf("failed to load orders: %w", err)
	}
	return report.Build(orders, time.Now()), nil
}
