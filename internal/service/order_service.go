package service

import (
	"context"
	"fmt"

	"stitchkart/internal/model"
	"stitchkart/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "order").Logger(),
	}
}

// ListForCustomer retrieves the customer's own orders.
func (s *orderService) ListForCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Order, error) {
	orders, err := s.orderRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// GetForCustomer retrieves one of the customer's orders with items and
// product details. Orders belonging to other customers are reported as not
// found.
func (s *orderService) GetForCustomer(ctx context.Context, customerID, orderID uuid.UUID) (*model.OrderResponse, error) {
	order, items, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil || order.CustomerID != customerID {
		return nil, model.ErrOrderNotFound
	}

	productIDs := make([]uuid.UUID, len(items))
	for i, item := range items {
		productIDs[i] = item.ProductID
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return &model.OrderResponse{Order: *order, Items: items, Products: products}, nil
}

// ListAll retrieves all orders (admin).
func (s *orderService) ListAll(ctx context.Context, limit, offset int) ([]model.Order, error) {
	orders, err := s.orderRepo.ListAll(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus sets an order's status and tracking fields (admin).
func (s *orderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, req *model.UpdateOrderStatusRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeValidation, "status update request is required")
	}

	status := model.OrderStatus(req.Status)
	if !status.AdminSettable() {
		s.logger.Warn().
			Str("order_id", orderID.String()).
			Str("status", req.Status).
			Msg("rejected order status not settable by admin")
		return model.ErrInvalidStatus
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, status, req.TrackingID, req.TrackingDescription); err != nil {
		return err
	}

	return nil
}
