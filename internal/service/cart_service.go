package service

import (
	"context"
	"fmt"

	"stitchkart/internal/model"
	"stitchkart/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// cartService implements CartService.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "cart").Logger(),
	}
}

// GetCart retrieves the customer's cart with product details.
func (s *cartService) GetCart(ctx context.Context, customerID uuid.UUID) (*model.CartView, error) {
	cart, err := s.cartRepo.GetByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	if cart == nil {
		return nil, model.ErrNoActiveCart
	}

	lines, err := s.cartRepo.GetLines(ctx, cart.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	return &model.CartView{CartID: cart.ID, Items: lines}, nil
}

// AddItem adds a product to the cart, creating the cart lazily on first use.
func (s *cartService) AddItem(ctx context.Context, customerID uuid.UUID, req *model.AddCartItemRequest) (*model.CartItem, error) {
	if req == nil || req.ProductID == uuid.Nil {
		return nil, model.NewDomainError(model.ErrCodeValidation, "product_id is required")
	}
	if req.Quantity <= 0 {
		return nil, model.ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	cart, err := s.cartRepo.GetByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}
	if cart == nil {
		cart, err = s.cartRepo.Create(ctx, customerID)
		if err != nil {
			return nil, fmt.Errorf("failed to add cart item: %w", err)
		}
		s.logger.Info().
			Str("customer_id", customerID.String()).
			Str("cart_id", cart.ID.String()).
			Msg("cart created for customer")
	}

	item, err := s.cartRepo.AddItem(ctx, cart.ID, req.ProductID, req.Quantity)
	if err != nil {
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}

	s.logger.Debug().
		Str("cart_id", cart.ID.String()).
		Str("product_id", req.ProductID.String()).
		Int("quantity", req.Quantity).
		Msg("item added to cart")

	return item, nil
}

// UpdateItem changes a cart line's quantity.
func (s *cartService) UpdateItem(ctx context.Context, customerID, itemID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return model.ErrInvalidQuantity
	}

	cart, err := s.cartRepo.GetByCustomer(ctx, customerID)
	if err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}
	if cart == nil {
		return model.ErrNoActiveCart
	}

	return s.cartRepo.UpdateItemQuantity(ctx, cart.ID, itemID, quantity)
}

// RemoveItem deletes a cart line.
func (s *cartService) RemoveItem(ctx context.Context, customerID, itemID uuid.UUID) error {
	cart, err := s.cartRepo.GetByCustomer(ctx, customerID)
	if err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	if cart == nil {
		return model.ErrNoActiveCart
	}

	return s.cartRepo.RemoveItem(ctx, cart.ID, itemID)
}
