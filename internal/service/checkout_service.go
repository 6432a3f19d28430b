package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stitchkart/internal/model"
	"stitchkart/internal/payment"
	"stitchkart/internal/repository"
	"stitchkart/internal/shipping"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// checkoutService implements CheckoutService. It owns the transaction that
// spans cart snapshot, order persistence, and payment-session creation: the
// order is staged but not committed until the provider accepts the session,
// so a provider failure leaves no order rows behind. The reverse hazard, a
// created session whose commit then fails, is inherent to the dual write
// and detected downstream by the payment webhook finding no matching order.
type checkoutService struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	settingRepo repository.SettingRepository
	provider    payment.SessionProvider
	opts        payment.SessionOptions
	logger      zerolog.Logger
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	settingRepo repository.SettingRepository,
	provider payment.SessionProvider,
	opts payment.SessionOptions,
	logger zerolog.Logger,
) CheckoutService {
	return &checkoutService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		settingRepo: settingRepo,
		provider:    provider,
		opts:        opts,
		logger:      logger.With().Str("service", "checkout").Logger(),
	}
}

// Checkout converts the customer's cart into a pending order and a payment
// session. Cart items are intentionally not cleared here: checkout is not
// payment success, so clearing is deferred to the payment-confirmation
// webhook. There is no idempotency key — two checkouts on the same cart
// create two orders.
func (s *checkoutService) Checkout(ctx context.Context, customerID uuid.UUID, req *model.CheckoutRequest) (*model.CheckoutResponse, error) {
	if err := validateShippingAddress(req); err != nil {
		s.logger.Warn().
			Str("customer_id", customerID.String()).
			Err(err).
			Msg("invalid shipping address")
		return nil, err
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("checkout failed: %w", err)
	}

	// Roll back on any failure between here and commit; nothing staged in
	// the transaction survives.
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback checkout transaction")
			}
		}
	}()

	snapshot, err := s.cartRepo.GetSnapshot(ctx, tx, customerID)
	if err != nil {
		return nil, err
	}

	rates, err := s.settingRepo.ShippingRates(ctx)
	if err != nil {
		return nil, err
	}

	shippingCost := shipping.Cost(snapshot.TotalQuantity, rates)
	finalAmount := snapshot.Subtotal.Add(shippingCost)

	now := time.Now()
	order := &model.Order{
		ID:              uuid.New(),
		CustomerID:      customerID,
		TotalPrice:      finalAmount.InexactFloat64(),
		Status:          model.StatusPending,
		ShippingAddress: req.ShippingAddress,
		ShippingCity:    req.ShippingCity,
		ShippingState:   req.ShippingState,
		ShippingZip:     req.ShippingZip,
		ShippingCountry: req.ShippingCountry,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		return nil, fmt.Errorf("checkout failed: %w", err)
	}

	// Freeze each product's current unit price into the order item.
	orderItems := make([]model.OrderItem, len(snapshot.Items))
	for i, item := range snapshot.Items {
		orderItems[i] = model.OrderItem{
			ID:              uuid.New(),
			OrderID:         order.ID,
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			PriceAtCheckout: item.UnitPrice,
		}
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, orderItems); err != nil {
		return nil, fmt.Errorf("checkout failed: %w", err)
	}

	sessionReq := payment.BuildSessionRequest(order, snapshot.Items, shippingCost, s.opts)

	session, providerErr := s.provider.CreateSession(ctx, sessionReq)
	if providerErr != nil {
		s.logger.Error().
			Err(providerErr).
			Str("customer_id", customerID.String()).
			Str("cart_id", snapshot.CartID.String()).
			Str("amount", finalAmount.StringFixed(2)).
			Msg("payment session creation failed")
		err = fmt.Errorf("%w: %v", model.ErrPaymentProvider, providerErr)
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Str("session_id", session.ID).
			Msg("failed to commit checkout; payment session may be orphaned")
		return nil, fmt.Errorf("checkout failed: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("customer_id", customerID.String()).
		Str("session_id", session.ID).
		Str("total_price", finalAmount.StringFixed(2)).
		Int("item_count", len(orderItems)).
		Msg("checkout completed")

	return &model.CheckoutResponse{
		Message:    "Checkout session created successfully.",
		OrderID:    order.ID,
		SessionURL: session.URL,
	}, nil
}

// validateShippingAddress checks that every address field is present and
// non-empty before any persistence happens.
func validateShippingAddress(req *model.CheckoutRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeValidation, "checkout request is required")
	}

	fields := map[string]string{
		"shipping_address": req.ShippingAddress,
		"shipping_city":    req.ShippingCity,
		"shipping_state":   req.ShippingState,
		"shipping_zip":     req.ShippingZip,
		"shipping_country": req.ShippingCountry,
	}

	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			return model.NewDomainError(model.ErrCodeValidation, name+" is required")
		}
	}

	return nil
}
