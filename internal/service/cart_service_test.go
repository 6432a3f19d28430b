package service

import (
	"context"
	"testing"

	"stitchkart/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartService_GetCart(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	cartID := uuid.New()

	t.Run("returns lines for existing cart", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		svc := NewCartService(cartRepo, new(MockProductRepository), zerolog.Nop())

		lines := []model.CartLine{
			{ItemID: uuid.New(), ProductID: uuid.New(), Name: "Tee", UnitPrice: 10.00, Quantity: 2},
		}
		cartRepo.On("GetByCustomer", ctx, customerID).Return(&model.Cart{ID: cartID, CustomerID: customerID}, nil)
		cartRepo.On("GetLines", ctx, cartID).Return(lines, nil)

		view, err := svc.GetCart(ctx, customerID)

		require.NoError(t, err)
		assert.Equal(t, cartID, view.CartID)
		assert.Equal(t, lines, view.Items)
	})

	t.Run("no cart yet", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		svc := NewCartService(cartRepo, new(MockProductRepository), zerolog.Nop())

		cartRepo.On("GetByCustomer", ctx, customerID).Return(nil, nil)

		_, err := svc.GetCart(ctx, customerID)

		require.ErrorIs(t, err, model.ErrNoActiveCart)
	})
}

func TestCartService_AddItem(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()
	product := &model.Product{ID: productID, Name: "Tee", Price: 10.00, Stock: 5}

	t.Run("adds to existing cart", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		svc := NewCartService(cartRepo, productRepo, zerolog.Nop())

		productRepo.On("GetByID", ctx, productID).Return(product, nil)
		cartRepo.On("GetByCustomer", ctx, customerID).Return(&model.Cart{ID: cartID, CustomerID: customerID}, nil)
		cartRepo.On("AddItem", ctx, cartID, productID, 2).
			Return(&model.CartItem{ID: uuid.New(), CartID: cartID, ProductID: productID, Quantity: 2}, nil)

		item, err := svc.AddItem(ctx, customerID, &model.AddCartItemRequest{ProductID: productID, Quantity: 2})

		require.NoError(t, err)
		assert.Equal(t, 2, item.Quantity)
		cartRepo.AssertNotCalled(t, "Create", ctx, customerID)
	})

	t.Run("creates cart on first add", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		svc := NewCartService(cartRepo, productRepo, zerolog.Nop())

		productRepo.On("GetByID", ctx, productID).Return(product, nil)
		cartRepo.On("GetByCustomer", ctx, customerID).Return(nil, nil)
		cartRepo.On("Create", ctx, customerID).Return(&model.Cart{ID: cartID, CustomerID: customerID}, nil)
		cartRepo.On("AddItem", ctx, cartID, productID, 1).
			Return(&model.CartItem{ID: uuid.New(), CartID: cartID, ProductID: productID, Quantity: 1}, nil)

		item, err := svc.AddItem(ctx, customerID, &model.AddCartItemRequest{ProductID: productID, Quantity: 1})

		require.NoError(t, err)
		assert.Equal(t, cartID, item.CartID)
		cartRepo.AssertExpectations(t)
	})

	t.Run("unknown product", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		svc := NewCartService(cartRepo, productRepo, zerolog.Nop())

		productRepo.On("GetByID", ctx, productID).Return(nil, nil)

		_, err := svc.AddItem(ctx, customerID, &model.AddCartItemRequest{ProductID: productID, Quantity: 1})

		require.ErrorIs(t, err, model.ErrProductNotFound)
		cartRepo.AssertNotCalled(t, "AddItem", ctx, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		svc := NewCartService(new(MockCartRepository), productRepo, zerolog.Nop())

		_, err := svc.AddItem(ctx, customerID, &model.AddCartItemRequest{ProductID: productID, Quantity: 0})

		require.ErrorIs(t, err, model.ErrInvalidQuantity)
		productRepo.AssertNotCalled(t, "GetByID", ctx, productID)
	})

	t.Run("missing product id", func(t *testing.T) {
		svc := NewCartService(new(MockCartRepository), new(MockProductRepository), zerolog.Nop())

		_, err := svc.AddItem(ctx, customerID, &model.AddCartItemRequest{Quantity: 1})

		var domainErr *model.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, model.ErrCodeValidation, domainErr.Code)
	})
}

func TestCartService_UpdateItem(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	cartID := uuid.New()
	itemID := uuid.New()

	t.Run("updates quantity", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		svc := NewCartService(cartRepo, new(MockProductRepository), zerolog.Nop())

		cartRepo.On("GetByCustomer", ctx, customerID).Return(&model.Cart{ID: cartID, CustomerID: customerID}, nil)
		cartRepo.On("UpdateItemQuantity", ctx, cartID, itemID, 3).Return(nil)

		require.NoError(t, svc.UpdateItem(ctx, customerID, itemID, 3))
		cartRepo.AssertExpectations(t)
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		svc := NewCartService(cartRepo, new(MockProductRepository), zerolog.Nop())

		err := svc.UpdateItem(ctx, customerID, itemID, 0)

		require.ErrorIs(t, err, model.ErrInvalidQuantity)
		cartRepo.AssertNotCalled(t, "GetByCustomer", ctx, customerID)
	})

	t.Run("no cart", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		svc := NewCartService(cartRepo, new(MockProductRepository), zerolog.Nop())

		cartRepo.On("GetByCustomer", ctx, customerID).Return(nil, nil)

		err := svc.UpdateItem(ctx, customerID, itemID, 3)

		require.ErrorIs(t, err, model.ErrNoActiveCart)
	})
}

func TestCartService_RemoveItem(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	cartID := uuid.New()
	itemID := uuid.New()

	t.Run("removes line", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		svc := NewCartService(cartRepo, new(MockProductRepository), zerolog.Nop())

		cartRepo.On("GetByCustomer", ctx, customerID).Return(&model.Cart{ID: cartID, CustomerID: customerID}, nil)
		cartRepo.On("RemoveItem", ctx, cartID, itemID).Return(nil)

		require.NoError(t, svc.RemoveItem(ctx, customerID, itemID))
	})

	t.Run("missing line propagates", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		svc := NewCartService(cartRepo, new(MockProductRepository), zerolog.Nop())

		cartRepo.On("GetByCustomer", ctx, customerID).Return(&model.Cart{ID: cartID, CustomerID: customerID}, nil)
		cartRepo.On("RemoveItem", ctx, cartID, itemID).Return(model.ErrCartItemMissing)

		err := svc.RemoveItem(ctx, customerID, itemID)

		require.ErrorIs(t, err, model.ErrCartItemMissing)
	})
}
