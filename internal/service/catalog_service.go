package service

import (
	"context"
	"fmt"

	"stitchkart/internal/model"
	"stitchkart/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// catalogService implements CatalogService.
type catalogService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(productRepo repository.ProductRepository, logger zerolog.Logger) CatalogService {
	return &catalogService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "catalog").Logger(),
	}
}

// GetAll retrieves products with pagination.
func (s *catalogService) GetAll(ctx context.Context, limit, offset int) ([]model.Product, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	products, err := s.productRepo.GetAll(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *catalogService) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	return product, nil
}
