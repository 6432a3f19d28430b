package service

import (
	"context"
	"fmt"
	"strings"

	"stitchkart/internal/model"
	"stitchkart/internal/repository"

	"github.com/rs/zerolog"
)

// settingService implements SettingService.
type settingService struct {
	settingRepo repository.SettingRepository
	logger      zerolog.Logger
}

// NewSettingService creates a new setting service.
func NewSettingService(settingRepo repository.SettingRepository, logger zerolog.Logger) SettingService {
	return &settingService{
		settingRepo: settingRepo,
		logger:      logger.With().Str("service", "setting").Logger(),
	}
}

func (s *settingService) Get(ctx context.Context, key string) (*model.Setting, error) {
	setting, err := s.settingRepo.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get setting: %w", err)
	}
	if setting == nil {
		return nil, model.ErrSettingNotFound
	}
	return setting, nil
}

func (s *settingService) Set(ctx context.Context, key, value string) error {
	if strings.TrimSpace(value) == "" {
		return model.NewDomainError(model.ErrCodeValidation, "config_value is required")
	}
	return s.settingRepo.Set(ctx, key, value)
}

func (s *settingService) Add(ctx context.Context, key, value string) error {
	if strings.TrimSpace(key) == "" {
		return model.NewDomainError(model.ErrCodeValidation, "config_key is required")
	}
	if strings.TrimSpace(value) == "" {
		return model.NewDomainError(model.ErrCodeValidation, "config_value is required")
	}

	existing, err := s.settingRepo.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to add setting: %w", err)
	}
	if existing != nil {
		return model.NewDomainError(model.ErrCodeValidation, "config_key already exists")
	}

	return s.settingRepo.Add(ctx, key, value)
}

func (s *settingService) Delete(ctx context.Context, key string) error {
	return s.settingRepo.Delete(ctx, key)
}
