package repository

import (
	"context"
	"errors"
	"fmt"

	"stitchkart/internal/model"
	"stitchkart/internal/shipping"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// settingRepository implements the SettingRepository interface using PostgreSQL.
type settingRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewSettingRepository creates a new PostgreSQL-backed setting repository.
func NewSettingRepository(pool *pgxpool.Pool, logger zerolog.Logger) SettingRepository {
	return &settingRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "setting").Logger(),
	}
}

// Get retrieves a setting by key.
func (r *settingRepository) Get(ctx context.Context, key string) (*model.Setting, error) {
	query := `SELECT config_key, config_value FROM configs WHERE config_key = $1`

	var setting model.Setting
	err := r.pool.QueryRow(ctx, query, key).Scan(&setting.Key, &setting.Value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("config_key", key).Msg("setting not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("config_key", key).Msg("failed to query setting")
		return nil, fmt.Errorf("failed to query setting: %w", err)
	}

	return &setting, nil
}

// Set updates an existing setting's value.
func (r *settingRepository) Set(ctx context.Context, key, value string) error {
	query := `UPDATE configs SET config_value = $1 WHERE config_key = $2`

	tag, err := r.pool.Exec(ctx, query, value, key)
	if err != nil {
		r.logger.Error().Err(err).Str("config_key", key).Msg("failed to update setting")
		return fmt.Errorf("failed to update setting: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrSettingNotFound
	}

	r.logger.Info().Str("config_key", key).Msg("setting updated")

	return nil
}

// Add inserts a new setting.
func (r *settingRepository) Add(ctx context.Context, key, value string) error {
	query := `INSERT INTO configs (config_key, config_value) VALUES ($1, $2)`

	_, err := r.pool.Exec(ctx, query, key, value)
	if err != nil {
		r.logger.Error().Err(err).Str("config_key", key).Msg("failed to insert setting")
		return fmt.Errorf("failed to insert setting: %w", err)
	}

	return nil
}

// Delete removes a setting.
func (r *settingRepository) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM configs WHERE config_key = $1`

	tag, err := r.pool.Exec(ctx, query, key)
	if err != nil {
		r.logger.Error().Err(err).Str("config_key", key).Msg("failed to delete setting")
		return fmt.Errorf("failed to delete setting: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrSettingNotFound
	}

	return nil
}

// ShippingRates resolves the shipping parameters into a typed struct once
// per checkout. A missing or malformed key is a fatal precondition for
// checkout, reported as model.ErrConfigMissing.
func (r *settingRepository) ShippingRates(ctx context.Context) (shipping.Rates, error) {
	base, err := r.decimalValue(ctx, model.SettingShippingBaseCost)
	if err != nil {
		return shipping.Rates{}, err
	}

	ratio, err := r.decimalValue(ctx, model.SettingShippingAdditionalRate)
	if err != nil {
		return shipping.Rates{}, err
	}

	return shipping.Rates{BaseCost: base, AdditionalRatio: ratio}, nil
}

func (r *settingRepository) decimalValue(ctx context.Context, key string) (decimal.Decimal, error) {
	setting, err := r.Get(ctx, key)
	if err != nil {
		return decimal.Zero, err
	}
	if setting == nil {
		r.logger.Error().Str("config_key", key).Msg("required shipping configuration absent")
		return decimal.Zero, fmt.Errorf("%w: %s", model.ErrConfigMissing, key)
	}

	value, err := decimal.NewFromString(setting.Value)
	if err != nil {
		r.logger.Error().Err(err).
			Str("config_key", key).
			Str("config_value", setting.Value).
			Msg("shipping configuration is not a decimal")
		return decimal.Zero, fmt.Errorf("%w: %s", model.ErrConfigMissing, key)
	}

	return value, nil
}
