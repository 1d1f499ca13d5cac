package repository

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

type shopRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewShopRepository creates a new PostgreSQL-backed shop repository.
func NewShopRepository(pool *pgxpool.Pool, logger zerolog.Logger) ShopRepository {
	return &shopRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "shop").Logger(),
	}
}

func (r *shopRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Shop, error) {
	query := `
		SELECT id, owner_id, name, subscription_plan_id, subscription_start_date,
		       subscription_end_date, is_active, created_at, total_revenue, total_orders
		FROM shops
		WHERE id = $1
	`

	var s model.Shop
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID,
		&s.OwnerID,
		&s.Name,
		&s.PlanID,
		&s.SubscriptionStartDate,
		&s.SubscriptionEndDate,
		&s.IsActive,
		&s.CreatedAt,
		&s.TotalRevenue,
		&s.TotalOrders,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("shop_id", id.String()).Msg("shop not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("shop_id", id.String()).Msg("failed to query shop")
		return nil, fmt.Errorf("failed to query shop: %w", err)
	}

	return &s, nil
}
