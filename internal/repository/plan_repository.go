package repository

import (
	"context"
	"fmt"

	"storefront/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

type planRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPlanRepository creates a new PostgreSQL-backed subscription plan repository.
func NewPlanRepository(pool *pgxpool.Pool, logger zerolog.Logger) PlanRepository {
	return &planRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "plan").Logger(),
	}
}

func (r *planRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM subscription_plans`).Scan(&n); err != nil {
		r.logger.Error().Err(err).Msg("failed to count subscription plans")
		return 0, fmt.Errorf("failed to count subscription plans: %w", err)
	}
	return n, nil
}

func (r *planRepository) CreatePlans(ctx context.Context, plans []model.SubscriptionPlan) (int64, error) {
	if len(plans) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO subscription_plans
			(id, name, description, monthly_price, duration_months, max_products, max_orders_per_month, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (name) DO NOTHING
	`

	batch := &pgx.Batch{}
	for _, p := range plans {
		batch.Queue(query,
			p.ID, p.Name, p.Description, p.MonthlyPrice, p.DurationMonths,
			p.MaxProducts, p.MaxOrdersPerMonth, p.IsActive, p.CreatedAt,
		)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	var inserted int64
	for i := range plans {
		tag, err := results.Exec()
		if err != nil {
			r.logger.Error().Err(err).Str("plan", plans[i].Name).Msg("failed to create subscription plan")
			return inserted, fmt.Errorf("failed to create subscription plan %q: %w", plans[i].Name, err)
		}
		inserted += tag.RowsAffected()
	}

	r.logger.Debug().Int64("inserted", inserted).Int("offered", len(plans)).Msg("subscription plans created")

	return inserted, nil
}
