package repository

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type statisticsRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewStatisticsRepository creates a new PostgreSQL-backed statistics repository.
func NewStatisticsRepository(pool *pgxpool.Pool, logger zerolog.Logger) StatisticsRepository {
	return &statisticsRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "statistics").Logger(),
	}
}

// ShopSales counts an order once per shop even when it holds several of the shop's lines.
func (r *statisticsRepository) ShopSales(ctx context.Context, shopID uuid.UUID, since time.Time) (model.SalesFigures, model.SalesFigures, error) {
	query := `
		SELECT
			COALESCE(SUM(oi.price * oi.quantity), 0),
			COUNT(DISTINCT oi.order_id),
			COALESCE(SUM(oi.price * oi.quantity) FILTER (WHERE o.order_date > $2), 0),
			COUNT(DISTINCT oi.order_id) FILTER (WHERE o.order_date > $2)
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		JOIN orders o ON o.id = oi.order_id
		WHERE p.shop_id = $1
	`

	var all, window model.SalesFigures
	err := r.pool.QueryRow(ctx, query, shopID, since).Scan(
		&all.Revenue,
		&all.Orders,
		&window.Revenue,
		&window.Orders,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("shop_id", shopID.String()).Msg("failed to query shop sales")
		return model.SalesFigures{}, model.SalesFigures{}, fmt.Errorf("failed to query shop sales: %w", err)
	}

	return all, window, nil
}

func (r *statisticsRepository) ShopCatalogCounts(ctx context.Context, shopID uuid.UUID) (model.CatalogCounts, error) {
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE stock > 0)
		FROM products
		WHERE shop_id = $1
	`

	var c model.CatalogCounts
	if err := r.pool.QueryRow(ctx, query, shopID).Scan(&c.Total, &c.Active); err != nil {
		r.logger.Error().Err(err).Str("shop_id", shopID.String()).Msg("failed to query shop catalog counts")
		return model.CatalogCounts{}, fmt.Errorf("failed to query shop catalog counts: %w", err)
	}

	return c, nil
}

func (r *statisticsRepository) PlatformCounts(ctx context.Context) (model.PlatformCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM shops),
			(SELECT COUNT(*) FROM shops WHERE is_active),
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM orders)
	`

	var c model.PlatformCounts
	err := r.pool.QueryRow(ctx, query).Scan(&c.Shops, &c.ActiveShops, &c.Users, &c.Products, &c.Orders)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query platform counts")
		return model.PlatformCounts{}, fmt.Errorf("failed to query platform counts: %w", err)
	}

	return c, nil
}

func (r *statisticsRepository) TotalSalesRevenue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(price * quantity), 0) FROM order_items`).Scan(&total)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query total sales revenue")
		return decimal.Zero, fmt.Errorf("failed to query total sales revenue: %w", err)
	}
	return total, nil
}

func (r *statisticsRepository) ActiveShopSubscriptions(ctx context.Context) ([]model.ShopSubscription, error) {
	query := `
		SELECT s.id, sp.monthly_price, s.subscription_start_date, s.subscription_end_date
		FROM shops s
		JOIN subscription_plans sp ON sp.id = s.subscription_plan_id
		WHERE s.is_active
		ORDER BY s.id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query shop subscriptions")
		return nil, fmt.Errorf("failed to query shop subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []model.ShopSubscription
	for rows.Next() {
		var s model.ShopSubscription
		if err := rows.Scan(&s.ShopID, &s.MonthlyPrice, &s.StartDate, &s.EndDate); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan shop subscription row")
			return nil, fmt.Errorf("failed to scan shop subscription: %w", err)
		}
		subs = append(subs, s)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating shop subscription rows")
		return nil, fmt.Errorf("error iterating shop subscriptions: %w", err)
	}

	return subs, nil
}
