package repository

import (
	"context"
	"fmt"

	"storefront/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const deliveryColumns = `id, order_id, status, tracking_number, address, estimated_delivery_date, actual_delivery_date`

type deliveryRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewDeliveryRepository creates a new PostgreSQL-backed delivery repository.
func NewDeliveryRepository(pool *pgxpool.Pool, logger zerolog.Logger) DeliveryRepository {
	return &deliveryRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "delivery").Logger(),
	}
}

func (r *deliveryRepository) Create(ctx context.Context, tx pgx.Tx, d *model.Delivery) error {
	query := `
		INSERT INTO deliveries (` + deliveryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := tx.Exec(ctx, query,
		d.ID,
		d.OrderID,
		d.Status,
		d.TrackingNumber,
		d.Address,
		d.EstimatedDeliveryDate,
		d.ActualDeliveryDate,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", d.OrderID.String()).
			Msg("failed to create delivery")
		return fmt.Errorf("failed to create delivery: %w", err)
	}

	r.logger.Debug().
		Str("order_id", d.OrderID.String()).
		Str("tracking_number", d.TrackingNumber).
		Msg("delivery created successfully")

	return nil
}

func (r *deliveryRepository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*model.Delivery, error) {
	return r.getOne(ctx, `SELECT `+deliveryColumns+` FROM deliveries WHERE tracking_number = $1`, trackingNumber)
}

func (r *deliveryRepository) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*model.Delivery, error) {
	return r.getOne(ctx, `SELECT `+deliveryColumns+` FROM deliveries WHERE order_id = $1`, orderID)
}

func (r *deliveryRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (*model.Delivery, error) {
	query := `
		SELECT d.id, d.order_id, d.status, d.tracking_number, d.address, d.estimated_delivery_date, d.actual_delivery_date
		FROM deliveries d
		JOIN orders o ON o.id = d.order_id
		WHERE o.order_number = $1
	`
	return r.getOne(ctx, query, orderNumber)
}

func (r *deliveryRepository) getOne(ctx context.Context, query string, arg any) (*model.Delivery, error) {
	deliveries, err := queryDeliveries(ctx, r.pool, query, arg)
	if err != nil {
		r.logger.Error().Err(err).Interface("key", arg).Msg("failed to query delivery")
		return nil, err
	}
	if len(deliveries) == 0 {
		r.logger.Debug().Interface("key", arg).Msg("delivery not found")
		return nil, nil
	}
	return &deliveries[0], nil
}

func queryDeliveries(ctx context.Context, q querier, query string, args ...any) ([]model.Delivery, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query deliveries: %w", err)
	}
	defer rows.Close()

	var deliveries []model.Delivery
	for rows.Next() {
		var d model.Delivery
		err := rows.Scan(
			&d.ID,
			&d.OrderID,
			&d.Status,
			&d.TrackingNumber,
			&d.Address,
			&d.EstimatedDeliveryDate,
			&d.ActualDeliveryDate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan delivery: %w", err)
		}
		deliveries = append(deliveries, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating deliveries: %w", err)
	}
	return deliveries, nil
}
