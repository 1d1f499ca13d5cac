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

const cartItemColumns = `id, cart_id, product_id, quantity, created_at, updated_at`

// cartRepository implements the CartRepository interface using PostgreSQL.
type cartRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCartRepository creates a new PostgreSQL-backed cart repository.
func NewCartRepository(pool *pgxpool.Pool, logger zerolog.Logger) CartRepository {
	return &cartRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "cart").Logger(),
	}
}

func scanCartItem(row pgx.Row, item *model.CartItem) error {
	return row.Scan(&item.ID, &item.CartID, &item.ProductID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt)
}

// GetOrCreate relies on the unique user_id constraint so concurrent first
// requests for the same user converge on one cart.
func (r *cartRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*model.Cart, error) {
	insert := `
		INSERT INTO carts (id, user_id, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (user_id) DO NOTHING
	`

	tag, err := r.pool.Exec(ctx, insert, uuid.New(), userID)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to create cart")
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}
	if tag.RowsAffected() > 0 {
		r.logger.Debug().Str("user_id", userID.String()).Msg("cart created")
	}

	cart, err := r.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, fmt.Errorf("cart for user %s vanished after creation", userID)
	}
	return cart, nil
}

func (r *cartRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Cart, error) {
	query := `SELECT id, user_id, created_at, updated_at FROM carts WHERE user_id = $1`

	var c model.Cart
	err := r.pool.QueryRow(ctx, query, userID).Scan(&c.ID, &c.UserID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to query cart")
		return nil, fmt.Errorf("failed to query cart: %w", err)
	}

	return &c, nil
}

func (r *cartRepository) ListItems(ctx context.Context, cartID uuid.UUID) ([]model.CartItem, error) {
	query := `
		SELECT ` + cartItemColumns + `
		FROM cart_items
		WHERE cart_id = $1
		ORDER BY created_at, id
	`

	rows, err := r.pool.Query(ctx, query, cartID)
	if err != nil {
		r.logger.Error().Err(err).Str("cart_id", cartID.String()).Msg("failed to query cart items")
		return nil, fmt.Errorf("failed to query cart items: %w", err)
	}
	defer rows.Close()

	items := []model.CartItem{}
	for rows.Next() {
		var item model.CartItem
		if err := scanCartItem(rows, &item); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan cart item row")
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating cart item rows")
		return nil, fmt.Errorf("error iterating cart items: %w", err)
	}

	return items, nil
}

// UpsertItem increments in the database so that concurrent adds of the same
// product are never lost.
func (r *cartRepository) UpsertItem(ctx context.Context, cartID, productID uuid.UUID, quantity int) (*model.CartItem, error) {
	query := `
		INSERT INTO cart_items (id, cart_id, product_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (cart_id, product_id) DO UPDATE
		SET quantity = cart_items.quantity + EXCLUDED.quantity,
		    updated_at = NOW()
		RETURNING ` + cartItemColumns

	var item model.CartItem
	err := scanCartItem(r.pool.QueryRow(ctx, query, uuid.New(), cartID, productID, quantity), &item)
	if err != nil {
		if isOutOfRange(err) {
			r.logger.Warn().
				Str("cart_id", cartID.String()).
				Str("product_id", productID.String()).
				Int("quantity", quantity).
				Msg("merged cart line quantity out of range")
			return nil, ErrQuantityOutOfRange
		}
		r.logger.Error().
			Err(err).
			Str("cart_id", cartID.String()).
			Str("product_id", productID.String()).
			Msg("failed to upsert cart item")
		return nil, fmt.Errorf("failed to upsert cart item: %w", err)
	}

	r.logger.Debug().
		Str("cart_item_id", item.ID.String()).
		Int("quantity", item.Quantity).
		Msg("cart item upserted")

	return &item, nil
}

func (r *cartRepository) GetItem(ctx context.Context, itemID uuid.UUID) (*model.CartItem, error) {
	query := `SELECT ` + cartItemColumns + ` FROM cart_items WHERE id = $1`

	var item model.CartItem
	err := scanCartItem(r.pool.QueryRow(ctx, query, itemID), &item)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("cart_item_id", itemID.String()).Msg("failed to query cart item")
		return nil, fmt.Errorf("failed to query cart item: %w", err)
	}

	return &item, nil
}

func (r *cartRepository) UpdateItemQuantity(ctx context.Context, cartID, itemID uuid.UUID, quantity int) (*model.CartItem, error) {
	query := `
		UPDATE cart_items
		SET quantity = $3, updated_at = NOW()
		WHERE id = $1 AND cart_id = $2
		RETURNING ` + cartItemColumns

	var item model.CartItem
	err := scanCartItem(r.pool.QueryRow(ctx, query, itemID, cartID, quantity), &item)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("cart_item_id", itemID.String()).Msg("failed to update cart item")
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}

	return &item, nil
}

func (r *cartRepository) DeleteItem(ctx context.Context, cartID, itemID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE id = $1 AND cart_id = $2`, itemID, cartID)
	if err != nil {
		r.logger.Error().Err(err).Str("cart_item_id", itemID.String()).Msg("failed to delete cart item")
		return false, fmt.Errorf("failed to delete cart item: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *cartRepository) ClearItems(ctx context.Context, cartID uuid.UUID) (int64, error) {
	return r.deleteItems(ctx, r.pool, cartID, nil)
}

func (r *cartRepository) LockCheckoutLines(ctx context.Context, tx pgx.Tx, cartID uuid.UUID) ([]model.CheckoutLine, error) {
	query := `
		SELECT ci.id, ci.product_id, ci.quantity, p.price
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1
		ORDER BY ci.created_at, ci.id
		FOR UPDATE OF ci
	`

	rows, err := tx.Query(ctx, query, cartID)
	if err != nil {
		r.logger.Error().Err(err).Str("cart_id", cartID.String()).Msg("failed to lock checkout lines")
		return nil, fmt.Errorf("failed to lock checkout lines: %w", err)
	}
	defer rows.Close()

	var lines []model.CheckoutLine
	for rows.Next() {
		var l model.CheckoutLine
		if err := rows.Scan(&l.CartItemID, &l.ProductID, &l.Quantity, &l.UnitPrice); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan checkout line")
			return nil, fmt.Errorf("failed to scan checkout line: %w", err)
		}
		lines = append(lines, l)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating checkout lines")
		return nil, fmt.Errorf("error iterating checkout lines: %w", err)
	}

	return lines, nil
}

func (r *cartRepository) DeleteItemsTx(ctx context.Context, tx pgx.Tx, cartID uuid.UUID, itemIDs []uuid.UUID) (int64, error) {
	if len(itemIDs) == 0 {
		return 0, nil
	}
	return r.deleteItems(ctx, tx, cartID, itemIDs)
}

// deleteItems removes itemIDs from the cart, or every line when itemIDs is nil.
func (r *cartRepository) deleteItems(ctx context.Context, q querier, cartID uuid.UUID, itemIDs []uuid.UUID) (int64, error) {
	query := `DELETE FROM cart_items WHERE cart_id = $1`
	args := []any{cartID}
	if itemIDs != nil {
		query += ` AND id = ANY($2)`
		args = append(args, itemIDs)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Str("cart_id", cartID.String()).Msg("failed to delete cart items")
		return 0, fmt.Errorf("failed to delete cart items: %w", err)
	}

	r.logger.Debug().
		Str("cart_id", cartID.String()).
		Int64("deleted", tag.RowsAffected()).
		Msg("cart items deleted")

	return tag.RowsAffected(), nil
}
