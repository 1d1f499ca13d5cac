package repository

import (
	"context"
	"testing"

	"storefront/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestCartRepository_GetOrCreate(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewCartRepository(pool, zerolog.Nop())
	ctx := context.Background()
	user := seedUser(t, pool)

	missing, err := repo.GetByUserID(ctx, user)
	require.NoError(t, err)
	assert.Nil(t, missing)

	first, err := repo.GetOrCreate(ctx, user)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, user, first.UserID)

	second, err := repo.GetOrCreate(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestCartRepository_GetOrCreate_Concurrent(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewCartRepository(pool, zerolog.Nop())
	ctx := context.Background()
	user := seedUser(t, pool)

	ids := make([]uuid.UUID, 8)
	g, gctx := errgroup.WithContext(ctx)
	for i := range ids {
		g.Go(func() error {
			cart, err := repo.GetOrCreate(gctx, user)
			if err != nil {
				return err
			}
			ids[i] = cart.ID
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
}

func TestCartRepository_UpsertItem(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewCartRepository(pool, zerolog.Nop())
	ctx := context.Background()
	user := seedUser(t, pool)
	product := seedProduct(t, pool, nil, "10.00", 5)

	cart, err := repo.GetOrCreate(ctx, user)
	require.NoError(t, err)

	item, err := repo.UpsertItem(ctx, cart.ID, product, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)

	merged, err := repo.UpsertItem(ctx, cart.ID, product, 3)
	require.NoError(t, err)
	assert.Equal(t, item.ID, merged.ID)
	assert.Equal(t, 5, merged.Quantity)

	items, err := repo.ListItems(ctx, cart.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestCartRepository_UpsertItem_Overflow(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewCartRepository(pool, zerolog.Nop())
	ctx := context.Background()
	user := seedUser(t, pool)
	product := seedProduct(t, pool, nil, "1.00", 5)

	cart, err := repo.GetOrCreate(ctx, user)
	require.NoError(t, err)

	_, err = repo.UpsertItem(ctx, cart.ID, product, model.MaxLineQuantity)
	require.NoError(t, err)

	_, err = repo.UpsertItem(ctx, cart.ID, product, 1)
	assert.ErrorIs(t, err, ErrQuantityOutOfRange)

	items, err := repo.ListItems(ctx, cart.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, model.MaxLineQuantity, items[0].Quantity)
}

func TestCartRepository_UpsertItem_ConcurrentAddsAreNotLost(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewCartRepository(pool, zerolog.Nop())
	ctx := context.Background()
	user := seedUser(t, pool)
	product := seedProduct(t, pool, nil, "1.00", 100)

	cart, err := repo.GetOrCreate(ctx, user)
	require.NoError(t, err)

	const workers = 10
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			_, err := repo.UpsertItem(gctx, cart.ID, product, 1)
			return err
		})
	}
	require.NoError(t, g.Wait())

	items, err := repo.ListItems(ctx, cart.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, workers, items[0].Quantity)
}

func TestCartRepository_ItemsScopedToCart(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewCartRepository(pool, zerolog.Nop())
	ctx := context.Background()
	product := seedProduct(t, pool, nil, "4.00", 5)

	mine, err := repo.GetOrCreate(ctx, seedUser(t, pool))
	require.NoError(t, err)
	theirs, err := repo.GetOrCreate(ctx, seedUser(t, pool))
	require.NoError(t, err)

	item, err := repo.UpsertItem(ctx, theirs.ID, product, 1)
	require.NoError(t, err)

	got, err := repo.GetItem(ctx, item.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, theirs.ID, got.CartID)

	updated, err := repo.UpdateItemQuantity(ctx, mine.ID, item.ID, 7)
	require.NoError(t, err)
	assert.Nil(t, updated)

	deleted, err := repo.DeleteItem(ctx, mine.ID, item.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	updated, err = repo.UpdateItemQuantity(ctx, theirs.ID, item.ID, 7)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 7, updated.Quantity)

	deleted, err = repo.DeleteItem(ctx, theirs.ID, item.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	gone, err := repo.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestCartRepository_CheckoutLines(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewCartRepository(pool, zerolog.Nop())
	ctx := context.Background()
	user := seedUser(t, pool)
	p1 := seedProduct(t, pool, nil, "10.00", 5)
	p2 := seedProduct(t, pool, nil, "2.50", 5)

	cart, err := repo.GetOrCreate(ctx, user)
	require.NoError(t, err)
	a, err := repo.UpsertItem(ctx, cart.ID, p1, 2)
	require.NoError(t, err)
	b, err := repo.UpsertItem(ctx, cart.ID, p2, 2)
	require.NoError(t, err)

	tx, err := pool.Begin(ctx)
	require.NoError(t, err)
	defer tx.Rollback(ctx)

	lines, err := repo.LockCheckoutLines(ctx, tx, cart.ID)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	prices := map[uuid.UUID]string{}
	for _, l := range lines {
		prices[l.CartItemID] = l.UnitPrice.StringFixed(2)
	}
	assert.Equal(t, "10.00", prices[a.ID])
	assert.Equal(t, "2.50", prices[b.ID])

	n, err := repo.DeleteItemsTx(ctx, tx, cart.ID, []uuid.UUID{a.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	require.NoError(t, tx.Commit(ctx))

	items, err := repo.ListItems(ctx, cart.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, b.ID, items[0].ID)

	cleared, err := repo.ClearItems(ctx, cart.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cleared)

	cleared, err = repo.ClearItems(ctx, cart.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cleared)
}
