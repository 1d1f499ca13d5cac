package repository

import (
	"context"
	"testing"

	"storefront/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanRepository_CreatePlans(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewPlanRepository(pool, zerolog.Nop())
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	plans := []model.SubscriptionPlan{
		{ID: uuid.New(), Name: "Basic", MonthlyPrice: dec("9.99"), DurationMonths: 1, MaxProducts: 50, MaxOrdersPerMonth: 500, IsActive: true, CreatedAt: nowUTC()},
		{ID: uuid.New(), Name: "Pro", MonthlyPrice: dec("29.99"), DurationMonths: 12, MaxProducts: -1, MaxOrdersPerMonth: -1, IsActive: true, CreatedAt: nowUTC()},
	}

	inserted, err := repo.CreatePlans(ctx, plans)
	require.NoError(t, err)
	assert.Equal(t, int64(2), inserted)

	// Names are unique; a second run inserts nothing.
	plans[0].ID, plans[1].ID = uuid.New(), uuid.New()
	inserted, err = repo.CreatePlans(ctx, plans)
	require.NoError(t, err)
	assert.Zero(t, inserted)

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	inserted, err = repo.CreatePlans(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, inserted)
}

func TestUserAndShopRepository_GetByID(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	users := NewUserRepository(pool, zerolog.Nop())
	shops := NewShopRepository(pool, zerolog.Nop())
	ctx := context.Background()

	userID := seedUser(t, pool)
	shopID := seedShop(t, pool, userID, seedPlan(t, pool, "5.00"), nowUTC(), true)

	u, err := users.GetByID(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, userID, u.ID)

	missingUser, err := users.GetByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missingUser)

	s, err := shops.GetByID(ctx, shopID)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, userID, s.OwnerID)
	assert.True(t, s.IsActive)
	assert.Nil(t, s.SubscriptionEndDate)

	missingShop, err := shops.GetByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missingShop)
}
