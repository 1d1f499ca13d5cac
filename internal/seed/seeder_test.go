package seed

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPlanRepository struct {
	mock.Mock
}

func (m *mockPlanRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPlanRepository) CreatePlans(ctx context.Context, plans []model.SubscriptionPlan) (int64, error) {
	args := m.Called(ctx, plans)
	return args.Get(0).(int64), args.Error(1)
}

func TestSeeder_Run(t *testing.T) {
	ctx := context.Background()
	plans := []model.SubscriptionPlan{{Name: "Basic"}, {Name: "Pro"}}
	loader := &mockLoader{
		loadFunc: func(ctx context.Context, path string) ([]model.SubscriptionPlan, error) {
			assert.Equal(t, "plans.gz", path)
			return plans, nil
		},
	}

	t.Run("seeds empty table", func(t *testing.T) {
		repo := new(mockPlanRepository)
		repo.On("Count", ctx).Return(int64(0), nil)
		repo.On("CreatePlans", ctx, plans).Return(int64(2), nil)

		n, err := NewSeeder(repo, loader, "plans.gz", zerolog.Nop()).Run(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
		repo.AssertExpectations(t)
	})

	t.Run("skips when plans exist", func(t *testing.T) {
		repo := new(mockPlanRepository)
		repo.On("Count", ctx).Return(int64(3), nil)

		n, err := NewSeeder(repo, loader, "plans.gz", zerolog.Nop()).Run(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
		repo.AssertNotCalled(t, "CreatePlans", mock.Anything, mock.Anything)
	})

	t.Run("loader failure", func(t *testing.T) {
		repo := new(mockPlanRepository)
		repo.On("Count", ctx).Return(int64(0), nil)
		failing := &mockLoader{}

		_, err := NewSeeder(repo, failing, "plans.gz", zerolog.Nop()).Run(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load plans")
	})

	t.Run("count failure", func(t *testing.T) {
		repo := new(mockPlanRepository)
		repo.On("Count", ctx).Return(int64(0), errors.New("db down"))

		_, err := NewSeeder(repo, loader, "plans.gz", zerolog.Nop()).Run(ctx)
		require.Error(t, err)
	})
}
