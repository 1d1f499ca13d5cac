package seed

import (
	"context"
	"fmt"

	"storefront/internal/repository"

	"github.com/rs/zerolog"
)

// Seeder inserts fixture plans into an empty plan table.
type Seeder struct {
	plans  repository.PlanRepository
	loader Loader
	path   string
	logger zerolog.Logger
}

// NewSeeder creates a Seeder that loads plans from path.
func NewSeeder(plans repository.PlanRepository, loader Loader, path string, logger zerolog.Logger) *Seeder {
	return &Seeder{
		plans:  plans,
		loader: loader,
		path:   path,
		logger: logger.With().Str("component", "seeder").Logger(),
	}
}

// Run seeds subscription plans unless any plan already exists. It returns the
// number of plans inserted.
func (s *Seeder) Run(ctx context.Context) (int64, error) {
	existing, err := s.plans.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count plans: %w", err)
	}
	if existing > 0 {
		s.logger.Info().Int64("existing", existing).Msg("subscription plans present, skipping seed")
		return 0, nil
	}

	plans, err := s.loader.Load(ctx, s.path)
	if err != nil {
		return 0, fmt.Errorf("failed to load plans: %w", err)
	}

	inserted, err := s.plans.CreatePlans(ctx, plans)
	if err != nil {
		return inserted, fmt.Errorf("failed to insert plans: %w", err)
	}

	s.logger.Info().Int64("inserted", inserted).Msg("subscription plans seeded")
	return inserted, nil
}
