package seed

import (
	"compress/gzip"
	"context"
	"fmt"
	"os"

	"storefront/internal/model"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for reading gzipped plan files from disk.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based plan loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "plan-loader").Logger(),
	}
}

// Load reads a gzipped plan file.
func (l *fileLoader) Load(ctx context.Context, filePath string) ([]model.SubscriptionPlan, error) {
	l.logger.Info().Str("file", filePath).Msg("loading plan file")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open plan file")
		return nil, fmt.Errorf("failed to open plan file %s: %w", filePath, err)
	}
	defer file.Close()

	gzipReader, err := gzip.NewReader(file)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to create gzip reader")
		return nil, fmt.Errorf("failed to create gzip reader for %s: %w", filePath, err)
	}
	defer gzipReader.Close()

	plans, err := decodePlans(ctx, gzipReader)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("error reading plan file")
		return nil, fmt.Errorf("error reading plan file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("plans_loaded", len(plans)).
		Msg("plan file loaded successfully")

	return plans, nil
}
