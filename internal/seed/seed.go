// Package seed loads subscription plan fixtures and inserts them into an empty database.
package seed

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"storefront/internal/model"

	"github.com/google/uuid"
)

// Loader defines the interface for loading plan fixture files.
type Loader interface {
	// Load reads a gzipped JSON-lines plan file.
	Load(ctx context.Context, path string) ([]model.SubscriptionPlan, error)
}

// decodePlans reads one JSON plan per line. Blank lines are skipped; missing
// IDs and creation times are filled in and isActive defaults to true.
func decodePlans(ctx context.Context, r io.Reader) ([]model.SubscriptionPlan, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	now := time.Now().UTC()
	var plans []model.SubscriptionPlan
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		p := model.SubscriptionPlan{IsActive: true}
		if err := json.Unmarshal([]byte(line), &p); err != nil {
			return nil, fmt.Errorf("line %d: invalid plan: %w", lineNo, err)
		}
		if err := validatePlan(p); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		if p.CreatedAt.IsZero() {
			p.CreatedAt = now
		}
		plans = append(plans, p)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read plans: %w", err)
	}

	return plans, nil
}

func validatePlan(p model.SubscriptionPlan) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("plan name is required")
	}
	if p.MonthlyPrice.IsNegative() {
		return fmt.Errorf("plan %q: monthly price cannot be negative", p.Name)
	}
	if p.DurationMonths < 1 {
		return fmt.Errorf("plan %q: duration must be at least one month", p.Name)
	}
	return nil
}
