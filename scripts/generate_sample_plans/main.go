package main

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
)

type planFixture struct {
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	MonthlyPrice      decimal.Decimal `json:"monthlyPrice"`
	DurationMonths    int             `json:"durationMonths"`
	MaxProducts       int             `json:"maxProducts"`
	MaxOrdersPerMonth int             `json:"maxOrdersPerMonth"`
}

// generateSamplePlans writes the default subscription plan fixture used by the
// startup seeder. A limit of -1 means unlimited.
func main() {
	dataDir := "data/seed"

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	plans := []planFixture{
		{"Starter", "For new sellers trying the platform", decimal.RequireFromString("9.99"), 1, 50, 500},
		{"Growth", "For shops with a steady order flow", decimal.RequireFromString("29.99"), 6, 500, 5000},
		{"Enterprise", "Unlimited catalogue and orders", decimal.RequireFromString("99.00"), 12, -1, -1},
	}

	filePath := filepath.Join(dataDir, "plans.jsonl.gz")
	if err := createPlanFile(filePath, plans); err != nil {
		log.Fatalf("Failed to create %s: %v", filePath, err)
	}

	fmt.Printf("Created %s with %d plans\n", filePath, len(plans))
}

func createPlanFile(filePath string, plans []planFixture) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)
	defer gzipWriter.Close()

	enc := json.NewEncoder(gzipWriter)
	for _, p := range plans {
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("failed to write plan %s: %w", p.Name, err)
		}
	}

	return nil
}
