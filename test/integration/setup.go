package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"storefront/internal/config"
	"storefront/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
}

// SetupTestDB creates a PostgreSQL test container, connects through
// database.NewPool and applies the schema.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := postgresContainer.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}
	port, err := postgresContainer.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("failed to get container port: %v", err)
	}

	dbConfig := config.DatabaseConfig{
		Host:             host,
		Port:             port.Int(),
		User:             "testuser",
		Password:         "testpass",
		Database:         "testdb",
		MaxConnections:   20,
		MinConnections:   2,
		MaxConnLifetime:  300,
		StatementTimeout: 30,
	}

	logger := zerolog.Nop()
	pool, err := database.NewPool(ctx, dbConfig, logger)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := database.Migrate(ctx, pool, logger); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
	}
}

// Fixture holds the rows created by SeedFixture.
type Fixture struct {
	BuyerID    uuid.UUID
	OtherID    uuid.UUID
	OwnerID    uuid.UUID
	PlanID     uuid.UUID
	ShopID     uuid.UUID
	ProductA   uuid.UUID // 10.00
	ProductB   uuid.UUID // 5.00
	OutOfStock uuid.UUID // 7.50, stock 0
}

// SeedFixture inserts two buyers, a shop owner on a 20.00 plan, one shop that
// subscribed three whole months ago and three products.
func SeedFixture(t *testing.T, pool *pgxpool.Pool) Fixture {
	t.Helper()

	f := Fixture{
		BuyerID:    uuid.New(),
		OtherID:    uuid.New(),
		OwnerID:    uuid.New(),
		PlanID:     uuid.New(),
		ShopID:     uuid.New(),
		ProductA:   uuid.New(),
		ProductB:   uuid.New(),
		OutOfStock: uuid.New(),
	}

	for _, id := range []uuid.UUID{f.BuyerID, f.OtherID, f.OwnerID} {
		exec(t, pool, `INSERT INTO users (id, name, email) VALUES ($1, $2, $3)`,
			id, "user", fmt.Sprintf("%s@example.com", id))
	}

	exec(t, pool, `INSERT INTO subscription_plans (id, name, monthly_price, duration_months) VALUES ($1, $2, $3, 12)`,
		f.PlanID, "plan-"+f.PlanID.String()[:8], "20.00")
	exec(t, pool, `INSERT INTO shops (id, owner_id, name, subscription_plan_id, subscription_start_date)
		VALUES ($1, $2, $3, $4, $5)`,
		f.ShopID, f.OwnerID, "shop-"+f.ShopID.String()[:8], f.PlanID, subscriptionStart(time.Now().UTC()))

	products := []struct {
		id    uuid.UUID
		price string
		stock int
	}{
		{f.ProductA, "10.00", 100},
		{f.ProductB, "5.00", 100},
		{f.OutOfStock, "7.50", 0},
	}
	for _, p := range products {
		exec(t, pool, `INSERT INTO products (id, shop_id, name, price, stock) VALUES ($1, $2, $3, $4, $5)`,
			p.id, f.ShopID, "product-"+p.id.String()[:8], p.price, p.stock)
	}

	return f
}

// subscriptionStart returns midnight on the first of the month three months
// before now, so exactly three whole months have elapsed.
func subscriptionStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month()-3, 1, 0, 0, 0, 0, time.UTC)
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`TRUNCATE deliveries, order_items, orders, cart_items, carts, products, shops, subscription_plans, users CASCADE`)
	if err != nil {
		t.Fatalf("failed to clean tables: %v", err)
	}
}

func exec(t *testing.T, pool *pgxpool.Pool, sql string, args ...any) {
	t.Helper()
	if _, err := pool.Exec(context.Background(), sql, args...); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}
}
