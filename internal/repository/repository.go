package repository

import (
	"context"
	"time"

	"storefront/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// UserRepository provides read access to platform users.
type UserRepository interface {
	// GetByID retrieves a user by ID. Returns nil, nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// GetByID retrieves a single product by its ID. Returns nil, nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// GetByIDs retrieves multiple products by their IDs.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Product, error)
}

// ShopRepository provides read access to shops.
type ShopRepository interface {
	// GetByID retrieves a shop by ID. Returns nil, nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Shop, error)
}

// PlanRepository defines subscription plan persistence used by the seeder.
type PlanRepository interface {
	// Count returns the number of stored plans.
	Count(ctx context.Context) (int64, error)

	// CreatePlans inserts plans, skipping any whose name already exists.
	// Returns the number of rows inserted.
	CreatePlans(ctx context.Context, plans []model.SubscriptionPlan) (int64, error)
}

// CartRepository defines the interface for cart data access operations.
type CartRepository interface {
	// GetOrCreate returns the user's cart, inserting an empty one if none exists.
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*model.Cart, error)

	// GetByUserID returns the user's cart. Returns nil, nil when absent.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Cart, error)

	// ListItems returns all lines of a cart.
	ListItems(ctx context.Context, cartID uuid.UUID) ([]model.CartItem, error)

	// UpsertItem adds quantity to the cart's line for productID, inserting the
	// line if it does not exist, as a single statement.
	UpsertItem(ctx context.Context, cartID, productID uuid.UUID, quantity int) (*model.CartItem, error)

	// GetItem retrieves a cart line by ID. Returns nil, nil when absent.
	GetItem(ctx context.Context, itemID uuid.UUID) (*model.CartItem, error)

	// UpdateItemQuantity sets the quantity of a line that belongs to cartID.
	// Returns nil, nil when no such line exists in that cart.
	UpdateItemQuantity(ctx context.Context, cartID, itemID uuid.UUID, quantity int) (*model.CartItem, error)

	// DeleteItem removes a line that belongs to cartID. Reports whether a row was deleted.
	DeleteItem(ctx context.Context, cartID, itemID uuid.UUID) (bool, error)

	// ClearItems removes every line of a cart and returns the number removed.
	ClearItems(ctx context.Context, cartID uuid.UUID) (int64, error)

	// LockCheckoutLines returns the cart lines joined with current product
	// prices, row-locking the lines for the rest of tx.
	LockCheckoutLines(ctx context.Context, tx pgx.Tx, cartID uuid.UUID) ([]model.CheckoutLine, error)

	// DeleteItemsTx removes the given lines of a cart within tx.
	DeleteItemsTx(ctx context.Context, tx pgx.Tx, cartID uuid.UUID, itemIDs []uuid.UUID) (int64, error)
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction.
	// Returns ErrDuplicateOrderNumber if the order number is already taken;
	// the transaction stays usable in that case.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts multiple order items within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetByID retrieves an order with its items and delivery. Returns nil, nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// GetByNumber retrieves an order by its order number. Returns nil, nil when absent.
	GetByNumber(ctx context.Context, orderNumber string) (*model.Order, error)

	// ListByUser returns a user's orders, newest first, with items and deliveries.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error)
}

// DeliveryRepository defines the interface for delivery data access operations.
type DeliveryRepository interface {
	// Create inserts a delivery within the provided transaction.
	Create(ctx context.Context, tx pgx.Tx, delivery *model.Delivery) error

	// GetByTrackingNumber returns nil, nil when absent.
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*model.Delivery, error)

	// GetByOrderID returns nil, nil when absent.
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*model.Delivery, error)

	// GetByOrderNumber returns nil, nil when absent.
	GetByOrderNumber(ctx context.Context, orderNumber string) (*model.Delivery, error)
}

// StatisticsRepository runs the read-only aggregate queries behind shop and
// platform statistics. Figures are always computed from order line history.
type StatisticsRepository interface {
	// ShopSales returns revenue and distinct order count over every order line
	// of the shop's products, and the same figures restricted to orders dated after since.
	ShopSales(ctx context.Context, shopID uuid.UUID, since time.Time) (all, window model.SalesFigures, err error)

	// ShopCatalogCounts returns the shop's product count and in-stock product count.
	ShopCatalogCounts(ctx context.Context, shopID uuid.UUID) (model.CatalogCounts, error)

	// PlatformCounts returns shop, user, product and order row counts.
	PlatformCounts(ctx context.Context) (model.PlatformCounts, error)

	// TotalSalesRevenue sums price × quantity over every order line.
	TotalSalesRevenue(ctx context.Context) (decimal.Decimal, error)

	// ActiveShopSubscriptions lists the subscription window and plan price of every active shop.
	ActiveShopSubscriptions(ctx context.Context) ([]model.ShopSubscription, error)
}
