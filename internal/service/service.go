package service

import (
	"context"

	"storefront/internal/model"

	"github.com/google/uuid"
)

// CartService defines operations on a buyer's cart. Every operation acts on
// behalf of userID and only ever touches that user's cart.
type CartService interface {
	// GetOrCreate returns the user's cart, creating an empty one if none exists.
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*model.Cart, error)

	// AddItem adds quantity of a product, merging into an existing line for the same product.
	AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*model.CartItem, error)

	// UpdateItem sets the quantity of one of the user's cart lines.
	UpdateItem(ctx context.Context, userID, cartItemID uuid.UUID, quantity int) (*model.CartItem, error)

	// RemoveItem deletes one of the user's cart lines.
	RemoveItem(ctx context.Context, userID, cartItemID uuid.UUID) error

	// Clear deletes every line of the user's cart. Clearing an empty or missing cart is a no-op.
	Clear(ctx context.Context, userID uuid.UUID) error

	// ListItems returns the user's cart lines, creating the cart if absent.
	ListItems(ctx context.Context, userID uuid.UUID) ([]model.CartItem, error)

	// View returns the user's cart with every line priced at the current product price.
	View(ctx context.Context, userID uuid.UUID) (*model.CartResponse, error)
}

// OrderService defines operations for order management.
type OrderService interface {
	// CreateOrder checks out the user's cart into a new order with a pending delivery.
	CreateOrder(ctx context.Context, userID uuid.UUID, address, deliveryOption string) (*model.Order, error)

	// GetUserOrders returns the user's orders, newest first.
	GetUserOrders(ctx context.Context, userID uuid.UUID) ([]model.Order, error)

	// GetOrderByID retrieves an order with its items and delivery.
	GetOrderByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// GetOrderByNumber retrieves an order by its public order number.
	GetOrderByNumber(ctx context.Context, orderNumber string) (*model.Order, error)
}

// DeliveryService defines read operations on deliveries.
type DeliveryService interface {
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*model.Delivery, error)
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*model.Delivery, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (*model.Delivery, error)
}

// StatisticsService computes read-only shop and platform figures.
type StatisticsService interface {
	// ShopStatistics returns lifetime and trailing-30-day sales for one shop.
	ShopStatistics(ctx context.Context, shopID uuid.UUID) (*model.ShopStatistics, error)

	// PlatformStatistics returns operator-wide counts and revenue.
	PlatformStatistics(ctx context.Context) (*model.PlatformStatistics, error)
}
