package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultDeliveryOption is used when an order is placed without one.
const DefaultDeliveryOption = "standard"

// Order represents a completed checkout. Only Status may change after creation.
type Order struct {
	ID             uuid.UUID       `json:"id" db:"id"`
	OrderNumber    string          `json:"orderNumber" db:"order_number"`
	UserID         uuid.UUID       `json:"userId" db:"user_id"`
	Status         OrderStatus     `json:"status" db:"status"`
	TotalAmount    decimal.Decimal `json:"totalAmount" db:"total_amount"`
	OrderDate      time.Time       `json:"orderDate" db:"order_date"`
	DeliveryOption string          `json:"deliveryOption" db:"delivery_option"`
	Items          []OrderItem     `json:"items"`
	Delivery       *Delivery       `json:"delivery,omitempty"`
}

// OrderItem represents a line item in an order. Price is the product price
// captured when the order was placed, not a reference to the live catalogue.
type OrderItem struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	OrderID   uuid.UUID       `json:"orderId" db:"order_id"`
	ProductID uuid.UUID       `json:"productId" db:"product_id"`
	Quantity  int             `json:"quantity" db:"quantity"`
	Price     decimal.Decimal `json:"price" db:"price"`
}

// LineTotal returns price × quantity.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Delivery is the shipment record attached to exactly one order.
type Delivery struct {
	ID                    uuid.UUID      `json:"id" db:"id"`
	OrderID               uuid.UUID      `json:"orderId" db:"order_id"`
	Status                DeliveryStatus `json:"status" db:"status"`
	TrackingNumber        string         `json:"trackingNumber" db:"tracking_number"`
	Address               string         `json:"address" db:"address"`
	EstimatedDeliveryDate time.Time      `json:"estimatedDeliveryDate" db:"estimated_delivery_date"`
	ActualDeliveryDate    *time.Time     `json:"actualDeliveryDate,omitempty" db:"actual_delivery_date"`
}

// CheckoutLine is a cart line joined with the product's current price at checkout time.
type CheckoutLine struct {
	CartItemID uuid.UUID
	ProductID  uuid.UUID
	Quantity   int
	UnitPrice  decimal.Decimal
}

// OrderTotal sums price × quantity over items.
func OrderTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// CreateOrderRequest represents the request payload for checking out the caller's cart.
type CreateOrderRequest struct {
	Address        string `json:"address"`
	DeliveryOption string `json:"deliveryOption,omitempty"`
}
