// Package events publishes domain events produced by order fulfilment.
package events

import (
	"context"
	"time"

	"storefront/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TypeOrderPlaced identifies OrderPlaced events in the message header.
const TypeOrderPlaced = "order.placed"

// OrderPlaced is emitted once an order has been committed.
type OrderPlaced struct {
	OrderID        uuid.UUID       `json:"orderId"`
	OrderNumber    string          `json:"orderNumber"`
	UserID         uuid.UUID       `json:"userId"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	ItemCount      int             `json:"itemCount"`
	DeliveryOption string          `json:"deliveryOption"`
	TrackingNumber string          `json:"trackingNumber,omitempty"`
	OrderDate      time.Time       `json:"orderDate"`
}

// NewOrderPlaced builds the event for a committed order.
func NewOrderPlaced(order *model.Order) OrderPlaced {
	ev := OrderPlaced{
		OrderID:        order.ID,
		OrderNumber:    order.OrderNumber,
		UserID:         order.UserID,
		TotalAmount:    order.TotalAmount,
		ItemCount:      len(order.Items),
		DeliveryOption: order.DeliveryOption,
		OrderDate:      order.OrderDate,
	}
	if order.Delivery != nil {
		ev.TrackingNumber = order.Delivery.TrackingNumber
	}
	return ev
}

// Publisher sends order events to downstream consumers.
type Publisher interface {
	// PublishOrderPlaced publishes an OrderPlaced event for order.
	PublishOrderPlaced(ctx context.Context, order *model.Order) error

	// Close flushes pending messages and releases resources.
	Close() error
}

type noopPublisher struct{}

// NewNoopPublisher returns a Publisher that discards every event.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishOrderPlaced(context.Context, *model.Order) error { return nil }

func (noopPublisher) Close() error { return nil }
