// Package delivery builds the shipment record that accompanies every new order.
package delivery

import (
	"time"

	"storefront/internal/model"

	"github.com/google/uuid"
)

// EstimatedDeliveryWindow is added to the order date to produce the delivery estimate.
const EstimatedDeliveryWindow = 5 * 24 * time.Hour

// trackingPrefix is prepended to the order number to form the tracking number.
const trackingPrefix = "TRK"

// TrackingNumber derives the tracking number for an order number. Order numbers
// are unique, so tracking numbers are too.
func TrackingNumber(orderNumber string) string {
	return trackingPrefix + orderNumber
}

// Build returns a pending delivery for order shipped to address. The caller persists it.
func Build(order *model.Order, address string) model.Delivery {
	return model.Delivery{
		ID:                    uuid.New(),
		OrderID:               order.ID,
		Status:                model.DeliveryStatusPending,
		TrackingNumber:        TrackingNumber(order.OrderNumber),
		Address:               address,
		EstimatedDeliveryDate: order.OrderDate.Add(EstimatedDeliveryWindow),
	}
}
