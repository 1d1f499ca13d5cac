package handler

import (
	"net/http"

	"storefront/internal/service"

	"github.com/rs/zerolog"
)

// DeliveryHandler serves delivery lookups.
type DeliveryHandler struct {
	service service.DeliveryService
	logger  zerolog.Logger
}

// NewDeliveryHandler creates a new delivery handler.
func NewDeliveryHandler(service service.DeliveryService, logger zerolog.Logger) *DeliveryHandler {
	return &DeliveryHandler{
		service: service,
		logger:  logger.With().Str("handler", "delivery").Logger(),
	}
}

// Track handles GET /api/delivery/track/{tracking} requests.
func (h *DeliveryHandler) Track(w http.ResponseWriter, r *http.Request) {
	d, err := h.service.GetByTrackingNumber(r.Context(), r.PathValue("tracking"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// ByOrderID handles GET /api/delivery/order/{orderId} requests.
func (h *DeliveryHandler) ByOrderID(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathUUID(w, r, "orderId", h.logger)
	if !ok {
		return
	}

	d, err := h.service.GetByOrderID(r.Context(), orderID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// ByOrderNumber handles GET /api/delivery/order-number/{number} requests.
func (h *DeliveryHandler) ByOrderNumber(w http.ResponseWriter, r *http.Request) {
	d, err := h.service.GetByOrderNumber(r.Context(), r.PathValue("number"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, d)
}
