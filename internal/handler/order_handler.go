package handler

import (
	"net/http"
	"strings"

	"storefront/internal/model"
	"storefront/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// Create handles POST /api/orders requests by checking out the caller's cart.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r, h.logger)
	if !ok {
		return
	}

	var req model.CreateOrderRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}
	if strings.TrimSpace(req.Address) == "" {
		writeServiceError(w, model.ErrAddressRequired, h.logger)
		return
	}

	order, err := h.service.CreateOrder(r.Context(), userID, req.Address, req.DeliveryOption)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// List handles GET /api/orders requests.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r, h.logger)
	if !ok {
		return
	}

	orders, err := h.service.GetUserOrders(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}

	writeJSON(w, http.StatusOK, orders)
}

// GetByID handles GET /api/orders/{id} requests.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r, h.logger)
	if !ok {
		return
	}
	orderID, ok := pathUUID(w, r, "id", h.logger)
	if !ok {
		return
	}

	order, err := h.service.GetOrderByID(r.Context(), orderID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	h.writeOwned(w, userID, order)
}

// GetByNumber handles GET /api/orders/number/{number} requests.
func (h *OrderHandler) GetByNumber(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r, h.logger)
	if !ok {
		return
	}

	order, err := h.service.GetOrderByNumber(r.Context(), r.PathValue("number"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	h.writeOwned(w, userID, order)
}

// writeOwned writes order when it belongs to userID and 403 otherwise.
func (h *OrderHandler) writeOwned(w http.ResponseWriter, userID uuid.UUID, order *model.Order) {
	if order.UserID != userID {
		h.logger.Warn().
			Str("order_id", order.ID.String()).
			Str("caller", userID.String()).
			Msg("order read by non-owner")
		writeServiceError(w, model.ErrForbidden, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, order)
}
