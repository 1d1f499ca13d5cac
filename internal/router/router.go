package router

import (
	"net/http"

	"storefront/internal/handler"
	"storefront/internal/middleware"

	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers mounted by the router.
type Handlers struct {
	Cart       *handler.CartHandler
	Order      *handler.OrderHandler
	Delivery   *handler.DeliveryHandler
	Statistics *handler.StatisticsHandler
}

// Auth holds the credentials the router's middleware checks.
type Auth struct {
	APIKey    string
	JWTSecret string
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, auth Auth, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	user := middleware.Authenticate(auth.JWTSecret, logger)
	operator := middleware.APIKeyAuth(auth.APIKey, logger)

	// Cart routes act on the caller's own cart
	mux.Handle("GET /api/cart", user(http.HandlerFunc(h.Cart.Get)))
	mux.Handle("DELETE /api/cart", user(http.HandlerFunc(h.Cart.Clear)))
	mux.Handle("POST /api/cart/items", user(http.HandlerFunc(h.Cart.AddItem)))
	mux.Handle("PUT /api/cart/items/{id}", user(http.HandlerFunc(h.Cart.UpdateItem)))
	mux.Handle("DELETE /api/cart/items/{id}", user(http.HandlerFunc(h.Cart.RemoveItem)))

	mux.Handle("POST /api/orders", user(http.HandlerFunc(h.Order.Create)))
	mux.Handle("GET /api/orders", user(http.HandlerFunc(h.Order.List)))
	mux.Handle("GET /api/orders/{id}", user(http.HandlerFunc(h.Order.GetByID)))
	mux.Handle("GET /api/orders/number/{number}", user(http.HandlerFunc(h.Order.GetByNumber)))

	// Delivery tracking is public
	mux.HandleFunc("GET /api/delivery/track/{tracking}", h.Delivery.Track)
	mux.HandleFunc("GET /api/delivery/order/{orderId}", h.Delivery.ByOrderID)
	mux.HandleFunc("GET /api/delivery/order-number/{number}", h.Delivery.ByOrderNumber)

	mux.Handle("GET /api/shops/{id}/statistics", user(http.HandlerFunc(h.Statistics.Shop)))
	mux.Handle("GET /api/admin/statistics", operator(http.HandlerFunc(h.Statistics.Platform)))

	// Apply middleware in order: RequestID -> Recovery -> Logging -> CORS
	var handler http.Handler = mux
	handler = middleware.CORS(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.RequestID(handler)

	return handler
}
