package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront/internal/delivery"
	"storefront/internal/events"
	"storefront/internal/model"
	"storefront/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// maxOrderNumberAttempts bounds order number regeneration on collision.
const maxOrderNumberAttempts = 5

// orderNumberLength is the number of characters in a generated order number.
const orderNumberLength = 8

// orderService implements OrderService.
type orderService struct {
	orderRepo    repository.OrderRepository
	cartRepo     repository.CartRepository
	userRepo     repository.UserRepository
	deliveryRepo repository.DeliveryRepository
	publisher    events.Publisher
	logger       zerolog.Logger

	now            func() time.Time
	newOrderNumber func() string
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	userRepo repository.UserRepository,
	deliveryRepo repository.DeliveryRepository,
	publisher events.Publisher,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:      orderRepo,
		cartRepo:       cartRepo,
		userRepo:       userRepo,
		deliveryRepo:   deliveryRepo,
		publisher:      publisher,
		logger:         logger.With().Str("service", "order").Logger(),
		now:            time.Now,
		newOrderNumber: NewOrderNumber,
	}
}

// NewOrderNumber returns eight upper-case alphanumeric characters drawn from a random UUID.
func NewOrderNumber() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:orderNumberLength])
}

// CreateOrder converts the user's cart into an order in a single transaction:
// the order, its price-snapshot items, its delivery and the removal of the
// checked-out cart lines commit together or not at all.
func (s *orderService) CreateOrder(ctx context.Context, userID uuid.UUID, address, deliveryOption string) (_ *model.Order, err error) {
	address = strings.TrimSpace(address)
	if deliveryOption == "" {
		deliveryOption = model.DefaultDeliveryOption
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		s.logger.Warn().Str("user_id", userID.String()).Msg("order for unknown user")
		return nil, model.ErrUserNotFound
	}

	cart, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	if cart == nil {
		s.logger.Warn().Str("user_id", userID.String()).Msg("checkout without cart")
		return nil, model.ErrEmptyCart
	}

	// Start transaction
	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	lines, err := s.cartRepo.LockCheckoutLines(ctx, tx, cart.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}
	if len(lines) == 0 {
		s.logger.Warn().Str("cart_id", cart.ID.String()).Msg("checkout of empty cart")
		return nil, model.ErrEmptyCart
	}

	order := &model.Order{
		ID:             uuid.New(),
		UserID:         userID,
		Status:         model.OrderStatusPlaced,
		OrderDate:      s.now().UTC().Truncate(time.Microsecond),
		DeliveryOption: deliveryOption,
	}

	items := make([]model.OrderItem, len(lines))
	cartItemIDs := make([]uuid.UUID, len(lines))
	for i, line := range lines {
		items[i] = model.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.UnitPrice,
		}
		cartItemIDs[i] = line.CartItemID
	}
	order.TotalAmount = model.OrderTotal(items)

	if err = s.insertOrder(ctx, tx, order); err != nil {
		return nil, err
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, items); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Int("item_count", len(items)).
			Msg("failed to create order items")
		return nil, fmt.Errorf("failed to create order items: %w", err)
	}

	d := delivery.Build(order, address)
	if err = s.deliveryRepo.Create(ctx, tx, &d); err != nil {
		return nil, fmt.Errorf("failed to create delivery: %w", err)
	}

	if _, err = s.cartRepo.DeleteItemsTx(ctx, tx, cart.ID, cartItemIDs); err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	// Commit transaction
	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	order.Items = items
	order.Delivery = &d

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("order_number", order.OrderNumber).
		Str("total_amount", order.TotalAmount.StringFixed(2)).
		Int("item_count", len(items)).
		Msg("order created successfully")

	if pubErr := s.publisher.PublishOrderPlaced(ctx, order); pubErr != nil {
		s.logger.Warn().Err(pubErr).Str("order_number", order.OrderNumber).Msg("order event not published")
	}

	return order, nil
}

// insertOrder assigns order numbers until one is accepted.
func (s *orderService) insertOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	for attempt := 1; attempt <= maxOrderNumberAttempts; attempt++ {
		order.OrderNumber = s.newOrderNumber()

		err := s.orderRepo.CreateOrder(ctx, tx, order)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrDuplicateOrderNumber) {
			s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
			return fmt.Errorf("failed to create order: %w", err)
		}

		s.logger.Warn().
			Int("attempt", attempt).
			Str("order_number", order.OrderNumber).
			Msg("order number collision, regenerating")
	}

	s.logger.Error().Str("order_id", order.ID.String()).Msg("order number attempts exhausted")
	return model.ErrOrderTokenExhausted
}

func (s *orderService) GetUserOrders(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		s.logger.Debug().Str("order_id", id.String()).Msg("order not found")
		return nil, model.ErrOrderNotFound
	}
	return order, nil
}

func (s *orderService) GetOrderByNumber(ctx context.Context, orderNumber string) (*model.Order, error) {
	order, err := s.orderRepo.GetByNumber(ctx, orderNumber)
	if err != nil {
		s.logger.Error().Err(err).Str("order_number", orderNumber).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		s.logger.Debug().Str("order_number", orderNumber).Msg("order not found")
		return nil, model.ErrOrderNotFound
	}
	return order, nil
}
