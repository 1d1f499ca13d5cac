package service

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/model"
	"storefront/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// cartService implements CartService.
type cartService struct {
	cartRepo    repository.CartRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(
	cartRepo repository.CartRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "cart").Logger(),
	}
}

func (s *cartService) GetOrCreate(ctx context.Context, userID uuid.UUID) (*model.Cart, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		s.logger.Warn().Str("user_id", userID.String()).Msg("cart requested for unknown user")
		return nil, model.ErrUserNotFound
	}

	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	return cart, nil
}

func (s *cartService) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*model.CartItem, error) {
	if !validQuantity(quantity) {
		s.logger.Warn().
			Str("user_id", userID.String()).
			Int("quantity", quantity).
			Msg("invalid quantity")
		return nil, model.ErrInvalidQuantity
	}

	cart, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		s.logger.Warn().Str("product_id", productID.String()).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	item, err := s.cartRepo.UpsertItem(ctx, cart.ID, productID, quantity)
	if errors.Is(err, repository.ErrQuantityOutOfRange) {
		return nil, model.ErrInvalidQuantity
	}
	if err != nil {
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}

	s.logger.Info().
		Str("cart_id", cart.ID.String()).
		Str("product_id", productID.String()).
		Int("quantity", item.Quantity).
		Msg("cart item added")

	return item, nil
}

func (s *cartService) UpdateItem(ctx context.Context, userID, cartItemID uuid.UUID, quantity int) (*model.CartItem, error) {
	cart, err := s.ownedCart(ctx, userID, cartItemID)
	if err != nil {
		return nil, err
	}

	if !validQuantity(quantity) {
		s.logger.Warn().
			Str("cart_item_id", cartItemID.String()).
			Int("quantity", quantity).
			Msg("invalid quantity")
		return nil, model.ErrInvalidQuantity
	}

	item, err := s.cartRepo.UpdateItemQuantity(ctx, cart.ID, cartItemID, quantity)
	if err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}
	if item == nil {
		// Removed or checked out since ownedCart looked it up.
		return nil, model.ErrCartItemNotFound
	}

	s.logger.Info().
		Str("cart_item_id", cartItemID.String()).
		Int("quantity", quantity).
		Msg("cart item updated")

	return item, nil
}

func (s *cartService) RemoveItem(ctx context.Context, userID, cartItemID uuid.UUID) error {
	cart, err := s.ownedCart(ctx, userID, cartItemID)
	if err != nil {
		return err
	}

	deleted, err := s.cartRepo.DeleteItem(ctx, cart.ID, cartItemID)
	if err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	if !deleted {
		return model.ErrCartItemNotFound
	}

	s.logger.Info().Str("cart_item_id", cartItemID.String()).Msg("cart item removed")
	return nil
}

func (s *cartService) Clear(ctx context.Context, userID uuid.UUID) error {
	cart, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get cart: %w", err)
	}
	if cart == nil {
		return nil
	}

	n, err := s.cartRepo.ClearItems(ctx, cart.ID)
	if err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	s.logger.Info().
		Str("cart_id", cart.ID.String()).
		Int64("removed", n).
		Msg("cart cleared")
	return nil
}

func (s *cartService) ListItems(ctx context.Context, userID uuid.UUID) ([]model.CartItem, error) {
	cart, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	items, err := s.cartRepo.ListItems(ctx, cart.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	return items, nil
}

func (s *cartService) View(ctx context.Context, userID uuid.UUID) (*model.CartResponse, error) {
	cart, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	items, err := s.cartRepo.ListItems(ctx, cart.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}

	productIDs := make([]uuid.UUID, len(items))
	for i, item := range items {
		productIDs[i] = item.ProductID
	}
	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart products: %w", err)
	}
	byID := make(map[uuid.UUID]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	resp := &model.CartResponse{
		Cart:  cart,
		Items: make([]model.CartLine, len(items)),
		Total: decimal.Zero,
	}
	for i, item := range items {
		line := model.CartLine{CartItem: item, UnitPrice: decimal.Zero, Subtotal: decimal.Zero}
		if p, ok := byID[item.ProductID]; ok {
			line.ProductName = p.Name
			line.UnitPrice = p.Price
			line.Subtotal = p.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		}
		resp.Total = resp.Total.Add(line.Subtotal)
		resp.Items[i] = line
	}

	s.logger.Debug().
		Str("cart_id", cart.ID.String()).
		Int("item_count", len(items)).
		Msg("cart viewed")

	return resp, nil
}

func validQuantity(quantity int) bool {
	return quantity > 0 && quantity <= model.MaxLineQuantity
}

// ownedCart returns the user's cart after checking that cartItemID exists and belongs to it.
func (s *cartService) ownedCart(ctx context.Context, userID, cartItemID uuid.UUID) (*model.Cart, error) {
	item, err := s.cartRepo.GetItem(ctx, cartItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}
	if item == nil {
		s.logger.Debug().Str("cart_item_id", cartItemID.String()).Msg("cart item not found")
		return nil, model.ErrCartItemNotFound
	}

	cart, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	if cart == nil || cart.ID != item.CartID {
		s.logger.Warn().
			Str("user_id", userID.String()).
			Str("cart_item_id", cartItemID.String()).
			Msg("cart item belongs to another user")
		return nil, model.ErrUnauthorised
	}

	return cart, nil
}
