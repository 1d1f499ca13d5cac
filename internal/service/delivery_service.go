package service

import (
	"context"
	"fmt"

	"storefront/internal/model"
	"storefront/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type deliveryService struct {
	deliveryRepo repository.DeliveryRepository
	logger       zerolog.Logger
}

// NewDeliveryService creates a new delivery lookup service.
func NewDeliveryService(deliveryRepo repository.DeliveryRepository, logger zerolog.Logger) DeliveryService {
	return &deliveryService{
		deliveryRepo: deliveryRepo,
		logger:       logger.With().Str("service", "delivery").Logger(),
	}
}

func (s *deliveryService) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*model.Delivery, error) {
	return found(s.deliveryRepo.GetByTrackingNumber(ctx, trackingNumber))
}

func (s *deliveryService) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*model.Delivery, error) {
	return found(s.deliveryRepo.GetByOrderID(ctx, orderID))
}

func (s *deliveryService) GetByOrderNumber(ctx context.Context, orderNumber string) (*model.Delivery, error) {
	return found(s.deliveryRepo.GetByOrderNumber(ctx, orderNumber))
}

func found(d *model.Delivery, err error) (*model.Delivery, error) {
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery: %w", err)
	}
	if d == nil {
		return nil, model.ErrDeliveryNotFound
	}
	return d, nil
}
