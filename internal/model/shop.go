package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SubscriptionPlan is the billing plan a shop subscribes to.
type SubscriptionPlan struct {
	ID                uuid.UUID       `json:"id" db:"id"`
	Name              string          `json:"name" db:"name"`
	Description       string          `json:"description" db:"description"`
	MonthlyPrice      decimal.Decimal `json:"monthlyPrice" db:"monthly_price"`
	DurationMonths    int             `json:"durationMonths" db:"duration_months"`
	MaxProducts       int             `json:"maxProducts" db:"max_products"`
	MaxOrdersPerMonth int             `json:"maxOrdersPerMonth" db:"max_orders_per_month"`
	IsActive          bool            `json:"isActive" db:"is_active"`
	CreatedAt         time.Time       `json:"createdAt" db:"created_at"`
}

// Shop is a seller storefront.
//
// TotalRevenue and TotalOrders are informational counters maintained elsewhere;
// statistics are always recomputed from order history.
type Shop struct {
	ID                    uuid.UUID       `json:"id" db:"id"`
	OwnerID               uuid.UUID       `json:"ownerId" db:"owner_id"`
	Name                  string          `json:"name" db:"name"`
	PlanID                uuid.UUID       `json:"subscriptionPlanId" db:"subscription_plan_id"`
	SubscriptionStartDate time.Time       `json:"subscriptionStartDate" db:"subscription_start_date"`
	SubscriptionEndDate   *time.Time      `json:"subscriptionEndDate,omitempty" db:"subscription_end_date"`
	IsActive              bool            `json:"isActive" db:"is_active"`
	CreatedAt             time.Time       `json:"createdAt" db:"created_at"`
	TotalRevenue          decimal.Decimal `json:"totalRevenue" db:"total_revenue"`
	TotalOrders           int             `json:"totalOrders" db:"total_orders"`
}

// ShopSubscription pairs an active shop's subscription window with its plan price.
type ShopSubscription struct {
	ShopID       uuid.UUID
	MonthlyPrice decimal.Decimal
	StartDate    time.Time
	EndDate      *time.Time
}
