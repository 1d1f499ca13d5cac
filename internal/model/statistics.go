package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShopStatistics holds revenue and order figures for a single shop.
// Monthly figures cover the trailing 30 days ending at evaluation time.
type ShopStatistics struct {
	ShopID         uuid.UUID       `json:"shopId"`
	ShopName       string          `json:"shopName"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	TotalOrders    int             `json:"totalOrders"`
	TotalProducts  int             `json:"totalProducts"`
	ActiveProducts int             `json:"activeProducts"`
	MonthlyRevenue decimal.Decimal `json:"monthlyRevenue"`
	MonthlyOrders  int             `json:"monthlyOrders"`
}

// PlatformStatistics holds operator-wide figures.
type PlatformStatistics struct {
	TotalShops                 int64           `json:"totalShops"`
	ActiveShops                int64           `json:"activeShops"`
	TotalSubscriptionRevenue   decimal.Decimal `json:"totalSubscriptionRevenue"`
	MonthlySubscriptionRevenue decimal.Decimal `json:"monthlySubscriptionRevenue"`
	TotalUsers                 int64           `json:"totalUsers"`
	TotalProducts              int64           `json:"totalProducts"`
	TotalOrders                int64           `json:"totalOrders"`
	TotalSalesRevenue          decimal.Decimal `json:"totalSalesRevenue"`
}

// SalesFigures is revenue and distinct-order count over a set of order lines.
type SalesFigures struct {
	Revenue decimal.Decimal
	Orders  int
}

// CatalogCounts is product totals for a shop; active means stock > 0.
type CatalogCounts struct {
	Total  int
	Active int
}

// PlatformCounts is the raw row counts behind PlatformStatistics.
type PlatformCounts struct {
	Shops       int64
	ActiveShops int64
	Users       int64
	Products    int64
	Orders      int64
}
