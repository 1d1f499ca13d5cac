package service

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/model"
	"storefront/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// statisticsWindowDays is the length of the trailing window behind monthly figures.
const statisticsWindowDays = 30

type statisticsService struct {
	shopRepo  repository.ShopRepository
	statsRepo repository.StatisticsRepository
	logger    zerolog.Logger
	now       func() time.Time
}

// NewStatisticsService creates a new statistics service.
func NewStatisticsService(
	shopRepo repository.ShopRepository,
	statsRepo repository.StatisticsRepository,
	logger zerolog.Logger,
) StatisticsService {
	return &statisticsService{
		shopRepo:  shopRepo,
		statsRepo: statsRepo,
		logger:    logger.With().Str("service", "statistics").Logger(),
		now:       time.Now,
	}
}

// ShopStatistics aggregates over order lines of the shop's products. The
// monthly window includes orders dated strictly after now minus 30 days.
func (s *statisticsService) ShopStatistics(ctx context.Context, shopID uuid.UUID) (*model.ShopStatistics, error) {
	shop, err := s.shopRepo.GetByID(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to get shop: %w", err)
	}
	if shop == nil {
		s.logger.Debug().Str("shop_id", shopID.String()).Msg("shop not found")
		return nil, model.ErrShopNotFound
	}

	since := s.now().UTC().AddDate(0, 0, -statisticsWindowDays)

	var (
		all, window model.SalesFigures
		catalog     model.CatalogCounts
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		all, window, err = s.statsRepo.ShopSales(gctx, shopID, since)
		return err
	})
	g.Go(func() error {
		var err error
		catalog, err = s.statsRepo.ShopCatalogCounts(gctx, shopID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to compute shop statistics: %w", err)
	}

	return &model.ShopStatistics{
		ShopID:         shop.ID,
		ShopName:       shop.Name,
		TotalRevenue:   all.Revenue,
		TotalOrders:    all.Orders,
		TotalProducts:  catalog.Total,
		ActiveProducts: catalog.Active,
		MonthlyRevenue: window.Revenue,
		MonthlyOrders:  window.Orders,
	}, nil
}

func (s *statisticsService) PlatformStatistics(ctx context.Context) (*model.PlatformStatistics, error) {
	now := s.now().UTC()

	var (
		counts model.PlatformCounts
		sales  decimal.Decimal
		subs   []model.ShopSubscription
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		counts, err = s.statsRepo.PlatformCounts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		sales, err = s.statsRepo.TotalSalesRevenue(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		subs, err = s.statsRepo.ActiveShopSubscriptions(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to compute platform statistics: %w", err)
	}

	total, monthly := SubscriptionRevenue(subs, now)

	s.logger.Debug().
		Int64("shops", counts.Shops).
		Int("active_subscriptions", len(subs)).
		Msg("platform statistics computed")

	return &model.PlatformStatistics{
		TotalShops:                 counts.Shops,
		ActiveShops:                counts.ActiveShops,
		TotalSubscriptionRevenue:   total,
		MonthlySubscriptionRevenue: monthly,
		TotalUsers:                 counts.Users,
		TotalProducts:              counts.Products,
		TotalOrders:                counts.Orders,
		TotalSalesRevenue:          sales,
	}, nil
}

// SubscriptionRevenue returns the revenue billed to date across subs and the
// sum of their monthly prices. Each shop is billed for the whole months between
// its start date and the earlier of now and its end date, with a minimum of one.
func SubscriptionRevenue(subs []model.ShopSubscription, now time.Time) (total, monthly decimal.Decimal) {
	total, monthly = decimal.Zero, decimal.Zero
	for _, sub := range subs {
		end := now
		if sub.EndDate != nil && sub.EndDate.Before(now) {
			end = *sub.EndDate
		}
		months := WholeMonthsBetween(sub.StartDate, end)
		if months < 1 {
			months = 1
		}
		total = total.Add(sub.MonthlyPrice.Mul(decimal.NewFromInt(int64(months))))
		monthly = monthly.Add(sub.MonthlyPrice)
	}
	return total, monthly
}

// WholeMonthsBetween counts complete calendar months from start to end. A month
// is complete once end reaches the same day-of-month and time of day as start,
// so Jan 31 to Feb 28 is zero months. The result is negative when end precedes start.
func WholeMonthsBetween(start, end time.Time) int {
	end = end.In(start.Location())

	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	cmp := compareDayClock(end, start)

	switch {
	case months > 0 && cmp < 0:
		months--
	case months < 0 && cmp > 0:
		months++
	}
	return months
}

// compareDayClock orders a and b by day of month, then by time of day.
func compareDayClock(a, b time.Time) int {
	if a.Day() != b.Day() {
		if a.Day() < b.Day() {
			return -1
		}
		return 1
	}
	ac := time.Duration(a.Hour())*time.Hour + time.Duration(a.Minute())*time.Minute +
		time.Duration(a.Second())*time.Second + time.Duration(a.Nanosecond())
	bc := time.Duration(b.Hour())*time.Hour + time.Duration(b.Minute())*time.Minute +
		time.Duration(b.Second())*time.Second + time.Duration(b.Nanosecond())
	switch {
	case ac < bc:
		return -1
	case ac > bc:
		return 1
	}
	return 0
}
