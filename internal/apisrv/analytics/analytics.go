package analytics

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/ezz105/ecommerce-analytics/internal/dependency"
	"github.com/ezz105/ecommerce-analytics/internal/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	recentOrdersLimit  = 10
	topProductsLimit   = 10
	recentReviewsLimit = 10

	defaultLowStockThreshold = 5
)

// Config contains the configuration for the analytics server.
type Config struct {
	LowStockThreshold int `mapstructure:"low_stock_threshold"`
}

// Server implements the five read operations consumed by the admin
// dashboard. It holds no state across calls; every operation is a
// read-only composition over the repository.
type Server struct {
	repo dependency.Repository
	c    *Config
	now  func() time.Time
}

// New creates a new analytics server.
func New(r dependency.Repository, c *Config) *Server {
	if c == nil {
		c = &Config{}
	}
	if c.LowStockThreshold <= 0 {
		c.LowStockThreshold = defaultLowStockThreshold
	}
	return &Server{
		repo: r,
		c:    c,
		now:  time.Now,
	}
}

// SalesAnalytics is the getSalesAnalytics payload.
type SalesAnalytics struct {
	SalesTrend []entity.SalesTrendPoint `json:"sales_trend"`
	Summary    entity.SalesSummary      `json:"summary"`
}

// OrderAnalytics is the getOrderAnalytics payload.
type OrderAnalytics struct {
	OrdersByStatus []entity.StatusBreakdown `json:"orders_by_status"`
	RecentOrders   []entity.OrderFull       `json:"recent_orders"`
}

// ProductAnalytics is the getProductAnalytics payload.
type ProductAnalytics struct {
	TopProducts         []entity.TopProduct          `json:"top_products"`
	CategoryPerformance []entity.CategoryPerformance `json:"category_performance"`
}

// ReviewAnalytics is the getReviewAnalytics payload.
type ReviewAnalytics struct {
	RatingDistribution []entity.RatingBucket `json:"rating_distribution"`
	RecentReviews      []entity.ReviewFull   `json:"recent_reviews"`
	AverageRating      decimal.Decimal       `json:"average_rating"`
}

// GetSalesAnalytics resolves the time frame to a window start and returns
// the per-day sales trend with its summary rollup. The summary's
// average_order_value is the plain mean of the per-day averages; the
// dashboard has always shown it that way, so it stays even though days
// carry different order volumes.
func (s *Server) GetSalesAnalytics(ctx context.Context, timeFrame entity.TimeFrame) (*SalesAnalytics, error) {
	start := timeFrame.Start(s.now())

	trend, err := s.repo.Analytics().GetSalesTrend(ctx, start)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't get sales trend",
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("can't get sales trend")
	}
	if trend == nil {
		trend = []entity.SalesTrendPoint{}
	}

	summary := entity.SalesSummary{
		TotalSales:        decimal.Zero,
		AverageOrderValue: decimal.Zero,
	}
	avgSum := decimal.Zero
	for _, p := range trend {
		summary.TotalSales = summary.TotalSales.Add(p.TotalSales)
		summary.TotalOrders += p.OrdersCount
		avgSum = avgSum.Add(p.AverageOrderValue)
	}
	if len(trend) > 0 {
		summary.AverageOrderValue = avgSum.Div(decimal.NewFromInt(int64(len(trend))))
	}

	return &SalesAnalytics{
		SalesTrend: trend,
		Summary:    summary,
	}, nil
}

// GetOrderAnalytics returns the orders-by-status breakdown together with
// the ten most recent orders expanded with user and line-item detail.
func (s *Server) GetOrderAnalytics(ctx context.Context) (*OrderAnalytics, error) {
	byStatus, err := s.repo.Orders().GetOrdersByStatus(ctx)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't get orders by status",
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("can't get orders by status")
	}
	if byStatus == nil {
		byStatus = []entity.StatusBreakdown{}
	}

	recent, err := s.repo.Orders().GetRecentOrders(ctx, recentOrdersLimit)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't get recent orders",
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("can't get recent orders")
	}
	if recent == nil {
		recent = []entity.OrderFull{}
	}

	return &OrderAnalytics{
		OrdersByStatus: byStatus,
		RecentOrders:   recent,
	}, nil
}

// GetProductAnalytics returns the ten products with the most order-item
// rows and the per-category sales rollup.
func (s *Server) GetProductAnalytics(ctx context.Context) (*ProductAnalytics, error) {
	top, err := s.repo.Products().GetTopProducts(ctx, topProductsLimit)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't get top products",
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("can't get top products")
	}
	if top == nil {
		top = []entity.TopProduct{}
	}

	perf, err := s.repo.Products().GetCategoryPerformance(ctx)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't get category performance",
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("can't get category performance")
	}
	if perf == nil {
		perf = []entity.CategoryPerformance{}
	}

	return &ProductAnalytics{
		TopProducts:         top,
		CategoryPerformance: perf,
	}, nil
}

// GetReviewAnalytics returns the approved-review rating distribution, the
// ten most recent approved reviews and the overall average rating.
func (s *Server) GetReviewAnalytics(ctx context.Context) (*ReviewAnalytics, error) {
	dist, err := s.repo.Reviews().GetRatingDistribution(ctx)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't get rating distribution",
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("can't get rating distribution")
	}
	if dist == nil {
		dist = []entity.RatingBucket{}
	}

	recent, err := s.repo.Reviews().GetRecentReviews(ctx, recentReviewsLimit)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't get recent reviews",
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("can't get recent reviews")
	}
	if recent == nil {
		recent = []entity.ReviewFull{}
	}

	avg, err := s.repo.Reviews().GetAverageRating(ctx)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't get average rating",
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("can't get average rating")
	}

	return &ReviewAnalytics{
		RatingDistribution: dist,
		RecentReviews:      recent,
		AverageRating:      avg,
	}, nil
}

// GetDashboardOverview composes the six dashboard snapshot values. The
// queries are independent and run concurrently; each sees its own
// consistent snapshot, cross-query consistency is not promised.
func (s *Server) GetDashboardOverview(ctx context.Context) (*entity.DashboardOverview, error) {
	now := s.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	overview := &entity.DashboardOverview{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		overview.DailySales, err = s.repo.Analytics().SalesTotal(gctx, startOfDay, startOfDay.AddDate(0, 0, 1))
		return err
	})
	g.Go(func() error {
		var err error
		overview.MonthlySales, err = s.repo.Analytics().SalesTotal(gctx, startOfMonth, time.Time{})
		return err
	})
	g.Go(func() error {
		var err error
		overview.PendingOrders, err = s.repo.Orders().CountByStatus(gctx, entity.OrderStatusPending)
		return err
	})
	g.Go(func() error {
		var err error
		overview.TotalProducts, err = s.repo.Products().Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		overview.TotalReviews, err = s.repo.Reviews().CountApproved(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		overview.InventoryStatus, err = s.repo.Analytics().GetInventoryStatus(gctx, s.c.LowStockThreshold)
		return err
	})

	if err := g.Wait(); err != nil {
		slog.Default().ErrorContext(ctx, "can't get dashboard overview",
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("can't get dashboard overview")
	}
	return overview, nil
}
