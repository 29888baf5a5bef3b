package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"cervejaria-pos/internal/domain"
	"cervejaria-pos/internal/interfaces"
)

// Service exposes the read-only aggregate views. It is a thin pass
// through; the projections live in SQL.
type Service struct {
	reports interfaces.ReportRepository
}

func NewService(reports interfaces.ReportRepository) *Service {
	return &Service{reports: reports}
}

func (s *Service) BestSellers(ctx context.Context, category string, limit int) ([]*interfaces.BestSeller, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.reports.BestSellers(ctx, category, limit)
}

func (s *Service) ProductRevenue(ctx context.Context, productID int) (decimal.Decimal, error) {
	return s.reports.ProductRevenue(ctx, productID)
}

func (s *Service) OrderBreakdown(ctx context.Context, orderID int) ([]*interfaces.OrderBreakdownRow, error) {
	return s.reports.OrderBreakdown(ctx, orderID)
}

func (s *Service) TotalItemsSold(ctx context.Context) (int64, error) {
	return s.reports.TotalItemsSold(ctx)
}

func (s *Service) RevenueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	return s.reports.RevenueBetween(ctx, from, to)
}

func (s *Service) WaiterSales(ctx context.Context, waiterID int) (decimal.Decimal, error) {
	return s.reports.WaiterSales(ctx, waiterID)
}

func (s *Service) OpenTables(ctx context.Context) ([]int, error) {
	return s.reports.OpenTables(ctx)
}

func (s *Service) OrdersToday(ctx context.Context) ([]*domain.Order, error) {
	return s.reports.OrdersToday(ctx)
}

func (s *Service) CashierRanking(ctx context.Context) ([]*interfaces.CashierSales, error) {
	return s.reports.CashierRanking(ctx)
}
