package reports

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"cervejaria-pos/internal/domain"
	"cervejaria-pos/internal/interfaces"
)

type fakeReportRepo struct {
	lastLimit int
	today     []*domain.Order
	ranking   []*interfaces.CashierSales
}

func (f *fakeReportRepo) BestSellers(ctx context.Context, category string, limit int) ([]*interfaces.BestSeller, error) {
	f.lastLimit = limit
	return nil, nil
}

func (f *fakeReportRepo) ProductRevenue(ctx context.Context, productID int) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (f *fakeReportRepo) OrderBreakdown(ctx context.Context, orderID int) ([]*interfaces.OrderBreakdownRow, error) {
	return nil, nil
}

func (f *fakeReportRepo) TotalItemsSold(ctx context.Context) (int64, error) { return 0, nil }

func (f *fakeReportRepo) RevenueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (f *fakeReportRepo) WaiterSales(ctx context.Context, waiterID int) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (f *fakeReportRepo) OpenTables(ctx context.Context) ([]int, error) { return nil, nil }

func (f *fakeReportRepo) OrdersToday(ctx context.Context) ([]*domain.Order, error) {
	return f.today, nil
}

func (f *fakeReportRepo) CashierRanking(ctx context.Context) ([]*interfaces.CashierSales, error) {
	return f.ranking, nil
}

func TestBestSellersDefaultLimit(t *testing.T) {
	repo := &fakeReportRepo{}
	service := NewService(repo)

	if _, err := service.BestSellers(context.Background(), "", 0); err != nil {
		t.Fatalf("BestSellers() error = %v", err)
	}
	if repo.lastLimit != 10 {
		t.Errorf("limit = %d, want default 10", repo.lastLimit)
	}
}

func TestOrdersToday(t *testing.T) {
	repo := &fakeReportRepo{
		today: []*domain.Order{
			{ID: 3, TableNumber: 7, Status: domain.StatusOpen},
			{ID: 2, TableNumber: 4, Status: domain.StatusPaid},
		},
	}
	service := NewService(repo)

	orders, err := service.OrdersToday(context.Background())
	if err != nil {
		t.Fatalf("OrdersToday() error = %v", err)
	}
	if len(orders) != 2 || orders[0].ID != 3 {
		t.Errorf("orders = %v, want the repository's two rows in order", orders)
	}
}

func TestCashierRanking(t *testing.T) {
	repo := &fakeReportRepo{
		ranking: []*interfaces.CashierSales{
			{CashierID: 2, Name: "Caixa 2", Code: "C002", TotalSold: decimal.RequireFromString("320.00")},
			{CashierID: 1, Name: "Caixa 1", Code: "C001", TotalSold: decimal.RequireFromString("150.00")},
		},
	}
	service := NewService(repo)

	ranking, err := service.CashierRanking(context.Background())
	if err != nil {
		t.Fatalf("CashierRanking() error = %v", err)
	}
	if len(ranking) != 2 {
		t.Fatalf("ranking length = %d, want 2", len(ranking))
	}
	if ranking[0].CashierID != 2 || !ranking[0].TotalSold.GreaterThan(ranking[1].TotalSold) {
		t.Errorf("ranking[0] = %+v, want the highest seller first", ranking[0])
	}
}
