package interfaces

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"cervejaria-pos/internal/domain"
)

// ProductFilter narrows catalog listings. Zero values mean "no filter".
type ProductFilter struct {
	Category      string
	NameContains  string
	LowStockBelow *int
	ActiveOnly    bool
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id int) (*domain.Product, error)
	FindAll(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	SetActive(ctx context.Context, id int, active bool) error
	Delete(ctx context.Context, id int) error
	AdjustStock(ctx context.Context, id, delta int) error
}

// WaiterFilter narrows waiter listings. Zero values mean "no filter".
type WaiterFilter struct {
	ActiveOnly bool
	Shift      string
	SalaryMin  *decimal.Decimal
	SalaryMax  *decimal.Decimal
}

type WaiterRepository interface {
	Create(ctx context.Context, waiter *domain.Waiter) error
	FindByID(ctx context.Context, id int) (*domain.Waiter, error)
	FindByCode(ctx context.Context, code string) (*domain.Waiter, error)
	FindAll(ctx context.Context, filter WaiterFilter) ([]*domain.Waiter, error)
	Update(ctx context.Context, waiter *domain.Waiter) error
	SetActive(ctx context.Context, id int, active bool) error
}

type CashierRepository interface {
	Create(ctx context.Context, cashier *domain.Cashier) error
	FindByID(ctx context.Context, id int) (*domain.Cashier, error)
	FindByCode(ctx context.Context, code string) (*domain.Cashier, error)
	FindAll(ctx context.Context, activeOnly bool) ([]*domain.Cashier, error)
	Update(ctx context.Context, cashier *domain.Cashier) error
	SetActive(ctx context.Context, id int, active bool) error
	SetSession(ctx context.Context, id int, status domain.CashierStatus) error
}

// OrderFilter narrows order listings.
type OrderFilter struct {
	Status      domain.Status
	TableNumber int
	WaiterID    int
}

// OrderRepository owns the transactions of the order lifecycle: every
// mutation that touches stock, items and totals is a single tx. Stock
// decrements are guarded in SQL so two concurrent adds serialize on the
// product row.
type OrderRepository interface {
	// Create inserts the order together with any items it already
	// carries, decrementing stock per item, in one tx. A stock
	// shortfall on any item rolls the whole order back.
	Create(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	FindAll(ctx context.Context, filter OrderFilter) ([]*domain.Order, error)
	FindItemByID(ctx context.Context, itemID int) (*domain.OrderItem, error)

	// AddItem inserts the item, decrements product stock by its quantity
	// and recomputes the order total. Fails with ErrInsufficientStock
	// when the product cannot cover the quantity.
	AddItem(ctx context.Context, item *domain.OrderItem) error

	// UpdateItemQuantity persists the item's new quantity and subtotal,
	// adjusts stock by -delta and recomputes the order total.
	UpdateItemQuantity(ctx context.Context, item *domain.OrderItem, delta int) error

	// RemoveItem deletes the item, returns its quantity to stock and
	// recomputes the order total.
	RemoveItem(ctx context.Context, item *domain.OrderItem) error

	// UpdateStatus persists a status transition and appends to the
	// status log.
	UpdateStatus(ctx context.Context, order *domain.Order, changedBy string) error

	// Pay marks the order paid and adds its total to the cashier's
	// running totals in the same tx. The order update is guarded on
	// status, so a concurrent pay or cancel cannot settle it twice.
	Pay(ctx context.Context, order *domain.Order, cashierID int, changedBy string) error

	// Cancel sets the order canceled and returns every item's quantity
	// to its product's stock in the same tx.
	Cancel(ctx context.Context, order *domain.Order, changedBy string) error

	// Delete hard-removes the order and its items.
	Delete(ctx context.Context, id int) error

	GetStatusHistory(ctx context.Context, orderID int) ([]*domain.StatusLog, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context, activeOnly bool) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	SetActive(ctx context.Context, id int, active bool) error
}

// BestSeller is one row of the best-selling products projection.
type BestSeller struct {
	ProductID    int
	ProductName  string
	Category     string
	QuantitySold int64
	Revenue      decimal.Decimal
}

// OrderBreakdownRow is one line of the items-per-order report.
type OrderBreakdownRow struct {
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// CashierSales is one row of the cashier sales ranking.
type CashierSales struct {
	CashierID int
	Name      string
	Code      string
	TotalSold decimal.Decimal
}

type ReportRepository interface {
	BestSellers(ctx context.Context, category string, limit int) ([]*BestSeller, error)
	ProductRevenue(ctx context.Context, productID int) (decimal.Decimal, error)
	OrderBreakdown(ctx context.Context, orderID int) ([]*OrderBreakdownRow, error)
	TotalItemsSold(ctx context.Context) (int64, error)
	RevenueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	WaiterSales(ctx context.Context, waiterID int) (decimal.Decimal, error)
	OpenTables(ctx context.Context) ([]int, error)
	OrdersToday(ctx context.Context) ([]*domain.Order, error)
	CashierRanking(ctx context.Context) ([]*CashierSales, error)
}
