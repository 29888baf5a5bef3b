package interfaces

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"cervejaria-pos/internal/domain"
)

// Commands carried from the HTTP layer into the services.

type CreateProductCommand struct {
	Name        string
	Description *string
	Price       decimal.Decimal
	Category    string
	Stock       int
	Image       *string
}

type UpdateProductCommand struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Category    *string
	Image       *string
}

type CreateWaiterCommand struct {
	Name   string
	Code   string
	CPF    *string
	Email  *string
	Phone  *string
	Salary decimal.Decimal
	Shift  string
}

type CreateCashierCommand struct {
	Name   string
	Code   string
	Salary decimal.Decimal
}

type CreateOrderItemCommand struct {
	ProductID int
	Quantity  int
	Notes     *string
}

type CreateOrderCommand struct {
	TableNumber int
	WaiterID    int
	Items       []CreateOrderItemCommand
}

type CreateUserCommand struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type CatalogService interface {
	CreateProduct(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error)
	GetProduct(ctx context.Context, id int) (*domain.Product, error)
	ListProducts(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)
	UpdateProduct(ctx context.Context, id int, cmd UpdateProductCommand) (*domain.Product, error)
	AdjustStock(ctx context.Context, id, delta int) (*domain.Product, error)
	DeactivateProduct(ctx context.Context, id int) error
	DeleteProduct(ctx context.Context, id int) error
}

type StaffService interface {
	CreateWaiter(ctx context.Context, cmd CreateWaiterCommand) (*domain.Waiter, error)
	GetWaiter(ctx context.Context, id int) (*domain.Waiter, error)
	ListWaiters(ctx context.Context, filter WaiterFilter) ([]*domain.Waiter, error)
	UpdateWaiter(ctx context.Context, id int, cmd CreateWaiterCommand) (*domain.Waiter, error)
	DeactivateWaiter(ctx context.Context, id int) error

	CreateCashier(ctx context.Context, cmd CreateCashierCommand) (*domain.Cashier, error)
	GetCashier(ctx context.Context, id int) (*domain.Cashier, error)
	ListCashiers(ctx context.Context, activeOnly bool) ([]*domain.Cashier, error)
	UpdateCashier(ctx context.Context, id int, cmd CreateCashierCommand) (*domain.Cashier, error)
	DeactivateCashier(ctx context.Context, id int) error
	OpenCashier(ctx context.Context, id int) (*domain.Cashier, error)
	CloseCashier(ctx context.Context, id int) (*domain.Cashier, error)
}

type OrderService interface {
	Create(ctx context.Context, cmd CreateOrderCommand) (*domain.Order, error)
	Get(ctx context.Context, id int) (*domain.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]*domain.Order, error)

	AddItem(ctx context.Context, orderID int, cmd CreateOrderItemCommand) (*domain.OrderItem, error)
	GetItem(ctx context.Context, itemID int) (*domain.OrderItem, error)
	UpdateItem(ctx context.Context, itemID, newQuantity int) (*domain.OrderItem, error)
	RemoveItem(ctx context.Context, itemID int) error

	Confirm(ctx context.Context, id int) (*domain.Order, error)
	Deliver(ctx context.Context, id int) (*domain.Order, error)
	Pay(ctx context.Context, id, cashierID int, paymentMethod string) (*domain.Order, error)
	Cancel(ctx context.Context, id int, reason string) (*domain.Order, error)
	Delete(ctx context.Context, id int) error

	History(ctx context.Context, id int) ([]*domain.StatusLog, error)
}

type AccountsService interface {
	CreateUser(ctx context.Context, cmd CreateUserCommand) (*domain.User, error)
	GetUser(ctx context.Context, id int) (*domain.User, error)
	ListUsers(ctx context.Context, activeOnly bool) ([]*domain.User, error)
	UpdateUser(ctx context.Context, id int, cmd CreateUserCommand) (*domain.User, error)
	DeactivateUser(ctx context.Context, id int) error
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}

type ReportService interface {
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
