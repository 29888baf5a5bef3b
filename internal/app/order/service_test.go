package order

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"cervejaria-pos/internal/domain"
	"cervejaria-pos/internal/interfaces"
)

type nopLogger struct{}

func (nopLogger) Info(action, message, requestID string, details map[string]interface{})             {}
func (nopLogger) Debug(action, message, requestID string, details map[string]interface{})            {}
func (nopLogger) Error(action, message, requestID string, details map[string]interface{}, err error) {}

type fakeProductRepo struct {
	products map[int]*domain.Product
	nextID   int
}

func (f *fakeProductRepo) Create(ctx context.Context, p *domain.Product) error {
	f.nextID++
	p.ID = f.nextID
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id int) (*domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (f *fakeProductRepo) FindAll(ctx context.Context, filter interfaces.ProductFilter) ([]*domain.Product, error) {
	var out []*domain.Product
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, p *domain.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) SetActive(ctx context.Context, id int, active bool) error {
	p, ok := f.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Active = active
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id int) error {
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) AdjustStock(ctx context.Context, id, delta int) error {
	p, ok := f.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.Stock+delta < 0 {
		return domain.ErrInsufficientStock
	}
	p.Stock += delta
	return nil
}

type fakeWaiterRepo struct {
	waiters map[int]*domain.Waiter
}

func (f *fakeWaiterRepo) Create(ctx context.Context, w *domain.Waiter) error { return nil }

func (f *fakeWaiterRepo) FindByID(ctx context.Context, id int) (*domain.Waiter, error) {
	w, ok := f.waiters[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return w, nil
}

func (f *fakeWaiterRepo) FindByCode(ctx context.Context, code string) (*domain.Waiter, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeWaiterRepo) FindAll(ctx context.Context, filter interfaces.WaiterFilter) ([]*domain.Waiter, error) {
	return nil, nil
}

func (f *fakeWaiterRepo) Update(ctx context.Context, w *domain.Waiter) error       { return nil }
func (f *fakeWaiterRepo) SetActive(ctx context.Context, id int, active bool) error { return nil }

type fakeCashierRepo struct {
	cashiers map[int]*domain.Cashier
}

func (f *fakeCashierRepo) Create(ctx context.Context, c *domain.Cashier) error { return nil }

func (f *fakeCashierRepo) FindByID(ctx context.Context, id int) (*domain.Cashier, error) {
	c, ok := f.cashiers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (f *fakeCashierRepo) FindByCode(ctx context.Context, code string) (*domain.Cashier, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeCashierRepo) FindAll(ctx context.Context, activeOnly bool) ([]*domain.Cashier, error) {
	return nil, nil
}

func (f *fakeCashierRepo) Update(ctx context.Context, c *domain.Cashier) error      { return nil }
func (f *fakeCashierRepo) SetActive(ctx context.Context, id int, active bool) error { return nil }

func (f *fakeCashierRepo) SetSession(ctx context.Context, id int, status domain.CashierStatus) error {
	c, ok := f.cashiers[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.Status = status
	return nil
}

// fakeOrderRepo mirrors the transactional invariants of the real
// repository: stock moves with every item mutation, totals stay equal
// to the sum of subtotals.
type fakeOrderRepo struct {
	orders     map[int]*domain.Order
	products   *fakeProductRepo
	cashiers   *fakeCashierRepo
	logs       map[int][]*domain.StatusLog
	nextID     int
	nextItemID int
}

func (f *fakeOrderRepo) Create(ctx context.Context, o *domain.Order) error {
	// All-or-nothing like the real tx: stock is checked across every
	// item before anything is written.
	needed := map[int]int{}
	for _, item := range o.Items {
		needed[item.ProductID] += item.Quantity
	}
	for productID, quantity := range needed {
		if f.products.products[productID].Stock < quantity {
			return domain.ErrInsufficientStock
		}
	}
	for productID, quantity := range needed {
		f.products.products[productID].Stock -= quantity
	}

	f.nextID++
	o.ID = f.nextID
	for i := range o.Items {
		f.nextItemID++
		o.Items[i].ID = f.nextItemID
		o.Items[i].OrderID = o.ID
	}
	f.orders[o.ID] = o
	f.appendLog(o, "order-service")
	return nil
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, id int) (*domain.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

func (f *fakeOrderRepo) FindAll(ctx context.Context, filter interfaces.OrderFilter) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, o := range f.orders {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOrderRepo) FindItemByID(ctx context.Context, itemID int) (*domain.OrderItem, error) {
	for _, o := range f.orders {
		for i := range o.Items {
			if o.Items[i].ID == itemID {
				item := o.Items[i]
				return &item, nil
			}
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeOrderRepo) AddItem(ctx context.Context, item *domain.OrderItem) error {
	o, ok := f.orders[item.OrderID]
	if !ok {
		return domain.ErrNotFound
	}
	p := f.products.products[item.ProductID]
	if p.Stock < item.Quantity {
		return domain.ErrInsufficientStock
	}
	p.Stock -= item.Quantity

	f.nextItemID++
	item.ID = f.nextItemID
	o.Items = append(o.Items, *item)
	o.RecalculateTotal()
	return nil
}

func (f *fakeOrderRepo) UpdateItemQuantity(ctx context.Context, item *domain.OrderItem, delta int) error {
	o, ok := f.orders[item.OrderID]
	if !ok {
		return domain.ErrNotFound
	}
	p := f.products.products[item.ProductID]
	if delta > 0 && p.Stock < delta {
		return domain.ErrInsufficientStock
	}
	p.Stock -= delta

	for i := range o.Items {
		if o.Items[i].ID == item.ID {
			o.Items[i] = *item
		}
	}
	o.RecalculateTotal()
	return nil
}

func (f *fakeOrderRepo) RemoveItem(ctx context.Context, item *domain.OrderItem) error {
	o, ok := f.orders[item.OrderID]
	if !ok {
		return domain.ErrNotFound
	}
	f.products.products[item.ProductID].Stock += item.Quantity

	kept := o.Items[:0]
	for _, existing := range o.Items {
		if existing.ID != item.ID {
			kept = append(kept, existing)
		}
	}
	o.Items = kept
	o.RecalculateTotal()
	return nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, o *domain.Order, changedBy string) error {
	f.appendLog(o, changedBy)
	return nil
}

func (f *fakeOrderRepo) Pay(ctx context.Context, o *domain.Order, cashierID int, changedBy string) error {
	c := f.cashiers.cashiers[cashierID]
	if !c.IsOpen() {
		return domain.ErrCashierNotOpen
	}
	c.TotalSold = c.TotalSold.Add(o.Total)
	c.CurrentValue = c.CurrentValue.Add(o.Total)
	f.appendLog(o, changedBy)
	return nil
}

func (f *fakeOrderRepo) Cancel(ctx context.Context, o *domain.Order, changedBy string) error {
	for _, item := range o.Items {
		f.products.products[item.ProductID].Stock += item.Quantity
	}
	f.appendLog(o, changedBy)
	return nil
}

func (f *fakeOrderRepo) Delete(ctx context.Context, id int) error {
	if _, ok := f.orders[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.orders, id)
	delete(f.logs, id)
	return nil
}

func (f *fakeOrderRepo) GetStatusHistory(ctx context.Context, orderID int) ([]*domain.StatusLog, error) {
	return f.logs[orderID], nil
}

func (f *fakeOrderRepo) appendLog(o *domain.Order, changedBy string) {
	f.logs[o.ID] = append(f.logs[o.ID], &domain.StatusLog{
		OrderID:   o.ID,
		Status:    o.Status,
		ChangedBy: changedBy,
	})
}

type fakePublisher struct {
	messages []interfaces.OrderStatusMessage
}

func (f *fakePublisher) PublishStatusUpdate(ctx context.Context, msg interfaces.OrderStatusMessage) error {
	f.messages = append(f.messages, msg)
	return nil
}

type fixture struct {
	service   *Service
	products  *fakeProductRepo
	orders    *fakeOrderRepo
	cashiers  *fakeCashierRepo
	publisher *fakePublisher
}

func newFixture() *fixture {
	products := &fakeProductRepo{
		products: map[int]*domain.Product{
			1: {ID: 1, Name: "Chopp Pilsen", Price: decimal.RequireFromString("5.00"), Category: "bebidas", Stock: 10, Active: true},
			2: {ID: 2, Name: "Porcao Calabresa", Price: decimal.RequireFromString("25.00"), Category: "porcoes", Stock: 5, Active: false},
		},
		nextID: 2,
	}
	waiters := &fakeWaiterRepo{
		waiters: map[int]*domain.Waiter{
			1: {ID: 1, Name: "Ana", Code: "G001", Active: true},
			2: {ID: 2, Name: "Bruno", Code: "G002", Active: false},
		},
	}
	cashiers := &fakeCashierRepo{
		cashiers: map[int]*domain.Cashier{
			1: {ID: 1, Name: "Caixa 1", Code: "C001", Status: domain.CashierOpen, Active: true},
			2: {ID: 2, Name: "Caixa 2", Code: "C002", Status: domain.CashierClosed, Active: true},
		},
	}
	orders := &fakeOrderRepo{
		orders:   map[int]*domain.Order{},
		products: products,
		cashiers: cashiers,
		logs:     map[int][]*domain.StatusLog{},
	}
	publisher := &fakePublisher{}

	return &fixture{
		service:   NewService(orders, products, waiters, cashiers, publisher, nopLogger{}),
		products:  products,
		orders:    orders,
		cashiers:  cashiers,
		publisher: publisher,
	}
}

func (f *fixture) createOrder(t *testing.T, quantity int) *domain.Order {
	t.Helper()
	order, err := f.service.Create(context.Background(), interfaces.CreateOrderCommand{
		TableNumber: 5,
		WaiterID:    1,
		Items: []interfaces.CreateOrderItemCommand{
			{ProductID: 1, Quantity: quantity},
		},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return order
}

func TestCreateOrderDecrementsStock(t *testing.T) {
	f := newFixture()

	order := f.createOrder(t, 3)

	if order.Status != domain.StatusOpen {
		t.Errorf("status = %s, want %s", order.Status, domain.StatusOpen)
	}
	if want := decimal.RequireFromString("15.00"); !order.Total.Equal(want) {
		t.Errorf("total = %s, want %s", order.Total, want)
	}
	if got := f.products.products[1].Stock; got != 7 {
		t.Errorf("stock = %d, want 7", got)
	}
}

func TestCreateOrderFailedItemLeavesNothing(t *testing.T) {
	f := newFixture()

	// The second item exceeds stock on its own; the first must not
	// survive the failure.
	_, err := f.service.Create(context.Background(), interfaces.CreateOrderCommand{
		TableNumber: 5,
		WaiterID:    1,
		Items: []interfaces.CreateOrderItemCommand{
			{ProductID: 1, Quantity: 3},
			{ProductID: 1, Quantity: 50},
		},
	})
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("Create() error = %v, want %v", err, domain.ErrInsufficientStock)
	}
	if len(f.orders.orders) != 0 {
		t.Errorf("orders persisted = %d, want 0", len(f.orders.orders))
	}
	if got := f.products.products[1].Stock; got != 10 {
		t.Errorf("stock = %d, want 10", got)
	}
}

func TestCreateOrderCumulativeStockShortfall(t *testing.T) {
	f := newFixture()

	// Each item fits the stock of 10 alone but not together.
	_, err := f.service.Create(context.Background(), interfaces.CreateOrderCommand{
		TableNumber: 5,
		WaiterID:    1,
		Items: []interfaces.CreateOrderItemCommand{
			{ProductID: 1, Quantity: 6},
			{ProductID: 1, Quantity: 6},
		},
	})
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("Create() error = %v, want %v", err, domain.ErrInsufficientStock)
	}
	if len(f.orders.orders) != 0 {
		t.Errorf("orders persisted = %d, want 0", len(f.orders.orders))
	}
	if got := f.products.products[1].Stock; got != 10 {
		t.Errorf("stock = %d, want 10", got)
	}
}

func TestCreateOrderInactiveWaiter(t *testing.T) {
	f := newFixture()

	_, err := f.service.Create(context.Background(), interfaces.CreateOrderCommand{
		TableNumber: 5,
		WaiterID:    2,
	})
	if !errors.Is(err, domain.ErrInactiveStaff) {
		t.Errorf("Create() error = %v, want %v", err, domain.ErrInactiveStaff)
	}
}

func TestAddItemInsufficientStock(t *testing.T) {
	f := newFixture()
	order := f.createOrder(t, 3)

	_, err := f.service.AddItem(context.Background(), order.ID, interfaces.CreateOrderItemCommand{
		ProductID: 1,
		Quantity:  8, // only 7 left
	})
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Errorf("AddItem() error = %v, want %v", err, domain.ErrInsufficientStock)
	}
	if got := f.products.products[1].Stock; got != 7 {
		t.Errorf("stock changed on failed add: %d, want 7", got)
	}
}

func TestAddItemInactiveProduct(t *testing.T) {
	f := newFixture()
	order := f.createOrder(t, 1)

	_, err := f.service.AddItem(context.Background(), order.ID, interfaces.CreateOrderItemCommand{
		ProductID: 2,
		Quantity:  1,
	})
	if !errors.Is(err, domain.ErrProductInactive) {
		t.Errorf("AddItem() error = %v, want %v", err, domain.ErrProductInactive)
	}
}

func TestAddItemToConfirmedOrder(t *testing.T) {
	f := newFixture()
	order := f.createOrder(t, 1)

	if _, err := f.service.Confirm(context.Background(), order.ID); err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}

	_, err := f.service.AddItem(context.Background(), order.ID, interfaces.CreateOrderItemCommand{
		ProductID: 1,
		Quantity:  1,
	})
	if !errors.Is(err, domain.ErrOrderNotEditable) {
		t.Errorf("AddItem() error = %v, want %v", err, domain.ErrOrderNotEditable)
	}
}

func TestUpdateItemAdjustsStockAndTotal(t *testing.T) {
	f := newFixture()
	order := f.createOrder(t, 3)
	itemID := order.Items[0].ID

	item, err := f.service.UpdateItem(context.Background(), itemID, 5)
	if err != nil {
		t.Fatalf("UpdateItem() error = %v", err)
	}
	if want := decimal.RequireFromString("25.00"); !item.Subtotal.Equal(want) {
		t.Errorf("subtotal = %s, want %s", item.Subtotal, want)
	}
	if got := f.products.products[1].Stock; got != 5 {
		t.Errorf("stock = %d, want 5", got)
	}

	// Shrink it back; the difference returns to stock.
	if _, err := f.service.UpdateItem(context.Background(), itemID, 2); err != nil {
		t.Fatalf("UpdateItem() error = %v", err)
	}
	if got := f.products.products[1].Stock; got != 8 {
		t.Errorf("stock = %d, want 8", got)
	}

	updated, err := f.service.Get(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if want := decimal.RequireFromString("10.00"); !updated.Total.Equal(want) {
		t.Errorf("total = %s, want %s", updated.Total, want)
	}
}

func TestUpdateItemZeroQuantity(t *testing.T) {
	f := newFixture()
	order := f.createOrder(t, 3)

	_, err := f.service.UpdateItem(context.Background(), order.Items[0].ID, 0)
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("UpdateItem(0) error = %v, want %v", err, domain.ErrValidation)
	}
}

func TestRemoveItemRestoresStock(t *testing.T) {
	f := newFixture()
	order := f.createOrder(t, 3)

	if err := f.service.RemoveItem(context.Background(), order.Items[0].ID); err != nil {
		t.Fatalf("RemoveItem() error = %v", err)
	}
	if got := f.products.products[1].Stock; got != 10 {
		t.Errorf("stock = %d, want 10", got)
	}

	updated, err := f.service.Get(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !updated.Total.IsZero() {
		t.Errorf("total = %s, want 0", updated.Total)
	}
}

func TestConfirmEmptyOrder(t *testing.T) {
	f := newFixture()

	order, err := f.service.Create(context.Background(), interfaces.CreateOrderCommand{
		TableNumber: 5,
		WaiterID:    1,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := f.service.Confirm(context.Background(), order.ID); !errors.Is(err, domain.ErrEmptyOrder) {
		t.Errorf("Confirm() error = %v, want %v", err, domain.ErrEmptyOrder)
	}
}

func TestConfirmTwice(t *testing.T) {
	f := newFixture()
	order := f.createOrder(t, 1)

	if _, err := f.service.Confirm(context.Background(), order.ID); err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	if _, err := f.service.Confirm(context.Background(), order.ID); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("second Confirm() error = %v, want %v", err, domain.ErrInvalidTransition)
	}
}

func TestDeliverRequiresConfirmed(t *testing.T) {
	f := newFixture()
	order := f.createOrder(t, 1)

	if _, err := f.service.Deliver(context.Background(), order.ID); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("Deliver() from OPEN error = %v, want %v", err, domain.ErrInvalidTransition)
	}

	if _, err := f.service.Confirm(context.Background(), order.ID); err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	if _, err := f.service.Deliver(context.Background(), order.ID); err != nil {
		t.Errorf("Deliver() error = %v", err)
	}
}

func TestPayCreditsCashier(t *testing.T) {
	f := newFixture()
	order := f.createOrder(t, 3)

	paid, err := f.service.Pay(context.Background(), order.ID, 1, "dinheiro")
	if err != nil {
		t.Fatalf("Pay() error = %v", err)
	}
	if paid.Status != domain.StatusPaid {
		t.Errorf("status = %s, want %s", paid.Status, domain.StatusPaid)
	}
	if paid.PaidAt == nil {
		t.Error("PaidAt not set")
	}
	if paid.PaymentMethod == nil || *paid.PaymentMethod != "dinheiro" {
		t.Error("payment method not recorded")
	}

	cashier := f.cashiers.cashiers[1]
	if want := decimal.RequireFromString("15.00"); !cashier.TotalSold.Equal(want) {
		t.Errorf("cashier total sold = %s, want %s", cashier.TotalSold, want)
	}
}

func TestPayClosedCashier(t *testing.T) {
	f := newFixture()
	order := f.createOrder(t, 3)

	_, err := f.service.Pay(context.Background(), order.ID, 2, "dinheiro")
	if !errors.Is(err, domain.ErrCashierNotOpen) {
		t.Errorf("Pay() error = %v, want %v", err, domain.ErrCashierNotOpen)
	}
}

func TestPayTwice(t *testing.T) {
	f := newFixture()
	order := f.createOrder(t, 1)

	if _, err := f.service.Pay(context.Background(), order.ID, 1, "pix"); err != nil {
		t.Fatalf("Pay() error = %v", err)
	}
	if _, err := f.service.Pay(context.Background(), order.ID, 1, "pix"); !errors.Is(err, domain.ErrAlreadyPaid) {
		t.Errorf("second Pay() error = %v, want %v", err, domain.ErrAlreadyPaid)
	}
}

func TestPayCanceledOrder(t *testing.T) {
	f := newFixture()
	order := f.createOrder(t, 1)

	if _, err := f.service.Cancel(context.Background(), order.ID, "cliente desistiu"); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}
	if _, err := f.service.Pay(context.Background(), order.ID, 1, "pix"); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("Pay() on canceled error = %v, want %v", err, domain.ErrInvalidTransition)
	}
}

func TestCancelRestoresStock(t *testing.T) {
	f := newFixture()
	order := f.createOrder(t, 3)

	canceled, err := f.service.Cancel(context.Background(), order.ID, "cliente desistiu")
	if err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}
	if canceled.Status != domain.StatusCanceled {
		t.Errorf("status = %s, want %s", canceled.Status, domain.StatusCanceled)
	}
	if canceled.Notes == nil || *canceled.Notes == "" {
		t.Error("cancellation reason not recorded")
	}
	if got := f.products.products[1].Stock; got != 10 {
		t.Errorf("stock = %d, want 10", got)
	}
}

func TestCancelPaidOrder(t *testing.T) {
	f := newFixture()
	order := f.createOrder(t, 1)

	if _, err := f.service.Pay(context.Background(), order.ID, 1, "pix"); err != nil {
		t.Fatalf("Pay() error = %v", err)
	}
	if _, err := f.service.Cancel(context.Background(), order.ID, "tarde demais"); !errors.Is(err, domain.ErrCannotCancelPaid) {
		t.Errorf("Cancel() on paid error = %v, want %v", err, domain.ErrCannotCancelPaid)
	}
}

func TestDeleteRequiresCanceled(t *testing.T) {
	f := newFixture()
	order := f.createOrder(t, 1)

	if err := f.service.Delete(context.Background(), order.ID); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("Delete() on open error = %v, want %v", err, domain.ErrInvalidTransition)
	}

	if _, err := f.service.Cancel(context.Background(), order.ID, "mesa errada"); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}
	if err := f.service.Delete(context.Background(), order.ID); err != nil {
		t.Errorf("Delete() error = %v", err)
	}
	if _, err := f.service.Get(context.Background(), order.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want %v", err, domain.ErrNotFound)
	}
}

func TestStatusTransitionsPublishEvents(t *testing.T) {
	f := newFixture()
	order := f.createOrder(t, 1)

	if _, err := f.service.Confirm(context.Background(), order.ID); err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	if _, err := f.service.Deliver(context.Background(), order.ID); err != nil {
		t.Fatalf("Deliver() error = %v", err)
	}
	if _, err := f.service.Pay(context.Background(), order.ID, 1, "cartao"); err != nil {
		t.Fatalf("Pay() error = %v", err)
	}

	if len(f.publisher.messages) != 3 {
		t.Fatalf("published %d messages, want 3", len(f.publisher.messages))
	}
	last := f.publisher.messages[2]
	if last.NewStatus != domain.StatusPaid || last.OldStatus != domain.StatusDelivered {
		t.Errorf("last event = %s -> %s, want %s -> %s",
			last.OldStatus, last.NewStatus, domain.StatusDelivered, domain.StatusPaid)
	}
}

func TestHistoryTracksLifecycle(t *testing.T) {
	f := newFixture()
	order := f.createOrder(t, 1)

	if _, err := f.service.Confirm(context.Background(), order.ID); err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}

	logs, err := f.service.History(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("history length = %d, want 2", len(logs))
	}
	if logs[0].Status != domain.StatusOpen || logs[1].Status != domain.StatusConfirmed {
		t.Errorf("history = [%s, %s], want [OPEN, CONFIRMED]", logs[0].Status, logs[1].Status)
	}
}
