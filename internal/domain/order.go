package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order represents a table's open tab, progressing through a status
// lifecycle to payment.
type Order struct {
	ID            int
	TableNumber   int
	WaiterID      int
	Items         []OrderItem
	Total         decimal.Decimal
	Status        Status
	PaymentMethod *string
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	PaidAt        *time.Time
}

// OrderItem is one product-quantity line within an order. UnitPrice is
// a snapshot of the product price at add-time; relations are id-based.
type OrderItem struct {
	ID        int
	OrderID   int
	ProductID int
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
	Notes     *string
}

// NewOrder creates an open order for a table with business rules applied.
func NewOrder(tableNumber, waiterID int) (*Order, error) {
	order := &Order{
		TableNumber: tableNumber,
		WaiterID:    waiterID,
		Status:      StatusOpen,
		Total:       decimal.Zero,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := order.Validate(); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate applies business validation rules
func (o *Order) Validate() error {
	if o.TableNumber <= 0 {
		return ErrValidation
	}
	if o.WaiterID <= 0 {
		return ErrValidation
	}
	return nil
}

// Editable reports whether items may still be added, changed or removed.
func (o *Order) Editable() bool {
	return o.Status == StatusOpen
}

// CanTransitionTo checks if the order can transition to the new status
func (o *Order) CanTransitionTo(newStatus Status) bool {
	validTransitions := map[Status][]Status{
		StatusOpen:      {StatusConfirmed, StatusPaid, StatusCanceled},
		StatusConfirmed: {StatusDelivered, StatusPaid, StatusCanceled},
		StatusDelivered: {StatusPaid, StatusCanceled},
		StatusPaid:      {},
		StatusCanceled:  {},
	}

	allowed := validTransitions[o.Status]
	for _, s := range allowed {
		if s == newStatus {
			return true
		}
	}
	return false
}

// TransitionTo transitions the order to a new status. Terminal states
// never reopen.
func (o *Order) TransitionTo(newStatus Status) error {
	if !o.CanTransitionTo(newStatus) {
		return ErrInvalidTransition
	}

	o.Status = newStatus
	o.UpdatedAt = time.Now()

	if newStatus == StatusPaid {
		now := time.Now()
		o.PaidAt = &now
	}

	return nil
}

// RecalculateTotal recomputes the order total as the sum of item subtotals.
func (o *Order) RecalculateTotal() {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal)
	}
	o.Total = total
}

// NewOrderItem builds a line for a product, snapshotting its current price.
func NewOrderItem(orderID int, product *Product, quantity int, notes *string) (*OrderItem, error) {
	if quantity < 1 {
		return nil, ErrValidation
	}

	item := &OrderItem{
		OrderID:   orderID,
		ProductID: product.ID,
		Quantity:  quantity,
		UnitPrice: product.Price,
		Notes:     notes,
	}
	item.RecalculateSubtotal()

	return item, nil
}

// RecalculateSubtotal keeps subtotal == quantity × unit price.
func (i *OrderItem) RecalculateSubtotal() {
	i.Subtotal = i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
