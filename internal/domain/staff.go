package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Waiter represents a member of the floor staff. Code is the unique
// registration number shown on receipts.
type Waiter struct {
	ID        int
	Name      string
	Code      string
	CPF       *string
	Email     *string
	Phone     *string
	Salary    decimal.Decimal
	Shift     string
	Active    bool
	HiredAt   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate applies business validation rules
func (w *Waiter) Validate() error {
	if w.Name == "" {
		return ErrValidation
	}
	if w.Code == "" {
		return ErrValidation
	}
	if w.CPF != nil && len(*w.CPF) != 11 {
		return ErrValidation
	}
	return nil
}

// Cashier represents a till operator. Payments only post against an
// open session; TotalSold accumulates across paid orders.
type Cashier struct {
	ID           int
	Name         string
	Code         string
	Salary       decimal.Decimal
	TotalSold    decimal.Decimal
	CurrentValue decimal.Decimal
	Status       CashierStatus
	Active       bool
	OpenedAt     *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate applies business validation rules
func (c *Cashier) Validate() error {
	if c.Name == "" {
		return ErrValidation
	}
	if c.Code == "" {
		return ErrValidation
	}
	return nil
}

// IsOpen reports whether the cashier session accepts payments.
func (c *Cashier) IsOpen() bool {
	return c.Status == CashierOpen
}
