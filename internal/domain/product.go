package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalog entry available for sale.
type Product struct {
	ID          int
	Name        string
	Description *string
	Price       decimal.Decimal
	Category    string
	Stock       int
	Active      bool
	Image       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate applies business validation rules
func (p *Product) Validate() error {
	if p.Name == "" {
		return ErrValidation
	}
	if p.Category == "" {
		return ErrValidation
	}
	if !p.Price.IsPositive() {
		return ErrValidation
	}
	if p.Stock < 0 {
		return ErrValidation
	}
	return nil
}

// HasStock reports whether the product can cover the given quantity.
func (p *Product) HasStock(quantity int) bool {
	return p.Stock >= quantity
}
