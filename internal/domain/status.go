package domain

import "time"

type Status string

const (
	StatusOpen      Status = "OPEN"
	StatusConfirmed Status = "CONFIRMED"
	StatusDelivered Status = "DELIVERED"
	StatusPaid      Status = "PAID"
	StatusCanceled  Status = "CANCELED"
)

type CashierStatus string

const (
	CashierOpen   CashierStatus = "OPEN"
	CashierClosed CashierStatus = "CLOSED"
)

// StatusLog records a single transition of an order's status.
type StatusLog struct {
	ID        int
	OrderID   int
	Status    Status
	ChangedBy string
	ChangedAt time.Time
	Notes     *string
}
