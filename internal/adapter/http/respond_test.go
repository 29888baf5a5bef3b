package http

import (
	"errors"
	"net/http"
	"testing"

	"cervejaria-pos/internal/domain"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound},
		{"validation", domain.ErrValidation, http.StatusBadRequest},
		{"duplicate", domain.ErrDuplicateKey, http.StatusConflict},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"insufficient stock", domain.ErrInsufficientStock, http.StatusUnprocessableEntity},
		{"not editable", domain.ErrOrderNotEditable, http.StatusUnprocessableEntity},
		{"inactive staff", domain.ErrInactiveStaff, http.StatusUnprocessableEntity},
		{"inactive product", domain.ErrProductInactive, http.StatusUnprocessableEntity},
		{"invalid transition", domain.ErrInvalidTransition, http.StatusUnprocessableEntity},
		{"empty order", domain.ErrEmptyOrder, http.StatusUnprocessableEntity},
		{"cancel paid", domain.ErrCannotCancelPaid, http.StatusUnprocessableEntity},
		{"already paid", domain.ErrAlreadyPaid, http.StatusUnprocessableEntity},
		{"cashier closed", domain.ErrCashierNotOpen, http.StatusUnprocessableEntity},
		{"wrapped not found", errors.Join(errors.New("lookup"), domain.ErrNotFound), http.StatusNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusFor(tt.err); got != tt.want {
				t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
