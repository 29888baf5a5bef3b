package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"cervejaria-pos/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

func respondError(w http.ResponseWriter, err error) {
	respondJSON(w, statusFor(err), ErrorResponse{Error: err.Error()})
}

// statusFor maps the domain error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrDuplicateKey):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrOrderNotEditable),
		errors.Is(err, domain.ErrInactiveStaff),
		errors.Is(err, domain.ErrProductInactive),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrEmptyOrder),
		errors.Is(err, domain.ErrCannotCancelPaid),
		errors.Is(err, domain.ErrAlreadyPaid),
		errors.Is(err, domain.ErrCashierNotOpen):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
