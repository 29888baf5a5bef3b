package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"cervejaria-pos/internal/adapter/logger"
	"cervejaria-pos/internal/domain"
	"cervejaria-pos/internal/interfaces"
)

type WaiterHandler struct {
	service interfaces.StaffService
	logger  logger.Logger
}

func NewWaiterHandler(service interfaces.StaffService, logger logger.Logger) *WaiterHandler {
	return &WaiterHandler{
		service: service,
		logger:  logger,
	}
}

type WaiterRequest struct {
	Name   string          `json:"nome"`
	Code   string          `json:"matricula"`
	CPF    *string         `json:"cpf"`
	Email  *string         `json:"email"`
	Phone  *string         `json:"telefone"`
	Salary decimal.Decimal `json:"salario"`
	Shift  string          `json:"turno"`
}

// Handle routes /api/garcons and its subpaths.
func (h *WaiterHandler) Handle(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

	if len(parts) == 2 {
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodPost:
			h.create(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	id, err := strconv.Atoi(parts[2])
	if err != nil {
		http.Error(w, "Invalid waiter id", http.StatusBadRequest)
		return
	}

	if len(parts) == 3 {
		switch r.Method {
		case http.MethodGet:
			h.get(w, r, id)
		case http.MethodPut:
			h.update(w, r, id)
		case http.MethodDelete:
			h.deactivate(w, r, id)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	http.Error(w, "Not found", http.StatusNotFound)
}

func (h *WaiterHandler) list(w http.ResponseWriter, r *http.Request) {
	filter := interfaces.WaiterFilter{
		ActiveOnly: r.URL.Query().Get("ativos") == "true",
		Shift:      r.URL.Query().Get("turno"),
	}
	if raw := r.URL.Query().Get("salario_min"); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			respondError(w, domain.ErrValidation)
			return
		}
		filter.SalaryMin = &min
	}
	if raw := r.URL.Query().Get("salario_max"); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil {
			respondError(w, domain.ErrValidation)
			return
		}
		filter.SalaryMax = &max
	}

	waiters, err := h.service.ListWaiters(r.Context(), filter)
	if err != nil {
		respondError(w, err)
		return
	}

	resp := make([]WaiterResponse, len(waiters))
	for i, waiter := range waiters {
		resp[i] = toWaiterResponse(waiter)
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *WaiterHandler) get(w http.ResponseWriter, r *http.Request, id int) {
	waiter, err := h.service.GetWaiter(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toWaiterResponse(waiter))
}

func (h *WaiterHandler) create(w http.ResponseWriter, r *http.Request) {
	var req WaiterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.ErrValidation)
		return
	}

	waiter, err := h.service.CreateWaiter(r.Context(), interfaces.CreateWaiterCommand{
		Name:   strings.TrimSpace(req.Name),
		Code:   strings.TrimSpace(req.Code),
		CPF:    req.CPF,
		Email:  req.Email,
		Phone:  req.Phone,
		Salary: req.Salary,
		Shift:  req.Shift,
	})
	if err != nil {
		h.logger.Error("waiter_creation_failed", "Failed to create waiter", r.Header.Get("X-Request-ID"), nil, err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toWaiterResponse(waiter))
}

func (h *WaiterHandler) update(w http.ResponseWriter, r *http.Request, id int) {
	var req WaiterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.ErrValidation)
		return
	}

	waiter, err := h.service.UpdateWaiter(r.Context(), id, interfaces.CreateWaiterCommand{
		Name:   strings.TrimSpace(req.Name),
		Code:   strings.TrimSpace(req.Code),
		CPF:    req.CPF,
		Email:  req.Email,
		Phone:  req.Phone,
		Salary: req.Salary,
		Shift:  req.Shift,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toWaiterResponse(waiter))
}

func (h *WaiterHandler) deactivate(w http.ResponseWriter, r *http.Request, id int) {
	if err := h.service.DeactivateWaiter(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
