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

type CashierHandler struct {
	service interfaces.StaffService
	reports interfaces.ReportService
	logger  logger.Logger
}

func NewCashierHandler(service interfaces.StaffService, reports interfaces.ReportService, logger logger.Logger) *CashierHandler {
	return &CashierHandler{
		service: service,
		reports: reports,
		logger:  logger,
	}
}

type CashierRequest struct {
	Name   string          `json:"nome"`
	Code   string          `json:"codigo"`
	Salary decimal.Decimal `json:"salario"`
}

// Handle routes /api/caixas and its subpaths.
func (h *CashierHandler) Handle(w http.ResponseWriter, r *http.Request) {
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

	if parts[2] == "relatorios" {
		if len(parts) == 4 && parts[3] == "ranking" && r.Method == http.MethodGet {
			h.ranking(w, r)
			return
		}
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	id, err := strconv.Atoi(parts[2])
	if err != nil {
		http.Error(w, "Invalid cashier id", http.StatusBadRequest)
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

	if len(parts) == 4 && r.Method == http.MethodPatch {
		switch parts[3] {
		case "abrir":
			h.open(w, r, id)
			return
		case "fechar":
			h.close(w, r, id)
			return
		}
	}

	http.Error(w, "Not found", http.StatusNotFound)
}

func (h *CashierHandler) list(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("ativos") == "true"

	cashiers, err := h.service.ListCashiers(r.Context(), activeOnly)
	if err != nil {
		respondError(w, err)
		return
	}

	resp := make([]CashierResponse, len(cashiers))
	for i, cashier := range cashiers {
		resp[i] = toCashierResponse(cashier)
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *CashierHandler) get(w http.ResponseWriter, r *http.Request, id int) {
	cashier, err := h.service.GetCashier(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toCashierResponse(cashier))
}

func (h *CashierHandler) create(w http.ResponseWriter, r *http.Request) {
	var req CashierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.ErrValidation)
		return
	}

	cashier, err := h.service.CreateCashier(r.Context(), interfaces.CreateCashierCommand{
		Name:   strings.TrimSpace(req.Name),
		Code:   strings.TrimSpace(req.Code),
		Salary: req.Salary,
	})
	if err != nil {
		h.logger.Error("cashier_creation_failed", "Failed to create cashier", r.Header.Get("X-Request-ID"), nil, err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toCashierResponse(cashier))
}

func (h *CashierHandler) update(w http.ResponseWriter, r *http.Request, id int) {
	var req CashierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.ErrValidation)
		return
	}

	cashier, err := h.service.UpdateCashier(r.Context(), id, interfaces.CreateCashierCommand{
		Name:   strings.TrimSpace(req.Name),
		Code:   strings.TrimSpace(req.Code),
		Salary: req.Salary,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toCashierResponse(cashier))
}

func (h *CashierHandler) open(w http.ResponseWriter, r *http.Request, id int) {
	cashier, err := h.service.OpenCashier(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toCashierResponse(cashier))
}

func (h *CashierHandler) close(w http.ResponseWriter, r *http.Request, id int) {
	cashier, err := h.service.CloseCashier(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toCashierResponse(cashier))
}

func (h *CashierHandler) ranking(w http.ResponseWriter, r *http.Request) {
	ranking, err := h.reports.CashierRanking(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	resp := make([]CashierSalesResponse, len(ranking))
	for i, row := range ranking {
		resp[i] = toCashierSalesResponse(row)
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *CashierHandler) deactivate(w http.ResponseWriter, r *http.Request, id int) {
	if err := h.service.DeactivateCashier(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
