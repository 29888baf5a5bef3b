package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cervejaria-pos/internal/adapter/logger"
	"cervejaria-pos/internal/domain"
	"cervejaria-pos/internal/interfaces"
)

type OrderHandler struct {
	service interfaces.OrderService
	reports interfaces.ReportService
	logger  logger.Logger
}

func NewOrderHandler(service interfaces.OrderService, reports interfaces.ReportService, logger logger.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		reports: reports,
		logger:  logger,
	}
}

type CreateOrderRequest struct {
	TableNumber int                `json:"numero_mesa"`
	WaiterID    int                `json:"garcom_id"`
	Items       []OrderItemRequest `json:"itens"`
}

type OrderItemRequest struct {
	ProductID int     `json:"produto_id"`
	Quantity  int     `json:"quantidade"`
	Notes     *string `json:"observacao"`
}

type PayOrderRequest struct {
	CashierID     int    `json:"caixa_id"`
	PaymentMethod string `json:"forma_pagamento"`
}

type CancelOrderRequest struct {
	Reason string `json:"motivo"`
}

// Handle routes /api/pedidos and its subpaths.
func (h *OrderHandler) Handle(w http.ResponseWriter, r *http.Request) {
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
		if len(parts) == 4 && parts[3] == "receita" && r.Method == http.MethodGet {
			h.revenue(w, r)
			return
		}
		if len(parts) == 4 && parts[3] == "mesas-abertas" && r.Method == http.MethodGet {
			h.openTables(w, r)
			return
		}
		if len(parts) == 4 && parts[3] == "hoje" && r.Method == http.MethodGet {
			h.today(w, r)
			return
		}
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	id, err := strconv.Atoi(parts[2])
	if err != nil {
		http.Error(w, "Invalid order id", http.StatusBadRequest)
		return
	}

	if len(parts) == 3 {
		switch r.Method {
		case http.MethodGet:
			h.get(w, r, id)
		case http.MethodDelete:
			h.delete(w, r, id)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	if len(parts) == 4 {
		if parts[3] == "historico" && r.Method == http.MethodGet {
			h.history(w, r, id)
			return
		}
		if r.Method == http.MethodPatch {
			switch parts[3] {
			case "confirmar":
				h.confirm(w, r, id)
				return
			case "entregar":
				h.deliver(w, r, id)
				return
			case "pagar":
				h.pay(w, r, id)
				return
			case "cancelar":
				h.cancel(w, r, id)
				return
			}
		}
	}

	http.Error(w, "Not found", http.StatusNotFound)
}

func (h *OrderHandler) list(w http.ResponseWriter, r *http.Request) {
	filter := interfaces.OrderFilter{
		Status: domain.Status(r.URL.Query().Get("status")),
	}
	if raw := r.URL.Query().Get("mesa"); raw != "" {
		table, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, domain.ErrValidation)
			return
		}
		filter.TableNumber = table
	}
	if raw := r.URL.Query().Get("garcom"); raw != "" {
		waiterID, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, domain.ErrValidation)
			return
		}
		filter.WaiterID = waiterID
	}

	orders, err := h.service.List(r.Context(), filter)
	if err != nil {
		respondError(w, err)
		return
	}

	resp := make([]OrderResponse, len(orders))
	for i, order := range orders {
		resp[i] = toOrderResponse(order)
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *OrderHandler) get(w http.ResponseWriter, r *http.Request, id int) {
	order, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toOrderResponse(order))
}

func (h *OrderHandler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.ErrValidation)
		return
	}

	items := make([]interfaces.CreateOrderItemCommand, len(req.Items))
	for i, item := range req.Items {
		items[i] = interfaces.CreateOrderItemCommand{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Notes:     item.Notes,
		}
	}

	order, err := h.service.Create(r.Context(), interfaces.CreateOrderCommand{
		TableNumber: req.TableNumber,
		WaiterID:    req.WaiterID,
		Items:       items,
	})
	if err != nil {
		h.logger.Error("order_creation_failed", "Failed to create order", r.Header.Get("X-Request-ID"), nil, err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toOrderResponse(order))
}

func (h *OrderHandler) confirm(w http.ResponseWriter, r *http.Request, id int) {
	order, err := h.service.Confirm(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toOrderResponse(order))
}

func (h *OrderHandler) deliver(w http.ResponseWriter, r *http.Request, id int) {
	order, err := h.service.Deliver(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toOrderResponse(order))
}

func (h *OrderHandler) pay(w http.ResponseWriter, r *http.Request, id int) {
	var req PayOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.ErrValidation)
		return
	}
	if req.CashierID <= 0 || req.PaymentMethod == "" {
		respondError(w, domain.ErrValidation)
		return
	}

	order, err := h.service.Pay(r.Context(), id, req.CashierID, req.PaymentMethod)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toOrderResponse(order))
}

func (h *OrderHandler) cancel(w http.ResponseWriter, r *http.Request, id int) {
	var req CancelOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.ErrValidation)
		return
	}

	order, err := h.service.Cancel(r.Context(), id, req.Reason)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toOrderResponse(order))
}

func (h *OrderHandler) delete(w http.ResponseWriter, r *http.Request, id int) {
	if err := h.service.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *OrderHandler) history(w http.ResponseWriter, r *http.Request, id int) {
	logs, err := h.service.History(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toStatusLogResponses(logs))
}

func (h *OrderHandler) revenue(w http.ResponseWriter, r *http.Request) {
	from, err := time.Parse("2006-01-02", r.URL.Query().Get("inicio"))
	if err != nil {
		respondError(w, domain.ErrValidation)
		return
	}
	to, err := time.Parse("2006-01-02", r.URL.Query().Get("fim"))
	if err != nil {
		respondError(w, domain.ErrValidation)
		return
	}
	// Inclusive end date.
	to = to.Add(24*time.Hour - time.Nanosecond)

	total, err := h.reports.RevenueBetween(r.Context(), from, to)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"inicio":  from.Format("2006-01-02"),
		"fim":     to.Format("2006-01-02"),
		"receita": total,
	})
}

func (h *OrderHandler) today(w http.ResponseWriter, r *http.Request) {
	orders, err := h.reports.OrdersToday(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	resp := make([]OrderResponse, len(orders))
	for i, order := range orders {
		resp[i] = toOrderResponse(order)
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *OrderHandler) openTables(w http.ResponseWriter, r *http.Request) {
	tables, err := h.reports.OpenTables(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"mesas": tables})
}
