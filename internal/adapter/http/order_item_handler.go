package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"cervejaria-pos/internal/adapter/logger"
	"cervejaria-pos/internal/domain"
	"cervejaria-pos/internal/interfaces"
)

type OrderItemHandler struct {
	service interfaces.OrderService
	reports interfaces.ReportService
	logger  logger.Logger
}

func NewOrderItemHandler(service interfaces.OrderService, reports interfaces.ReportService, logger logger.Logger) *OrderItemHandler {
	return &OrderItemHandler{
		service: service,
		reports: reports,
		logger:  logger,
	}
}

type AddOrderItemRequest struct {
	OrderID   int     `json:"pedido_id"`
	ProductID int     `json:"produto_id"`
	Quantity  int     `json:"quantidade"`
	Notes     *string `json:"observacao"`
}

type UpdateOrderItemRequest struct {
	Quantity int `json:"quantidade"`
}

// Handle routes /api/itens-pedido and its subpaths, including the
// report projections under /relatorios.
func (h *OrderItemHandler) Handle(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

	if len(parts) == 2 {
		switch r.Method {
		case http.MethodGet:
			h.listByOrder(w, r)
		case http.MethodPost:
			h.create(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	if parts[2] == "relatorios" {
		h.handleReports(w, r, parts)
		return
	}

	id, err := strconv.Atoi(parts[2])
	if err != nil {
		http.Error(w, "Invalid item id", http.StatusBadRequest)
		return
	}

	if len(parts) == 3 {
		switch r.Method {
		case http.MethodGet:
			h.get(w, r, id)
		case http.MethodPut:
			h.update(w, r, id)
		case http.MethodDelete:
			h.delete(w, r, id)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	http.Error(w, "Not found", http.StatusNotFound)
}

func (h *OrderItemHandler) handleReports(w http.ResponseWriter, r *http.Request, parts []string) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// /api/itens-pedido/relatorios/...
	switch {
	case len(parts) == 4 && parts[3] == "mais-vendidos":
		h.bestSellers(w, r)
	case len(parts) == 4 && parts[3] == "total-itens":
		h.totalItems(w, r)
	case len(parts) == 6 && parts[3] == "produto" && parts[5] == "receita":
		h.productRevenue(w, r, parts[4])
	case len(parts) == 5 && parts[3] == "pedido":
		h.orderBreakdown(w, r, parts[4])
	case len(parts) == 6 && parts[3] == "garcom" && parts[5] == "vendas":
		h.waiterSales(w, r, parts[4])
	default:
		http.Error(w, "Not found", http.StatusNotFound)
	}
}

// listByOrder returns the items of one order, selected by ?pedido=.
func (h *OrderItemHandler) listByOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(r.URL.Query().Get("pedido"))
	if err != nil {
		respondError(w, domain.ErrValidation)
		return
	}

	order, err := h.service.Get(r.Context(), orderID)
	if err != nil {
		respondError(w, err)
		return
	}

	resp := make([]OrderItemResponse, len(order.Items))
	for i := range order.Items {
		resp[i] = toOrderItemResponse(&order.Items[i])
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *OrderItemHandler) get(w http.ResponseWriter, r *http.Request, id int) {
	item, err := h.service.GetItem(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toOrderItemResponse(item))
}

func (h *OrderItemHandler) create(w http.ResponseWriter, r *http.Request) {
	var req AddOrderItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.ErrValidation)
		return
	}

	item, err := h.service.AddItem(r.Context(), req.OrderID, interfaces.CreateOrderItemCommand{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Notes:     req.Notes,
	})
	if err != nil {
		h.logger.Error("add_item_failed", "Failed to add order item", r.Header.Get("X-Request-ID"), nil, err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toOrderItemResponse(item))
}

func (h *OrderItemHandler) update(w http.ResponseWriter, r *http.Request, id int) {
	var req UpdateOrderItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.ErrValidation)
		return
	}

	item, err := h.service.UpdateItem(r.Context(), id, req.Quantity)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toOrderItemResponse(item))
}

func (h *OrderItemHandler) delete(w http.ResponseWriter, r *http.Request, id int) {
	if err := h.service.RemoveItem(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *OrderItemHandler) bestSellers(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("categoria")
	limit := 0
	if raw := r.URL.Query().Get("limite"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, domain.ErrValidation)
			return
		}
		limit = parsed
	}

	rows, err := h.reports.BestSellers(r.Context(), category, limit)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toBestSellerResponses(rows))
}

func (h *OrderItemHandler) totalItems(w http.ResponseWriter, r *http.Request) {
	total, err := h.reports.TotalItemsSold(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"total_itens": total})
}

func (h *OrderItemHandler) productRevenue(w http.ResponseWriter, r *http.Request, rawID string) {
	productID, err := strconv.Atoi(rawID)
	if err != nil {
		http.Error(w, "Invalid product id", http.StatusBadRequest)
		return
	}

	revenue, err := h.reports.ProductRevenue(r.Context(), productID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"produto_id": productID,
		"receita":    revenue,
	})
}

func (h *OrderItemHandler) orderBreakdown(w http.ResponseWriter, r *http.Request, rawID string) {
	orderID, err := strconv.Atoi(rawID)
	if err != nil {
		http.Error(w, "Invalid order id", http.StatusBadRequest)
		return
	}

	rows, err := h.reports.OrderBreakdown(r.Context(), orderID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toOrderBreakdownResponses(rows))
}

func (h *OrderItemHandler) waiterSales(w http.ResponseWriter, r *http.Request, rawID string) {
	waiterID, err := strconv.Atoi(rawID)
	if err != nil {
		http.Error(w, "Invalid waiter id", http.StatusBadRequest)
		return
	}

	total, err := h.reports.WaiterSales(r.Context(), waiterID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"garcom_id": waiterID,
		"vendas":    total,
	})
}
