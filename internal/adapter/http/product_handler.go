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

type ProductHandler struct {
	service interfaces.CatalogService
	logger  logger.Logger
}

func NewProductHandler(service interfaces.CatalogService, logger logger.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

type ProductRequest struct {
	Name        string          `json:"nome"`
	Description *string         `json:"descricao"`
	Price       decimal.Decimal `json:"preco"`
	Category    string          `json:"categoria"`
	Stock       int             `json:"estoque"`
	Image       *string         `json:"imagem"`
}

type AdjustStockRequest struct {
	Delta int `json:"delta"`
}

// Handle routes /api/produtos and its subpaths.
func (h *ProductHandler) Handle(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

	// ["api", "produtos"]
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
		http.Error(w, "Invalid product id", http.StatusBadRequest)
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

	if len(parts) == 4 && r.Method == http.MethodPatch {
		switch parts[3] {
		case "estoque":
			h.adjustStock(w, r, id)
			return
		case "desativar":
			h.deactivate(w, r, id)
			return
		}
	}

	http.Error(w, "Not found", http.StatusNotFound)
}

func (h *ProductHandler) list(w http.ResponseWriter, r *http.Request) {
	filter := interfaces.ProductFilter{
		Category:     r.URL.Query().Get("categoria"),
		NameContains: r.URL.Query().Get("nome"),
		ActiveOnly:   r.URL.Query().Get("ativos") == "true",
	}
	if raw := r.URL.Query().Get("estoque_baixo"); raw != "" {
		threshold, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, domain.ErrValidation)
			return
		}
		filter.LowStockBelow = &threshold
	}

	products, err := h.service.ListProducts(r.Context(), filter)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toProductResponses(products))
}

func (h *ProductHandler) get(w http.ResponseWriter, r *http.Request, id int) {
	product, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toProductResponse(product))
}

func (h *ProductHandler) create(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.ErrValidation)
		return
	}

	product, err := h.service.CreateProduct(r.Context(), interfaces.CreateProductCommand{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Stock:       req.Stock,
		Image:       req.Image,
	})
	if err != nil {
		h.logger.Error("product_creation_failed", "Failed to create product", r.Header.Get("X-Request-ID"), nil, err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toProductResponse(product))
}

func (h *ProductHandler) update(w http.ResponseWriter, r *http.Request, id int) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.ErrValidation)
		return
	}

	cmd := interfaces.UpdateProductCommand{
		Description: req.Description,
		Image:       req.Image,
	}
	if req.Name != "" {
		cmd.Name = &req.Name
	}
	if req.Category != "" {
		cmd.Category = &req.Category
	}
	if req.Price.IsPositive() {
		cmd.Price = &req.Price
	}

	product, err := h.service.UpdateProduct(r.Context(), id, cmd)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toProductResponse(product))
}

func (h *ProductHandler) adjustStock(w http.ResponseWriter, r *http.Request, id int) {
	var req AdjustStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.ErrValidation)
		return
	}

	product, err := h.service.AdjustStock(r.Context(), id, req.Delta)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toProductResponse(product))
}

func (h *ProductHandler) deactivate(w http.ResponseWriter, r *http.Request, id int) {
	if err := h.service.DeactivateProduct(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *ProductHandler) delete(w http.ResponseWriter, r *http.Request, id int) {
	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
