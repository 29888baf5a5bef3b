package http

import (
	"time"

	"github.com/shopspring/decimal"

	"cervejaria-pos/internal/domain"
	"cervejaria-pos/internal/interfaces"
)

type ProductResponse struct {
	ID          int             `json:"id"`
	Name        string          `json:"nome"`
	Description *string         `json:"descricao,omitempty"`
	Price       decimal.Decimal `json:"preco"`
	Category    string          `json:"categoria"`
	Stock       int             `json:"estoque"`
	Active      bool            `json:"ativo"`
	Image       *string         `json:"imagem,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func toProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Stock:       p.Stock,
		Active:      p.Active,
		Image:       p.Image,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductResponses(products []*domain.Product) []ProductResponse {
	resp := make([]ProductResponse, len(products))
	for i, p := range products {
		resp[i] = toProductResponse(p)
	}
	return resp
}

type WaiterResponse struct {
	ID        int             `json:"id"`
	Name      string          `json:"nome"`
	Code      string          `json:"matricula"`
	CPF       *string         `json:"cpf,omitempty"`
	Email     *string         `json:"email,omitempty"`
	Phone     *string         `json:"telefone,omitempty"`
	Salary    decimal.Decimal `json:"salario"`
	Shift     string          `json:"turno"`
	Active    bool            `json:"ativo"`
	HiredAt   time.Time       `json:"data_contratacao"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func toWaiterResponse(w *domain.Waiter) WaiterResponse {
	return WaiterResponse{
		ID:        w.ID,
		Name:      w.Name,
		Code:      w.Code,
		CPF:       w.CPF,
		Email:     w.Email,
		Phone:     w.Phone,
		Salary:    w.Salary,
		Shift:     w.Shift,
		Active:    w.Active,
		HiredAt:   w.HiredAt,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

type CashierResponse struct {
	ID           int             `json:"id"`
	Name         string          `json:"nome"`
	Code         string          `json:"codigo"`
	Salary       decimal.Decimal `json:"salario"`
	TotalSold    decimal.Decimal `json:"total_vendido"`
	CurrentValue decimal.Decimal `json:"valor_atual"`
	Status       string          `json:"status"`
	Active       bool            `json:"ativo"`
	OpenedAt     *time.Time      `json:"data_abertura,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func toCashierResponse(c *domain.Cashier) CashierResponse {
	return CashierResponse{
		ID:           c.ID,
		Name:         c.Name,
		Code:         c.Code,
		Salary:       c.Salary,
		TotalSold:    c.TotalSold,
		CurrentValue: c.CurrentValue,
		Status:       string(c.Status),
		Active:       c.Active,
		OpenedAt:     c.OpenedAt,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

type OrderItemResponse struct {
	ID        int             `json:"id"`
	OrderID   int             `json:"pedido_id"`
	ProductID int             `json:"produto_id"`
	Quantity  int             `json:"quantidade"`
	UnitPrice decimal.Decimal `json:"preco_unitario"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Notes     *string         `json:"observacao,omitempty"`
}

func toOrderItemResponse(i *domain.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ID:        i.ID,
		OrderID:   i.OrderID,
		ProductID: i.ProductID,
		Quantity:  i.Quantity,
		UnitPrice: i.UnitPrice,
		Subtotal:  i.Subtotal,
		Notes:     i.Notes,
	}
}

type OrderResponse struct {
	ID            int                 `json:"id"`
	TableNumber   int                 `json:"numero_mesa"`
	WaiterID      int                 `json:"garcom_id"`
	Items         []OrderItemResponse `json:"itens"`
	Total         decimal.Decimal     `json:"valor_total"`
	Status        string              `json:"status"`
	PaymentMethod *string             `json:"forma_pagamento,omitempty"`
	Notes         *string             `json:"observacao,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
	PaidAt        *time.Time          `json:"data_pagamento,omitempty"`
}

func toOrderResponse(o *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i := range o.Items {
		items[i] = toOrderItemResponse(&o.Items[i])
	}
	return OrderResponse{
		ID:            o.ID,
		TableNumber:   o.TableNumber,
		WaiterID:      o.WaiterID,
		Items:         items,
		Total:         o.Total,
		Status:        string(o.Status),
		PaymentMethod: o.PaymentMethod,
		Notes:         o.Notes,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
		PaidAt:        o.PaidAt,
	}
}

type StatusLogResponse struct {
	Status    string    `json:"status"`
	ChangedBy string    `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
	Notes     *string   `json:"observacao,omitempty"`
}

func toStatusLogResponses(logs []*domain.StatusLog) []StatusLogResponse {
	resp := make([]StatusLogResponse, len(logs))
	for i, log := range logs {
		resp[i] = StatusLogResponse{
			Status:    string(log.Status),
			ChangedBy: log.ChangedBy,
			ChangedAt: log.ChangedAt,
			Notes:     log.Notes,
		}
	}
	return resp
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"nome"`
	Email     string    `json:"email"`
	Role      string    `json:"papel"`
	Active    bool      `json:"ativo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type BestSellerResponse struct {
	ProductID    int             `json:"produto_id"`
	ProductName  string          `json:"produto"`
	Category     string          `json:"categoria"`
	QuantitySold int64           `json:"quantidade_vendida"`
	Revenue      decimal.Decimal `json:"receita"`
}

func toBestSellerResponses(rows []*interfaces.BestSeller) []BestSellerResponse {
	resp := make([]BestSellerResponse, len(rows))
	for i, row := range rows {
		resp[i] = BestSellerResponse{
			ProductID:    row.ProductID,
			ProductName:  row.ProductName,
			Category:     row.Category,
			QuantitySold: row.QuantitySold,
			Revenue:      row.Revenue,
		}
	}
	return resp
}

type CashierSalesResponse struct {
	CashierID int             `json:"caixa_id"`
	Name      string          `json:"nome"`
	Code      string          `json:"codigo"`
	TotalSold decimal.Decimal `json:"total_vendido"`
}

func toCashierSalesResponse(row *interfaces.CashierSales) CashierSalesResponse {
	return CashierSalesResponse{
		CashierID: row.CashierID,
		Name:      row.Name,
		Code:      row.Code,
		TotalSold: row.TotalSold,
	}
}

type OrderBreakdownResponse struct {
	ProductName string          `json:"produto"`
	Quantity    int             `json:"quantidade"`
	UnitPrice   decimal.Decimal `json:"preco_unitario"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

func toOrderBreakdownResponses(rows []*interfaces.OrderBreakdownRow) []OrderBreakdownResponse {
	resp := make([]OrderBreakdownResponse, len(rows))
	for i, row := range rows {
		resp[i] = OrderBreakdownResponse{
			ProductName: row.ProductName,
			Quantity:    row.Quantity,
			UnitPrice:   row.UnitPrice,
			Subtotal:    row.Subtotal,
		}
	}
	return resp
}
