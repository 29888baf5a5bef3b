package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"cervejaria-pos/internal/domain"
	"cervejaria-pos/internal/interfaces"
)

// reportRepository holds the read-only aggregate projections over
// orders and items. No mutation happens here.
type reportRepository struct {
	db DB
}

func NewReportRepository(db DB) interfaces.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) BestSellers(ctx context.Context, category string, limit int) ([]*interfaces.BestSeller, error) {
	query := `
		SELECT p.id, p.nome, p.categoria, SUM(i.quantidade) AS vendidos, SUM(i.subtotal) AS receita
		FROM itens_pedido i
		JOIN produtos p ON p.id = i.produto_id
	`
	args := []any{}
	if category != "" {
		args = append(args, category)
		query += fmt.Sprintf(" WHERE p.categoria = $%d", len(args))
	}
	query += " GROUP BY p.id, p.nome, p.categoria ORDER BY vendidos DESC"
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query best sellers: %w", err)
	}
	defer rows.Close()

	var result []*interfaces.BestSeller
	for rows.Next() {
		var b interfaces.BestSeller
		if err := rows.Scan(&b.ProductID, &b.ProductName, &b.Category, &b.QuantitySold, &b.Revenue); err != nil {
			return nil, fmt.Errorf("failed to scan best seller: %w", err)
		}
		result = append(result, &b)
	}

	return result, rows.Err()
}

func (r *reportRepository) ProductRevenue(ctx context.Context, productID int) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(subtotal), 0) FROM itens_pedido WHERE produto_id = $1`

	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query, productID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to compute product revenue: %w", err)
	}
	return total, nil
}

func (r *reportRepository) OrderBreakdown(ctx context.Context, orderID int) ([]*interfaces.OrderBreakdownRow, error) {
	query := `
		SELECT p.nome, i.quantidade, i.preco_unitario, i.subtotal
		FROM itens_pedido i
		JOIN produtos p ON p.id = i.produto_id
		WHERE i.pedido_id = $1
		ORDER BY i.id
	`
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query order breakdown: %w", err)
	}
	defer rows.Close()

	var result []*interfaces.OrderBreakdownRow
	for rows.Next() {
		var row interfaces.OrderBreakdownRow
		if err := rows.Scan(&row.ProductName, &row.Quantity, &row.UnitPrice, &row.Subtotal); err != nil {
			return nil, fmt.Errorf("failed to scan breakdown row: %w", err)
		}
		result = append(result, &row)
	}

	return result, rows.Err()
}

func (r *reportRepository) TotalItemsSold(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(quantidade), 0) FROM itens_pedido`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count items sold: %w", err)
	}
	return total, nil
}

// RevenueBetween only counts paid orders: open tabs and cancellations
// are not revenue.
func (r *reportRepository) RevenueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(valor_total), 0)
		FROM pedidos
		WHERE status = 'PAID' AND data_pagamento BETWEEN $1 AND $2
	`
	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to compute revenue: %w", err)
	}
	return total, nil
}

func (r *reportRepository) WaiterSales(ctx context.Context, waiterID int) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(valor_total), 0)
		FROM pedidos
		WHERE garcom_id = $1 AND status = 'PAID'
	`
	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query, waiterID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to compute waiter sales: %w", err)
	}
	return total, nil
}

func (r *reportRepository) OrdersToday(ctx context.Context) ([]*domain.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM pedidos
		WHERE data_criacao >= CURRENT_DATE
		ORDER BY data_criacao DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query today's orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(
			&order.ID, &order.TableNumber, &order.WaiterID, &order.Total, &order.Status,
			&order.PaymentMethod, &order.Notes, &order.CreatedAt, &order.UpdatedAt, &order.PaidAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, &order)
	}

	return orders, rows.Err()
}

func (r *reportRepository) CashierRanking(ctx context.Context) ([]*interfaces.CashierSales, error) {
	query := `
		SELECT id, nome, codigo, total_vendido
		FROM caixas
		WHERE ativo = TRUE
		ORDER BY total_vendido DESC, nome
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query cashier ranking: %w", err)
	}
	defer rows.Close()

	var ranking []*interfaces.CashierSales
	for rows.Next() {
		var row interfaces.CashierSales
		if err := rows.Scan(&row.CashierID, &row.Name, &row.Code, &row.TotalSold); err != nil {
			return nil, fmt.Errorf("failed to scan ranking row: %w", err)
		}
		ranking = append(ranking, &row)
	}

	return ranking, rows.Err()
}

func (r *reportRepository) OpenTables(ctx context.Context) ([]int, error) {
	query := `
		SELECT DISTINCT numero_mesa
		FROM pedidos
		WHERE status IN ('OPEN', 'CONFIRMED', 'DELIVERED')
		ORDER BY numero_mesa
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query open tables: %w", err)
	}
	defer rows.Close()

	var tables []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to scan table number: %w", err)
		}
		tables = append(tables, n)
	}

	return tables, rows.Err()
}
