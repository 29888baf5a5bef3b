package postgres

import (
	"context"
	"fmt"

	"cervejaria-pos/internal/domain"
	"cervejaria-pos/internal/interfaces"
)

type orderRepository struct {
	db DB
}

func NewOrderRepository(db DB) interfaces.OrderRepository {
	return &orderRepository{db: db}
}

const orderColumns = `id, numero_mesa, garcom_id, valor_total, status, forma_pagamento, observacoes, data_criacao, data_ultima_alteracao, data_pagamento`

// recalcTotalSQL keeps valor_total equal to the sum of item subtotals.
// Executed inside every item mutation's transaction.
const recalcTotalSQL = `
	UPDATE pedidos
	SET valor_total = COALESCE((SELECT SUM(subtotal) FROM itens_pedido WHERE pedido_id = $1), 0),
	    data_ultima_alteracao = NOW()
	WHERE id = $1`

// decrementStockSQL guards the floor at zero in the WHERE clause; zero
// rows affected means the product cannot cover the quantity.
const decrementStockSQL = `
	UPDATE produtos
	SET estoque = estoque - $1, data_ultima_alteracao = NOW()
	WHERE id = $2 AND estoque >= $1`

const restoreStockSQL = `
	UPDATE produtos
	SET estoque = estoque + $1, data_ultima_alteracao = NOW()
	WHERE id = $2`

const logStatusSQL = `
	INSERT INTO pedido_status_log (pedido_id, status, alterado_por, alterado_em)
	VALUES ($1, $2, $3, NOW())`

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO pedidos (numero_mesa, garcom_id, valor_total, status, observacoes, data_criacao, data_ultima_alteracao)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err = tx.QueryRow(ctx, query,
		order.TableNumber, order.WaiterID, order.Total, order.Status,
		order.Notes, order.CreatedAt, order.UpdatedAt,
	).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", mapError(err))
	}

	itemQuery := `
		INSERT INTO itens_pedido (pedido_id, produto_id, quantidade, preco_unitario, subtotal, observacoes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID

		tag, err := tx.Exec(ctx, decrementStockSQL, item.Quantity, item.ProductID)
		if err != nil {
			return fmt.Errorf("failed to decrement stock: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrInsufficientStock
		}

		err = tx.QueryRow(ctx, itemQuery,
			item.OrderID, item.ProductID, item.Quantity, item.UnitPrice, item.Subtotal, item.Notes,
		).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", mapError(err))
		}
	}

	if len(order.Items) > 0 {
		if _, err := tx.Exec(ctx, recalcTotalSQL, order.ID); err != nil {
			return fmt.Errorf("failed to recalculate total: %w", err)
		}
	}

	if _, err := tx.Exec(ctx, logStatusSQL, order.ID, order.Status, "order-service"); err != nil {
		return fmt.Errorf("failed to log status: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *orderRepository) FindByID(ctx context.Context, id int) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM pedidos WHERE id = $1`

	var order domain.Order
	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID, &order.TableNumber, &order.WaiterID, &order.Total, &order.Status,
		&order.PaymentMethod, &order.Notes, &order.CreatedAt, &order.UpdatedAt, &order.PaidAt,
	)
	if err != nil {
		return nil, fmt.Errorf("order %d: %w", id, mapError(err))
	}

	items, err := r.loadItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return &order, nil
}

func (r *orderRepository) loadItems(ctx context.Context, orderID int) ([]domain.OrderItem, error) {
	query := `
		SELECT id, pedido_id, produto_id, quantidade, preco_unitario, subtotal, observacoes
		FROM itens_pedido
		WHERE pedido_id = $1
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order items: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.Quantity,
			&item.UnitPrice, &item.Subtotal, &item.Notes,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *orderRepository) FindAll(ctx context.Context, filter interfaces.OrderFilter) ([]*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM pedidos WHERE 1=1`
	args := []any{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.TableNumber > 0 {
		args = append(args, filter.TableNumber)
		query += fmt.Sprintf(" AND numero_mesa = $%d", len(args))
	}
	if filter.WaiterID > 0 {
		args = append(args, filter.WaiterID)
		query += fmt.Sprintf(" AND garcom_id = $%d", len(args))
	}
	query += " ORDER BY data_criacao DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
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

func (r *orderRepository) FindItemByID(ctx context.Context, itemID int) (*domain.OrderItem, error) {
	query := `
		SELECT id, pedido_id, produto_id, quantidade, preco_unitario, subtotal, observacoes
		FROM itens_pedido
		WHERE id = $1
	`
	var item domain.OrderItem
	err := r.db.QueryRow(ctx, query, itemID).Scan(
		&item.ID, &item.OrderID, &item.ProductID, &item.Quantity,
		&item.UnitPrice, &item.Subtotal, &item.Notes,
	)
	if err != nil {
		return nil, fmt.Errorf("order item %d: %w", itemID, mapError(err))
	}
	return &item, nil
}

func (r *orderRepository) AddItem(ctx context.Context, item *domain.OrderItem) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, decrementStockSQL, item.Quantity, item.ProductID)
	if err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInsufficientStock
	}

	query := `
		INSERT INTO itens_pedido (pedido_id, produto_id, quantidade, preco_unitario, subtotal, observacoes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err = tx.QueryRow(ctx, query,
		item.OrderID, item.ProductID, item.Quantity, item.UnitPrice, item.Subtotal, item.Notes,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("failed to insert order item: %w", mapError(err))
	}

	if _, err := tx.Exec(ctx, recalcTotalSQL, item.OrderID); err != nil {
		return fmt.Errorf("failed to recalculate total: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *orderRepository) UpdateItemQuantity(ctx context.Context, item *domain.OrderItem, delta int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if delta > 0 {
		tag, err := tx.Exec(ctx, decrementStockSQL, delta, item.ProductID)
		if err != nil {
			return fmt.Errorf("failed to decrement stock: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrInsufficientStock
		}
	} else if delta < 0 {
		if _, err := tx.Exec(ctx, restoreStockSQL, -delta, item.ProductID); err != nil {
			return fmt.Errorf("failed to restore stock: %w", err)
		}
	}

	query := `
		UPDATE itens_pedido
		SET quantidade = $1, subtotal = $2
		WHERE id = $3
	`
	if _, err := tx.Exec(ctx, query, item.Quantity, item.Subtotal, item.ID); err != nil {
		return fmt.Errorf("failed to update order item: %w", err)
	}

	if _, err := tx.Exec(ctx, recalcTotalSQL, item.OrderID); err != nil {
		return fmt.Errorf("failed to recalculate total: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *orderRepository) RemoveItem(ctx context.Context, item *domain.OrderItem) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, restoreStockSQL, item.Quantity, item.ProductID); err != nil {
		return fmt.Errorf("failed to restore stock: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM itens_pedido WHERE id = $1`, item.ID); err != nil {
		return fmt.Errorf("failed to delete order item: %w", err)
	}

	if _, err := tx.Exec(ctx, recalcTotalSQL, item.OrderID); err != nil {
		return fmt.Errorf("failed to recalculate total: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *orderRepository) UpdateStatus(ctx context.Context, order *domain.Order, changedBy string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE pedidos
		SET status = $1, observacoes = $2, data_ultima_alteracao = $3
		WHERE id = $4
	`
	if _, err := tx.Exec(ctx, query, order.Status, order.Notes, order.UpdatedAt, order.ID); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	if _, err := tx.Exec(ctx, logStatusSQL, order.ID, order.Status, changedBy); err != nil {
		return fmt.Errorf("failed to log status: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *orderRepository) Pay(ctx context.Context, order *domain.Order, cashierID int, changedBy string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// The status guard keeps a pay racing another pay or a cancel from
	// settling the order twice.
	query := `
		UPDATE pedidos
		SET status = $1, forma_pagamento = $2, data_pagamento = $3, data_ultima_alteracao = $4
		WHERE id = $5 AND status NOT IN ('PAID', 'CANCELED')
	`
	tag, err := tx.Exec(ctx, query,
		order.Status, order.PaymentMethod, order.PaidAt, order.UpdatedAt, order.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark order paid: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyPaid
	}

	// Posting against a closed session is rejected here as well: the
	// guard in the WHERE clause keeps the check and the credit atomic.
	cashierQuery := `
		UPDATE caixas
		SET total_vendido = total_vendido + $1, valor_atual = valor_atual + $1, data_ultima_alteracao = NOW()
		WHERE id = $2 AND status = 'OPEN'
	`
	tag, err = tx.Exec(ctx, cashierQuery, order.Total, cashierID)
	if err != nil {
		return fmt.Errorf("failed to credit cashier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCashierNotOpen
	}

	if _, err := tx.Exec(ctx, logStatusSQL, order.ID, order.Status, changedBy); err != nil {
		return fmt.Errorf("failed to log status: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *orderRepository) Cancel(ctx context.Context, order *domain.Order, changedBy string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, item := range order.Items {
		if _, err := tx.Exec(ctx, restoreStockSQL, item.Quantity, item.ProductID); err != nil {
			return fmt.Errorf("failed to restore stock: %w", err)
		}
	}

	query := `
		UPDATE pedidos
		SET status = $1, observacoes = $2, data_ultima_alteracao = $3
		WHERE id = $4
	`
	if _, err := tx.Exec(ctx, query, order.Status, order.Notes, order.UpdatedAt, order.ID); err != nil {
		return fmt.Errorf("failed to cancel order: %w", err)
	}

	if _, err := tx.Exec(ctx, logStatusSQL, order.ID, order.Status, changedBy); err != nil {
		return fmt.Errorf("failed to log status: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *orderRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM itens_pedido WHERE pedido_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete order items: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM pedido_status_log WHERE pedido_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete status log: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM pedidos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return tx.Commit(ctx)
}

func (r *orderRepository) GetStatusHistory(ctx context.Context, orderID int) ([]*domain.StatusLog, error) {
	query := `
		SELECT id, pedido_id, status, alterado_por, alterado_em, observacoes
		FROM pedido_status_log
		WHERE pedido_id = $1
		ORDER BY alterado_em ASC
	`
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query status history: %w", err)
	}
	defer rows.Close()

	var logs []*domain.StatusLog
	for rows.Next() {
		var log domain.StatusLog
		if err := rows.Scan(&log.ID, &log.OrderID, &log.Status, &log.ChangedBy, &log.ChangedAt, &log.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan status log: %w", err)
		}
		logs = append(logs, &log)
	}

	return logs, rows.Err()
}
