package postgres

import (
	"context"
	"fmt"
	"time"

	"cervejaria-pos/internal/domain"
	"cervejaria-pos/internal/interfaces"
)

type waiterRepository struct {
	db DB
}

func NewWaiterRepository(db DB) interfaces.WaiterRepository {
	return &waiterRepository{db: db}
}

const waiterColumns = `id, nome, matricula, cpf, email, telefone, salario, turno, ativo, data_contratacao, data_criacao, data_ultima_alteracao`

func (r *waiterRepository) Create(ctx context.Context, waiter *domain.Waiter) error {
	query := `
		INSERT INTO garcons (nome, matricula, cpf, email, telefone, salario, turno, ativo, data_contratacao, data_criacao, data_ultima_alteracao)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		waiter.Name, waiter.Code, waiter.CPF, waiter.Email, waiter.Phone,
		waiter.Salary, waiter.Shift, waiter.Active, waiter.HiredAt,
		waiter.CreatedAt, waiter.UpdatedAt,
	).Scan(&waiter.ID)
	if err != nil {
		return fmt.Errorf("failed to insert waiter: %w", mapError(err))
	}
	return nil
}

func (r *waiterRepository) FindByID(ctx context.Context, id int) (*domain.Waiter, error) {
	query := `SELECT ` + waiterColumns + ` FROM garcons WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id), id)
}

func (r *waiterRepository) FindByCode(ctx context.Context, code string) (*domain.Waiter, error) {
	query := `SELECT ` + waiterColumns + ` FROM garcons WHERE matricula = $1`

	var w domain.Waiter
	err := r.db.QueryRow(ctx, query, code).Scan(
		&w.ID, &w.Name, &w.Code, &w.CPF, &w.Email, &w.Phone,
		&w.Salary, &w.Shift, &w.Active, &w.HiredAt, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("waiter %s: %w", code, mapError(err))
	}
	return &w, nil
}

func (r *waiterRepository) scanOne(row Row, id int) (*domain.Waiter, error) {
	var w domain.Waiter
	err := row.Scan(
		&w.ID, &w.Name, &w.Code, &w.CPF, &w.Email, &w.Phone,
		&w.Salary, &w.Shift, &w.Active, &w.HiredAt, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("waiter %d: %w", id, mapError(err))
	}
	return &w, nil
}

func (r *waiterRepository) FindAll(ctx context.Context, filter interfaces.WaiterFilter) ([]*domain.Waiter, error) {
	query := `SELECT ` + waiterColumns + ` FROM garcons WHERE 1=1`
	args := []any{}

	if filter.ActiveOnly {
		query += " AND ativo = TRUE"
	}
	if filter.Shift != "" {
		args = append(args, filter.Shift)
		query += fmt.Sprintf(" AND turno = $%d", len(args))
	}
	if filter.SalaryMin != nil {
		args = append(args, *filter.SalaryMin)
		query += fmt.Sprintf(" AND salario >= $%d", len(args))
	}
	if filter.SalaryMax != nil {
		args = append(args, *filter.SalaryMax)
		query += fmt.Sprintf(" AND salario <= $%d", len(args))
	}
	query += " ORDER BY nome"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query waiters: %w", err)
	}
	defer rows.Close()

	var waiters []*domain.Waiter
	for rows.Next() {
		var w domain.Waiter
		if err := rows.Scan(
			&w.ID, &w.Name, &w.Code, &w.CPF, &w.Email, &w.Phone,
			&w.Salary, &w.Shift, &w.Active, &w.HiredAt, &w.CreatedAt, &w.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan waiter: %w", err)
		}
		waiters = append(waiters, &w)
	}

	return waiters, rows.Err()
}

func (r *waiterRepository) Update(ctx context.Context, waiter *domain.Waiter) error {
	query := `
		UPDATE garcons
		SET nome = $1, matricula = $2, cpf = $3, email = $4, telefone = $5,
		    salario = $6, turno = $7, data_ultima_alteracao = $8
		WHERE id = $9
	`
	tag, err := r.db.Exec(ctx, query,
		waiter.Name, waiter.Code, waiter.CPF, waiter.Email, waiter.Phone,
		waiter.Salary, waiter.Shift, time.Now(), waiter.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update waiter: %w", mapError(err))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *waiterRepository) SetActive(ctx context.Context, id int, active bool) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE garcons SET ativo = $1, data_ultima_alteracao = $2 WHERE id = $3`,
		active, time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to set waiter active flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type cashierRepository struct {
	db DB
}

func NewCashierRepository(db DB) interfaces.CashierRepository {
	return &cashierRepository{db: db}
}

const cashierColumns = `id, nome, codigo, salario, total_vendido, valor_atual, status, ativo, data_abertura, data_criacao, data_ultima_alteracao`

func (r *cashierRepository) Create(ctx context.Context, cashier *domain.Cashier) error {
	query := `
		INSERT INTO caixas (nome, codigo, salario, total_vendido, valor_atual, status, ativo, data_criacao, data_ultima_alteracao)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		cashier.Name, cashier.Code, cashier.Salary, cashier.TotalSold,
		cashier.CurrentValue, cashier.Status, cashier.Active,
		cashier.CreatedAt, cashier.UpdatedAt,
	).Scan(&cashier.ID)
	if err != nil {
		return fmt.Errorf("failed to insert cashier: %w", mapError(err))
	}
	return nil
}

func (r *cashierRepository) FindByID(ctx context.Context, id int) (*domain.Cashier, error) {
	query := `SELECT ` + cashierColumns + ` FROM caixas WHERE id = $1`

	var c domain.Cashier
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Code, &c.Salary, &c.TotalSold, &c.CurrentValue,
		&c.Status, &c.Active, &c.OpenedAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("cashier %d: %w", id, mapError(err))
	}
	return &c, nil
}

func (r *cashierRepository) FindByCode(ctx context.Context, code string) (*domain.Cashier, error) {
	query := `SELECT ` + cashierColumns + ` FROM caixas WHERE codigo = $1`

	var c domain.Cashier
	err := r.db.QueryRow(ctx, query, code).Scan(
		&c.ID, &c.Name, &c.Code, &c.Salary, &c.TotalSold, &c.CurrentValue,
		&c.Status, &c.Active, &c.OpenedAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("cashier %s: %w", code, mapError(err))
	}
	return &c, nil
}

func (r *cashierRepository) FindAll(ctx context.Context, activeOnly bool) ([]*domain.Cashier, error) {
	query := `SELECT ` + cashierColumns + ` FROM caixas`
	if activeOnly {
		query += " WHERE ativo = TRUE"
	}
	query += " ORDER BY nome"

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query cashiers: %w", err)
	}
	defer rows.Close()

	var cashiers []*domain.Cashier
	for rows.Next() {
		var c domain.Cashier
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Code, &c.Salary, &c.TotalSold, &c.CurrentValue,
			&c.Status, &c.Active, &c.OpenedAt, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan cashier: %w", err)
		}
		cashiers = append(cashiers, &c)
	}

	return cashiers, rows.Err()
}

func (r *cashierRepository) Update(ctx context.Context, cashier *domain.Cashier) error {
	query := `
		UPDATE caixas
		SET nome = $1, codigo = $2, salario = $3, data_ultima_alteracao = $4
		WHERE id = $5
	`
	tag, err := r.db.Exec(ctx, query,
		cashier.Name, cashier.Code, cashier.Salary, time.Now(), cashier.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update cashier: %w", mapError(err))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *cashierRepository) SetActive(ctx context.Context, id int, active bool) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE caixas SET ativo = $1, data_ultima_alteracao = $2 WHERE id = $3`,
		active, time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to set cashier active flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *cashierRepository) SetSession(ctx context.Context, id int, status domain.CashierStatus) error {
	var query string
	if status == domain.CashierOpen {
		query = `UPDATE caixas SET status = $1, data_abertura = NOW(), valor_atual = 0, data_ultima_alteracao = NOW() WHERE id = $2`
	} else {
		query = `UPDATE caixas SET status = $1, data_ultima_alteracao = NOW() WHERE id = $2`
	}

	tag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to set cashier session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
