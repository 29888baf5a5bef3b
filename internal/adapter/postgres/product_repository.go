package postgres

import (
	"context"
	"fmt"
	"time"

	"cervejaria-pos/internal/domain"
	"cervejaria-pos/internal/interfaces"
)

type productRepository struct {
	db DB
}

func NewProductRepository(db DB) interfaces.ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `id, nome, descricao, preco, categoria, estoque, ativo, imagem, data_criacao, data_ultima_alteracao`

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO produtos (nome, descricao, preco, categoria, estoque, ativo, imagem, data_criacao, data_ultima_alteracao)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		product.Name, product.Description, product.Price, product.Category,
		product.Stock, product.Active, product.Image, product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", mapError(err))
	}
	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id int) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM produtos WHERE id = $1`

	var p domain.Product
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Category,
		&p.Stock, &p.Active, &p.Image, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("product %d: %w", id, mapError(err))
	}
	return &p, nil
}

func (r *productRepository) FindAll(ctx context.Context, filter interfaces.ProductFilter) ([]*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM produtos WHERE 1=1`
	args := []any{}

	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND categoria = $%d", len(args))
	}
	if filter.NameContains != "" {
		args = append(args, "%"+filter.NameContains+"%")
		query += fmt.Sprintf(" AND nome ILIKE $%d", len(args))
	}
	if filter.LowStockBelow != nil {
		args = append(args, *filter.LowStockBelow)
		query += fmt.Sprintf(" AND estoque < $%d", len(args))
	}
	if filter.ActiveOnly {
		query += " AND ativo = TRUE"
	}
	query += " ORDER BY nome"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price, &p.Category,
			&p.Stock, &p.Active, &p.Image, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, &p)
	}

	return products, rows.Err()
}

func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	query := `
		UPDATE produtos
		SET nome = $1, descricao = $2, preco = $3, categoria = $4, imagem = $5, data_ultima_alteracao = $6
		WHERE id = $7
	`
	tag, err := r.db.Exec(ctx, query,
		product.Name, product.Description, product.Price, product.Category,
		product.Image, time.Now(), product.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", mapError(err))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *productRepository) SetActive(ctx context.Context, id int, active bool) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE produtos SET ativo = $1, data_ultima_alteracao = $2 WHERE id = $3`,
		active, time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to set product active flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM produtos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AdjustStock applies a signed delta with a floor at zero. The guard is
// in the WHERE clause so concurrent decrements serialize on the row.
func (r *productRepository) AdjustStock(ctx context.Context, id, delta int) error {
	query := `
		UPDATE produtos
		SET estoque = estoque + $1, data_ultima_alteracao = $2
		WHERE id = $3 AND estoque + $1 >= 0
	`
	tag, err := r.db.Exec(ctx, query, delta, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to adjust stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Either missing or the decrement would go negative.
		if _, err := r.FindByID(ctx, id); err != nil {
			return err
		}
		return domain.ErrInsufficientStock
	}
	return nil
}
