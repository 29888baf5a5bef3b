package catalog

import (
	"context"
	"time"

	"cervejaria-pos/internal/adapter/logger"
	"cervejaria-pos/internal/domain"
	"cervejaria-pos/internal/interfaces"
)

// Service manages the product catalog. Stock adjustments triggered by
// order mutations live in the order repository's transactions; this
// service only covers direct catalog administration.
type Service struct {
	products interfaces.ProductRepository
	logger   logger.Logger
}

func NewService(products interfaces.ProductRepository, logger logger.Logger) *Service {
	return &Service{products: products, logger: logger}
}

func (s *Service) CreateProduct(ctx context.Context, cmd interfaces.CreateProductCommand) (*domain.Product, error) {
	product := &domain.Product{
		Name:        cmd.Name,
		Description: cmd.Description,
		Price:       cmd.Price,
		Category:    cmd.Category,
		Stock:       cmd.Stock,
		Active:      true,
		Image:       cmd.Image,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := s.products.Create(ctx, product); err != nil {
		s.logger.Error("product_create_failed", "Failed to create product", "", nil, err)
		return nil, err
	}

	return product, nil
}

func (s *Service) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	return s.products.FindByID(ctx, id)
}

func (s *Service) ListProducts(ctx context.Context, filter interfaces.ProductFilter) ([]*domain.Product, error) {
	return s.products.FindAll(ctx, filter)
}

func (s *Service) UpdateProduct(ctx context.Context, id int, cmd interfaces.UpdateProductCommand) (*domain.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		product.Name = *cmd.Name
	}
	if cmd.Description != nil {
		product.Description = cmd.Description
	}
	if cmd.Price != nil {
		product.Price = *cmd.Price
	}
	if cmd.Category != nil {
		product.Category = *cmd.Category
	}
	if cmd.Image != nil {
		product.Image = cmd.Image
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *Service) AdjustStock(ctx context.Context, id, delta int) (*domain.Product, error) {
	if err := s.products.AdjustStock(ctx, id, delta); err != nil {
		return nil, err
	}
	return s.products.FindByID(ctx, id)
}

func (s *Service) DeactivateProduct(ctx context.Context, id int) error {
	return s.products.SetActive(ctx, id, false)
}

func (s *Service) DeleteProduct(ctx context.Context, id int) error {
	return s.products.Delete(ctx, id)
}
