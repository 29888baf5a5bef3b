package staff

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"cervejaria-pos/internal/adapter/logger"
	"cervejaria-pos/internal/domain"
	"cervejaria-pos/internal/interfaces"
)

// Service manages the staff directory: waiters and cashiers, including
// cashier session open/close.
type Service struct {
	waiters  interfaces.WaiterRepository
	cashiers interfaces.CashierRepository
	logger   logger.Logger
}

func NewService(waiters interfaces.WaiterRepository, cashiers interfaces.CashierRepository, logger logger.Logger) *Service {
	return &Service{waiters: waiters, cashiers: cashiers, logger: logger}
}

func (s *Service) CreateWaiter(ctx context.Context, cmd interfaces.CreateWaiterCommand) (*domain.Waiter, error) {
	waiter := &domain.Waiter{
		Name:      cmd.Name,
		Code:      cmd.Code,
		CPF:       cmd.CPF,
		Email:     cmd.Email,
		Phone:     cmd.Phone,
		Salary:    cmd.Salary,
		Shift:     cmd.Shift,
		Active:    true,
		HiredAt:   time.Now(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := waiter.Validate(); err != nil {
		return nil, err
	}

	if err := s.waiters.Create(ctx, waiter); err != nil {
		s.logger.Error("waiter_create_failed", "Failed to create waiter", "", nil, err)
		return nil, err
	}

	return waiter, nil
}

func (s *Service) GetWaiter(ctx context.Context, id int) (*domain.Waiter, error) {
	return s.waiters.FindByID(ctx, id)
}

func (s *Service) ListWaiters(ctx context.Context, filter interfaces.WaiterFilter) ([]*domain.Waiter, error) {
	return s.waiters.FindAll(ctx, filter)
}

func (s *Service) UpdateWaiter(ctx context.Context, id int, cmd interfaces.CreateWaiterCommand) (*domain.Waiter, error) {
	waiter, err := s.waiters.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	waiter.Name = cmd.Name
	waiter.Code = cmd.Code
	if cmd.CPF != nil {
		waiter.CPF = cmd.CPF
	}
	if cmd.Email != nil {
		waiter.Email = cmd.Email
	}
	if cmd.Phone != nil {
		waiter.Phone = cmd.Phone
	}
	if !cmd.Salary.IsZero() {
		waiter.Salary = cmd.Salary
	}
	if cmd.Shift != "" {
		waiter.Shift = cmd.Shift
	}

	if err := waiter.Validate(); err != nil {
		return nil, err
	}

	if err := s.waiters.Update(ctx, waiter); err != nil {
		return nil, err
	}

	return waiter, nil
}

func (s *Service) DeactivateWaiter(ctx context.Context, id int) error {
	return s.waiters.SetActive(ctx, id, false)
}

func (s *Service) CreateCashier(ctx context.Context, cmd interfaces.CreateCashierCommand) (*domain.Cashier, error) {
	cashier := &domain.Cashier{
		Name:         cmd.Name,
		Code:         cmd.Code,
		Salary:       cmd.Salary,
		TotalSold:    decimal.Zero,
		CurrentValue: decimal.Zero,
		Status:       domain.CashierClosed,
		Active:       true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := cashier.Validate(); err != nil {
		return nil, err
	}

	if err := s.cashiers.Create(ctx, cashier); err != nil {
		s.logger.Error("cashier_create_failed", "Failed to create cashier", "", nil, err)
		return nil, err
	}

	return cashier, nil
}

func (s *Service) GetCashier(ctx context.Context, id int) (*domain.Cashier, error) {
	return s.cashiers.FindByID(ctx, id)
}

func (s *Service) ListCashiers(ctx context.Context, activeOnly bool) ([]*domain.Cashier, error) {
	return s.cashiers.FindAll(ctx, activeOnly)
}

func (s *Service) UpdateCashier(ctx context.Context, id int, cmd interfaces.CreateCashierCommand) (*domain.Cashier, error) {
	cashier, err := s.cashiers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	cashier.Name = cmd.Name
	cashier.Code = cmd.Code
	if !cmd.Salary.IsZero() {
		cashier.Salary = cmd.Salary
	}

	if err := cashier.Validate(); err != nil {
		return nil, err
	}

	if err := s.cashiers.Update(ctx, cashier); err != nil {
		return nil, err
	}

	return cashier, nil
}

func (s *Service) DeactivateCashier(ctx context.Context, id int) error {
	return s.cashiers.SetActive(ctx, id, false)
}

func (s *Service) OpenCashier(ctx context.Context, id int) (*domain.Cashier, error) {
	cashier, err := s.cashiers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !cashier.Active {
		return nil, domain.ErrInactiveStaff
	}
	if cashier.IsOpen() {
		return nil, domain.ErrInvalidTransition
	}

	if err := s.cashiers.SetSession(ctx, id, domain.CashierOpen); err != nil {
		return nil, err
	}

	return s.cashiers.FindByID(ctx, id)
}

func (s *Service) CloseCashier(ctx context.Context, id int) (*domain.Cashier, error) {
	cashier, err := s.cashiers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !cashier.IsOpen() {
		return nil, domain.ErrInvalidTransition
	}

	if err := s.cashiers.SetSession(ctx, id, domain.CashierClosed); err != nil {
		return nil, err
	}

	return s.cashiers.FindByID(ctx, id)
}
