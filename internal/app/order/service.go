package order

import (
	"context"
	"fmt"
	"time"

	"cervejaria-pos/internal/adapter/logger"
	"cervejaria-pos/internal/domain"
	"cervejaria-pos/internal/interfaces"
)

const changedBy = "order-service"

// Service drives the order lifecycle: the status state machine, total
// recomputation and stock mutation in the catalog.
type Service struct {
	orders    interfaces.OrderRepository
	products  interfaces.ProductRepository
	waiters   interfaces.WaiterRepository
	cashiers  interfaces.CashierRepository
	publisher interfaces.MessagePublisher
	logger    logger.Logger
}

func NewService(
	orders interfaces.OrderRepository,
	products interfaces.ProductRepository,
	waiters interfaces.WaiterRepository,
	cashiers interfaces.CashierRepository,
	publisher interfaces.MessagePublisher,
	logger logger.Logger,
) *Service {
	return &Service{
		orders:    orders,
		products:  products,
		waiters:   waiters,
		cashiers:  cashiers,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *Service) Create(ctx context.Context, cmd interfaces.CreateOrderCommand) (*domain.Order, error) {
	waiter, err := s.waiters.FindByID(ctx, cmd.WaiterID)
	if err != nil {
		return nil, fmt.Errorf("waiter lookup: %w", err)
	}
	if !waiter.Active {
		return nil, domain.ErrInactiveStaff
	}

	order, err := domain.NewOrder(cmd.TableNumber, cmd.WaiterID)
	if err != nil {
		return nil, err
	}

	for _, itemCmd := range cmd.Items {
		product, err := s.products.FindByID(ctx, itemCmd.ProductID)
		if err != nil {
			return nil, err
		}
		if !product.Active {
			return nil, domain.ErrProductInactive
		}
		if !product.HasStock(itemCmd.Quantity) {
			return nil, domain.ErrInsufficientStock
		}

		item, err := domain.NewOrderItem(0, product, itemCmd.Quantity, itemCmd.Notes)
		if err != nil {
			return nil, err
		}
		order.Items = append(order.Items, *item)
	}
	order.RecalculateTotal()

	// Order and items land in one tx; a stock shortfall on any item
	// leaves nothing behind.
	if err := s.orders.Create(ctx, order); err != nil {
		s.logger.Error("order_create_failed", "Failed to create order", "", nil, err)
		return nil, err
	}

	s.logger.Debug("order_created", "Order created", "", map[string]interface{}{
		"order_id": order.ID,
		"table":    order.TableNumber,
	})

	return s.orders.FindByID(ctx, order.ID)
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Order, error) {
	return s.orders.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter interfaces.OrderFilter) ([]*domain.Order, error) {
	return s.orders.FindAll(ctx, filter)
}

func (s *Service) AddItem(ctx context.Context, orderID int, cmd interfaces.CreateOrderItemCommand) (*domain.OrderItem, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Editable() {
		return nil, domain.ErrOrderNotEditable
	}

	product, err := s.products.FindByID(ctx, cmd.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.Active {
		return nil, domain.ErrProductInactive
	}
	if !product.HasStock(cmd.Quantity) {
		return nil, domain.ErrInsufficientStock
	}

	item, err := domain.NewOrderItem(orderID, product, cmd.Quantity, cmd.Notes)
	if err != nil {
		return nil, err
	}

	// The repository re-checks stock inside the transaction; the check
	// above only gives a fast failure before any write.
	if err := s.orders.AddItem(ctx, item); err != nil {
		s.logger.Error("add_item_failed", "Failed to add order item", "", map[string]interface{}{
			"order_id":   orderID,
			"product_id": cmd.ProductID,
		}, err)
		return nil, err
	}

	return item, nil
}

func (s *Service) GetItem(ctx context.Context, itemID int) (*domain.OrderItem, error) {
	return s.orders.FindItemByID(ctx, itemID)
}

func (s *Service) UpdateItem(ctx context.Context, itemID, newQuantity int) (*domain.OrderItem, error) {
	if newQuantity < 1 {
		return nil, domain.ErrValidation
	}

	item, err := s.orders.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.FindByID(ctx, item.OrderID)
	if err != nil {
		return nil, err
	}
	if !order.Editable() {
		return nil, domain.ErrOrderNotEditable
	}

	delta := newQuantity - item.Quantity
	if delta == 0 {
		return item, nil
	}

	if delta > 0 {
		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if !product.Active {
			return nil, domain.ErrProductInactive
		}
		if !product.HasStock(delta) {
			return nil, domain.ErrInsufficientStock
		}
	}

	item.Quantity = newQuantity
	item.RecalculateSubtotal()

	if err := s.orders.UpdateItemQuantity(ctx, item, delta); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *Service) RemoveItem(ctx context.Context, itemID int) error {
	item, err := s.orders.FindItemByID(ctx, itemID)
	if err != nil {
		return err
	}

	order, err := s.orders.FindByID(ctx, item.OrderID)
	if err != nil {
		return err
	}
	if !order.Editable() {
		return domain.ErrOrderNotEditable
	}

	return s.orders.RemoveItem(ctx, item)
}

func (s *Service) Confirm(ctx context.Context, id int) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.StatusOpen {
		return nil, domain.ErrInvalidTransition
	}
	if len(order.Items) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	oldStatus := order.Status
	if err := order.TransitionTo(domain.StatusConfirmed); err != nil {
		return nil, err
	}

	if err := s.orders.UpdateStatus(ctx, order, changedBy); err != nil {
		return nil, err
	}

	s.publishStatus(ctx, order, oldStatus)
	return order, nil
}

func (s *Service) Deliver(ctx context.Context, id int) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.StatusConfirmed {
		return nil, domain.ErrInvalidTransition
	}

	oldStatus := order.Status
	if err := order.TransitionTo(domain.StatusDelivered); err != nil {
		return nil, err
	}

	if err := s.orders.UpdateStatus(ctx, order, changedBy); err != nil {
		return nil, err
	}

	s.publishStatus(ctx, order, oldStatus)
	return order, nil
}

func (s *Service) Pay(ctx context.Context, id, cashierID int, paymentMethod string) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	switch order.Status {
	case domain.StatusPaid:
		return nil, domain.ErrAlreadyPaid
	case domain.StatusCanceled:
		return nil, domain.ErrInvalidTransition
	}

	cashier, err := s.cashiers.FindByID(ctx, cashierID)
	if err != nil {
		return nil, fmt.Errorf("cashier lookup: %w", err)
	}
	if !cashier.IsOpen() {
		return nil, domain.ErrCashierNotOpen
	}

	oldStatus := order.Status
	if err := order.TransitionTo(domain.StatusPaid); err != nil {
		return nil, err
	}
	order.PaymentMethod = &paymentMethod

	if err := s.orders.Pay(ctx, order, cashierID, changedBy); err != nil {
		s.logger.Error("payment_failed", "Failed to pay order", "", map[string]interface{}{
			"order_id":   id,
			"cashier_id": cashierID,
		}, err)
		return nil, err
	}

	s.publishStatus(ctx, order, oldStatus)
	return order, nil
}

func (s *Service) Cancel(ctx context.Context, id int, reason string) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status == domain.StatusPaid {
		return nil, domain.ErrCannotCancelPaid
	}
	if order.Status == domain.StatusCanceled {
		return nil, domain.ErrInvalidTransition
	}

	oldStatus := order.Status
	if err := order.TransitionTo(domain.StatusCanceled); err != nil {
		return nil, err
	}

	note := "cancellation reason: " + reason
	if order.Notes != nil && *order.Notes != "" {
		note = *order.Notes + "\n" + note
	}
	order.Notes = &note

	if err := s.orders.Cancel(ctx, order, changedBy); err != nil {
		return nil, err
	}

	s.publishStatus(ctx, order, oldStatus)
	return order, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if order.Status != domain.StatusCanceled {
		return domain.ErrInvalidTransition
	}

	return s.orders.Delete(ctx, id)
}

func (s *Service) History(ctx context.Context, id int) ([]*domain.StatusLog, error) {
	if _, err := s.orders.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.orders.GetStatusHistory(ctx, id)
}

// publishStatus broadcasts a transition. Best effort: the transaction
// has already committed, so a broker failure only costs the event.
func (s *Service) publishStatus(ctx context.Context, order *domain.Order, oldStatus domain.Status) {
	msg := interfaces.OrderStatusMessage{
		OrderID:     order.ID,
		TableNumber: order.TableNumber,
		OldStatus:   oldStatus,
		NewStatus:   order.Status,
		Total:       order.Total.StringFixed(2),
		ChangedBy:   changedBy,
		Timestamp:   time.Now().UTC(),
	}

	if err := s.publisher.PublishStatusUpdate(ctx, msg); err != nil {
		s.logger.Error("publish_failed", "Failed to publish status update", "", map[string]interface{}{
			"order_id": order.ID,
		}, err)
	}
}
