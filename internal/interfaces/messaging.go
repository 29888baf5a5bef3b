package interfaces

import (
	"context"
	"time"

	"cervejaria-pos/internal/domain"
)

// OrderStatusMessage is broadcast on every order status transition so
// floor displays and the notification subscriber can follow the tab.
type OrderStatusMessage struct {
	OrderID     int           `json:"order_id"`
	TableNumber int           `json:"table_number"`
	OldStatus   domain.Status `json:"old_status"`
	NewStatus   domain.Status `json:"new_status"`
	Total       string        `json:"total"`
	ChangedBy   string        `json:"changed_by"`
	Timestamp   time.Time     `json:"timestamp"`
}

type MessagePublisher interface {
	PublishStatusUpdate(ctx context.Context, msg OrderStatusMessage) error
}

type MessageConsumer interface {
	ConsumeNotifications(ctx context.Context, handler NotificationHandler) error
}

type NotificationHandler func(ctx context.Context, body []byte) error
