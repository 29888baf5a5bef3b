package amqp

import (
	"context"
	"encoding/json"
	"fmt"

	"cervejaria-pos/internal/adapter/logger"
	"cervejaria-pos/internal/interfaces"
)

type NotificationHandler struct {
	logger logger.Logger
}

func NewNotificationHandler(logger logger.Logger) *NotificationHandler {
	return &NotificationHandler{logger: logger}
}

func (h *NotificationHandler) HandleNotification(ctx context.Context, body []byte) error {
	var msg interfaces.OrderStatusMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		h.logger.Error("message_parse_failed", "Failed to parse notification", "", nil, err)
		return err
	}

	h.logger.Debug("notification_received", fmt.Sprintf("Status update for order %d", msg.OrderID), "",
		map[string]interface{}{
			"order_id":   msg.OrderID,
			"new_status": msg.NewStatus,
		})

	fmt.Printf("Order %d (table %d): status changed from '%s' to '%s', total %s\n",
		msg.OrderID, msg.TableNumber, msg.OldStatus, msg.NewStatus, msg.Total)

	return nil
}
