package notifier

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"qr-dine/internal/connections/rabbitmq"
	"qr-dine/internal/domain"
)

// Run consumes order-placed messages from the kitchen queue and logs
// each one as a kitchen notification. Blocks until the context is
// canceled or the delivery channel closes.
func Run(ctx context.Context, client *rabbitmq.Client, logger *zap.Logger, prefetch int) error {
	deliveries, err := client.Consume("kitchen-notifier", prefetch)
	if err != nil {
		return err
	}

	logger.Info("kitchen notifier started")
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return nil
			}

			var msg domain.OrderPlacedMessage
			if err := json.Unmarshal(d.Body, &msg); err != nil {
				logger.Error("malformed order message", zap.Error(err))
				_ = d.Nack(false, false)
				continue
			}

			logger.Info("new order",
				zap.String("order_number", msg.OrderNumber),
				zap.Int64("restaurant_id", msg.RestaurantID),
				zap.String("table", msg.TableNo),
				zap.Int("items", len(msg.Items)),
				zap.Float64("subtotal", msg.Subtotal))
			_ = d.Ack(false)
		}
	}
}
