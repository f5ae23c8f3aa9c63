package consumer

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"github.com/eshopx/microservices/pkg/logging"
	"github.com/eshopx/microservices/services/ordering/internal/service"
)

// Consumer reads checkout events off Kafka and turns each into an order.
// Delivery is at-least-once; deduplication happens in the service on event id.
type Consumer struct {
	log    *slog.Logger
	reader *kafka.Reader
	svc    *service.OrderService
}

func New(log *slog.Logger, brokers []string, topic, group string, svc *service.OrderService) *Consumer {
	return &Consumer{
		log: log,
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: brokers,
			Topic:   topic,
			GroupID: group,
		}),
		svc: svc,
	}
}

// Run blocks fetching messages until ctx is cancelled or the reader fails.
// A message that cannot be decoded or stored is logged and committed anyway
// so one poison message cannot stall the partition.
func (c *Consumer) Run(ctx context.Context) error {
	defer c.reader.Close()

	ctx = logging.IntoContext(ctx, c.log)

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			return err
		}

		var event service.CheckoutEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			c.log.Error("checkout event unmarshal failed", "offset", msg.Offset, "error", err)
			_ = c.reader.CommitMessages(ctx, msg)
			continue
		}

		order, err := c.svc.CreateFromEvent(ctx, &event)
		if err != nil {
			c.log.Error("order creation failed", "event_id", event.EventID, "error", err)
		} else {
			c.log.Info("order created from checkout", "event_id", event.EventID, "order_id", order.ID, "user_name", order.UserName)
		}
		_ = c.reader.CommitMessages(ctx, msg)
	}
}
