package rabbitmq

import (
	"context"
	"fmt"
	"time"

	"github.com/YelzhanWeb/takeaway/internal/adapter/logger"
	"github.com/YelzhanWeb/takeaway/internal/interfaces"
)

type consumer struct {
	conn           Connection
	prefetch       int
	reconnectDelay time.Duration
	logger         logger.Logger
}

func NewConsumer(conn Connection, prefetch int, logger logger.Logger) interfaces.MessageConsumer {
	return &consumer{
		conn:           conn,
		prefetch:       prefetch,
		reconnectDelay: 5 * time.Second,
		logger:         logger,
	}
}

// ConsumeConfirmations blocks until ctx is done, reopening the channel after failures.
// Messages the handler rejects are dead-lettered, not requeued.
func (c *consumer) ConsumeConfirmations(ctx context.Context, handler interfaces.ConfirmationHandler) error {
	for {
		err := c.consume(ctx, handler)

		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err == nil {
			return nil
		}

		c.logger.Error("consumer_disconnected", fmt.Sprintf("Reconnecting in %s", c.reconnectDelay), "", nil, err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.reconnectDelay):
		}
	}
}

func (c *consumer) consume(ctx context.Context, handler interfaces.ConfirmationHandler) error {
	ch, err := c.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	closeChan := ch.NotifyClose()

	if err := ch.Qos(c.prefetch, 0, false); err != nil {
		return fmt.Errorf("failed to set QoS: %w", err)
	}
	if err := declareConfirmations(ch); err != nil {
		return err
	}

	msgs, err := ch.Consume(ConfirmationsQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case err := <-closeChan:
			if err != nil {
				return fmt.Errorf("channel closed: %w", err)
			}
			return fmt.Errorf("channel closed gracefully")

		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("messages channel closed")
			}

			if err := handler(ctx, msg.Body); err != nil {
				c.logger.Debug("message_dead_lettered", err.Error(), msg.MessageId, nil)
				_ = msg.Nack(false, false)
			} else {
				_ = msg.Ack(false)
			}
		}
	}
}
