package rabbitmq

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/YelzhanWeb/takeaway/internal/adapter/logger"
	"github.com/YelzhanWeb/takeaway/internal/interfaces"
)

// QueuedNotifier hands the SMS body to the notification subscriber through RabbitMQ.
// Send reports true once the broker confirmed the publish.
type QueuedNotifier struct {
	publisher interfaces.MessagePublisher
	timeout   time.Duration
	now       func() time.Time
	logger    logger.Logger
}

var _ interfaces.Notifier = (*QueuedNotifier)(nil)

func NewQueuedNotifier(publisher interfaces.MessagePublisher, timeout time.Duration, logger logger.Logger) *QueuedNotifier {
	return &QueuedNotifier{
		publisher: publisher,
		timeout:   timeout,
		now:       time.Now,
		logger:    logger,
	}
}

func (n *QueuedNotifier) Send(body string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
	defer cancel()

	msg := interfaces.ConfirmationMessage{
		Reference: uuid.NewString(),
		Body:      body,
		PlacedAt:  n.now(),
	}

	if err := n.publisher.PublishConfirmation(ctx, msg); err != nil {
		n.logger.Error("confirmation_publish_failed", "Failed to queue confirmation SMS", msg.Reference, nil, err)
		return false
	}

	n.logger.Debug("confirmation_queued", "Confirmation SMS queued and confirmed by broker", msg.Reference, nil)
	return true
}
