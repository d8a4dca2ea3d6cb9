package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/YelzhanWeb/takeaway/internal/adapter/logger"
	"github.com/YelzhanWeb/takeaway/internal/interfaces"
)

// ErrNotDelivered tells the consumer to dead-letter the message
var ErrNotDelivered = errors.New("confirmation sms not delivered")

// Service delivers queued order confirmations over SMS
type Service struct {
	notifier interfaces.Notifier
	logger   logger.Logger
}

func NewService(notifier interfaces.Notifier, logger logger.Logger) *Service {
	return &Service{
		notifier: notifier,
		logger:   logger,
	}
}

func (s *Service) Deliver(ctx context.Context, msg interfaces.ConfirmationMessage) error {
	if msg.Body == "" {
		return fmt.Errorf("confirmation %s has an empty body", msg.Reference)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.logger.Debug("confirmation_received", "Delivering order confirmation", msg.Reference, map[string]interface{}{
		"placed_at": msg.PlacedAt,
	})

	if !s.notifier.Send(msg.Body) {
		s.logger.Error("confirmation_not_delivered", "SMS notifier reported failure", msg.Reference, nil, ErrNotDelivered)
		return fmt.Errorf("%w: %s", ErrNotDelivered, msg.Reference)
	}

	s.logger.Info("confirmation_delivered", "Order confirmation sent", msg.Reference, nil)
	return nil
}
