package amqp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/YelzhanWeb/takeaway/internal/adapter/logger"
	"github.com/YelzhanWeb/takeaway/internal/interfaces"
)

type ConfirmationHandler struct {
	service interfaces.NotificationService
	logger  logger.Logger
}

func NewConfirmationHandler(service interfaces.NotificationService, logger logger.Logger) *ConfirmationHandler {
	return &ConfirmationHandler{
		service: service,
		logger:  logger,
	}
}

func (h *ConfirmationHandler) HandleConfirmation(ctx context.Context, body []byte) error {
	var msg interfaces.ConfirmationMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		h.logger.Error("message_parse_failed", "Failed to parse confirmation message", "", nil, err)
		return fmt.Errorf("failed to parse confirmation: %w", err)
	}

	return h.service.Deliver(ctx, msg)
}
