package interfaces

import (
	"context"
	"time"
)

// Сообщения RabbitMQ
type ConfirmationMessage struct {
	Reference string    `json:"reference"`
	Body      string    `json:"body"`
	PlacedAt  time.Time `json:"placed_at"`
}

// Интерфейсы Messaging (Adapter/RabbitMQ)
type MessagePublisher interface {
	PublishConfirmation(ctx context.Context, msg ConfirmationMessage) error
}

type MessageConsumer interface {
	ConsumeConfirmations(ctx context.Context, handler ConfirmationHandler) error
}

type ConfirmationHandler func(ctx context.Context, body []byte) error
