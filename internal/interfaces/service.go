package interfaces

import (
	"context"

	"github.com/YelzhanWeb/takeaway/internal/domain"
)

// Menu is the ordered dish list a takeaway validates selections against
type Menu interface {
	All() []domain.Dish
	Add(dish domain.Dish)
}

// Notifier delivers a text message to a preconfigured recipient.
// Send never returns an error: every transport failure is reported as false.
type Notifier interface {
	Send(body string) bool
}

// Интерфейсы Сервисов (Business Logic)
type OrderService interface {
	Menu() []domain.Dish
	Basket() []domain.Dish
	Select(dish domain.Dish) error
	Deselect(dish domain.Dish) error
	Receipt() string
	Place(ctx context.Context) (*domain.Confirmation, error)
}

type CatalogService interface {
	Load(ctx context.Context, menu Menu) (int, error)
	AddDish(ctx context.Context, menu Menu, dish domain.Dish) error
}

type NotificationService interface {
	Deliver(ctx context.Context, msg ConfirmationMessage) error
}
