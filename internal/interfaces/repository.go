package interfaces

import (
	"context"

	"github.com/YelzhanWeb/takeaway/internal/domain"
)

// Интерфейсы Репозиториев (Adapter/Postgres)
type DishRepository interface {
	List(ctx context.Context) ([]domain.Dish, error)
	Add(ctx context.Context, dish domain.Dish) error
}
