package memory

import (
	"context"
	"sync"

	"github.com/YelzhanWeb/takeaway/internal/domain"
	"github.com/YelzhanWeb/takeaway/internal/interfaces"
)

// dishRepository keeps the catalogue in process memory, seeded from the menu file
type dishRepository struct {
	mu     sync.Mutex
	dishes []domain.Dish
}

func NewDishRepository(seed ...domain.Dish) interfaces.DishRepository {
	return &dishRepository{dishes: append([]domain.Dish(nil), seed...)}
}

func (r *dishRepository) List(ctx context.Context) ([]domain.Dish, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Dish(nil), r.dishes...), nil
}

func (r *dishRepository) Add(ctx context.Context, dish domain.Dish) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dishes = append(r.dishes, dish)
	return nil
}
