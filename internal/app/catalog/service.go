package catalog

import (
	"context"
	"fmt"

	"github.com/YelzhanWeb/takeaway/internal/adapter/logger"
	"github.com/YelzhanWeb/takeaway/internal/domain"
	"github.com/YelzhanWeb/takeaway/internal/interfaces"
)

// Service moves dishes between the catalogue store and the in-memory menu
type Service struct {
	repo   interfaces.DishRepository
	logger logger.Logger
}

func NewService(repo interfaces.DishRepository, logger logger.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Load appends every stored dish to menu in catalogue order and returns how many were added
func (s *Service) Load(ctx context.Context, menu interfaces.Menu) (int, error) {
	dishes, err := s.repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list dishes: %w", err)
	}

	for _, d := range dishes {
		menu.Add(d)
	}

	s.logger.Info("menu_loaded", fmt.Sprintf("Loaded %d dishes", len(dishes)), "", map[string]interface{}{
		"dishes": len(dishes),
	})
	return len(dishes), nil
}

// AddDish stores dish and then appends it to menu. A dish that fails to
// store never reaches the menu.
func (s *Service) AddDish(ctx context.Context, menu interfaces.Menu, dish domain.Dish) error {
	if err := dish.Validate(); err != nil {
		return err
	}

	if err := s.repo.Add(ctx, dish); err != nil {
		s.logger.Error("dish_store_failed", "Failed to store dish", "", map[string]interface{}{"dish": dish.Name()}, err)
		return fmt.Errorf("failed to store dish: %w", err)
	}
	menu.Add(dish)

	s.logger.Info("dish_added", "Dish added to menu", "", map[string]interface{}{
		"dish":  dish.Name(),
		"price": dish.Price().StringFixed(2),
	})
	return nil
}
