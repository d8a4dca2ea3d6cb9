package order

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/YelzhanWeb/takeaway/internal/adapter/logger"
	"github.com/YelzhanWeb/takeaway/internal/app/takeaway"
	"github.com/YelzhanWeb/takeaway/internal/clock"
	"github.com/YelzhanWeb/takeaway/internal/domain"
	"github.com/YelzhanWeb/takeaway/internal/interfaces"
)

// Service exposes one Takeaway to concurrent callers such as HTTP handlers.
// Every call is serialised; the Takeaway itself holds no locks.
type Service struct {
	mu       sync.Mutex
	takeaway *takeaway.Takeaway
	notifier interfaces.Notifier
	clock    clock.Clock
	logger   logger.Logger
}

func NewService(menu interfaces.Menu, notifier interfaces.Notifier, clk clock.Clock, logger logger.Logger) *Service {
	return &Service{
		takeaway: takeaway.New(menu),
		notifier: notifier,
		clock:    clk,
		logger:   logger,
	}
}

func (s *Service) Menu() []domain.Dish {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.takeaway.Menu()
}

func (s *Service) Basket() []domain.Dish {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.takeaway.Basket()
}

func (s *Service) Select(dish domain.Dish) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.takeaway.SelectDish(dish); err != nil {
		s.logger.Debug("dish_select_rejected", err.Error(), "", map[string]interface{}{"dish": dish.Name()})
		return err
	}
	s.logger.Debug("dish_selected", "Dish added to basket", "", map[string]interface{}{
		"dish":        dish.Name(),
		"price":       dish.Price().StringFixed(2),
		"basket_size": len(s.takeaway.Basket()),
	})
	return nil
}

func (s *Service) Deselect(dish domain.Dish) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.takeaway.DeselectDish(dish); err != nil {
		s.logger.Debug("dish_deselect_rejected", err.Error(), "", map[string]interface{}{"dish": dish.Name()})
		return err
	}
	s.logger.Debug("dish_deselected", "Dish removed from basket", "", map[string]interface{}{
		"dish":        dish.Name(),
		"basket_size": len(s.takeaway.Basket()),
	})
	return nil
}

func (s *Service) Receipt() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.takeaway.Receipt()
}

// Place orders the current basket at the clock's current time.
// The basket is kept afterwards so the same order can be placed again.
func (s *Service) Place(ctx context.Context) (*domain.Confirmation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// a caller that went away gets no SMS
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reference := uuid.NewString()
	placedAt := s.clock.Now()

	message, err := s.takeaway.Order(s.notifier, placedAt)
	if err != nil {
		s.logger.Debug("order_rejected", err.Error(), reference, nil)
		return nil, err
	}

	s.logger.Info("order_placed", "Order placed", reference, map[string]interface{}{
		"total":       takeaway.FormatPrice(domain.SumPrices(s.takeaway.Basket())),
		"basket_size": len(s.takeaway.Basket()),
	})

	return &domain.Confirmation{
		Reference: reference,
		Message:   message,
		PlacedAt:  placedAt,
		ArriveBy:  takeaway.ArrivalTime(placedAt),
	}, nil
}
