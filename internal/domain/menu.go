package domain

import "sync"

// Menu is an in-memory, append-only list of dishes in insertion order.
// Duplicates are kept. It is safe for concurrent use so the catalogue can
// append while requests read.
type Menu struct {
	mu     sync.RWMutex
	dishes []Dish
}

func NewMenu(dishes ...Dish) *Menu {
	m := &Menu{}
	for _, d := range dishes {
		m.Add(d)
	}
	return m
}

// Add appends dish to the end of the menu
func (m *Menu) Add(dish Dish) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dishes = append(m.dishes, dish)
}

// All returns every dish added so far. The slice is a copy.
func (m *Menu) All() []Dish {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Dish, len(m.dishes))
	copy(out, m.dishes)
	return out
}
