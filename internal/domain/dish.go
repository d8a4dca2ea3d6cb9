package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Dish is an immutable menu entry. Two dishes are interchangeable when their
// names match and their prices are numerically equal.
type Dish struct {
	name  string
	price decimal.Decimal
}

// NewDish creates a dish with the given name and price
func NewDish(name string, price decimal.Decimal) Dish {
	return Dish{name: name, price: price}
}

func (d Dish) Name() string {
	return d.name
}

func (d Dish) Price() decimal.Decimal {
	return d.price
}

// Equal reports value equality. decimal.Decimal holds a pointer, so == on
// Dish compares identity rather than amount.
func (d Dish) Equal(other Dish) bool {
	return d.name == other.name && d.price.Equal(other.price)
}

// Validate applies catalogue rules before a dish is stored
func (d Dish) Validate() error {
	if strings.TrimSpace(d.name) == "" {
		return ErrInvalidDish
	}
	if d.price.IsNegative() {
		return ErrInvalidDish
	}
	// prices are whole pennies; receipt lines and totals round independently otherwise
	if !d.price.Equal(d.price.Round(2)) {
		return ErrInvalidDish
	}
	return nil
}

// ContainsDish reports whether dishes holds a dish equal to target
func ContainsDish(dishes []Dish, target Dish) bool {
	for _, d := range dishes {
		if d.Equal(target) {
			return true
		}
	}
	return false
}

// SumPrices returns the total price of dishes
func SumPrices(dishes []Dish) decimal.Decimal {
	total := decimal.Zero
	for _, d := range dishes {
		total = total.Add(d.price)
	}
	return total
}
