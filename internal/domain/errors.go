package domain

import "errors"

var (
	ErrDishNotOnMenu    = errors.New("dish not on menu")
	ErrDishNotInBasket  = errors.New("dish not in basket")
	ErrEmptyBasketOrder = errors.New("cannot order when basket is empty")
	ErrInvalidDish      = errors.New("dish must have a name and a non-negative price in whole pennies")
)
