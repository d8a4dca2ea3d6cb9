package domain

import "time"

// Confirmation is the outcome of placing an order
type Confirmation struct {
	Reference string
	Message   string
	PlacedAt  time.Time
	ArriveBy  time.Time
}
