package takeaway

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	CurrencySymbol = "£"

	// DeliveryWindow is how long after ordering the food is promised
	DeliveryWindow = 2400 * time.Second
)

// FormatPrice renders amount with the currency symbol and exactly two decimals
func FormatPrice(amount decimal.Decimal) string {
	return CurrencySymbol + amount.StringFixed(2)
}

// ArrivalTime is the promised delivery time for an order placed at at,
// kept in at's location.
func ArrivalTime(at time.Time) time.Time {
	return at.Add(DeliveryWindow)
}

// FormatArrival renders the arrival time as 24-hour HH:MM
func FormatArrival(at time.Time) string {
	return ArrivalTime(at).Format("15:04")
}

// OrderMessage is the SMS body sent to the customer
func OrderMessage(total decimal.Decimal, at time.Time) string {
	return fmt.Sprintf("Thank you for ordering! Your order comes to %s and will be with you by %s.",
		FormatPrice(total), FormatArrival(at))
}
