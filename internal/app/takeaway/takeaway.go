package takeaway

import (
	"fmt"
	"strings"
	"time"

	"github.com/YelzhanWeb/takeaway/internal/domain"
	"github.com/YelzhanWeb/takeaway/internal/interfaces"
)

const (
	confirmationSent   = " You should receive an SMS with order details in the next few minutes."
	confirmationFailed = " There has been an issue sending you a confirmation SMS."
)

// Takeaway is one customer's in-progress order: a basket of dishes validated
// against a shared menu. It is not safe for concurrent use.
type Takeaway struct {
	menu   interfaces.Menu
	basket []domain.Dish
}

func New(menu interfaces.Menu) *Takeaway {
	return &Takeaway{menu: menu}
}

// Menu returns the dishes currently on the bound menu
func (t *Takeaway) Menu() []domain.Dish {
	return t.menu.All()
}

// Basket returns the selected dishes in selection order, duplicates included
func (t *Takeaway) Basket() []domain.Dish {
	out := make([]domain.Dish, len(t.basket))
	copy(out, t.basket)
	return out
}

// SelectDish appends dish to the basket if it is on the menu
func (t *Takeaway) SelectDish(dish domain.Dish) error {
	if err := t.checkOnMenu(dish); err != nil {
		return err
	}
	t.basket = append(t.basket, dish)
	return nil
}

// DeselectDish removes every occurrence of dish from the basket.
// The menu check runs first, so a dish missing from both reports ErrDishNotOnMenu.
func (t *Takeaway) DeselectDish(dish domain.Dish) error {
	if err := t.checkOnMenu(dish); err != nil {
		return err
	}
	if !domain.ContainsDish(t.basket, dish) {
		return fmt.Errorf("%w: %s", domain.ErrDishNotInBasket, dish.Name())
	}

	kept := t.basket[:0]
	for _, d := range t.basket {
		if !d.Equal(dish) {
			kept = append(kept, d)
		}
	}
	t.basket = kept
	return nil
}

// Receipt itemises the basket and appends the total. Empty basket gives "".
func (t *Takeaway) Receipt() string {
	if len(t.basket) == 0 {
		return ""
	}

	lines := make([]string, 0, len(t.basket)+1)
	for _, d := range t.basket {
		lines = append(lines, fmt.Sprintf("%s: %s", d.Name(), FormatPrice(d.Price())))
	}
	lines = append(lines, "TOTAL: "+FormatPrice(domain.SumPrices(t.basket)))
	return strings.Join(lines, ", ")
}

// Order sends the order summary through notifier and returns it with a suffix
// saying whether the SMS went out. The basket is left as it is.
func (t *Takeaway) Order(notifier interfaces.Notifier, at time.Time) (string, error) {
	if len(t.basket) == 0 {
		return "", domain.ErrEmptyBasketOrder
	}

	body := OrderMessage(domain.SumPrices(t.basket), at)
	if notifier.Send(body) {
		return body + confirmationSent, nil
	}
	return body + confirmationFailed, nil
}

func (t *Takeaway) checkOnMenu(dish domain.Dish) error {
	if !domain.ContainsDish(t.menu.All(), dish) {
		return fmt.Errorf("%w: %s", domain.ErrDishNotOnMenu, dish.Name())
	}
	return nil
}
