package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/YelzhanWeb/takeaway/internal/domain"
	"github.com/YelzhanWeb/takeaway/internal/interfaces"
)

type dishRepository struct {
	db  DB
	now func() time.Time
}

func NewDishRepository(db DB) interfaces.DishRepository {
	return &dishRepository{db: db, now: time.Now}
}

// List returns dishes in the order they were added
func (r *dishRepository) List(ctx context.Context) ([]domain.Dish, error) {
	rows, err := r.db.Query(ctx, `SELECT name, price::text FROM dishes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query dishes: %w", err)
	}
	defer rows.Close()

	var dishes []domain.Dish
	for rows.Next() {
		var name, price string
		if err := rows.Scan(&name, &price); err != nil {
			return nil, fmt.Errorf("failed to scan dish: %w", err)
		}
		amount, err := decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("invalid price %q for dish %s: %w", price, name, err)
		}
		dishes = append(dishes, domain.NewDish(name, amount))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dishes: %w", err)
	}
	return dishes, nil
}

func (r *dishRepository) Add(ctx context.Context, dish domain.Dish) error {
	query := `
		INSERT INTO dishes (name, price, created_at)
		VALUES ($1, $2::numeric, $3)
	`
	tag, err := r.db.Exec(ctx, query, dish.Name(), dish.Price().String(), r.now())
	if err != nil {
		return fmt.Errorf("failed to insert dish: %w", err)
	}
	if tag.RowsAffected() != 1 {
		return fmt.Errorf("failed to insert dish: %d rows affected", tag.RowsAffected())
	}
	return nil
}
