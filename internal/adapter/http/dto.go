package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/YelzhanWeb/takeaway/internal/app/takeaway"
	"github.com/YelzhanWeb/takeaway/internal/domain"
)

// DishRequest accepts the price either as a JSON number or a string ("4.00")
type DishRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type DishResponse struct {
	Name    string `json:"name"`
	Price   string `json:"price"`
	Display string `json:"display"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func toDishResponses(dishes []domain.Dish) []DishResponse {
	out := make([]DishResponse, len(dishes))
	for i, d := range dishes {
		out[i] = DishResponse{
			Name:    d.Name(),
			Price:   d.Price().StringFixed(2),
			Display: takeaway.FormatPrice(d.Price()),
		}
	}
	return out
}

func decodeDish(r *http.Request) (domain.Dish, error) {
	var req DishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return domain.Dish{}, fmt.Errorf("%w: invalid request body", domain.ErrInvalidDish)
	}
	dish := domain.NewDish(req.Name, req.Price)
	if err := dish.Validate(); err != nil {
		return domain.Dish{}, err
	}
	return dish, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrDishNotOnMenu):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDishNotInBasket), errors.Is(err, domain.ErrEmptyBasketOrder):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidDish):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, message string, statusCode int) {
	respondJSON(w, statusCode, ErrorResponse{Error: message})
}
