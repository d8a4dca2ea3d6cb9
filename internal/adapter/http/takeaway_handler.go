package http

import (
	"net/http"

	"github.com/YelzhanWeb/takeaway/internal/adapter/logger"
	"github.com/YelzhanWeb/takeaway/internal/interfaces"
)

type TakeawayHandler struct {
	service interfaces.OrderService
	logger  logger.Logger
}

func NewTakeawayHandler(service interfaces.OrderService, logger logger.Logger) *TakeawayHandler {
	return &TakeawayHandler{
		service: service,
		logger:  logger,
	}
}

type ReceiptResponse struct {
	Receipt string `json:"receipt"`
}

type OrderResponse struct {
	Reference    string `json:"reference"`
	Confirmation string `json:"confirmation"`
	ArriveBy     string `json:"arrive_by"`
}

// HandleBasket serves GET (list), POST (select) and DELETE (deselect) on /basket
func (h *TakeawayHandler) HandleBasket(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		respondJSON(w, http.StatusOK, toDishResponses(h.service.Basket()))

	case http.MethodPost, http.MethodDelete:
		dish, err := decodeDish(r)
		if err != nil {
			respondError(w, err.Error(), statusFor(err))
			return
		}

		if r.Method == http.MethodPost {
			err = h.service.Select(dish)
		} else {
			err = h.service.Deselect(dish)
		}
		if err != nil {
			h.logger.Debug("basket_update_rejected", err.Error(), RequestIDFromContext(r.Context()), map[string]interface{}{
				"method": r.Method,
				"dish":   dish.Name(),
			})
			respondError(w, err.Error(), statusFor(err))
			return
		}

		status := http.StatusOK
		if r.Method == http.MethodPost {
			status = http.StatusCreated
		}
		respondJSON(w, status, toDishResponses(h.service.Basket()))

	default:
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *TakeawayHandler) GetReceipt(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	respondJSON(w, http.StatusOK, ReceiptResponse{Receipt: h.service.Receipt()})
}

func (h *TakeawayHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	confirmation, err := h.service.Place(r.Context())
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("order_failed", "Failed to place order", RequestIDFromContext(r.Context()), nil, err)
		}
		respondError(w, err.Error(), status)
		return
	}

	respondJSON(w, http.StatusCreated, OrderResponse{
		Reference:    confirmation.Reference,
		Confirmation: confirmation.Message,
		ArriveBy:     confirmation.ArriveBy.Format("15:04"),
	})
}
