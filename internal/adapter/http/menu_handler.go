package http

import (
	"net/http"

	"github.com/YelzhanWeb/takeaway/internal/adapter/logger"
	"github.com/YelzhanWeb/takeaway/internal/domain"
	"github.com/YelzhanWeb/takeaway/internal/interfaces"
)

type MenuHandler struct {
	catalog interfaces.CatalogService
	menu    interfaces.Menu
	logger  logger.Logger
}

func NewMenuHandler(catalog interfaces.CatalogService, menu interfaces.Menu, logger logger.Logger) *MenuHandler {
	return &MenuHandler{
		catalog: catalog,
		menu:    menu,
		logger:  logger,
	}
}

func (h *MenuHandler) HandleMenu(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		respondJSON(w, http.StatusOK, toDishResponses(h.menu.All()))

	case http.MethodPost:
		dish, err := decodeDish(r)
		if err != nil {
			respondError(w, err.Error(), statusFor(err))
			return
		}

		if err := h.catalog.AddDish(r.Context(), h.menu, dish); err != nil {
			h.logger.Error("menu_update_failed", "Failed to add dish", RequestIDFromContext(r.Context()), map[string]interface{}{
				"dish": dish.Name(),
			}, err)
			respondError(w, err.Error(), statusFor(err))
			return
		}
		respondJSON(w, http.StatusCreated, toDishResponses([]domain.Dish{dish})[0])

	default:
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
