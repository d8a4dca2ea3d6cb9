package http

import (
	"net/http"

	"github.com/YelzhanWeb/takeaway/internal/adapter/logger"
)

// NewRouter wires the takeaway routes and wraps them in recovery and request logging
func NewRouter(takeawayHandler *TakeawayHandler, menuHandler *MenuHandler, lgr logger.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/menu", menuHandler.HandleMenu)
	mux.HandleFunc("/basket", takeawayHandler.HandleBasket)
	mux.HandleFunc("/receipt", takeawayHandler.GetReceipt)
	mux.HandleFunc("/orders", takeawayHandler.PlaceOrder)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	handler := RecoveryMiddleware(lgr)(mux)
	return LoggingMiddleware(lgr)(handler)
}
