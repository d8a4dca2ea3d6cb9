package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/YelzhanWeb/takeaway/internal/domain"
)

type stubOrderService struct {
	confirmation *domain.Confirmation
	err          error
}

func (s *stubOrderService) Menu() []domain.Dish             { return nil }
func (s *stubOrderService) Basket() []domain.Dish           { return nil }
func (s *stubOrderService) Select(dish domain.Dish) error   { return nil }
func (s *stubOrderService) Deselect(dish domain.Dish) error { return nil }
func (s *stubOrderService) Receipt() string                 { return "" }

func (s *stubOrderService) Place(ctx context.Context) (*domain.Confirmation, error) {
	return s.confirmation, s.err
}

type countingLogger struct {
	errors int
}

func (l *countingLogger) Info(action, message, requestID string, details map[string]interface{})  {}
func (l *countingLogger) Debug(action, message, requestID string, details map[string]interface{}) {}
func (l *countingLogger) Error(action, message, requestID string, details map[string]interface{}, err error) {
	l.errors++
}

func TestTakeawayHandler_PlaceOrderUsesConfirmationArrival(t *testing.T) {
	t.Parallel()

	svc := &stubOrderService{confirmation: &domain.Confirmation{
		Reference: "ref-1",
		Message:   "Thank you for ordering!",
		PlacedAt:  time.Date(2022, 1, 8, 20, 20, 0, 0, time.UTC),
		ArriveBy:  time.Date(2022, 1, 8, 18, 5, 0, 0, time.UTC),
	}}
	h := NewTakeawayHandler(svc, &countingLogger{})

	rec := httptest.NewRecorder()
	h.PlaceOrder(rec, httptest.NewRequest(http.MethodPost, "/orders", nil))

	var resp OrderResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode order: %v", err)
	}
	if resp.ArriveBy != "18:05" {
		t.Fatalf("expected arrive_by from the confirmation, got %q", resp.ArriveBy)
	}
}

func TestTakeawayHandler_PlaceOrderErrorLogging(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantErrors int
	}{
		{"empty basket", domain.ErrEmptyBasketOrder, http.StatusConflict, 0},
		{"unexpected failure", errors.New("clock exploded"), http.StatusInternalServerError, 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lgr := &countingLogger{}
			h := NewTakeawayHandler(&stubOrderService{err: tt.err}, lgr)

			rec := httptest.NewRecorder()
			h.PlaceOrder(rec, httptest.NewRequest(http.MethodPost, "/orders", nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
			if lgr.errors != tt.wantErrors {
				t.Fatalf("expected %d error logs, got %d", tt.wantErrors, lgr.errors)
			}
		})
	}
}
