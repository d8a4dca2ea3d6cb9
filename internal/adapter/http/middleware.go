package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/YelzhanWeb/takeaway/internal/adapter/logger"
)

const requestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// RequestIDFromContext returns the id LoggingMiddleware attached to the request, or ""
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func LoggingMiddleware(logger logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := r.Header.Get(requestIDHeader)
			if requestID == "" {
				requestID = newRequestID()
			}
			w.Header().Set(requestIDHeader, requestID)

			logger.Debug("http_request", fmt.Sprintf("%s %s", r.Method, r.URL.Path), requestID, map[string]interface{}{
				"method": r.Method,
				"path":   r.URL.Path,
			})

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, requestID)))

			logger.Debug("http_response", "Request completed", requestID, map[string]interface{}{
				"status":      rec.status,
				"duration_ms": time.Since(start).Milliseconds(),
			})
		})
	}
}

func RecoveryMiddleware(logger logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					requestID := RequestIDFromContext(r.Context())
					if requestID == "" {
						requestID = newRequestID()
					}
					logger.Error("panic_recovered", "Panic recovered", requestID, map[string]interface{}{
						"path": r.URL.Path,
					}, fmt.Errorf("%v", err))
					http.Error(w, "Internal server error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

var newRequestID = logger.NewRequestID
