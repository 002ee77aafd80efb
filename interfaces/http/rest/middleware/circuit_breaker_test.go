package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestCircuitBreaker(t *testing.T) {
	config := CircuitBreakerConfig{
		Name:             "test",
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		FailureThreshold: 0.8,
		MinRequests:      3,
	}

	t.Run("passes requests while healthy", func(t *testing.T) {
		handler := CircuitBreaker(config, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		for i := 0; i < 10; i++ {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/clusters", nil))
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("client errors never trip the breaker", func(t *testing.T) {
		handler := CircuitBreaker(config, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))

		for i := 0; i < 10; i++ {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/clusters", nil))
			assert.Equal(t, http.StatusBadRequest, w.Code)
		}
	})

	t.Run("opens after sustained server failures", func(t *testing.T) {
		handler := CircuitBreaker(config, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		// Enough failures to cross the threshold.
		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/clusters", nil))
			assert.Equal(t, http.StatusInternalServerError, w.Code)
		}

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/clusters", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestDefaultCircuitBreakerConfig(t *testing.T) {
	config := DefaultCircuitBreakerConfig("api")

	assert.Equal(t, "api", config.Name)
	assert.Equal(t, uint32(5), config.MaxRequests)
	assert.Equal(t, 0.8, config.FailureThreshold)
}
