package middlewares

import (
	"context"
	"mediplant-service/internal/app/config"
	"mediplant-service/internal/app/services/shared/ratelimiter"
	"mediplant-service/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// countingRedis is an in-memory stand-in for the redis-backed counter the
// resource limiter increments.
type countingRedis struct {
	mu     sync.Mutex
	counts map[string]int64
}

func newCountingRedis() *countingRedis {
	return &countingRedis{counts: make(map[string]int64)}
}

func (c *countingRedis) Delete(ctx context.Context, key string) error { return nil }

func (c *countingRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}

func (c *countingRedis) Get(ctx context.Context, key string) (string, error) { return "", nil }

func (c *countingRedis) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[key]++
	return c.counts[key], nil
}

func (c *countingRedis) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	return true, nil
}

func newTestMiddlewares(t *testing.T, apiKey string, quota int) *Middlewares {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(apiKey), bcrypt.MinCost)
	assert.NoError(t, err)

	internalConfig := &config.InternalConfig{
		App: config.App{
			AdminAPIKeyHash:      string(hash),
			AdminAPIKeyRateLimit: quota,
		},
	}

	return &Middlewares{
		Log:             zap.NewNop(),
		InternalConfig:  internalConfig,
		ResourceLimiter: ratelimiter.NewResourceLimiter(newCountingRedis(), zap.NewNop()),
	}
}

func TestRequireAdminAPIKey(t *testing.T) {
	const testAPIKey = "test-admin-api-key-12345"

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKeyAuth, ok := r.Context().Value(constvars.CONTEXT_API_KEY_AUTH_KEY).(bool)
		assert.True(t, ok, "api key auth flag should be set")
		assert.True(t, apiKeyAuth)

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	})

	t.Run("Valid API Key", func(t *testing.T) {
		middlewares := newTestMiddlewares(t, testAPIKey, 100)

		req := httptest.NewRequest("POST", "/api/v1/admin/products", nil)
		req.Header.Set(constvars.HeaderXAPIKey, testAPIKey)

		rr := httptest.NewRecorder()
		middlewares.RequireAdminAPIKey(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "success", rr.Body.String())
	})

	t.Run("Missing API Key", func(t *testing.T) {
		middlewares := newTestMiddlewares(t, testAPIKey, 100)

		req := httptest.NewRequest("POST", "/api/v1/admin/products", nil)

		rr := httptest.NewRecorder()
		middlewares.RequireAdminAPIKey(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Invalid API Key", func(t *testing.T) {
		middlewares := newTestMiddlewares(t, testAPIKey, 100)

		req := httptest.NewRequest("POST", "/api/v1/admin/products", nil)
		req.Header.Set(constvars.HeaderXAPIKey, "wrong-api-key")

		rr := httptest.NewRecorder()
		middlewares.RequireAdminAPIKey(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Case Sensitivity", func(t *testing.T) {
		middlewares := newTestMiddlewares(t, testAPIKey, 100)

		req := httptest.NewRequest("POST", "/api/v1/admin/products", nil)
		req.Header.Set(constvars.HeaderXAPIKey, "TEST-ADMIN-API-KEY-12345")

		rr := httptest.NewRecorder()
		middlewares.RequireAdminAPIKey(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Quota Exhaustion Returns Retry After", func(t *testing.T) {
		middlewares := newTestMiddlewares(t, testAPIKey, 2)

		var lastCode int
		var lastHeaders http.Header
		for i := 0; i < 3; i++ {
			req := httptest.NewRequest("POST", "/api/v1/admin/products", nil)
			req.Header.Set(constvars.HeaderXAPIKey, testAPIKey)

			rr := httptest.NewRecorder()
			middlewares.RequireAdminAPIKey(okHandler).ServeHTTP(rr, req)
			lastCode = rr.Code
			lastHeaders = rr.Header()
		}

		assert.Equal(t, http.StatusTooManyRequests, lastCode)
		assert.NotEmpty(t, lastHeaders.Get(constvars.HeaderRetryAfter))
	})
}

func TestCartSession(t *testing.T) {
	middlewares := &Middlewares{Log: zap.NewNop()}

	t.Run("Header Is Lifted Into Context", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID, _ := r.Context().Value(constvars.CONTEXT_CART_SESSION_KEY).(string)
			assert.Equal(t, "session-1", sessionID)
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest("GET", "/api/v1/cart", nil)
		req.Header.Set(constvars.HeaderXCartSession, "session-1")

		rr := httptest.NewRecorder()
		middlewares.CartSession(handler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Absent Header Leaves Context Empty", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Nil(t, r.Context().Value(constvars.CONTEXT_CART_SESSION_KEY))
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest("GET", "/api/v1/cart", nil)

		rr := httptest.NewRecorder()
		middlewares.CartSession(handler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
