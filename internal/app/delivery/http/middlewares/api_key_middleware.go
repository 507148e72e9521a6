package middlewares

import (
	"context"
	"fmt"
	"mediplant-service/internal/app/services/shared/ratelimiter"
	"mediplant-service/internal/pkg/constvars"
	"mediplant-service/internal/pkg/exceptions"
	"mediplant-service/internal/pkg/utils"
	"net/http"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RequireAdminAPIKey guards the admin catalog endpoints. Only a bcrypt hash of
// the key is configured, so a leaked config never leaks the key itself.
func (m *Middlewares) RequireAdminAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(constvars.HeaderXAPIKey)
		if apiKey == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(fmt.Errorf("missing %s header", constvars.HeaderXAPIKey)))
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(m.InternalConfig.App.AdminAPIKeyHash), []byte(apiKey)); err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(err))
			return
		}

		limit, err := m.ResourceLimiter.ApplyResourceLimiter(r.Context(), &ratelimiter.ApplyResourceLimiterInput{
			ResourceName:      "admin",
			LimiterGroupName:  "API_KEY",
			WindowDurationSec: 60,
			MaxQuota:          m.InternalConfig.App.AdminAPIKeyRateLimit,
		})
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if !limit.Allowed {
			w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(limit.RetryAfterSecs))
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(fmt.Errorf("admin api key quota exhausted")))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_API_KEY_AUTH_KEY, true)

		m.Log.Info("API key authentication successful",
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingMethodKey, r.Method),
		)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
