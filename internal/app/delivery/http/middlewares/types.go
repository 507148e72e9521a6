package middlewares

import (
	"mediplant-service/internal/app/config"
	"mediplant-service/internal/app/services/shared/ratelimiter"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log             *zap.Logger
	InternalConfig  *config.InternalConfig
	ResourceLimiter *ratelimiter.ResourceLimiter

	// RegistrationLimiter throttles the public registration endpoints per IP.
	RegistrationLimiter *RateLimiter
}
