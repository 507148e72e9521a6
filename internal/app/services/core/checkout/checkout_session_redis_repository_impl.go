package checkout

import (
	"context"
	"fmt"
	"mediplant-service/internal/app/config"
	"mediplant-service/internal/app/contracts"
	"mediplant-service/internal/app/models"
	"mediplant-service/internal/pkg/constvars"
	"mediplant-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
)

type CheckoutSessionRedisRepository struct {
	RedisRepository contracts.RedisRepository
	TTL             time.Duration
}

func NewCheckoutSessionRedisRepository(redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig) contracts.CheckoutSessionRepository {
	return &CheckoutSessionRedisRepository{
		RedisRepository: redisRepository,
		TTL:             time.Duration(internalConfig.Cart.CheckoutTTLInMinutes) * time.Minute,
	}
}

func (r *CheckoutSessionRedisRepository) Find(ctx context.Context, sessionID string) (*models.CheckoutSession, error) {
	key := fmt.Sprintf(constvars.RedisKeyCheckoutSessionFormat, sessionID)
	data, err := r.RedisRepository.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	session := new(models.CheckoutSession)
	if err := json.Unmarshal([]byte(data), session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (r *CheckoutSessionRedisRepository) Save(ctx context.Context, session *models.CheckoutSession) error {
	session.UpdatedAt = time.Now().UTC()
	key := fmt.Sprintf(constvars.RedisKeyCheckoutSessionFormat, session.SessionID)
	return r.RedisRepository.Set(ctx, key, session, r.TTL)
}

func (r *CheckoutSessionRedisRepository) Delete(ctx context.Context, sessionID string) error {
	key := fmt.Sprintf(constvars.RedisKeyCheckoutSessionFormat, sessionID)
	return r.RedisRepository.Delete(ctx, key)
}
