package cart

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

type CartRedisRepository struct {
	RedisRepository contracts.RedisRepository
	TTL             time.Duration
}

func NewCartRedisRepository(redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig) contracts.CartRepository {
	return &CartRedisRepository{
		RedisRepository: redisRepository,
		TTL:             time.Duration(internalConfig.Cart.TTLInHours) * time.Hour,
	}
}

func (r *CartRedisRepository) Find(ctx context.Context, sessionID string) (*models.Cart, error) {
	key := fmt.Sprintf(constvars.RedisKeyCartFormat, sessionID)
	data, err := r.RedisRepository.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	cart := new(models.Cart)
	if err := json.Unmarshal([]byte(data), cart); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return cart, nil
}

func (r *CartRedisRepository) Save(ctx context.Context, cart *models.Cart) error {
	cart.UpdatedAt = time.Now().UTC()
	key := fmt.Sprintf(constvars.RedisKeyCartFormat, cart.SessionID)
	return r.RedisRepository.Set(ctx, key, cart, r.TTL)
}

func (r *CartRedisRepository) Delete(ctx context.Context, sessionID string) error {
	key := fmt.Sprintf(constvars.RedisKeyCartFormat, sessionID)
	return r.RedisRepository.Delete(ctx, key)
}
