package repo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/eshopx/microservices/pkg/logging"
	"github.com/eshopx/microservices/services/basket/internal/models"
)

// Cache is the slice of redis the cached repository needs.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
}

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte) error {
	return c.Client.Set(ctx, key, value, c.TTL).Err()
}

func (c *RedisCache) Del(ctx context.Context, key string) error {
	return c.Client.Del(ctx, key).Err()
}

// CachedRepo is a cache-aside layer over another BasketRepository: reads go to
// the cache first, writes go through to storage and refresh the cache entry,
// deletes invalidate it. Cache failures never fail the operation, the inner
// repository stays authoritative.
type CachedRepo struct {
	Inner BasketRepository
	Cache Cache
}

const cacheKeyPrefix = "basket:"

func (r *CachedRepo) GetBasket(ctx context.Context, userName string) (*models.ShoppingCart, error) {
	l := logging.FromContext(ctx)
	key := cacheKeyPrefix + userName

	if data, ok, err := r.Cache.Get(ctx, key); err != nil {
		l.Warn("basket cache read failed", "user_name", userName, "error", err)
	} else if ok {
		var cart models.ShoppingCart
		if err := json.Unmarshal(data, &cart); err == nil {
			return &cart, nil
		}
		l.Warn("basket cache entry corrupt, dropping", "user_name", userName)
		_ = r.Cache.Del(ctx, key)
	}

	cart, err := r.Inner.GetBasket(ctx, userName)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(cart); err == nil {
		if err := r.Cache.Set(ctx, key, data); err != nil {
			l.Warn("basket cache fill failed", "user_name", userName, "error", err)
		}
	}
	return cart, nil
}

func (r *CachedRepo) StoreBasket(ctx context.Context, cart *models.ShoppingCart) (*models.ShoppingCart, error) {
	stored, err := r.Inner.StoreBasket(ctx, cart)
	if err != nil {
		return nil, err
	}

	key := cacheKeyPrefix + stored.UserName
	data, err := json.Marshal(stored)
	if err != nil {
		return stored, nil
	}
	if err := r.Cache.Set(ctx, key, data); err != nil {
		logging.FromContext(ctx).Warn("basket cache refresh failed, invalidating", "user_name", stored.UserName, "error", err)
		_ = r.Cache.Del(ctx, key)
	}
	return stored, nil
}

func (r *CachedRepo) DeleteBasket(ctx context.Context, userName string) (bool, error) {
	existed, err := r.Inner.DeleteBasket(ctx, userName)
	if err != nil {
		return false, err
	}

	if err := r.Cache.Del(ctx, cacheKeyPrefix+userName); err != nil {
		logging.FromContext(ctx).Warn("basket cache invalidation failed", "user_name", userName, "error", err)
	}
	return existed, nil
}
