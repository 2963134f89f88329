package caching

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"cafemart/internal/models"

	"github.com/redis/go-redis/v9"
)

const productListKey = "cafemart:products"

// CacheService caches the product catalog for the display path. Cache
// failures are never fatal; callers fall back to the database. The order
// coordinator never reads prices from here.
type CacheService interface {
	GetProductList(ctx context.Context) ([]*models.Product, error)
	SetProductList(ctx context.Context, products []*models.Product, ttl time.Duration) error
	InvalidateProductList(ctx context.Context) error
	Ping(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("WARN: Redis ping failed on initialization: %v (address: %s)", err, addr)
	}

	return &redisCacheService{client: client}
}

func (r *redisCacheService) GetProductList(ctx context.Context) ([]*models.Product, error) {
	data, err := r.client.Get(ctx, productListKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var products []*models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *redisCacheService) SetProductList(ctx context.Context, products []*models.Product, ttl time.Duration) error {
	data, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, productListKey, data, ttl).Err()
}

func (r *redisCacheService) InvalidateProductList(ctx context.Context) error {
	return r.client.Del(ctx, productListKey).Err()
}

func (r *redisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
