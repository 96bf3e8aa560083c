package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"shop_backend/internal/models"
)

var ErrCacheMiss = fmt.Errorf("cache miss")

// Client is a read-through cache for catalog reads. Product mutations
// invalidate the affected keys.
type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

func Initialize(redisURL string, ttl time.Duration) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb, ttl: ttl}, nil
}

func productKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}

func (c *Client) SetProduct(product *models.Product) error {
	ctx := context.Background()
	data, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("failed to marshal product: %w", err)
	}
	return c.rdb.Set(ctx, productKey(product.ID), data, c.ttl).Err()
}

func (c *Client) GetProduct(id uint) (*models.Product, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, productKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get product from cache: %w", err)
	}

	var product models.Product
	if err := json.Unmarshal([]byte(val), &product); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product: %w", err)
	}
	return &product, nil
}

func (c *Client) InvalidateProduct(id uint) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, productKey(id)).Err()
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
