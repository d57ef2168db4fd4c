package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisHealthPlanCache stores health-plan entries in Redis as JSON. Keys expire
// at the freshness window; the caller still checks the embedded timestamp so a
// stale-but-present entry never short-circuits a refresh.
type RedisHealthPlanCache struct {
	redis *redis.Client
}

var _ HealthPlanCache = (*RedisHealthPlanCache)(nil)

// NewRedisHealthPlanCache creates a cache backed by the given Redis client.
func NewRedisHealthPlanCache(client *redis.Client) *RedisHealthPlanCache {
	return &RedisHealthPlanCache{redis: client}
}

func ocrKey(uid string) string {
	return fmt.Sprintf("healthplan:ocr:%s", uid)
}

func ingredientsKey(uid string) string {
	return fmt.Sprintf("healthplan:ingredients:%s", uid)
}

func categorizationKey(uid string) string {
	return fmt.Sprintf("healthplan:categorization:%s", uid)
}

func (c *RedisHealthPlanCache) get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := c.redis.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s from Redis: %w", key, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return true, nil
}

func (c *RedisHealthPlanCache) set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := c.redis.Set(ctx, key, data, planTTL).Err(); err != nil {
		return fmt.Errorf("failed to write %s to Redis: %w", key, err)
	}
	return nil
}

// GetOCR returns the cached OCR result for the user, or nil on a miss.
func (c *RedisHealthPlanCache) GetOCR(ctx context.Context, uid string) (*OCRResult, error) {
	var result OCRResult
	ok, err := c.get(ctx, ocrKey(uid), &result)
	if err != nil || !ok {
		return nil, err
	}
	return &result, nil
}

// SetOCR stores the OCR result for the user.
func (c *RedisHealthPlanCache) SetOCR(ctx context.Context, uid string, result *OCRResult) error {
	return c.set(ctx, ocrKey(uid), result)
}

// GetIngredients returns the cached fridge-ingredients result, or nil on a miss.
func (c *RedisHealthPlanCache) GetIngredients(ctx context.Context, uid string) (*IngredientsResult, error) {
	var result IngredientsResult
	ok, err := c.get(ctx, ingredientsKey(uid), &result)
	if err != nil || !ok {
		return nil, err
	}
	return &result, nil
}

// SetIngredients stores the fridge-ingredients result for the user.
func (c *RedisHealthPlanCache) SetIngredients(ctx context.Context, uid string, result *IngredientsResult) error {
	return c.set(ctx, ingredientsKey(uid), result)
}

// GetCategorization returns the cached categorization, or nil on a miss.
func (c *RedisHealthPlanCache) GetCategorization(ctx context.Context, uid string) (*CategorizationResult, error) {
	var result CategorizationResult
	ok, err := c.get(ctx, categorizationKey(uid), &result)
	if err != nil || !ok {
		return nil, err
	}
	return &result, nil
}

// SetCategorization stores the categorization for the user, replacing any
// previous entry.
func (c *RedisHealthPlanCache) SetCategorization(ctx context.Context, uid string, result *CategorizationResult) error {
	return c.set(ctx, categorizationKey(uid), result)
}
