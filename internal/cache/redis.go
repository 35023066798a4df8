package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/actuallystonmai/health-lens-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	defaultTTL = 10 * time.Minute
	keyPrefix  = "analysis:"
)

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

// Fingerprint hashes the JSON encoding of v. Callers pass everything the
// response depends on, so equal fingerprints mean interchangeable responses.
func Fingerprint(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("fingerprint: %w", err)
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

func buildKey(fingerprint string) string {
	return keyPrefix + fingerprint
}

// Get a cached analysis
func (c *Cache) Get(ctx context.Context, fingerprint string) (*domain.AnalysisResponse, bool, error) {
	key := buildKey(fingerprint)
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("failed to get analysis from cache: %w", err)
	}

	var resp domain.AnalysisResponse
	if err := json.Unmarshal([]byte(val), &resp); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal analysis %s: %w", key, err)
	}

	return &resp, true, nil
}

// Store an analysis
func (c *Cache) Set(ctx context.Context, fingerprint string, resp *domain.AnalysisResponse) error {
	val, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	if err := c.client.Set(ctx, buildKey(fingerprint), val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set analysis in cache: %w", err)
	}

	return nil
}

// Clear drops every cached analysis, e.g. after a retrain.
func (c *Cache) Clear(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("cache delete %s: %w", iter.Val(), err)
		}
	}
	return iter.Err()
}

// Ping connectivity
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
