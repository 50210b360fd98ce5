// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package daybook

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/daybook/internal/platform/constants"
)

// RedisCache keeps rendered documents under daybook:pdf:<fingerprint>.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (cache *RedisCache) GetDocument(context context.Context, fingerprint string) ([]byte, bool, error) {
	data, err := cache.client.Get(context, documentKey(fingerprint)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis: get document: %w", err)
	}
	return data, true, nil
}

func (cache *RedisCache) SetDocument(context context.Context, fingerprint string, data []byte) error {
	if err := cache.client.Set(context, documentKey(fingerprint), data, cache.ttl).Err(); err != nil {
		return fmt.Errorf("redis: set document: %w", err)
	}
	return nil
}

func documentKey(fingerprint string) string {
	return constants.RedisPrefixDocument + fingerprint
}
