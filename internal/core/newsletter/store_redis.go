// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

package newsletter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/apperr"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/constants"
)

// RedisTokenStore implements [TokenStore] with expiring Redis keys.
type RedisTokenStore struct {
	client redis.UniversalClient
}

// NewRedisTokenStore constructs a token store over client.
func NewRedisTokenStore(client redis.UniversalClient) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

func tokenKey(token string) string {
	return constants.RedisPrefixNewsletterConfirm + token
}

// Save implements [TokenStore].
func (store *RedisTokenStore) Save(ctx context.Context, token, email string, ttl time.Duration) error {
	if err := store.client.Set(ctx, tokenKey(token), email, ttl).Err(); err != nil {
		return apperr.ServiceUnavailable("Subscription service unavailable", fmt.Errorf("save token: %w", err))
	}
	return nil
}

// Consume implements [TokenStore] with GETDEL, which reads and removes
// the key in one round trip.
func (store *RedisTokenStore) Consume(ctx context.Context, token string) (string, error) {
	email, err := store.client.GetDel(ctx, tokenKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", apperr.NotFound("Confirmation token")
	}
	if err != nil {
		return "", apperr.ServiceUnavailable("Subscription service unavailable", fmt.Errorf("consume token: %w", err))
	}
	return email, nil
}

// Delete implements [TokenStore].
func (store *RedisTokenStore) Delete(ctx context.Context, token string) error {
	if err := store.client.Del(ctx, tokenKey(token)).Err(); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}
