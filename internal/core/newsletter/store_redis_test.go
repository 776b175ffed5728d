// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

package newsletter_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NavodCaldera/online-bookstore-sub000/internal/core/newsletter"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/apperr"
)

func setupTokenRedis(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("TEST_REDIS_URL")
	if addr == "" {
		addr = "redis://localhost:6379/15"
	}
	opts, err := redis.ParseURL(addr)
	require.NoError(t, err)

	client := redis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Skipping test: cannot reach test redis: %v", err)
	}
	return client
}

func TestRedisTokenStore_ConsumeOnce(t *testing.T) {
	store := newsletter.NewRedisTokenStore(setupTokenRedis(t))
	ctx := context.Background()
	token := "consume-once-" + time.Now().Format("150405.000000000")

	require.NoError(t, store.Save(ctx, token, "reader@example.com", time.Minute))

	const clients = 8
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		emails []string
	)
	for i := 0; i < clients; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			email, err := store.Consume(ctx, token)
			if err != nil {
				assert.True(t, apperr.Is(err, "NOT_FOUND"), "got %v", err)
				return
			}
			mu.Lock()
			emails = append(emails, email)
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, []string{"reader@example.com"}, emails)

	_, err := store.Consume(ctx, "never-issued")
	assert.True(t, apperr.Is(err, "NOT_FOUND"))
}
