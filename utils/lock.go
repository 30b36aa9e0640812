package utils

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// LockManager hands out short per-user leases so that at most one evaluation
// pass is in flight for a given user at a time.
type LockManager struct {
	client *redis.Client
	ttl    time.Duration
}

func NewLockManager(client *redis.Client, ttl time.Duration) *LockManager {
	return &LockManager{client: client, ttl: ttl}
}

// Acquire takes the lease for userID. It returns false when another pass
// already holds it.
func (m *LockManager) Acquire(ctx context.Context, userID string) (bool, error) {
	return m.client.SetNX(ctx, leaseKey(userID), 1, m.ttl).Result()
}

// Release gives the lease back. The TTL covers the case where the holder
// dies before releasing.
func (m *LockManager) Release(ctx context.Context, userID string) {
	m.client.Del(ctx, leaseKey(userID))
}

func leaseKey(userID string) string {
	return "alerts:pass:" + userID
}
