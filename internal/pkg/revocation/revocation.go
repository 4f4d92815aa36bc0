// Package revocation remembers logged-out session token ids until the tokens
// would have expired anyway.
package revocation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "travel-booking:revoked:"

type RedisList struct {
	client *redis.Client
}

func NewRedisList(client *redis.Client) *RedisList {
	return &RedisList{client: client}
}

func (l *RedisList) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}

	if err := l.client.Set(ctx, keyPrefix+tokenID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("l.client.Set -> %w", err)
	}

	return nil
}

func (l *RedisList) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := l.client.Exists(ctx, keyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("l.client.Exists -> %w", err)
	}

	return n > 0, nil
}

// MemoryList is the single-process fallback used when no redis address is
// configured.
type MemoryList struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewMemoryList() *MemoryList {
	return &MemoryList{
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (l *MemoryList) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.prune()
	if expiresAt.After(l.now()) {
		l.revoked[tokenID] = expiresAt
	}

	return nil
}

func (l *MemoryList) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	expiresAt, ok := l.revoked[tokenID]
	if !ok {
		return false, nil
	}
	if !expiresAt.After(l.now()) {
		delete(l.revoked, tokenID)
		return false, nil
	}

	return true, nil
}

// prune drops expired entries. Callers must hold l.mu.
func (l *MemoryList) prune() {
	now := l.now()
	for id, expiresAt := range l.revoked {
		if !expiresAt.After(now) {
			delete(l.revoked, id)
		}
	}
}
