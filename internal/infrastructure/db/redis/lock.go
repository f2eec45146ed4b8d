package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultLockTTL = time.Minute

// Lock is a best-effort mutual exclusion across replicas built on SET NX.
// A Lock is not safe for concurrent use; each job should own its own.
type Lock struct {
	client *redis.Client
	key    string
	ttl    time.Duration
	owner  string
}

func NewLock(client *redis.Client, key string, ttl time.Duration) (*Lock, error) {
	if client == nil {
		return nil, errors.New("redis lock: client is required")
	}
	if key == "" {
		return nil, errors.New("redis lock: key is required")
	}
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return &Lock{client: client, key: key, ttl: ttl}, nil
}

// Acquire reports whether this process now owns the lock.
func (l *Lock) Acquire(ctx context.Context) (bool, error) {
	owner := uuid.NewString()
	ok, err := l.client.SetNX(ctx, l.key, owner, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis lock acquire: %w", err)
	}
	if ok {
		l.owner = owner
	}
	return ok, nil
}

// Release deletes the key only while it still holds our owner token.
func (l *Lock) Release(ctx context.Context) error {
	if l.owner == "" {
		return nil
	}
	defer func() { l.owner = "" }()

	value, err := l.client.Get(ctx, l.key).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("redis lock owner: %w", err)
	}
	if value != l.owner {
		return nil
	}
	if err := l.client.Del(ctx, l.key).Err(); err != nil {
		return fmt.Errorf("redis lock release: %w", err)
	}
	return nil
}
