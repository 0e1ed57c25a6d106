// File: services/booking/lock.go
package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrLockHeld is returned when another submission currently holds the artist
// day lock.
var ErrLockHeld = errors.New("slot lock held")

const lockTTL = 10 * time.Second

// Locker serializes booking submissions per artist and date so concurrent
// clients cannot both pass the overlap re-check.
type Locker interface {
	Acquire(ctx context.Context, artistID, date, token string) error
	Release(ctx context.Context, artistID, date, token string) error
}

// SlotLock is the Redis-backed Locker used in production.
type SlotLock struct {
	client *redis.Client
}

// NewSlotLock builds a SlotLock over the given Redis client.
func NewSlotLock(client *redis.Client) *SlotLock {
	return &SlotLock{client: client}
}

func lockKey(artistID, date string) string {
	return fmt.Sprintf("booking-lock:%s:%s", artistID, date)
}

// Acquire takes the lock for the artist and date, returning a token that
// Release checks before removing the key. The lock expires on its own if the
// holder dies mid-submission.
func (l *SlotLock) Acquire(ctx context.Context, artistID, date, token string) error {
	ok, err := l.client.SetNX(ctx, lockKey(artistID, date), token, lockTTL).Result()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return ErrLockHeld
	}
	return nil
}

// Release frees the lock if the token still matches, so an expired-and-stolen
// lock is never released by the old holder.
func (l *SlotLock) Release(ctx context.Context, artistID, date, token string) error {
	const script = `if redis.call("get", KEYS[1]) == ARGV[1] then return redis.call("del", KEYS[1]) else return 0 end`
	if err := l.client.Eval(ctx, script, []string{lockKey(artistID, date)}, token).Err(); err != nil {
		return fmt.Errorf("release lock: %w", err)
	}
	return nil
}
