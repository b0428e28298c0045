package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const flightTTL = 10 * time.Second

// FlightLock rejects a second login attempt for the same identifier while
// the first is still outstanding. The TTL bounds how long a crashed request
// can hold the lock.
type FlightLock struct {
	client *redis.Client
}

// NewFlightLock creates a FlightLock wrapping the given Redis client.
func NewFlightLock(client *redis.Client) *FlightLock {
	return &FlightLock{client: client}
}

// Acquire reports whether the key was free; false means a flight is already
// in progress.
func (f *FlightLock) Acquire(ctx context.Context, key string) (bool, error) {
	ok, err := f.client.SetNX(ctx, f.key(key), "1", flightTTL).Result()
	if err != nil {
		return false, fmt.Errorf("flight acquire: %w", err)
	}
	return ok, nil
}

// Release frees the key once the request settles.
func (f *FlightLock) Release(ctx context.Context, key string) error {
	if err := f.client.Del(ctx, f.key(key)).Err(); err != nil {
		return fmt.Errorf("flight release: %w", err)
	}
	return nil
}

func (f *FlightLock) key(key string) string {
	return "flight:" + key
}
