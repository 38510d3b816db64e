// Package ratelimit guards the admin login with a Redis-backed fixed window
// and throttles visitor writes with in-process token buckets.
// A Limiter without a store is a no-op, so the API runs without Redis in development.
package ratelimit

import (
	"context"
	"fmt"
	"time"
)

// Store is the subset of Redis the login limiter needs.
type Store interface {
	Incr(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
	TTL(ctx context.Context, key string) (time.Duration, error)
	Del(ctx context.Context, keys ...string) error
}

// Limiter allows max attempts per key within window.
type Limiter struct {
	store  Store
	max    int64
	window time.Duration
}

// New creates a Limiter. A nil store disables limiting.
func New(store Store, max int, window time.Duration) *Limiter {
	return &Limiter{store: store, max: int64(max), window: window}
}

// Enabled reports whether a store backs the limiter.
func (l *Limiter) Enabled() bool {
	return l != nil && l.store != nil
}

// CheckLogin counts one login attempt from ip. When the budget is exhausted it
// returns false and how long the caller should wait.
func (l *Limiter) CheckLogin(ctx context.Context, ip string) (bool, time.Duration) {
	return l.check(ctx, loginKey(ip))
}

// ResetLogin clears the attempt counter of ip after a successful login.
func (l *Limiter) ResetLogin(ctx context.Context, ip string) {
	if !l.Enabled() {
		return
	}
	_ = l.store.Del(ctx, loginKey(ip))
}

func (l *Limiter) check(ctx context.Context, key string) (bool, time.Duration) {
	if !l.Enabled() {
		return true, 0
	}

	count, err := l.store.Incr(ctx, key)
	if err != nil {
		// fail open: a Redis outage must not lock admins out
		return true, 0
	}
	if count == 1 {
		_ = l.store.Expire(ctx, key, l.window)
	}
	if count <= l.max {
		return true, 0
	}

	ttl, err := l.store.TTL(ctx, key)
	if err != nil || ttl <= 0 {
		ttl = l.window
	}
	return false, ttl
}

func loginKey(ip string) string {
	return fmt.Sprintf("animehub:login:%s", ip)
}
