// Package ratelimit implements fixed-window request limiting keyed by
// client identifier. Window state lives behind the Store interface so a
// single instance can keep it in memory while a scaled deployment moves
// it to Redis.
package ratelimit

import (
	"context"
	"log/slog"
	"time"
)

// Store tracks per-key counters over fixed windows.
type Store interface {
	// Incr increments the counter for key within the current window and
	// returns the post-increment count. When no window is active a new
	// one of the given length is started with count 1.
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// Limiter answers allow/deny per client over a fixed window.
type Limiter struct {
	store  Store
	limit  int64
	window time.Duration
	log    *slog.Logger
}

// New creates a limiter allowing limit requests per window.
func New(store Store, limit int, window time.Duration, logger *slog.Logger) *Limiter {
	return &Limiter{
		store:  store,
		limit:  int64(limit),
		window: window,
		log:    logger.With("component", "ratelimit"),
	}
}

// Allow reports whether the client may proceed. Store failures fail
// open: the request is admitted and the error logged, so a degraded
// shared store slows abuse protection rather than breaking the feature.
func (l *Limiter) Allow(ctx context.Context, clientID string) bool {
	count, err := l.store.Incr(ctx, clientID, l.window)
	if err != nil {
		l.log.WarnContext(ctx, "rate limit store error, admitting request",
			slog.String("client", clientID),
			slog.String("error", err.Error()),
		)
		return true
	}
	return count <= l.limit
}

// Window returns the configured window length, used for Retry-After.
func (l *Limiter) Window() time.Duration {
	return l.window
}
