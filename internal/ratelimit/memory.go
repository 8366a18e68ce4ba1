package ratelimit

import (
	"context"
	"time"

	limiter "github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// MemoryLimiter implements Limiter on top of an in-process sliding window.
// State lives for the process lifetime only, which matches the rest of the
// service.
type MemoryLimiter struct {
	store limiter.Store
}

// NewMemoryLimiter constructs a MemoryLimiter.
func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{store: memory.NewStore()}
}

// Allow consumes one slot for key and reports whether the request fits the
// window.
func (m *MemoryLimiter) Allow(ctx context.Context, key string, window time.Duration, max int) (bool, int, time.Time, error) {
	rate := limiter.Rate{Period: window, Limit: int64(max)}
	lctx, err := limiter.New(m.store, rate).Get(ctx, key)
	if err != nil {
		return false, 0, time.Time{}, err
	}
	return !lctx.Reached, int(lctx.Remaining), time.Unix(lctx.Reset, 0), nil
}
