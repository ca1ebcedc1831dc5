package infra

import (
	"context"
	"sync"
	"time"
)

// RateLimiter is a token bucket: up to maxTokens requests at once, one token
// regained every refillEvery.
type RateLimiter struct {
	mu          sync.Mutex
	tokens      int
	maxTokens   int
	refillEvery time.Duration
	lastRefill  time.Time
}

// NewRateLimiter allows maxTokens requests per refillEvery window.
func NewRateLimiter(maxTokens int, refillEvery time.Duration) *RateLimiter {
	if maxTokens < 1 {
		maxTokens = 1
	}
	return &RateLimiter{
		tokens:      maxTokens,
		maxTokens:   maxTokens,
		refillEvery: refillEvery / time.Duration(maxTokens),
		lastRefill:  time.Now(),
	}
}

// Wait blocks until a token is available or ctx is done.
func (rl *RateLimiter) Wait(ctx context.Context) error {
	for {
		rl.mu.Lock()
		rl.refill()
		if rl.tokens > 0 {
			rl.tokens--
			rl.mu.Unlock()
			return nil
		}
		delay := rl.refillEvery - time.Since(rl.lastRefill)
		rl.mu.Unlock()

		if delay <= 0 {
			delay = time.Millisecond
		}
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// refill must be called with mu held.
func (rl *RateLimiter) refill() {
	if rl.refillEvery <= 0 {
		rl.tokens = rl.maxTokens
		return
	}
	elapsed := time.Since(rl.lastRefill)
	if elapsed < rl.refillEvery {
		return
	}
	periods := int(elapsed / rl.refillEvery)
	rl.tokens = min(rl.tokens+periods, rl.maxTokens)
	rl.lastRefill = rl.lastRefill.Add(time.Duration(periods) * rl.refillEvery)
}

// HostLimiter keeps one RateLimiter per host so a feed full of links to the
// same site does not hammer it, while different sites proceed in parallel.
type HostLimiter struct {
	mu       sync.Mutex
	perSec   int
	limiters map[string]*RateLimiter
}

// NewHostLimiter allows perSecond requests per host. perSecond <= 0
// disables limiting.
func NewHostLimiter(perSecond int) *HostLimiter {
	return &HostLimiter{
		perSec:   perSecond,
		limiters: make(map[string]*RateLimiter),
	}
}

// Wait blocks until a request to host may proceed.
func (h *HostLimiter) Wait(ctx context.Context, host string) error {
	if h == nil || h.perSec <= 0 {
		return ctx.Err()
	}
	h.mu.Lock()
	rl, ok := h.limiters[host]
	if !ok {
		rl = NewRateLimiter(h.perSec, time.Second)
		h.limiters[host] = rl
	}
	h.mu.Unlock()
	return rl.Wait(ctx)
}
