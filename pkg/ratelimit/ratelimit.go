package ratelimit

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	DefaultCapacity = 1000
	DefaultIdleTTL  = 5 * time.Minute
)

// KeyedLimiter keeps one token bucket per key; idle buckets expire.
// A nil *KeyedLimiter allows everything.
type KeyedLimiter struct {
	mu      sync.Mutex
	buckets *expirable.LRU[string, *rate.Limiter]
	limit   rate.Limit
	burst   int
}

// New returns a limiter refilling requestsPerMin tokens per minute per key,
// or nil when requestsPerMin is not positive.
func New(requestsPerMin int) *KeyedLimiter {
	if requestsPerMin <= 0 {
		return nil
	}
	return &KeyedLimiter{
		buckets: expirable.NewLRU[string, *rate.Limiter](DefaultCapacity, nil, DefaultIdleTTL),
		limit:   rate.Limit(float64(requestsPerMin) / 60.0),
		burst:   max(1, requestsPerMin/4),
	}
}

// Allow reports whether key may proceed now.
func (kl *KeyedLimiter) Allow(key string) bool {
	if kl == nil {
		return true
	}
	return kl.bucket(key).Allow()
}

func (kl *KeyedLimiter) bucket(key string) *rate.Limiter {
	kl.mu.Lock()
	defer kl.mu.Unlock()

	if b, ok := kl.buckets.Get(key); ok {
		return b
	}
	b := rate.NewLimiter(kl.limit, kl.burst)
	kl.buckets.Add(key, b)
	return b
}
