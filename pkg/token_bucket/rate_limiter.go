package token_bucket

import (
	"math"
	"sync"
	"time"
)

// TokenBucket пропускает запрос, пока в ведре есть токены.
// Токены добавляются со скоростью refillRate в секунду, но не больше capacity.
type TokenBucket struct {
	capacity   int
	tokens     float64
	refillRate float64
	lastRefill time.Time
	now        func() time.Time
	mu         sync.Mutex
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return NewTokenBucketWithClock(capacity, refillRate, time.Now)
}

func NewTokenBucketWithClock(capacity int, refillRate float64, now func() time.Time) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		tokens:     float64(capacity),
		refillRate: refillRate,
		lastRefill: now(),
		now:        now,
	}
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

// RetryAfter - через сколько появится следующий токен. 0, если он уже есть.
func (t *TokenBucket) RetryAfter() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens >= 1 {
		return 0
	}
	if t.refillRate <= 0 || t.capacity == 0 {
		return time.Duration(math.MaxInt64)
	}
	missing := 1 - t.tokens
	return time.Duration(missing / t.refillRate * float64(time.Second))
}

func (t *TokenBucket) refill() {
	now := t.now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	t.tokens = math.Min(float64(t.capacity), t.tokens+elapsed*t.refillRate)
	t.lastRefill = now
}
