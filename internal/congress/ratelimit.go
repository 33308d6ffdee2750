package congress

import (
	"sync"
	"time"
)

// RateLimitStatus is a point-in-time snapshot of the hourly request budget.
type RateLimitStatus struct {
	RequestsThisHour   int    `json:"requests_this_hour"`
	MaxRequestsPerHour int    `json:"max_requests_per_hour"`
	RequestsRemaining  int    `json:"requests_remaining"`
	HourStartTime      string `json:"hour_start_time"`
	IsRateLimited      bool   `json:"is_rate_limited"`
}

// rateLimiter enforces the Congress.gov hourly quota over a rolling
// one-hour window. All state lives behind mu so concurrent tool calls
// cannot tear the check-then-increment sequence.
type rateLimiter struct {
	mu         sync.Mutex
	maxPerHour int
	count      int
	hourStart  time.Time
	limited    bool
	now        func() time.Time
}

func newRateLimiter(maxPerHour int) *rateLimiter {
	return &rateLimiter{
		maxPerHour: maxPerHour,
		hourStart:  time.Now(),
		now:        time.Now,
	}
}

// reserve consumes one slot of the hourly budget, rolling the window when
// an hour has elapsed. The slot is consumed before the network call is
// issued, so failed requests still count against the quota.
func (r *rateLimiter) reserve() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if now.Sub(r.hourStart) >= time.Hour {
		r.count = 0
		r.hourStart = now
		r.limited = false
	}

	if r.count >= r.maxPerHour {
		r.limited = true
		return NewRateLimitError("rate limit exceeded: %d requests in the last hour, limit is %d", r.count, r.maxPerHour)
	}

	r.count++
	return nil
}

// markLimited records a server-side 429 regardless of the local count.
func (r *rateLimiter) markLimited() {
	r.mu.Lock()
	r.limited = true
	r.mu.Unlock()
}

// status returns a snapshot of the current budget.
func (r *rateLimiter) status() RateLimitStatus {
	r.mu.Lock()
	defer r.mu.Unlock()

	remaining := r.maxPerHour - r.count
	if remaining < 0 {
		remaining = 0
	}
	return RateLimitStatus{
		RequestsThisHour:   r.count,
		MaxRequestsPerHour: r.maxPerHour,
		RequestsRemaining:  remaining,
		HourStartTime:      r.hourStart.Format(time.RFC3339),
		IsRateLimited:      r.limited,
	}
}

// reset clears the counter and starts a fresh window.
func (r *rateLimiter) reset() {
	r.mu.Lock()
	r.count = 0
	r.hourStart = r.now()
	r.limited = false
	r.mu.Unlock()
}
