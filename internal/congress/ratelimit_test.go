package congress

import (
	"errors"
	"testing"
	"time"
)

func TestRateLimiter_AllowsRequestsUpToQuota(t *testing.T) {
	limiter := newRateLimiter(3)

	for i := 0; i < 3; i++ {
		if err := limiter.reserve(); err != nil {
			t.Fatalf("Request %d should be within quota: %v", i+1, err)
		}
	}

	err := limiter.reserve()
	if err == nil {
		t.Fatal("Expected error once quota is exhausted")
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected *Error, got %T", err)
	}
	if apiErr.Code != CodeRateLimitExceeded {
		t.Errorf("Expected code %s, got %s", CodeRateLimitExceeded, apiErr.Code)
	}
	if apiErr.StatusCode != 429 {
		t.Errorf("Expected status 429, got %d", apiErr.StatusCode)
	}
}

func TestRateLimiter_StatusSnapshot(t *testing.T) {
	limiter := newRateLimiter(5)
	limiter.reserve()
	limiter.reserve()

	status := limiter.status()
	if status.RequestsThisHour != 2 {
		t.Errorf("Expected 2 requests this hour, got %d", status.RequestsThisHour)
	}
	if status.MaxRequestsPerHour != 5 {
		t.Errorf("Expected max 5, got %d", status.MaxRequestsPerHour)
	}
	if status.RequestsRemaining != 3 {
		t.Errorf("Expected 3 remaining, got %d", status.RequestsRemaining)
	}
	if status.IsRateLimited {
		t.Error("Limiter should not be limited below quota")
	}
	if status.HourStartTime == "" {
		t.Error("Expected hour start time to be set")
	}
}

func TestRateLimiter_WindowRollsAfterOneHour(t *testing.T) {
	current := time.Now()
	limiter := newRateLimiter(2)
	limiter.hourStart = current
	limiter.now = func() time.Time { return current }

	limiter.reserve()
	limiter.reserve()
	if err := limiter.reserve(); err == nil {
		t.Fatal("Expected quota exhaustion before the window rolls")
	}

	current = current.Add(time.Hour + time.Minute)
	if err := limiter.reserve(); err != nil {
		t.Fatalf("Expected fresh quota after the window rolled: %v", err)
	}

	status := limiter.status()
	if status.RequestsThisHour != 1 {
		t.Errorf("Expected count 1 in the new window, got %d", status.RequestsThisHour)
	}
	if status.IsRateLimited {
		t.Error("Limited flag should clear when the window rolls")
	}
}

func TestRateLimiter_Reset(t *testing.T) {
	limiter := newRateLimiter(1)
	limiter.reserve()
	if err := limiter.reserve(); err == nil {
		t.Fatal("Expected quota exhaustion")
	}

	limiter.reset()

	if err := limiter.reserve(); err != nil {
		t.Fatalf("Expected reserve to succeed after reset: %v", err)
	}
	status := limiter.status()
	if status.IsRateLimited {
		t.Error("Limited flag should clear on reset")
	}
}

func TestRateLimiter_MarkLimited(t *testing.T) {
	limiter := newRateLimiter(10)
	limiter.markLimited()

	if !limiter.status().IsRateLimited {
		t.Error("Expected limited flag after server-side 429")
	}
}
