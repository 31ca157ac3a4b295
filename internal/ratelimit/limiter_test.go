package ratelimit_test

import (
	"testing"
	"time"

	apperrors "testtrack-backend/internal/errors"
	"testtrack-backend/internal/ratelimit"

	"github.com/stretchr/testify/assert"
)

func TestLimiterRejectsBeyondMax(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := ratelimit.New(true, ratelimit.WithClock(func() time.Time { return now }))
	defer limiter.Close()

	for i := 0; i < 5; i++ {
		assert.NoError(t, limiter.Check("login", "10.0.0.1", 5, 60))
	}

	err := limiter.Check("login", "10.0.0.1", 5, 60)
	assert.Error(t, err)
	assert.True(t, apperrors.IsRateLimit(err))

	var rateErr *apperrors.RateLimitError
	assert.ErrorAs(t, err, &rateErr)
	assert.GreaterOrEqual(t, rateErr.RetryAfterSeconds, 1)
	assert.LessOrEqual(t, rateErr.RetryAfterSeconds, 60)
}

func TestLimiterResetsAfterWindow(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := ratelimit.New(true, ratelimit.WithClock(func() time.Time { return now }))
	defer limiter.Close()

	for i := 0; i < 5; i++ {
		assert.NoError(t, limiter.Check("login", "10.0.0.1", 5, 60))
	}
	assert.Error(t, limiter.Check("login", "10.0.0.1", 5, 60))

	// Window elapses; the next request starts a fresh counter at 1
	now = now.Add(61 * time.Second)
	assert.NoError(t, limiter.Check("login", "10.0.0.1", 5, 60))

	// Still room for four more in the new window
	for i := 0; i < 4; i++ {
		assert.NoError(t, limiter.Check("login", "10.0.0.1", 5, 60))
	}
	assert.Error(t, limiter.Check("login", "10.0.0.1", 5, 60))
}

func TestLimiterKeysAreIndependent(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := ratelimit.New(true, ratelimit.WithClock(func() time.Time { return now }))
	defer limiter.Close()

	for i := 0; i < 5; i++ {
		assert.NoError(t, limiter.Check("login", "10.0.0.1", 5, 60))
	}
	assert.Error(t, limiter.Check("login", "10.0.0.1", 5, 60))

	// Another client and another namespace are unaffected
	assert.NoError(t, limiter.Check("login", "10.0.0.2", 5, 60))
	assert.NoError(t, limiter.Check("signup", "10.0.0.1", 5, 60))
}

func TestLimiterDisabledAdmitsEverything(t *testing.T) {
	limiter := ratelimit.New(false)
	defer limiter.Close()

	for i := 0; i < 100; i++ {
		assert.NoError(t, limiter.Check("login", "10.0.0.1", 5, 60))
	}
}
