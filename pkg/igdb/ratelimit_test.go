package igdb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Calls within the budget must not block.
func TestRateLimiterWithinBudget(t *testing.T) {
	limiter := NewRateLimiter(4, time.Second)

	start := time.Now()
	for i := 0; i < 4; i++ {
		limiter.Wait()
	}

	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

// The call over budget waits for the window to reset.
func TestRateLimiterBlocksOverBudget(t *testing.T) {
	limiter := NewRateLimiter(2, 50*time.Millisecond)

	limiter.Wait()
	limiter.Wait()

	start := time.Now()
	limiter.Wait()

	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}
