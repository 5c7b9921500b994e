// ABOUTME: Exponential backoff used when external providers rate-limit or fail
// ABOUTME: Shared by the Hugging Face client and the OpenAI embedding path
package util

import (
	"math/rand/v2"
	"time"
)

// maxBackoff bounds a single sleep regardless of attempt count.
const maxBackoff = 30 * time.Second

// CalculateBackoff returns the delay before retry number attempt:
// baseDelay * 2^attempt, capped at 30s, with ±25% jitter so that
// concurrent callers don't hammer a rate-limited provider in lockstep.
// Attempt 0 (the first try) waits nothing.
func CalculateBackoff(baseDelay time.Duration, attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	if attempt > 30 {
		// 1<<31 would overflow the duration math
		attempt = 30
	}
	backoff := baseDelay * time.Duration(1<<uint(attempt))
	if backoff > maxBackoff || backoff <= 0 {
		backoff = maxBackoff
	}
	jitter := time.Duration(rand.Int64N(int64(backoff)/2)) - backoff/4
	return backoff + jitter
}
