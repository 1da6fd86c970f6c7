package queue

import "time"

// RetryBackoff computes the exponential retry delay for the Nth attempt:
// base * 2^(attempts-1), clamped to max.
func RetryBackoff(base, max time.Duration, attempts int) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	d := base
	for i := 1; i < attempts; i++ {
		d *= 2
		if d >= max {
			return max
		}
	}
	if d > max {
		return max
	}
	return d
}
