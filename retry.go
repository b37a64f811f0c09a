package mdrsort

import (
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
)

// RetryPolicy bounds how long an operation waits out transient file locks.
type RetryPolicy struct {
	MaxAttempts int           // total attempts, including the first
	Delay       time.Duration // fixed pause between attempts
}

// DefaultRetryPolicy retries three times, two seconds apart.
var DefaultRetryPolicy = RetryPolicy{MaxAttempts: 3, Delay: 2 * time.Second}

// Do runs op until it succeeds, returns a non-transient error, or the
// attempts run out. onRetry, if set, is called before each pause with the
// 1-based number of the attempt that failed. sleep replaces the wall-clock
// wait when non-nil. Exhaustion yields an error wrapping both
// ErrRetriesExhausted and the last failure.
func (p RetryPolicy) Do(sleep func(time.Duration), onRetry func(attempt int, err error), op func() error) error {
	attempts := max(p.MaxAttempts, 1)
	opts := []retry.Option{
		retry.Attempts(uint(attempts)),
		retry.Delay(p.Delay),
		retry.DelayType(retry.FixedDelay),
		retry.RetryIf(IsTransient),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			// retry-go reports the final failure too; only pauses are announced.
			if onRetry != nil && int(n)+1 < attempts {
				onRetry(int(n)+1, err)
			}
		}),
	}
	if sleep != nil {
		opts = append(opts, retry.WithTimer(sleepTimer(sleep)))
	}

	err := retry.Do(op, opts...)
	if err != nil && IsTransient(err) {
		return fmt.Errorf("%w after %d attempts: %w", ErrRetriesExhausted, attempts, err)
	}
	return err
}

// sleepTimer adapts a blocking sleep function to retry.Timer.
type sleepTimer func(time.Duration)

func (s sleepTimer) After(d time.Duration) <-chan time.Time {
	s(d)
	ch := make(chan time.Time, 1)
	ch <- time.Now()
	return ch
}
