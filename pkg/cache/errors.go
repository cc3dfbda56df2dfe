package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss reports a key with no live entry.
var ErrCacheMiss = errors.New("cache miss")

// RetryableError marks a failure as transient. The redis backend wraps
// network errors with it so RetryWithBackoff knows the call is worth
// repeating, while protocol errors fail fast.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }

func (e *RetryableError) Unwrap() error { return e.Err }

// Retryable marks err as transient. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// IsRetryable reports whether err carries the transient marker.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// RetryWithBackoff runs fn up to three times, doubling the wait between
// attempts. Non-transient errors and context cancellation end the loop
// immediately; the last transient error is returned when all attempts
// are spent.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	const attempts = 3
	delay := 250 * time.Millisecond

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		if !IsRetryable(err) {
			return err
		}
		lastErr = err

		if attempt == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
	return lastErr
}
