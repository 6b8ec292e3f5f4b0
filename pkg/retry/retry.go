// Package retry implements the backoff policy for retriable failures:
// exponential with jitter, capped, classified by error category.
package retry

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/gearbox-dev/gearbox/pkg/models"
)

const (
	// baseDelay is the exponential base.
	baseDelay = 1 * time.Second
	// maxDelay caps any single backoff interval.
	maxDelay = 30 * time.Second
	// maxJitter is added uniformly to every interval.
	maxJitter = 1 * time.Second
)

// Delay returns the backoff for the given zero-based attempt:
// min(base * 2^attempt + jitter(0..1s), 30s).
func Delay(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	d := baseDelay
	for i := 0; i < attempt; i++ {
		d *= 2
		if d >= maxDelay {
			d = maxDelay
			break
		}
	}
	d += time.Duration(rand.Int64N(int64(maxJitter)))
	if d > maxDelay {
		d = maxDelay
	}
	return d
}

// Retriable reports whether the error may be retried: CodedErrors carry
// an explicit flag; everything else is non-retriable.
func Retriable(err error) bool {
	var coded *models.CodedError
	if errors.As(err, &coded) {
		return coded.Retriable
	}
	return false
}

// Do runs op up to maxAttempts times, sleeping the policy delay between
// attempts. Non-retriable errors and context cancellation terminate
// immediately.
func Do(ctx context.Context, maxAttempts int, op func() error) error {
	var err error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err = op(); err == nil {
			return nil
		}
		if !Retriable(err) || attempt == maxAttempts-1 {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(Delay(attempt)):
		}
	}
	return err
}

// NewBackOff returns the policy as a backoff.BackOff for callers that
// drive their own retry loop (LLM chunk streams).
func NewBackOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = baseDelay
	b.MaxInterval = maxDelay
	b.Multiplier = 2
	b.RandomizationFactor = 0.5
	return backoff.WithContext(b, ctx)
}
