// Package retry runs provider calls again on transient failures with exponential backoff.
package retry

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/flight-search/flight-reservations/internal/domain"
)

// Config holds the retry configuration options.
type Config struct {
	// MaxAttempts is the total number of attempts, including the first one.
	// Values below 1 mean a single attempt.
	MaxAttempts int

	// InitialDelay is the delay before the first retry.
	InitialDelay time.Duration

	// MaxDelay caps the delay between attempts.
	MaxDelay time.Duration

	// Multiplier grows the delay after each retry.
	Multiplier float64

	// JitterFactor adds up to this fraction of the delay as random jitter.
	JitterFactor float64

	// RetryIf decides whether an error is worth another attempt.
	// If nil, Transient is used.
	RetryIf func(error) bool
}

// ProviderConfig returns backoff settings for flight-data provider calls.
func ProviderConfig(maxAttempts int) Config {
	return Config{
		MaxAttempts:  maxAttempts,
		InitialDelay: 200 * time.Millisecond,
		MaxDelay:     5 * time.Second,
		Multiplier:   2.0,
		JitterFactor: 0.2,
		RetryIf:      Transient,
	}
}

// Transient reports whether err is worth retrying: transport failures, rate limiting
// and provider-side faults. Other provider rejections and context errors are final.
func Transient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if pe, ok := domain.AsProviderError(err); ok {
		return pe.Retryable
	}
	return true
}

// Do executes fn until it succeeds, returns a non-retryable error, or attempts run out.
// The last error is returned when every attempt fails.
func Do[T any](ctx context.Context, cfg Config, fn func(context.Context) (T, error)) (T, error) {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	retryIf := cfg.RetryIf
	if retryIf == nil {
		retryIf = Transient
	}

	var result T
	var lastErr error
	delay := cfg.InitialDelay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result, lastErr = fn(ctx)
		if lastErr == nil {
			return result, nil
		}
		if !retryIf(lastErr) || attempt == cfg.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-time.After(backoff(delay, cfg.MaxDelay, cfg.JitterFactor)):
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
	}

	return result, lastErr
}

func backoff(delay, maxDelay time.Duration, jitterFactor float64) time.Duration {
	sleep := delay + time.Duration(rand.Float64()*float64(delay)*jitterFactor)
	if maxDelay > 0 && sleep > maxDelay {
		sleep = maxDelay
	}
	return sleep
}
