package inspector

import (
	"context"
	"errors"
	"time"
)

// PollUntil repeatedly samples a value and checks it against a
// predicate until the predicate is satisfied or timeout elapses. The
// overlay renders asynchronously in reaction to input events, with no
// completion signal to subscribe to, so condition-driven polling is
// the only reliable wait primitive.
//
// Samples are strictly sequential: iteration N+1 never starts before
// iteration N's sample returns, and interval is a lower bound on the
// gap between iterations, not an upper bound on total latency. A
// sample error is treated as "condition not yet met" rather than
// fatal, except ErrCapabilityMissing, which propagates immediately.
// On deadline the last sample error, if any, is carried inside the
// returned *TimeoutError.
func PollUntil[T any](ctx context.Context, subject string, timeout, interval time.Duration, sample func(context.Context) (T, error), predicate func(T) bool) (T, error) {
	var zero T
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	deadline := time.Now().Add(timeout)

	var lastErr error
	for {
		v, err := sample(ctx)
		if err == nil {
			if predicate(v) {
				return v, nil
			}
			lastErr = nil
		} else {
			if errors.Is(err, ErrCapabilityMissing) {
				return zero, err
			}
			lastErr = err
		}

		if time.Now().After(deadline) {
			return zero, &TimeoutError{Subject: subject, Timeout: timeout, LastErr: lastErr}
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(interval):
		}
	}
}
