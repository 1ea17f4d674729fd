package auth

import (
	"context"
	"math/rand/v2"
	"time"
)

// DelayFunc picks how long to hold a login or registration attempt.
type DelayFunc func() time.Duration

// RandomDelay waits between zero and maxDelay. A non-positive maxDelay disables the delay.
func RandomDelay(maxDelay time.Duration) DelayFunc {
	return func() time.Duration {
		if maxDelay <= 0 {
			return 0
		}
		return rand.N(maxDelay + 1)
	}
}

// AuthDelay holds every credential attempt for a delay that does not depend on the outcome.
func AuthDelay(delay DelayFunc) Check {
	return func(ctx context.Context, _ Request) (context.Context, error) {
		d := delay()
		if d <= 0 {
			return ctx, nil
		}
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-timer.C:
			return ctx, nil
		case <-ctx.Done():
			return ctx, ctx.Err()
		}
	}
}
