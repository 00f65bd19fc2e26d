package fetch

import (
	"context"
	"time"

	"github.com/felixgeelhaar/fortify/ratelimit"
)

// throttleKey is the single bucket key; all throttled traffic goes to the
// same host.
const throttleKey = "adventofcode.com"

// Throttle enforces a minimum interval between requests. Bulk operations
// (first-time backfill, full-year sweep) are serialized anyway; the throttle
// turns that serialization into the rate discipline the site asks for.
type Throttle struct {
	limiter ratelimit.RateLimiter
	poll    time.Duration
}

// NewThrottle returns a Throttle allowing one request per interval.
func NewThrottle(interval time.Duration) *Throttle {
	poll := interval / 10
	if poll < 50*time.Millisecond {
		poll = 50 * time.Millisecond
	}
	return &Throttle{
		limiter: ratelimit.New(&ratelimit.Config{
			Rate:     1,
			Burst:    1,
			Interval: interval,
		}),
		poll: poll,
	}
}

// Wait blocks until the limiter grants a slot or ctx is done.
func (t *Throttle) Wait(ctx context.Context) error {
	for !t.limiter.Allow(ctx, throttleKey) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(t.poll):
		}
	}
	return nil
}

// Close releases limiter resources.
func (t *Throttle) Close() error {
	return t.limiter.Close()
}
