// Package retry provides the bounded probe loop shared by driver readiness
// waits and element-presence waits.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrDeadlineExceeded reports that the probe never succeeded before the
// deadline. The last probe failure is attached as the cause.
var ErrDeadlineExceeded = errors.New("deadline exceeded")

// Poll invokes probe immediately and then once per interval until it
// returns nil, the timeout elapses, or ctx is cancelled. On timeout the
// returned error wraps ErrDeadlineExceeded together with the last probe
// failure. Probes run strictly one at a time.
func Poll(ctx context.Context, interval, timeout time.Duration, probe func(context.Context) error) error {
	if probe == nil {
		return errors.New("retry: nil probe")
	}
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}

	deadline := time.Now().Add(timeout)
	var lastErr error
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		lastErr = probe(ctx)
		if lastErr == nil {
			return nil
		}
		if !time.Now().Add(interval).Before(deadline) {
			return fmt.Errorf("%w after %s: %v", ErrDeadlineExceeded, timeout, lastErr)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}
