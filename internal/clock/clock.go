// Package clock waits on timers that respect context cancellation.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for d or returns ctx.Err() once ctx is done.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Poll calls check immediately and then every interval until it reports done,
// fails, or ctx is done.
func Poll(ctx context.Context, interval time.Duration, check func(context.Context) (bool, error)) error {
	for {
		done, err := check(ctx)
		if err != nil || done {
			return err
		}
		if err := SleepWithContext(ctx, interval); err != nil {
			return err
		}
	}
}
