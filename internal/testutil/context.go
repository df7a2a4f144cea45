// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"testing"
	"time"
)

// PlayTimeout bounds a scripted play-through when no timeout is given.
const PlayTimeout = 2 * time.Second

// Context returns a context that ends at test cleanup, after timeout, or one
// second before the test binary deadline, whichever comes first.
func Context(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()
	if timeout <= 0 {
		timeout = PlayTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	if dt, ok := t.(interface{ Deadline() (time.Time, bool) }); ok {
		if deadline, ok := dt.Deadline(); ok {
			var cancelDeadline context.CancelFunc
			ctx, cancelDeadline = context.WithDeadline(ctx, deadline.Add(-time.Second))
			t.Cleanup(cancelDeadline)
		}
	}
	return ctx
}

// Cancelled returns a context that is already done.
func Cancelled() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}
