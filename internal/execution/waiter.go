package execution

import (
	"context"
	"time"

	"gtr/internal/browser"
)

// Probe evaluates an observable condition on the page.
// An error means "not yet"; it never aborts the wait.
type Probe func(ctx context.Context, page browser.Page) (bool, error)

// Waiter polls a condition until it holds or the timeout elapses
type Waiter struct {
	Timeout  time.Duration
	Interval time.Duration
	Shots    *Screenshotter
}

// NewWaiter creates a new Waiter
func NewWaiter(timeout, interval time.Duration, shots *Screenshotter) *Waiter {
	return &Waiter{
		Timeout:  timeout,
		Interval: interval,
		Shots:    shots,
	}
}

// WaitFor waits until an element matching selector exists in the page's DOM
func (w *Waiter) WaitFor(ctx context.Context, page browser.Page, selector string) error {
	return w.Until(ctx, page, selector, Present(selector))
}

// Present is the probe "document.querySelector(selector) !== null"
func Present(selector string) Probe {
	script := presenceScript(selector)
	return func(ctx context.Context, page browser.Page) (bool, error) {
		var exists bool
		if err := page.Evaluate(ctx, script, &exists); err != nil {
			return false, err
		}
		return exists, nil
	}
}

// Until polls probe every Interval. It returns nil on the first true result.
// Once Timeout has elapsed it captures a screenshot named after label and
// returns a *TimeoutError. No single probe may run past Timeout+Interval.
func (w *Waiter) Until(ctx context.Context, page browser.Page, label string, probe Probe) error {
	start := time.Now()
	probeDeadline := start.Add(w.Timeout + w.Interval)

	for {
		probeCtx, cancel := context.WithDeadline(ctx, probeDeadline)
		ok, err := probe(probeCtx, page)
		cancel()
		if err == nil && ok {
			return nil
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}

		elapsed := time.Since(start)
		if elapsed > w.Timeout {
			shot := w.Shots.Capture(ctx, page, TimeoutShotName(label))
			return &TimeoutError{Selector: label, Elapsed: elapsed, Screenshot: shot}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(w.Interval):
		}
	}
}
