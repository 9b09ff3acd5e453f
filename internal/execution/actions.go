package execution

import (
	"context"
	"time"

	"gtr/internal/browser"
)

// Click activates the first element matching selector
func Click(ctx context.Context, page browser.Page, selector string) error {
	if err := page.Evaluate(ctx, clickScript(selector), nil); err != nil {
		return &ClickError{Selector: selector, Err: err}
	}
	return nil
}

// pause sleeps for d unless ctx ends first
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
