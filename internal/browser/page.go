package browser

import (
	"context"
	"sync"

	"github.com/chromedp/chromedp"
)

// Page is one isolated tab of the browser session
type Page interface {
	// Navigate loads url and waits for the load event
	Navigate(ctx context.Context, url string) error
	// Evaluate runs a script expression; res receives the JSON result and may be nil
	Evaluate(ctx context.Context, expression string, res any) error
	// Screenshot captures the visible viewport as PNG
	Screenshot(ctx context.Context) ([]byte, error)
	// Close closes the tab. Calling it more than once is a no-op.
	Close() error
}

// chromePage is a Page backed by a chromedp tab context
type chromePage struct {
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
	closeErr  error
}

// run executes actions on the tab, bounded by both the tab lifetime and ctx.
// Cancelling ctx aborts the call without closing the tab.
func (p *chromePage) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithCancel(p.ctx)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	return chromedp.Run(runCtx, actions...)
}

func (p *chromePage) Navigate(ctx context.Context, url string) error {
	if err := p.run(ctx, chromedp.Navigate(url)); err != nil {
		return &NavigationError{URL: url, Err: err}
	}
	return nil
}

func (p *chromePage) Evaluate(ctx context.Context, expression string, res any) error {
	return p.run(ctx, chromedp.Evaluate(expression, res))
}

func (p *chromePage) Screenshot(ctx context.Context) ([]byte, error) {
	var buf []byte
	if err := p.run(ctx, chromedp.CaptureScreenshot(&buf)); err != nil {
		return nil, err
	}
	return buf, nil
}

func (p *chromePage) Close() error {
	p.closeOnce.Do(func() {
		p.closeErr = chromedp.Cancel(p.ctx)
		p.cancel()
	})
	return p.closeErr
}
