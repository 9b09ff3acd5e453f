package browser

import (
	"context"
	"fmt"
	"sync"

	"github.com/chromedp/cdproto/target"
	"github.com/chromedp/chromedp"
)

const eventBuffer = 256

// Options configures how the browser is started
type Options struct {
	Headless  bool
	Width     int
	Height    int
	ExecPath  string // Browser binary; empty lets chromedp look it up
	RemoteURL string // DevTools websocket URL of an already running browser

	// OnConsole receives every console message of every page, from the pump goroutine
	OnConsole func(ConsoleMessage)
	// Logf receives chromedp's own log and error output
	Logf func(format string, args ...any)
}

// Session is the single browser process shared by a whole run.
// Pages are opened and closed one at a time by the caller.
type Session struct {
	opts Options

	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc

	// events is owned by the session and stopped on Close
	events *pump

	closeOnce sync.Once
	closeErr  error
}

// Launch starts the browser (or attaches to RemoteURL) and the event pump
func Launch(ctx context.Context, opts Options) (*Session, error) {
	events := startPump(eventBuffer, opts.OnConsole)

	var allocCtx context.Context
	var allocCancel context.CancelFunc
	if opts.RemoteURL != "" {
		allocCtx, allocCancel = chromedp.NewRemoteAllocator(ctx, opts.RemoteURL)
	} else {
		allocCtx, allocCancel = chromedp.NewExecAllocator(ctx, execOptions(opts)...)
	}

	var ctxOpts []chromedp.ContextOption
	if opts.Logf != nil {
		ctxOpts = append(ctxOpts, chromedp.WithLogf(opts.Logf), chromedp.WithErrorf(opts.Logf))
	}
	browserCtx, browserCancel := chromedp.NewContext(allocCtx, ctxOpts...)
	chromedp.ListenBrowser(browserCtx, events.push)

	// An empty Run starts the browser and its first tab
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		events.stop()
		return nil, &LaunchError{Err: err}
	}

	return &Session{
		opts:          opts,
		allocCancel:   allocCancel,
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
		events:        events,
	}, nil
}

func execOptions(opts Options) []chromedp.ExecAllocatorOption {
	execOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", opts.Headless),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-setuid-sandbox", true),
	)
	if opts.Width > 0 && opts.Height > 0 {
		execOpts = append(execOpts, chromedp.WindowSize(opts.Width, opts.Height))
	}
	if opts.ExecPath != "" {
		execOpts = append(execOpts, chromedp.ExecPath(opts.ExecPath))
	}
	return execOpts
}

// NewPage opens a new tab whose events flow through the session pump
func (s *Session) NewPage(ctx context.Context) (Page, error) {
	pageCtx, cancel := chromedp.NewContext(s.browserCtx)
	chromedp.ListenTarget(pageCtx, s.events.push)

	// The first Run creates the target; it must use the tab context itself
	if err := chromedp.Run(pageCtx); err != nil {
		cancel()
		return nil, fmt.Errorf("create page: %w", err)
	}

	page := &chromePage{ctx: pageCtx, cancel: cancel}
	if s.opts.Width > 0 && s.opts.Height > 0 {
		if err := page.run(ctx, chromedp.EmulateViewport(int64(s.opts.Width), int64(s.opts.Height))); err != nil {
			page.Close()
			return nil, fmt.Errorf("set viewport: %w", err)
		}
	}
	return page, nil
}

// Targets lists the open page targets of the browser
func (s *Session) Targets(ctx context.Context) ([]*target.Info, error) {
	runCtx, cancel := context.WithCancel(s.browserCtx)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	infos, err := chromedp.Targets(runCtx)
	if err != nil {
		return nil, err
	}

	var pages []*target.Info
	for _, info := range infos {
		if info.Type == "page" {
			pages = append(pages, info)
		}
	}
	return pages, nil
}

// Close shuts the browser down and stops the event pump.
// Only the first call does any work; later calls return nil.
func (s *Session) Close() error {
	first := false
	s.closeOnce.Do(func() {
		first = true
		s.closeErr = chromedp.Cancel(s.browserCtx)
		s.browserCancel()
		s.allocCancel()
		s.events.stop()
	})
	if !first {
		return nil
	}
	return s.closeErr
}
