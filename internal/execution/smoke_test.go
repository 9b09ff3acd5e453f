package execution

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"gtr/internal/browser"
)

// smokePage accepts the smoke script and "logs" when the injected button is clicked
type smokePage struct {
	injected bool
	log      func(string)
	closed   int
}

func (p *smokePage) Navigate(ctx context.Context, url string) error { return nil }

func (p *smokePage) Evaluate(ctx context.Context, expression string, res any) error {
	switch expression {
	case smokeScript:
		p.injected = true
	case presenceScript(smokeSelector):
		*res.(*bool) = p.injected
	case clickScript(smokeSelector):
		if !p.injected {
			return errors.New("no button")
		}
		if p.log != nil {
			go p.log(SmokeMessage)
		}
	default:
		return errors.New("unexpected script")
	}
	return nil
}

func (p *smokePage) Screenshot(ctx context.Context) ([]byte, error) {
	return nil, errors.New("no screenshots")
}

func (p *smokePage) Close() error {
	p.closed++
	return nil
}

type smokeOpener struct{ page *smokePage }

func (o *smokeOpener) NewPage(ctx context.Context) (browser.Page, error) { return o.page, nil }

func TestSmoke(t *testing.T) {
	t.Run("console message arrives", func(t *testing.T) {
		var seen atomic.Bool
		page := &smokePage{log: func(text string) {
			if text == SmokeMessage {
				seen.Store(true)
			}
		}}

		w := NewWaiter(time.Second, 10*time.Millisecond, nil)
		if err := Smoke(context.Background(), &smokeOpener{page: page}, w, seen.Load); err != nil {
			t.Fatalf("Smoke() error = %v", err)
		}
		if page.closed != 1 {
			t.Errorf("closed = %d, want 1", page.closed)
		}
	})

	t.Run("console message never arrives", func(t *testing.T) {
		page := &smokePage{}

		w := NewWaiter(50*time.Millisecond, 10*time.Millisecond, nil)
		err := Smoke(context.Background(), &smokeOpener{page: page}, w, func() bool { return false })

		var timeoutErr *TimeoutError
		if !errors.As(err, &timeoutErr) {
			t.Fatalf("Smoke() error = %v, want *TimeoutError", err)
		}
		if timeoutErr.Selector != "console:"+SmokeMessage {
			t.Errorf("Selector = %q", timeoutErr.Selector)
		}
	})
}
