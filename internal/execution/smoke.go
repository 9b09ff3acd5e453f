package execution

import (
	"context"
	"fmt"

	"gtr/internal/browser"
)

// SmokeMessage is logged by the smoke page's button
const SmokeMessage = "HELLO_SMOKE"

const smokeSelector = "#btn"

var smokeScript = fmt.Sprintf(
	`(() => { const b = document.createElement('button'); b.id = 'btn'; b.textContent = 'Click'; b.onclick = () => console.log(%s); document.body.appendChild(b); })()`,
	jsString(SmokeMessage),
)

// Smoke checks the browser end to end: a button is injected into a blank
// page and clicked, and its console message must come back through the
// session's event pump. observed reports whether that message has arrived.
func Smoke(ctx context.Context, pages PageOpener, waiter *Waiter, observed func() bool) error {
	page, err := pages.NewPage(ctx)
	if err != nil {
		return err
	}
	defer page.Close()

	if err := page.Navigate(ctx, "about:blank"); err != nil {
		return err
	}
	if err := page.Evaluate(ctx, smokeScript, nil); err != nil {
		return fmt.Errorf("inject smoke button: %w", err)
	}

	if err := waiter.WaitFor(ctx, page, smokeSelector); err != nil {
		return err
	}
	if err := Click(ctx, page, smokeSelector); err != nil {
		return err
	}

	return waiter.Until(ctx, page, "console:"+SmokeMessage, func(ctx context.Context, page browser.Page) (bool, error) {
		return observed(), nil
	})
}
