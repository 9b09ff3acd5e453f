package browser

import (
	"encoding/json"
	"strings"

	"github.com/chromedp/cdproto/runtime"
)

// ConsoleMessage is one console API call made by a page
type ConsoleMessage struct {
	Level string
	Text  string
}

// pump drains every DevTools event the session receives.
//
// chromedp invokes listeners synchronously from its event loop and the
// session's listeners hand events over with a blocking send, so automation
// calls stall unless the pump goroutine keeps reading.
type pump struct {
	events    chan any
	done      chan struct{}
	stopped   chan struct{}
	onConsole func(ConsoleMessage)
}

func startPump(buffer int, onConsole func(ConsoleMessage)) *pump {
	p := &pump{
		events:    make(chan any, buffer),
		done:      make(chan struct{}),
		stopped:   make(chan struct{}),
		onConsole: onConsole,
	}
	go p.loop()
	return p
}

// push is registered as a chromedp browser/target listener
func (p *pump) push(ev any) {
	select {
	case p.events <- ev:
	case <-p.done:
	}
}

func (p *pump) loop() {
	defer close(p.stopped)
	for {
		select {
		case ev := <-p.events:
			p.handle(ev)
		case <-p.done:
			return
		}
	}
}

func (p *pump) handle(ev any) {
	msg, ok := ev.(*runtime.EventConsoleAPICalled)
	if !ok || p.onConsole == nil {
		return
	}
	p.onConsole(ConsoleMessage{
		Level: string(msg.Type),
		Text:  consoleText(msg.Args),
	})
}

// stop ends the pump and waits for the goroutine to exit
func (p *pump) stop() {
	close(p.done)
	<-p.stopped
}

func consoleText(args []*runtime.RemoteObject) string {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == nil {
			continue
		}
		if len(arg.Value) == 0 {
			if arg.Description != "" {
				parts = append(parts, arg.Description)
			}
			continue
		}
		var s string
		if err := json.Unmarshal([]byte(arg.Value), &s); err == nil {
			parts = append(parts, s)
			continue
		}
		parts = append(parts, string(arg.Value))
	}
	return strings.Join(parts, " ")
}
