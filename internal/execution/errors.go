package execution

import (
	"errors"
	"fmt"
	"time"

	"gtr/internal/domain"
)

// ErrStartScreenHidden is returned when #start-screen exists but is display:none
var ErrStartScreenHidden = errors.New("start screen not visible")

// TimeoutError reports a wait that never saw its condition become true
type TimeoutError struct {
	Selector   string
	Elapsed    time.Duration
	Screenshot string // Diagnostic capture, empty when it could not be written
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timeout waiting for element: %s (after %s)", e.Selector, e.Elapsed.Round(time.Millisecond))
}

// ClickError reports a click on an element that could not be performed
type ClickError struct {
	Selector string
	Err      error
}

func (e *ClickError) Error() string {
	return fmt.Sprintf("failed to click element: %s: %v", e.Selector, e.Err)
}

func (e *ClickError) Unwrap() error { return e.Err }

// UnsupportedModeError is returned for a mode without an interaction policy
type UnsupportedModeError struct {
	Mode domain.Mode
}

func (e *UnsupportedModeError) Error() string {
	return fmt.Sprintf("unsupported mode %q", e.Mode)
}
