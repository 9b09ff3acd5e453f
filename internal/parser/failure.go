package parser

import (
	"errors"
	"os"
	"time"

	"gtr/internal/browser"
	"gtr/internal/config"
	"gtr/internal/domain"
	"gtr/internal/execution"
)

// FailureParser classifies why a test case failed
type FailureParser struct {
	config *config.Config
}

// NewFailureParser creates a new FailureParser. Diagnostic captures are
// looked up in the config's output directory at parse time.
func NewFailureParser(cfg *config.Config) *FailureParser {
	return &FailureParser{config: cfg}
}

// ParseFailure returns one failure record for a failed result and nothing for a passing one.
// A result without an underlying error is recorded as FailureOther.
func (p *FailureParser) ParseFailure(result domain.TestResult) []domain.TestFailure {
	if result.Passed {
		return nil
	}

	failure := domain.TestFailure{
		TestName: result.Name,
		Key:      result.Key,
		Mode:     result.Mode,
		Kind:     domain.FailureOther,
		Message:  result.Error,
	}

	if result.Err != nil {
		p.classify(&failure, result.Err)
	}

	return []domain.TestFailure{failure}
}

func (p *FailureParser) classify(failure *domain.TestFailure, err error) {
	var (
		timeoutErr *execution.TimeoutError
		clickErr   *execution.ClickError
		navErr     *browser.NavigationError
		modeErr    *execution.UnsupportedModeError
	)

	switch {
	case errors.As(err, &timeoutErr):
		failure.Kind = domain.FailureTimeout
		failure.Selector = timeoutErr.Selector
		failure.Elapsed = timeoutErr.Elapsed.Round(time.Millisecond).String()
		failure.Screenshot = timeoutErr.Screenshot
		if failure.Screenshot == "" {
			failure.Screenshot = p.existing(execution.TimeoutShotName(timeoutErr.Selector))
		}
	case errors.As(err, &clickErr):
		failure.Kind = domain.FailureClick
		failure.Selector = clickErr.Selector
	case errors.As(err, &navErr):
		failure.Kind = domain.FailureNavigation
	case errors.As(err, &modeErr):
		failure.Kind = domain.FailureUnsupportedMode
	case errors.Is(err, execution.ErrStartScreenHidden):
		failure.Kind = domain.FailureStartHidden
		failure.Selector = execution.SelectorStartScreen
		failure.Screenshot = p.existing("fail_start_not_visible")
	}
}

// existing returns the path of a named capture if it was written
func (p *FailureParser) existing(name string) string {
	if p.config == nil {
		return ""
	}
	path := execution.NewScreenshotter(p.config.OutputDir).Path(name)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
