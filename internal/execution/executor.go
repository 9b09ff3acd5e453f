package execution

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gtr/internal/browser"
	"gtr/internal/config"
	"gtr/internal/domain"
)

// Executor plays one test case and reports its outcome
type Executor interface {
	Execute(ctx context.Context, tc domain.TestCase) domain.TestResult
}

// PageOpener hands out fresh pages; *browser.Session implements it
type PageOpener interface {
	NewPage(ctx context.Context) (browser.Page, error)
}

// Reporter receives progress while a case is played
type Reporter interface {
	CaseStarted(tc domain.TestCase)
	Step(format string, args ...any)
	CaseFinished(result domain.TestResult)
}

// CaseExecutor drives a test case through the screens of the quiz page:
// start -> tile -> game -> one round per question -> finish.
type CaseExecutor struct {
	config   *config.Config
	pages    PageOpener
	waiter   *Waiter
	shots    *Screenshotter
	reporter Reporter
}

// NewCaseExecutor creates a new CaseExecutor
func NewCaseExecutor(cfg *config.Config, pages PageOpener, waiter *Waiter, shots *Screenshotter, reporter Reporter) *CaseExecutor {
	return &CaseExecutor{
		config:   cfg,
		pages:    pages,
		waiter:   waiter,
		shots:    shots,
		reporter: reporter,
	}
}

// Execute plays tc on its own page. The first error ends the case and is
// recorded verbatim; the page is closed whatever the outcome.
func (e *CaseExecutor) Execute(ctx context.Context, tc domain.TestCase) domain.TestResult {
	e.reporter.CaseStarted(tc)
	start := time.Now()

	err := e.play(ctx, tc)

	result := domain.TestResult{
		Name:     tc.Metadata.Title,
		Key:      tc.Key,
		Mode:     tc.Mode(),
		Passed:   err == nil,
		Duration: time.Since(start),
	}
	if err != nil {
		result.Error = err.Error()
		result.Err = err
	}

	e.reporter.CaseFinished(result)
	return result
}

func (e *CaseExecutor) play(ctx context.Context, tc domain.TestCase) error {
	policy, err := NewPolicy(tc.Mode(), e.waiter, e.config.SettleDelay)
	if err != nil {
		return err
	}

	url, err := e.config.GetPageURL()
	if err != nil {
		return &browser.NavigationError{URL: e.config.HTMLPath, Err: err}
	}

	page, err := e.pages.NewPage(ctx)
	if err != nil {
		return err
	}
	defer page.Close()

	if err := page.Navigate(ctx, url); err != nil {
		var navErr *browser.NavigationError
		if errors.As(err, &navErr) {
			return err
		}
		return &browser.NavigationError{URL: url, Err: err}
	}

	if err := e.checkStartScreen(ctx, page); err != nil {
		return err
	}
	e.reporter.Step("Testing start screen... ✓")

	if err := e.openTile(ctx, page, tc); err != nil {
		return err
	}

	if err := e.waiter.WaitFor(ctx, page, SelectorGameScreen); err != nil {
		return err
	}

	total := len(tc.Questions)
	for i, q := range tc.Questions {
		round := Round{Number: i + 1, Total: total, Question: q}
		if err := policy.PlayRound(ctx, page, round); err != nil {
			return fmt.Errorf("question %d/%d: %w", round.Number, total, err)
		}
		e.reporter.Step("[%s] Testing question %d/%d... ✓", policy.Mode(), round.Number, total)
	}

	if err := e.waiter.WaitFor(ctx, page, SelectorFinishScreen); err != nil {
		return err
	}
	e.shots.Capture(ctx, page, "finish_"+tc.Key)

	return nil
}

// checkStartScreen waits for #start-screen and checks it is not display:none
func (e *CaseExecutor) checkStartScreen(ctx context.Context, page browser.Page) error {
	if err := e.waiter.WaitFor(ctx, page, SelectorStartScreen); err != nil {
		return err
	}

	var visible bool
	if err := page.Evaluate(ctx, startVisibleScript, &visible); err != nil {
		return fmt.Errorf("check start screen visibility: %w", err)
	}
	if !visible {
		e.shots.Capture(ctx, page, "fail_start_not_visible")
		return ErrStartScreenHidden
	}
	return nil
}

// openTile waits for any tile first, then for this case's tile, so that
// "no tiles rendered" and "this tile is missing" fail on different selectors.
func (e *CaseExecutor) openTile(ctx context.Context, page browser.Page, tc domain.TestCase) error {
	if err := e.waiter.WaitFor(ctx, page, SelectorTile); err != nil {
		return err
	}

	var keys []string
	if err := page.Evaluate(ctx, tileKeysScript, &keys); err == nil {
		e.reporter.Step("Available tiles: %v", keys)
	}
	e.shots.Capture(ctx, page, "tiles_present_before_click_"+tc.Key)

	selector := TileSelector(tc.Key)
	if err := e.waiter.WaitFor(ctx, page, selector); err != nil {
		return err
	}
	e.shots.Capture(ctx, page, "before_click_"+tc.Key)

	if err := Click(ctx, page, selector); err != nil {
		return fmt.Errorf("failed to find tile with data-key='%s': %w", tc.Key, err)
	}
	return nil
}
