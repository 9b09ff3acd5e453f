package execution

import (
	"context"
	"time"

	"gtr/internal/discovery"
	"gtr/internal/domain"
	"gtr/internal/ui"
)

// Runner executes test cases one after another and stops at the first failure
type Runner struct {
	executor Executor
	filter   *discovery.Filter
	progress *ui.ProgressBar
}

// NewRunner creates a new Runner
func NewRunner(executor Executor, filter *discovery.Filter) *Runner {
	return &Runner{
		executor: executor,
		filter:   filter,
	}
}

// SetProgress sets the progress bar for the runner
func (r *Runner) SetProgress(progress *ui.ProgressBar) {
	r.progress = progress
}

// Select applies the optional first-per-mode restriction
func (r *Runner) Select(cases []domain.TestCase, firstPerMode bool) []domain.TestCase {
	if !firstPerMode {
		return cases
	}
	return r.filter.FirstPerMode(cases)
}

// Run plays the selected cases strictly in sequence. After a failing case
// the remaining ones are left unexecuted and absent from the results.
func (r *Runner) Run(ctx context.Context, cases []domain.TestCase, firstPerMode bool) domain.RunSummary {
	selected := r.Select(cases, firstPerMode)
	startTime := time.Now()

	var results []domain.TestResult
	var passed, failed int
	for _, tc := range selected {
		result := r.executor.Execute(ctx, tc)
		results = append(results, result)

		if result.Passed {
			passed++
		} else {
			failed++
		}
		if r.progress != nil {
			r.progress.Update(passed, failed)
		}

		if !result.Passed {
			break
		}
	}

	if r.progress != nil {
		r.progress.Finish()
	}

	return domain.RunSummary{
		Results:  results,
		Selected: len(selected),
		Duration: time.Since(startTime),
	}
}
