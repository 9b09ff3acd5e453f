package domain

import "time"

// TestResult represents the outcome of playing one test case
type TestResult struct {
	Name     string        `json:"name"`            // Question set title
	Key      string        `json:"key"`             // Test case key
	Mode     Mode          `json:"mode"`            // Play mode
	Passed   bool          `json:"passed"`          // Whether every stage completed
	Error    string        `json:"error,omitempty"` // First error encountered, verbatim
	Duration time.Duration `json:"duration"`        // Time taken to play the case
	Err      error         `json:"-"`               // Underlying error, kept in memory for classification
}

// TestResultsMeta contains metadata about a test run
type TestResultsMeta struct {
	RunID           string  `json:"run_id"`
	TotalTestCases  int     `json:"total_test_cases"` // Cases selected for the run
	PassedTestCases int     `json:"passed_test_cases"`
	FailedTestCases int     `json:"failed_test_cases"`
	SkippedCases    int     `json:"skipped_test_cases"` // Left unexecuted after a failure
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// TestResultsOutput is the complete output structure for test results
type TestResultsOutput struct {
	Meta     TestResultsMeta `json:"meta"`
	Results  []TestResult    `json:"results"`
	Failures []TestFailure   `json:"failures"`
}

// RunSummary is what the coordinator hands back to the reporter
type RunSummary struct {
	Results  []TestResult
	Selected int
	Duration time.Duration
}

// AllPassed reports whether every executed case passed.
// Under fail-fast this is the same as "no case failed".
func (s RunSummary) AllPassed() bool {
	for _, r := range s.Results {
		if !r.Passed {
			return false
		}
	}
	return true
}

// Passed counts the passing results
func (s RunSummary) Passed() int {
	n := 0
	for _, r := range s.Results {
		if r.Passed {
			n++
		}
	}
	return n
}
