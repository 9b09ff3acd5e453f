package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"gtr/internal/domain"
)

// Save writes a run report to the configured JSON output file.
// selected is the number of cases chosen for the run; those absent from
// results were skipped after a failure.
func (s *JSONStorage) Save(results []domain.TestResult, failures []domain.TestFailure, duration time.Duration, selected int) (*domain.TestResultsOutput, error) {
	passed := 0
	failed := 0
	for _, r := range results {
		if r.Passed {
			passed++
		} else {
			failed++
		}
	}

	skipped := selected - len(results)
	if skipped < 0 {
		skipped = 0
	}

	if results == nil {
		results = []domain.TestResult{}
	}
	if failures == nil {
		failures = []domain.TestFailure{}
	}

	output := &domain.TestResultsOutput{
		Meta: domain.TestResultsMeta{
			RunID:           uuid.NewString(),
			TotalTestCases:  selected,
			PassedTestCases: passed,
			FailedTestCases: failed,
			SkippedCases:    skipped,
			Duration:        duration.Round(time.Millisecond).String(),
			DurationSeconds: duration.Seconds(),
			Timestamp:       s.now().Format(time.RFC3339),
		},
		Results:  results,
		Failures: failures,
	}

	if err := s.SaveOutput(output); err != nil {
		return nil, err
	}
	return output, nil
}

// Load reads the last run report from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.TestResultsOutput, error) {
	path := s.cfg.GetResultsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var output domain.TestResultsOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &output, nil
}

// SaveOutput writes the full report to the configured JSON file.
func (s *JSONStorage) SaveOutput(output *domain.TestResultsOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	path := s.cfg.GetResultsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}
