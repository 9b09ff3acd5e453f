package storage

import (
	"time"

	"gtr/internal/config"
	"gtr/internal/domain"
)

// Storage persists and loads run reports (e.g. for the fails viewer).
type Storage interface {
	Save(results []domain.TestResult, failures []domain.TestFailure, duration time.Duration, selected int) (*domain.TestResultsOutput, error)
	Load() (*domain.TestResultsOutput, error)
	// SaveOutput rewrites the full report (e.g. after failures are marked resolved).
	SaveOutput(output *domain.TestResultsOutput) error
}

// JSONStorage stores reports in a JSON file under the configured output directory.
type JSONStorage struct {
	cfg *config.Config
	now func() time.Time
}

// NewJSONStorage returns a Storage that reads/writes the config's results path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg, now: time.Now}
}
