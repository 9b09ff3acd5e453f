package ui

import "gtr/internal/domain"

// Viewer displays a stored run report in an interactive TUI
type Viewer interface {
	View(results *domain.TestResultsOutput) error
}
